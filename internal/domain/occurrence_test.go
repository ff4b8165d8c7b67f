package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyState(t *testing.T) {
	now := time.Date(2024, 3, 11, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		completed bool
		dueAt     time.Time
		want      LifecycleState
	}{
		{
			name:  "due in the future is active",
			dueAt: now.Add(time.Hour),
			want:  StateActive,
		},
		{
			name:  "due in the past is overdue",
			dueAt: now.Add(-time.Hour),
			want:  StateOverdue,
		},
		{
			name:  "due exactly now is active",
			dueAt: now,
			want:  StateActive,
		},
		{
			name:      "completion wins over past due",
			completed: true,
			dueAt:     now.Add(-1000 * time.Hour),
			want:      StateCompleted,
		},
		{
			name:      "completion wins over future due",
			completed: true,
			dueAt:     now.Add(1000 * time.Hour),
			want:      StateCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyState(tt.completed, tt.dueAt, now))
		})
	}
}

func TestDueInstant(t *testing.T) {
	sevenAM := time.Date(2024, 3, 1, 7, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		task *Task
		enh  *Enhancement
		key  DateKey
		want time.Time
	}{
		{
			name: "carries time of day onto the rendered date",
			task: &Task{DueAt: &sevenAM},
			key:  "2024-03-15",
			want: time.Date(2024, 3, 15, 7, 0, 0, 0, time.Local),
		},
		{
			name: "enhancement override supplies the time of day",
			task: &Task{Date: "2024-03-01"},
			enh:  &Enhancement{DueAt: &sevenAM},
			key:  "2024-04-02",
			want: time.Date(2024, 4, 2, 7, 0, 0, 0, time.Local),
		},
		{
			name: "falls back to end of day without a due timestamp",
			task: &Task{Date: "2024-03-10"},
			key:  "2024-03-10",
			want: time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueInstant(tt.task, tt.enh, tt.key))
		})
	}
}

func TestMaterializeNext_NonRepeatingOverdue(t *testing.T) {
	// A task dated 2024-03-10 with no due time is due 23:59; by
	// midnight on the 11th it is overdue.
	task := &Task{ID: 1, Date: "2024-03-10"}
	now := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	occ := MaterializeNext(task, nil, now)

	assert.Equal(t, DateKey("2024-03-10"), occ.DateKey)
	assert.Equal(t, StateOverdue, occ.State)
	assert.False(t, occ.Completed)
	assert.Nil(t, occ.CompletedAt)
}

func TestMaterializeNext_NonRepeatingReadsTaskCompletion(t *testing.T) {
	// Non-repeating completion lives on the task record only; the
	// enhancement's date maps are never consulted.
	completedAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	task := &Task{ID: 1, Date: "2024-03-10", Completed: true, CompletedAt: &completedAt}
	enh := NewEnhancement()
	enh.CompletedDates["2024-03-10"] = false // would contradict if consulted

	now := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	occ := MaterializeNext(task, enh, now)

	assert.True(t, occ.Completed)
	require.NotNil(t, occ.CompletedAt)
	assert.Equal(t, completedAt, *occ.CompletedAt)
	assert.Equal(t, StateCompleted, occ.State)
}

func TestMaterializeNext_CompletedAtAloneMarksDone(t *testing.T) {
	completedAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	task := &Task{ID: 1, Date: "2024-03-10", CompletedAt: &completedAt}

	occ := MaterializeNext(task, nil, time.Date(2024, 3, 10, 10, 0, 0, 0, time.Local))
	assert.True(t, occ.Completed)
	assert.Equal(t, StateCompleted, occ.State)
}

func TestMaterializeOn_RepeatingPerDateCompletion(t *testing.T) {
	// A daily task completed for May 1 only must not show completed on May 2.
	doneAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	task := &Task{ID: 7, Date: "2024-04-01"}
	enh := NewEnhancement()
	enh.Repeat = "daily"
	enh.CompletedDates["2024-05-01"] = true
	enh.CompletedAtDates["2024-05-01"] = &doneAt

	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.Local)

	first, ok := MaterializeOn(task, enh, "2024-05-01", now)
	require.True(t, ok)
	assert.True(t, first.Completed)
	assert.Equal(t, StateCompleted, first.State)
	require.NotNil(t, first.CompletedAt)
	assert.Equal(t, doneAt, *first.CompletedAt)

	second, ok := MaterializeOn(task, enh, "2024-05-02", now)
	require.True(t, ok)
	assert.False(t, second.Completed)
	assert.Nil(t, second.CompletedAt)
}

func TestMaterializeOn_NoOccurrence(t *testing.T) {
	task := &Task{ID: 3, Date: "2024-01-15"}
	enh := &Enhancement{Repeat: "monthly"}

	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local)
	_, ok := MaterializeOn(task, enh, "2024-02-16", now)
	assert.False(t, ok)
}

func TestMaterializeNext_DailyDueTimeFollowsRenderDate(t *testing.T) {
	// A daily 7am reminder shows 7am on whichever day is rendered.
	sevenAM := time.Date(2024, 3, 1, 7, 0, 0, 0, time.Local)
	task := &Task{ID: 2, DueAt: &sevenAM}
	enh := &Enhancement{Repeat: "daily"}

	now := time.Date(2024, 3, 15, 6, 0, 0, 0, time.Local)
	occ := MaterializeNext(task, enh, now)

	assert.Equal(t, DateKey("2024-03-15"), occ.DateKey)
	assert.Equal(t, time.Date(2024, 3, 15, 7, 0, 0, 0, time.Local), occ.DueAt)
	assert.Equal(t, StateActive, occ.State)
}
