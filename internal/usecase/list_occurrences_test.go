package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/testutil"
	"github.com/fittrack/fittrack/internal/usecase"
)

func dueAt(t *testing.T, value string) *time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	require.NoError(t, err)
	return &ts
}

func TestListOccurrences_OnePerTaskSortedByDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Later", DueAt: dueAt(t, "2024-05-16 09:00"), Date: domain.DateKey("2024-05-16")}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Sooner", DueAt: dueAt(t, "2024-05-15 18:00"), Date: domain.DateKey("2024-05-15")}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "Overdue", DueAt: dueAt(t, "2024-05-14 08:00"), Date: domain.DateKey("2024-05-14")}
	uc := usecase.NewListOccurrences(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.ListOccurrencesInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	assert.Equal(t, 3, out.Items[0].Task.ID)
	assert.Equal(t, 2, out.Items[1].Task.ID)
	assert.Equal(t, 1, out.Items[2].Task.ID)

	assert.Equal(t, domain.StateOverdue, out.Items[0].Occurrence.State)
	assert.Equal(t, domain.StateActive, out.Items[1].Occurrence.State)
}

func TestListOccurrences_RepeatingShowsNextOccurrence(t *testing.T) {
	t.Parallel()

	// Weekly task anchored on a Wednesday; today is Friday, so the next
	// occurrence lands on the following Wednesday.
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Meal prep", Date: domain.DateKey("2024-01-03")}
	enh := domain.NewEnhancement()
	enh.Repeat = "weekly"
	repo.Enhancements[1] = enh
	uc := usecase.NewListOccurrences(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.ListOccurrencesInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, domain.DateKey("2024-01-10"), out.Items[0].Occurrence.DateKey)
	assert.Equal(t, domain.RepeatWeekly, out.Items[0].Repeat.Kind)
}

func TestListOccurrences_Filters(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{
		ID: 1, Title: "Run", Date: domain.DateKey("2024-05-16"),
		Priority: domain.PriorityHigh, Tags: []string{"cardio"},
		Quadrant: domain.QuadrantNotUrgentImportant,
	}
	repo.Tasks[2] = &domain.Task{
		ID: 2, Title: "Dishes", Date: domain.DateKey("2024-05-16"),
		Priority: domain.PriorityLow,
	}
	uc := usecase.NewListOccurrences(repo, &testutil.MockClock{NowTime: now})

	tests := []struct {
		name    string
		in      usecase.ListOccurrencesInput
		wantIDs []int
	}{
		{name: "no filter", in: usecase.ListOccurrencesInput{}, wantIDs: []int{1, 2}},
		{name: "by tag", in: usecase.ListOccurrencesInput{Tag: "cardio"}, wantIDs: []int{1}},
		{name: "by priority", in: usecase.ListOccurrencesInput{Priority: domain.PriorityLow}, wantIDs: []int{2}},
		{name: "by quadrant", in: usecase.ListOccurrencesInput{Quadrant: domain.QuadrantNotUrgentImportant}, wantIDs: []int{1}},
		{name: "by state no match", in: usecase.ListOccurrencesInput{State: domain.StateCompleted}, wantIDs: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := uc.Execute(context.Background(), tt.in)
			require.NoError(t, err)
			ids := make([]int, 0, len(out.Items))
			for _, item := range out.Items {
				ids = append(ids, item.Task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListOccurrences_EnhancementMetadataWins(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Plan week", Date: domain.DateKey("2024-05-16")}
	enh := domain.NewEnhancement()
	enh.Tags = []string{"planning"}
	enh.Quadrant = domain.QuadrantUrgentImportant
	repo.Enhancements[1] = enh
	uc := usecase.NewListOccurrences(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.ListOccurrencesInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, []string{"planning"}, out.Items[0].Tags)
	assert.Equal(t, domain.QuadrantUrgentImportant, out.Items[0].Quadrant)
}
