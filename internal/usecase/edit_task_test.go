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

func strPtr(s string) *string { return &s }

func TestEditTask_PartialUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{
		ID: 1, Title: "Old title", Description: "keep me",
		Priority: domain.PriorityLow, Date: domain.DateKey("2024-05-15"),
	}
	uc := usecase.NewEditTask(repo, &testutil.MockClock{NowTime: now})

	prio := domain.PriorityHigh
	out, err := uc.Execute(context.Background(), usecase.EditTaskInput{
		TaskID:   1,
		Title:    strPtr("New title"),
		Priority: &prio,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", out.Task.Title)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, "keep me", out.Task.Description)
	assert.Equal(t, now, out.Task.Updated)
}

func TestEditTask_ClearDueAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	due := time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Dentist", DueAt: &due}
	uc := usecase.NewEditTask(repo, &testutil.MockClock{NowTime: now})

	var cleared *time.Time
	_, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: 1, DueAt: &cleared})
	require.NoError(t, err)
	assert.Nil(t, repo.Tasks[1].DueAt)
}

func TestEditTask_RepeatNormalized(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Stretch"}
	uc := usecase.NewEditTask(repo, &testutil.MockClock{NowTime: now})

	_, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: 1, Repeat: strPtr("interval:04")})
	require.NoError(t, err)
	assert.Equal(t, "interval:4", repo.Enhancements[1].Repeat)
}

func TestEditTask_Errors(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Keep"}
	uc := usecase.NewEditTask(repo, &testutil.MockClock{NowTime: now})

	_, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: 9})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: 1, Title: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	bad := domain.Priority("urgent")
	_, err = uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: 1, Priority: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Gone soon"}
	repo.Enhancements[1] = domain.NewEnhancement()
	uc := usecase.NewDeleteTask(repo)

	_, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.Empty(t, repo.Tasks)
	assert.Empty(t, repo.Enhancements)

	_, err = uc.Execute(context.Background(), usecase.DeleteTaskInput{TaskID: 1})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestShowTask(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Morning run", Date: domain.DateKey("2024-05-01")}
	enh := domain.NewEnhancement()
	enh.Repeat = "daily"
	repo.Enhancements[1] = enh
	uc := usecase.NewShowTask(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.ShowTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Morning run", out.Task.Title)
	require.NotNil(t, out.Enhancement)
	assert.Equal(t, domain.DateKey("2024-05-15"), out.Occurrence.DateKey)

	_, err = uc.Execute(context.Background(), usecase.ShowTaskInput{TaskID: 9})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
