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

func TestMatrixBoard(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	tomorrow := domain.DateKey("2024-05-16")
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Pay rent", Date: tomorrow, Quadrant: domain.QuadrantUrgentImportant}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Plan trip", Date: tomorrow, Quadrant: domain.QuadrantNotUrgentImportant}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "Loose end", Date: tomorrow}
	done := now.Add(-time.Hour)
	repo.Tasks[4] = &domain.Task{
		ID: 4, Title: "Done thing", Date: tomorrow,
		Quadrant: domain.QuadrantUrgentImportant, Completed: true, CompletedAt: &done,
	}
	uc := usecase.NewMatrixBoard(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.MatrixBoardInput{})
	require.NoError(t, err)
	require.Len(t, out.Cells, 4)

	assert.Equal(t, domain.QuadrantUrgentImportant, out.Cells[0].Quadrant)
	require.Len(t, out.Cells[0].Items, 1) // Completed task hidden by default
	assert.Equal(t, 1, out.Cells[0].Items[0].Task.ID)
	assert.Len(t, out.Cells[1].Items, 1)
	assert.Empty(t, out.Cells[2].Items)
	assert.Empty(t, out.Cells[3].Items)
	require.Len(t, out.Unassigned, 1)
	assert.Equal(t, 3, out.Unassigned[0].Task.ID)

	out, err = uc.Execute(context.Background(), usecase.MatrixBoardInput{IncludeCompleted: true})
	require.NoError(t, err)
	assert.Len(t, out.Cells[0].Items, 2)
}

func TestTagBoard(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	tomorrow := domain.DateKey("2024-05-16")
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Run", Date: tomorrow, Tags: []string{"cardio", "morning"}}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Bike", Date: tomorrow, Tags: []string{"cardio"}}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "Dishes", Date: tomorrow}
	uc := usecase.NewTagBoard(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.TagBoardInput{})
	require.NoError(t, err)
	require.Len(t, out.Groups, 3)

	// Alphabetical, untagged last. A task appears once per tag.
	assert.Equal(t, "cardio", out.Groups[0].Tag)
	assert.Len(t, out.Groups[0].Items, 2)
	assert.Equal(t, "morning", out.Groups[1].Tag)
	assert.Len(t, out.Groups[1].Items, 1)
	assert.Equal(t, usecase.UntaggedGroup, out.Groups[2].Tag)
	assert.Len(t, out.Groups[2].Items, 1)
}
