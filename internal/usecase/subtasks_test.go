package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/testutil"
	"github.com/fittrack/fittrack/internal/usecase"
)

func TestSubtaskLifecycle(t *testing.T) {
	t.Parallel()

	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Meal prep"}

	add := usecase.NewAddSubtask(repo)
	toggle := usecase.NewToggleSubtask(repo)
	remove := usecase.NewRemoveSubtask(repo)

	added, err := add.Execute(context.Background(), usecase.AddSubtaskInput{TaskID: 1, Title: "Buy groceries"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.Subtask.ID)
	assert.False(t, added.Subtask.Completed)

	toggled, err := toggle.Execute(context.Background(), usecase.ToggleSubtaskInput{TaskID: 1, SubtaskID: added.Subtask.ID})
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = toggle.Execute(context.Background(), usecase.ToggleSubtaskInput{TaskID: 1, SubtaskID: added.Subtask.ID})
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	_, err = remove.Execute(context.Background(), usecase.RemoveSubtaskInput{TaskID: 1, SubtaskID: added.Subtask.ID})
	require.NoError(t, err)
	assert.Empty(t, repo.Enhancements[1].Subtasks)
}

func TestSubtaskErrors(t *testing.T) {
	t.Parallel()

	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Meal prep"}

	_, err := usecase.NewAddSubtask(repo).Execute(context.Background(), usecase.AddSubtaskInput{TaskID: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = usecase.NewAddSubtask(repo).Execute(context.Background(), usecase.AddSubtaskInput{TaskID: 9, Title: "X"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = usecase.NewToggleSubtask(repo).Execute(context.Background(), usecase.ToggleSubtaskInput{TaskID: 1, SubtaskID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSubtaskNotFound)

	_, err = usecase.NewRemoveSubtask(repo).Execute(context.Background(), usecase.RemoveSubtaskInput{TaskID: 1, SubtaskID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSubtaskNotFound)
}
