package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/google/uuid"
)

// AddSubtaskInput contains the parameters for adding a subtask.
type AddSubtaskInput struct {
	TaskID int
	Title  string
}

// AddSubtaskOutput contains the created subtask.
type AddSubtaskOutput struct {
	Subtask domain.Subtask
}

// AddSubtask appends a checklist entry to a task's enhancement.
type AddSubtask struct {
	tasks domain.TaskRepository
}

// NewAddSubtask creates a new AddSubtask use case.
func NewAddSubtask(tasks domain.TaskRepository) *AddSubtask {
	return &AddSubtask{tasks: tasks}
}

// Execute adds the subtask.
func (uc *AddSubtask) Execute(_ context.Context, in AddSubtaskInput) (*AddSubtaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	enh, err := uc.requireEnhancement(in.TaskID)
	if err != nil {
		return nil, err
	}

	sub := domain.Subtask{ID: uuid.NewString(), Title: in.Title}
	enh.Subtasks = append(enh.Subtasks, sub)
	if err := uc.tasks.SaveEnhancement(in.TaskID, enh); err != nil {
		return nil, fmt.Errorf("save enhancement: %w", err)
	}
	return &AddSubtaskOutput{Subtask: sub}, nil
}

func (uc *AddSubtask) requireEnhancement(taskID int) (*domain.Enhancement, error) {
	return requireEnhancement(uc.tasks, taskID)
}

// ToggleSubtaskInput contains the parameters for toggling a subtask.
type ToggleSubtaskInput struct {
	TaskID    int
	SubtaskID string
}

// ToggleSubtaskOutput contains the new completion state.
type ToggleSubtaskOutput struct {
	Completed bool
}

// ToggleSubtask flips the completion of one checklist entry.
type ToggleSubtask struct {
	tasks domain.TaskRepository
}

// NewToggleSubtask creates a new ToggleSubtask use case.
func NewToggleSubtask(tasks domain.TaskRepository) *ToggleSubtask {
	return &ToggleSubtask{tasks: tasks}
}

// Execute toggles the subtask.
func (uc *ToggleSubtask) Execute(_ context.Context, in ToggleSubtaskInput) (*ToggleSubtaskOutput, error) {
	enh, err := requireEnhancement(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	for i := range enh.Subtasks {
		if enh.Subtasks[i].ID != in.SubtaskID {
			continue
		}
		enh.Subtasks[i].Completed = !enh.Subtasks[i].Completed
		if err := uc.tasks.SaveEnhancement(in.TaskID, enh); err != nil {
			return nil, fmt.Errorf("save enhancement: %w", err)
		}
		return &ToggleSubtaskOutput{Completed: enh.Subtasks[i].Completed}, nil
	}
	return nil, domain.ErrSubtaskNotFound
}

// RemoveSubtaskInput contains the parameters for removing a subtask.
type RemoveSubtaskInput struct {
	TaskID    int
	SubtaskID string
}

// RemoveSubtaskOutput contains the result of removing a subtask.
type RemoveSubtaskOutput struct{}

// RemoveSubtask deletes one checklist entry.
type RemoveSubtask struct {
	tasks domain.TaskRepository
}

// NewRemoveSubtask creates a new RemoveSubtask use case.
func NewRemoveSubtask(tasks domain.TaskRepository) *RemoveSubtask {
	return &RemoveSubtask{tasks: tasks}
}

// Execute removes the subtask.
func (uc *RemoveSubtask) Execute(_ context.Context, in RemoveSubtaskInput) (*RemoveSubtaskOutput, error) {
	enh, err := requireEnhancement(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	for i := range enh.Subtasks {
		if enh.Subtasks[i].ID != in.SubtaskID {
			continue
		}
		enh.Subtasks = append(enh.Subtasks[:i], enh.Subtasks[i+1:]...)
		if err := uc.tasks.SaveEnhancement(in.TaskID, enh); err != nil {
			return nil, fmt.Errorf("save enhancement: %w", err)
		}
		return &RemoveSubtaskOutput{}, nil
	}
	return nil, domain.ErrSubtaskNotFound
}

// requireEnhancement loads the enhancement for an existing task,
// returning ErrTaskNotFound for unknown IDs.
func requireEnhancement(tasks domain.TaskRepository, taskID int) (*domain.Enhancement, error) {
	task, err := tasks.GetTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	enh, err := tasks.GetEnhancement(taskID)
	if err != nil {
		return nil, fmt.Errorf("get enhancement: %w", err)
	}
	return enh, nil
}
