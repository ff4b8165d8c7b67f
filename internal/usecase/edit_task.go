package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// EditTaskInput contains the fields to update. Nil pointers leave the
// corresponding field unchanged.
type EditTaskInput struct {
	Title       *string
	Description *string
	Category    *string
	Date        *domain.DateKey
	DueAt       **time.Time // Set to a pointer-to-nil to clear the due timestamp
	Priority    *domain.Priority
	Quadrant    *domain.Quadrant
	Tags        *[]string
	Repeat      *string // Legacy rule string; normalized before storage
	TaskID      int
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task
}

// EditTask is the use case for updating task fields and the stored
// repeat rule.
type EditTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, clock domain.Clock) *EditTask {
	return &EditTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute applies the requested updates.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrEmptyTitle
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.Date != nil {
		task.Date = *in.Date
	}
	if in.DueAt != nil {
		task.DueAt = *in.DueAt
	}
	if in.Priority != nil {
		if !in.Priority.IsValid() {
			return nil, domain.ErrInvalidPriority
		}
		task.Priority = *in.Priority
	}
	if in.Quadrant != nil {
		if !in.Quadrant.IsValid() {
			return nil, domain.ErrInvalidQuadrant
		}
		task.Quadrant = *in.Quadrant
	}
	if in.Tags != nil {
		task.Tags = domain.NormalizeTags(*in.Tags)
	}

	task.Updated = uc.clock.Now()
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if in.Repeat != nil {
		enh, err := uc.tasks.GetEnhancement(in.TaskID)
		if err != nil {
			return nil, fmt.Errorf("get enhancement: %w", err)
		}
		enh.Repeat = domain.ParseRepeat(*in.Repeat).String()
		if err := uc.tasks.SaveEnhancement(in.TaskID, enh); err != nil {
			return nil, fmt.Errorf("save enhancement: %w", err)
		}
	}

	return &EditTaskOutput{Task: task}, nil
}
