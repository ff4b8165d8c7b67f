package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int
}

// ShowTaskOutput contains the task, its enhancement and the
// materialized next occurrence.
type ShowTaskOutput struct {
	Task        *domain.Task
	Enhancement *domain.Enhancement
	Occurrence  domain.Occurrence
}

// ShowTask is the use case for displaying a single task in detail.
type ShowTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository, clock domain.Clock) *ShowTask {
	return &ShowTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute loads the task and materializes its next occurrence.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	enh, err := uc.tasks.GetEnhancement(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get enhancement: %w", err)
	}

	return &ShowTaskOutput{
		Task:        task,
		Enhancement: enh,
		Occurrence:  domain.MaterializeNext(task, enh, uc.clock.Now()),
	}, nil
}
