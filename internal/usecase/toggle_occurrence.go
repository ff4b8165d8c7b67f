// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// ToggleOccurrenceInput contains the parameters for toggling completion
// of a task occurrence.
type ToggleOccurrenceInput struct {
	TaskID  int            // Task ID (required)
	DateKey domain.DateKey // Occurrence date; zero value = today. Ignored for non-repeating tasks.
}

// ToggleOccurrenceOutput contains the result of a toggle.
type ToggleOccurrenceOutput struct {
	DateKey   domain.DateKey // The occurrence date the toggle applied to
	Completed bool           // The new completion state
}

// ToggleOccurrence is the use case for flipping the completion state of
// one occurrence. For a non-repeating task completion lives on the task
// record; for a repeating task it lives in the enhancement's per-date
// maps. No other occurrence of the same task is affected.
type ToggleOccurrence struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewToggleOccurrence creates a new ToggleOccurrence use case.
func NewToggleOccurrence(tasks domain.TaskRepository, clock domain.Clock) *ToggleOccurrence {
	return &ToggleOccurrence{
		tasks: tasks,
		clock: clock,
	}
}

// Execute toggles the occurrence. An unknown task ID returns
// domain.ErrTaskNotFound rather than silently doing nothing.
func (uc *ToggleOccurrence) Execute(_ context.Context, in ToggleOccurrenceInput) (*ToggleOccurrenceOutput, error) {
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

	now := uc.clock.Now()
	key := in.DateKey
	if key.IsZero() {
		key = domain.NewDateKey(now)
	}

	rule := domain.EffectiveRule(task, enh)
	if !rule.IsRepeating() {
		task.Completed = !task.Completed
		if task.Completed {
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
		task.Updated = now
		if err := uc.tasks.SaveTask(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}
		return &ToggleOccurrenceOutput{DateKey: key, Completed: task.Completed}, nil
	}

	enh.EnsureMaps()
	completed := !enh.CompletedDates[key]
	enh.CompletedDates[key] = completed
	if completed {
		enh.CompletedAtDates[key] = &now
	} else {
		enh.CompletedAtDates[key] = nil
	}
	if err := uc.tasks.SaveEnhancement(in.TaskID, enh); err != nil {
		return nil, fmt.Errorf("save enhancement: %w", err)
	}
	return &ToggleOccurrenceOutput{DateKey: key, Completed: completed}, nil
}
