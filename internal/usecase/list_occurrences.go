package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/fittrack/fittrack/internal/domain"
)

// OccurrenceItem pairs a task with its materialized occurrence and the
// resolved display metadata the views need.
type OccurrenceItem struct {
	Task       *domain.Task
	Occurrence domain.Occurrence
	Tags       []string
	Quadrant   domain.Quadrant
	Repeat     domain.RepeatRule
	Subtasks   []domain.Subtask
}

// ListOccurrencesInput contains filters for listing occurrences.
type ListOccurrencesInput struct {
	State    domain.LifecycleState // Filter by state (empty = all)
	Tag      string                // Filter by tag (empty = all)
	Quadrant domain.Quadrant       // Filter by quadrant (empty = all)
	Priority domain.Priority       // Filter by priority (empty = all)
}

// ListOccurrencesOutput contains the result of listing occurrences.
type ListOccurrencesOutput struct {
	Items []OccurrenceItem
}

// ListOccurrences is the use case behind the list, matrix and tag
// views: each task contributes exactly one occurrence, its next
// upcoming instance. "Now" is sampled once per execution so every task
// in a render pass is classified against the same instant.
type ListOccurrences struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewListOccurrences creates a new ListOccurrences use case.
func NewListOccurrences(tasks domain.TaskRepository, clock domain.Clock) *ListOccurrences {
	return &ListOccurrences{
		tasks: tasks,
		clock: clock,
	}
}

// Execute lists one occurrence per task, sorted by due instant then ID.
func (uc *ListOccurrences) Execute(_ context.Context, in ListOccurrencesInput) (*ListOccurrencesOutput, error) {
	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	items := make([]OccurrenceItem, 0, len(tasks))
	for _, task := range tasks {
		enh, err := uc.tasks.GetEnhancement(task.ID)
		if err != nil {
			return nil, fmt.Errorf("get enhancement for task %d: %w", task.ID, err)
		}

		item := OccurrenceItem{
			Task:       task,
			Occurrence: domain.MaterializeNext(task, enh, now),
			Tags:       domain.EffectiveTags(task, enh),
			Quadrant:   domain.EffectiveQuadrant(task, enh),
			Repeat:     domain.EffectiveRule(task, enh),
			Subtasks:   enh.Subtasks,
		}
		if !matchesFilter(item, in) {
			continue
		}
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b OccurrenceItem) int {
		if c := a.Occurrence.DueAt.Compare(b.Occurrence.DueAt); c != 0 {
			return c
		}
		return a.Task.ID - b.Task.ID
	})

	return &ListOccurrencesOutput{Items: items}, nil
}

func matchesFilter(item OccurrenceItem, in ListOccurrencesInput) bool {
	if in.State != "" && item.Occurrence.State != in.State {
		return false
	}
	if in.Priority != "" && item.Task.Priority != in.Priority {
		return false
	}
	if in.Quadrant != "" && item.Quadrant != in.Quadrant {
		return false
	}
	if in.Tag != "" && !slices.Contains(item.Tags, in.Tag) {
		return false
	}
	return true
}
