package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	DueAt       *time.Time      // Absolute due timestamp (optional)
	Title       string          // Task title (required)
	Description string          // Description (optional)
	Category    string          // Category (optional; daily/weekly/monthly doubles as a repeat hint)
	Repeat      string          // Legacy repeat rule string (optional)
	Date        domain.DateKey  // Fallback calendar date; zero = today
	Priority    domain.Priority // Empty = medium
	Quadrant    domain.Quadrant // Optional
	Tags        []string        // Optional, normalized on save
	ProjectID   int             // Linked project (0 = none)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	TaskID int // The ID of the created task
}

// AddTask is the use case for creating a task and its default
// enhancement record.
type AddTask struct {
	tasks    domain.TaskRepository
	projects domain.ProjectRepository
	clock    domain.Clock
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, projects domain.ProjectRepository, clock domain.Clock) *AddTask {
	return &AddTask{
		tasks:    tasks,
		projects: projects,
		clock:    clock,
	}
}

// Execute creates a new task with the given input.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	if !in.Quadrant.IsValid() {
		return nil, domain.ErrInvalidQuadrant
	}

	if in.ProjectID != 0 && uc.projects != nil {
		project, err := uc.projects.GetProject(in.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("get project: %w", err)
		}
		if project == nil {
			return nil, domain.ErrProjectNotFound
		}
	}

	now := uc.clock.Now()
	date := in.Date
	if date.IsZero() && in.DueAt == nil {
		date = domain.NewDateKey(now)
	}

	id, err := uc.tasks.NextTaskID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Date:        date,
		DueAt:       in.DueAt,
		Priority:    priority,
		Quadrant:    in.Quadrant,
		Tags:        domain.NormalizeTags(in.Tags),
		ProjectID:   in.ProjectID,
		Created:     now,
		Updated:     now,
	}
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	// Persist the repeat rule on the enhancement. Round-trip through
	// the decomposed form so malformed input degrades to none here,
	// not at every later read.
	if in.Repeat != "" {
		enh, err := uc.tasks.GetEnhancement(id)
		if err != nil {
			return nil, fmt.Errorf("get enhancement: %w", err)
		}
		enh.Repeat = domain.ParseRepeat(in.Repeat).String()
		if err := uc.tasks.SaveEnhancement(id, enh); err != nil {
			return nil, fmt.Errorf("save enhancement: %w", err)
		}
	}

	return &AddTaskOutput{TaskID: id}, nil
}
