package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// AddProjectInput contains the parameters for creating a project.
type AddProjectInput struct {
	Name        string
	Description string
}

// AddProjectOutput contains the result of creating a project.
type AddProjectOutput struct {
	ProjectID int
}

// AddProject is the use case for creating a project.
type AddProject struct {
	projects domain.ProjectRepository
	clock    domain.Clock
}

// NewAddProject creates a new AddProject use case.
func NewAddProject(projects domain.ProjectRepository, clock domain.Clock) *AddProject {
	return &AddProject{
		projects: projects,
		clock:    clock,
	}
}

// Execute creates the project.
func (uc *AddProject) Execute(_ context.Context, in AddProjectInput) (*AddProjectOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	id, err := uc.projects.NextProjectID()
	if err != nil {
		return nil, fmt.Errorf("generate project ID: %w", err)
	}

	now := uc.clock.Now()
	project := &domain.Project{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Created:     now,
		Updated:     now,
	}
	if err := uc.projects.SaveProject(project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return &AddProjectOutput{ProjectID: id}, nil
}

// ListProjectsOutput contains all projects ordered by ID.
type ListProjectsOutput struct {
	Projects []*domain.Project
}

// ListProjects is the use case for listing projects.
type ListProjects struct {
	projects domain.ProjectRepository
}

// NewListProjects creates a new ListProjects use case.
func NewListProjects(projects domain.ProjectRepository) *ListProjects {
	return &ListProjects{projects: projects}
}

// Execute lists all projects.
func (uc *ListProjects) Execute(_ context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

// DeleteProjectInput contains the parameters for deleting a project.
type DeleteProjectInput struct {
	ProjectID int
}

// DeleteProjectOutput contains the result of deleting a project.
type DeleteProjectOutput struct{}

// DeleteProject is the use case for removing a project. Tasks linked to
// the project keep their ProjectID; the reference simply dangles to an
// unknown project, matching the original dashboard's behavior.
type DeleteProject struct {
	projects domain.ProjectRepository
}

// NewDeleteProject creates a new DeleteProject use case.
func NewDeleteProject(projects domain.ProjectRepository) *DeleteProject {
	return &DeleteProject{projects: projects}
}

// Execute deletes the project.
func (uc *DeleteProject) Execute(_ context.Context, in DeleteProjectInput) (*DeleteProjectOutput, error) {
	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	if err := uc.projects.DeleteProject(in.ProjectID); err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	return &DeleteProjectOutput{}, nil
}

// LogProjectTimeInput contains the parameters for logging time.
type LogProjectTimeInput struct {
	ProjectID int
	TaskID    int // Optional; also accumulates on the task when set
	Minutes   int
}

// LogProjectTimeOutput contains the new project total.
type LogProjectTimeOutput struct {
	TotalMinutes int
}

// LogProjectTime accumulates tracked minutes on a project and
// optionally on one of its tasks.
type LogProjectTime struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	clock    domain.Clock
}

// NewLogProjectTime creates a new LogProjectTime use case.
func NewLogProjectTime(projects domain.ProjectRepository, tasks domain.TaskRepository, clock domain.Clock) *LogProjectTime {
	return &LogProjectTime{
		projects: projects,
		tasks:    tasks,
		clock:    clock,
	}
}

// Execute logs the minutes.
func (uc *LogProjectTime) Execute(_ context.Context, in LogProjectTimeInput) (*LogProjectTimeOutput, error) {
	if in.Minutes <= 0 {
		return nil, fmt.Errorf("minutes must be positive, got %d", in.Minutes)
	}

	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	project.TimeSpent += in.Minutes
	project.Updated = uc.clock.Now()
	if err := uc.projects.SaveProject(project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	if in.TaskID != 0 {
		task, err := uc.tasks.GetTask(in.TaskID)
		if err != nil {
			return nil, fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return nil, domain.ErrTaskNotFound
		}
		task.TimeSpent += in.Minutes
		task.Updated = uc.clock.Now()
		if err := uc.tasks.SaveTask(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}
	}

	return &LogProjectTimeOutput{TotalMinutes: project.TimeSpent}, nil
}
