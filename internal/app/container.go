// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/infra/config"
	"github.com/fittrack/fittrack/internal/infra/jsonstore"
	"github.com/fittrack/fittrack/internal/infra/logging"
	"github.com/fittrack/fittrack/internal/infra/seed"
	"github.com/fittrack/fittrack/internal/usecase"
)

// Paths holds the application file locations.
type Paths struct {
	Dir       string // Root fittrack directory (e.g. ~/.fittrack)
	StorePath string // Path to store.json
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Meals            domain.MealRepository
	Workouts         domain.WorkoutRepository
	Projects         domain.ProjectRepository
	Profile          domain.ProfileRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock

	// Pointer fields
	Config *config.Config
	Logger *logging.Logger

	// Configuration
	Paths Paths
}

// New creates a new Container rooted at the user's fittrack directory.
// FITTRACK_DIR overrides the default ~/.fittrack for testing.
func New() (*Container, error) {
	dir := os.Getenv("FITTRACK_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".fittrack")
	}

	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath = filepath.Join(dir, "store.json")
	}

	store := jsonstore.New(storePath)
	logger := logging.New(dir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:            store,
		Meals:            store,
		Workouts:         store,
		Projects:         store,
		Profile:          store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		Config:           cfg,
		Logger:           logger,
		Paths:            Paths{Dir: dir, StorePath: storePath},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(paths Paths, store *jsonstore.Store, clock domain.Clock) *Container {
	return &Container{
		Tasks:            store,
		Meals:            store,
		Workouts:         store,
		Projects:         store,
		Profile:          store,
		StoreInitializer: store,
		Clock:            clock,
		Config:           config.NewDefaultConfig(),
		Logger:           logging.New("", 0),
		Paths:            paths,
	}
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Projects, c.Clock)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Clock)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Clock)
}

// ToggleOccurrenceUseCase returns a new ToggleOccurrence use case.
func (c *Container) ToggleOccurrenceUseCase() *usecase.ToggleOccurrence {
	return usecase.NewToggleOccurrence(c.Tasks, c.Clock)
}

// ListOccurrencesUseCase returns a new ListOccurrences use case.
func (c *Container) ListOccurrencesUseCase() *usecase.ListOccurrences {
	return usecase.NewListOccurrences(c.Tasks, c.Clock)
}

// MatrixBoardUseCase returns a new MatrixBoard use case.
func (c *Container) MatrixBoardUseCase() *usecase.MatrixBoard {
	return usecase.NewMatrixBoard(c.Tasks, c.Clock)
}

// TagBoardUseCase returns a new TagBoard use case.
func (c *Container) TagBoardUseCase() *usecase.TagBoard {
	return usecase.NewTagBoard(c.Tasks, c.Clock)
}

// CalendarMonthUseCase returns a new CalendarMonth use case.
func (c *Container) CalendarMonthUseCase() *usecase.CalendarMonth {
	return usecase.NewCalendarMonth(c.Tasks, c.Clock)
}

// AddSubtaskUseCase returns a new AddSubtask use case.
func (c *Container) AddSubtaskUseCase() *usecase.AddSubtask {
	return usecase.NewAddSubtask(c.Tasks)
}

// ToggleSubtaskUseCase returns a new ToggleSubtask use case.
func (c *Container) ToggleSubtaskUseCase() *usecase.ToggleSubtask {
	return usecase.NewToggleSubtask(c.Tasks)
}

// RemoveSubtaskUseCase returns a new RemoveSubtask use case.
func (c *Container) RemoveSubtaskUseCase() *usecase.RemoveSubtask {
	return usecase.NewRemoveSubtask(c.Tasks)
}

// LogMealUseCase returns a new LogMeal use case.
func (c *Container) LogMealUseCase() *usecase.LogMeal {
	return usecase.NewLogMeal(c.Meals, c.Clock)
}

// ListMealsUseCase returns a new ListMeals use case.
func (c *Container) ListMealsUseCase() *usecase.ListMeals {
	return usecase.NewListMeals(c.Meals, c.Clock)
}

// DeleteMealUseCase returns a new DeleteMeal use case.
func (c *Container) DeleteMealUseCase() *usecase.DeleteMeal {
	return usecase.NewDeleteMeal(c.Meals)
}

// LogWorkoutUseCase returns a new LogWorkout use case.
func (c *Container) LogWorkoutUseCase() *usecase.LogWorkout {
	return usecase.NewLogWorkout(c.Workouts, c.Clock)
}

// ListWorkoutsUseCase returns a new ListWorkouts use case.
func (c *Container) ListWorkoutsUseCase() *usecase.ListWorkouts {
	return usecase.NewListWorkouts(c.Workouts, c.Clock)
}

// DeleteWorkoutUseCase returns a new DeleteWorkout use case.
func (c *Container) DeleteWorkoutUseCase() *usecase.DeleteWorkout {
	return usecase.NewDeleteWorkout(c.Workouts)
}

// AddProjectUseCase returns a new AddProject use case.
func (c *Container) AddProjectUseCase() *usecase.AddProject {
	return usecase.NewAddProject(c.Projects, c.Clock)
}

// ListProjectsUseCase returns a new ListProjects use case.
func (c *Container) ListProjectsUseCase() *usecase.ListProjects {
	return usecase.NewListProjects(c.Projects)
}

// DeleteProjectUseCase returns a new DeleteProject use case.
func (c *Container) DeleteProjectUseCase() *usecase.DeleteProject {
	return usecase.NewDeleteProject(c.Projects)
}

// LogProjectTimeUseCase returns a new LogProjectTime use case.
func (c *Container) LogProjectTimeUseCase() *usecase.LogProjectTime {
	return usecase.NewLogProjectTime(c.Projects, c.Tasks, c.Clock)
}

// DailySummaryUseCase returns a new DailySummary use case.
func (c *Container) DailySummaryUseCase() *usecase.DailySummary {
	return usecase.NewDailySummary(c.Tasks, c.Meals, c.Workouts, c.Clock)
}

// WeeklyStatsUseCase returns a new WeeklyStats use case.
func (c *Container) WeeklyStatsUseCase() *usecase.WeeklyStats {
	return usecase.NewWeeklyStats(c.Tasks, c.Meals, c.Workouts, c.Clock)
}

// Seeder returns the demo data seeder.
func (c *Container) Seeder() *seed.Seeder {
	return seed.New(c.Tasks, c.Meals, c.Workouts, c.Projects, c.Profile, c.Clock)
}
