package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository manages task and enhancement persistence.
// The enhancement is keyed by task ID and lazily materialized: GetEnhancement
// returns a default record when none has been stored yet.
type TaskRepository interface {
	// GetTask retrieves a task by ID. Returns nil if not found.
	GetTask(id int) (*Task, error)

	// ListTasks retrieves all tasks ordered by ID.
	ListTasks() ([]*Task, error)

	// SaveTask creates or updates a task.
	SaveTask(task *Task) error

	// DeleteTask removes a task and its enhancement.
	DeleteTask(id int) error

	// NextTaskID returns the next available task ID.
	NextTaskID() (int, error)

	// GetEnhancement retrieves the enhancement for a task, creating a
	// default in-memory record on first access. Never returns nil on success.
	GetEnhancement(taskID int) (*Enhancement, error)

	// SaveEnhancement persists the enhancement for a task.
	SaveEnhancement(taskID int, enh *Enhancement) error
}

// MealRepository manages nutrition entry persistence.
type MealRepository interface {
	ListMeals(date DateKey) ([]*Meal, error)
	SaveMeal(meal *Meal) error
	DeleteMeal(id int) error
	NextMealID() (int, error)
}

// WorkoutRepository manages workout persistence.
type WorkoutRepository interface {
	ListWorkouts(date DateKey) ([]*Workout, error)
	SaveWorkout(workout *Workout) error
	DeleteWorkout(id int) error
	NextWorkoutID() (int, error)
}

// ProjectRepository manages project persistence.
type ProjectRepository interface {
	GetProject(id int) (*Project, error)
	ListProjects() ([]*Project, error)
	SaveProject(project *Project) error
	DeleteProject(id int) error
	NextProjectID() (int, error)
}

// ProfileRepository manages the single local profile.
type ProfileRepository interface {
	// GetProfile returns the stored profile, or nil if none exists.
	GetProfile() (*Profile, error)
	SaveProfile(profile *Profile) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
