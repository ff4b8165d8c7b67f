// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sort"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks        map[int]*domain.Task
	Enhancements map[int]*domain.Enhancement
	SaveErr      error
	GetErr       error
	NextIDN      int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:        make(map[int]*domain.Task),
		Enhancements: make(map[int]*domain.Enhancement),
		NextIDN:      1,
	}
}

// GetTask retrieves a task by ID.
func (m *MockTaskRepository) GetTask(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// ListTasks returns all tasks ordered by ID.
func (m *MockTaskRepository) ListTasks() ([]*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// SaveTask stores a task.
func (m *MockTaskRepository) SaveTask(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	return nil
}

// DeleteTask removes a task and its enhancement.
func (m *MockTaskRepository) DeleteTask(id int) error {
	delete(m.Tasks, id)
	delete(m.Enhancements, id)
	return nil
}

// NextTaskID returns sequential IDs starting from NextIDN.
func (m *MockTaskRepository) NextTaskID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// GetEnhancement returns the stored enhancement or a fresh default.
func (m *MockTaskRepository) GetEnhancement(taskID int) (*domain.Enhancement, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if enh, ok := m.Enhancements[taskID]; ok {
		enh.EnsureMaps()
		return enh, nil
	}
	return domain.NewEnhancement(), nil
}

// SaveEnhancement stores an enhancement.
func (m *MockTaskRepository) SaveEnhancement(taskID int, enh *domain.Enhancement) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Enhancements[taskID] = enh
	return nil
}

// MockMealRepository is a test double for domain.MealRepository.
type MockMealRepository struct {
	Meals   map[int]*domain.Meal
	SaveErr error
	NextIDN int
}

// NewMockMealRepository creates a new MockMealRepository.
func NewMockMealRepository() *MockMealRepository {
	return &MockMealRepository{
		Meals:   make(map[int]*domain.Meal),
		NextIDN: 1,
	}
}

// ListMeals returns the meals logged for a date, ordered by ID.
func (m *MockMealRepository) ListMeals(date domain.DateKey) ([]*domain.Meal, error) {
	meals := make([]*domain.Meal, 0)
	for _, meal := range m.Meals {
		if meal.Date == date {
			meals = append(meals, meal)
		}
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].ID < meals[j].ID })
	return meals, nil
}

// SaveMeal stores a meal.
func (m *MockMealRepository) SaveMeal(meal *domain.Meal) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Meals[meal.ID] = meal
	return nil
}

// DeleteMeal removes a meal, erroring when the ID is unknown.
func (m *MockMealRepository) DeleteMeal(id int) error {
	if _, ok := m.Meals[id]; !ok {
		return domain.ErrMealNotFound
	}
	delete(m.Meals, id)
	return nil
}

// NextMealID returns sequential IDs starting from NextIDN.
func (m *MockMealRepository) NextMealID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockWorkoutRepository is a test double for domain.WorkoutRepository.
type MockWorkoutRepository struct {
	Workouts map[int]*domain.Workout
	SaveErr  error
	NextIDN  int
}

// NewMockWorkoutRepository creates a new MockWorkoutRepository.
func NewMockWorkoutRepository() *MockWorkoutRepository {
	return &MockWorkoutRepository{
		Workouts: make(map[int]*domain.Workout),
		NextIDN:  1,
	}
}

// ListWorkouts returns the workouts logged for a date, ordered by ID.
func (m *MockWorkoutRepository) ListWorkouts(date domain.DateKey) ([]*domain.Workout, error) {
	workouts := make([]*domain.Workout, 0)
	for _, w := range m.Workouts {
		if w.Date == date {
			workouts = append(workouts, w)
		}
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].ID < workouts[j].ID })
	return workouts, nil
}

// SaveWorkout stores a workout.
func (m *MockWorkoutRepository) SaveWorkout(workout *domain.Workout) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Workouts[workout.ID] = workout
	return nil
}

// DeleteWorkout removes a workout, erroring when the ID is unknown.
func (m *MockWorkoutRepository) DeleteWorkout(id int) error {
	if _, ok := m.Workouts[id]; !ok {
		return domain.ErrWorkoutNotFound
	}
	delete(m.Workouts, id)
	return nil
}

// NextWorkoutID returns sequential IDs starting from NextIDN.
func (m *MockWorkoutRepository) NextWorkoutID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockProjectRepository is a test double for domain.ProjectRepository.
type MockProjectRepository struct {
	Projects map[int]*domain.Project
	SaveErr  error
	NextIDN  int
}

// NewMockProjectRepository creates a new MockProjectRepository.
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[int]*domain.Project),
		NextIDN:  1,
	}
}

// GetProject retrieves a project by ID.
func (m *MockProjectRepository) GetProject(id int) (*domain.Project, error) {
	project, ok := m.Projects[id]
	if !ok {
		return nil, nil
	}
	return project, nil
}

// ListProjects returns all projects ordered by ID.
func (m *MockProjectRepository) ListProjects() ([]*domain.Project, error) {
	projects := make([]*domain.Project, 0, len(m.Projects))
	for _, p := range m.Projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

// SaveProject stores a project.
func (m *MockProjectRepository) SaveProject(project *domain.Project) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Projects[project.ID] = project
	return nil
}

// DeleteProject removes a project, erroring when the ID is unknown.
func (m *MockProjectRepository) DeleteProject(id int) error {
	if _, ok := m.Projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(m.Projects, id)
	return nil
}

// NextProjectID returns sequential IDs starting from NextIDN.
func (m *MockProjectRepository) NextProjectID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockProfileRepository is a test double for domain.ProfileRepository.
type MockProfileRepository struct {
	Stored *domain.Profile
}

// GetProfile returns the stored profile, or nil when none exists.
func (m *MockProfileRepository) GetProfile() (*domain.Profile, error) {
	return m.Stored, nil
}

// SaveProfile stores the profile.
func (m *MockProfileRepository) SaveProfile(profile *domain.Profile) error {
	m.Stored = profile
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Err    error
	Called bool
}

// Initialize records the call and returns the configured error.
func (m *MockStoreInitializer) Initialize() error {
	m.Called = true
	return m.Err
}

// Interface conformance checks.
var (
	_ domain.Clock             = (*MockClock)(nil)
	_ domain.TaskRepository    = (*MockTaskRepository)(nil)
	_ domain.MealRepository    = (*MockMealRepository)(nil)
	_ domain.WorkoutRepository = (*MockWorkoutRepository)(nil)
	_ domain.ProjectRepository = (*MockProjectRepository)(nil)
	_ domain.ProfileRepository = (*MockProfileRepository)(nil)
	_ domain.StoreInitializer  = (*MockStoreInitializer)(nil)
)
