// Package jsonstore provides a JSON file-based implementation of the
// fittrack repositories. The single store file is the local-storage
// analog: everything the dashboard knows lives in it.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"

	"github.com/fittrack/fittrack/internal/domain"
)

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Tasks        map[string]*domain.Task        `json:"tasks"`
	Enhancements map[string]*domain.Enhancement `json:"enhancements"`
	Meals        map[string]*domain.Meal        `json:"meals"`
	Workouts     map[string]*domain.Workout     `json:"workouts"`
	Projects     map[string]*domain.Project     `json:"projects"`
	Profile      *domain.Profile                `json:"profile,omitempty"`
	Meta         meta                           `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID    int `json:"nextTaskID"`
	NextMealID    int `json:"nextMealID"`
	NextWorkoutID int `json:"nextWorkoutID"`
	NextProjectID int `json:"nextProjectID"`
}

// Store implements the domain repositories using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created by Initialize.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(emptyData())
}

func emptyData() *storeData {
	return &storeData{
		Tasks:        make(map[string]*domain.Task),
		Enhancements: make(map[string]*domain.Enhancement),
		Meals:        make(map[string]*domain.Meal),
		Workouts:     make(map[string]*domain.Workout),
		Projects:     make(map[string]*domain.Project),
		Meta: meta{
			NextTaskID:    1,
			NextMealID:    1,
			NextWorkoutID: 1,
			NextProjectID: 1,
		},
	}
}

// === TaskRepository ===

// GetTask retrieves a task by ID. Returns nil if not found.
func (s *Store) GetTask(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		if t, ok := data.Tasks[strconv.Itoa(id)]; ok {
			task = t
			task.ID = id
		}
		return nil
	})
	return task, err
}

// ListTasks retrieves all tasks ordered by ID.
func (s *Store) ListTasks() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for key, t := range data.Tasks {
			id, _ := strconv.Atoi(key)
			t.ID = id
			tasks = append(tasks, t)
		}
		return nil
	})

	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})
	return tasks, err
}

// SaveTask creates or updates a task.
func (s *Store) SaveTask(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Tasks[strconv.Itoa(task.ID)] = task
		return nil
	})
}

// DeleteTask removes a task and purges its enhancement, so no orphaned
// per-date completion data survives.
func (s *Store) DeleteTask(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(id)
		delete(data.Tasks, key)
		delete(data.Enhancements, key)
		return nil
	})
}

// NextTaskID returns the next available task ID.
func (s *Store) NextTaskID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

// GetEnhancement retrieves the enhancement for a task, lazily
// materializing a default record when none has been stored yet. The
// default is not persisted until the first SaveEnhancement.
func (s *Store) GetEnhancement(taskID int) (*domain.Enhancement, error) {
	var enh *domain.Enhancement
	err := s.withLock(func(data *storeData) error {
		if e, ok := data.Enhancements[strconv.Itoa(taskID)]; ok {
			e.EnsureMaps()
			enh = e
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if enh == nil {
		enh = domain.NewEnhancement()
	}
	return enh, nil
}

// SaveEnhancement persists the enhancement for a task.
func (s *Store) SaveEnhancement(taskID int, enh *domain.Enhancement) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Enhancements[strconv.Itoa(taskID)] = enh
		return nil
	})
}

// === MealRepository ===

// ListMeals retrieves the meals logged on a date, ordered by ID.
func (s *Store) ListMeals(date domain.DateKey) ([]*domain.Meal, error) {
	var meals []*domain.Meal
	err := s.withLock(func(data *storeData) error {
		for key, m := range data.Meals {
			if m.Date != date {
				continue
			}
			id, _ := strconv.Atoi(key)
			m.ID = id
			meals = append(meals, m)
		}
		return nil
	})

	slices.SortFunc(meals, func(a, b *domain.Meal) int {
		return a.ID - b.ID
	})
	return meals, err
}

// SaveMeal creates or updates a meal.
func (s *Store) SaveMeal(meal *domain.Meal) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Meals[strconv.Itoa(meal.ID)] = meal
		return nil
	})
}

// DeleteMeal removes a meal by ID.
func (s *Store) DeleteMeal(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(id)
		if _, ok := data.Meals[key]; !ok {
			return domain.ErrMealNotFound
		}
		delete(data.Meals, key)
		return nil
	})
}

// NextMealID returns the next available meal ID.
func (s *Store) NextMealID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextMealID
		data.Meta.NextMealID++
		return nil
	})
	return id, err
}

// === WorkoutRepository ===

// ListWorkouts retrieves the workouts logged on a date, ordered by ID.
func (s *Store) ListWorkouts(date domain.DateKey) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	err := s.withLock(func(data *storeData) error {
		for key, w := range data.Workouts {
			if w.Date != date {
				continue
			}
			id, _ := strconv.Atoi(key)
			w.ID = id
			workouts = append(workouts, w)
		}
		return nil
	})

	slices.SortFunc(workouts, func(a, b *domain.Workout) int {
		return a.ID - b.ID
	})
	return workouts, err
}

// SaveWorkout creates or updates a workout.
func (s *Store) SaveWorkout(workout *domain.Workout) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Workouts[strconv.Itoa(workout.ID)] = workout
		return nil
	})
}

// DeleteWorkout removes a workout by ID.
func (s *Store) DeleteWorkout(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(id)
		if _, ok := data.Workouts[key]; !ok {
			return domain.ErrWorkoutNotFound
		}
		delete(data.Workouts, key)
		return nil
	})
}

// NextWorkoutID returns the next available workout ID.
func (s *Store) NextWorkoutID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextWorkoutID
		data.Meta.NextWorkoutID++
		return nil
	})
	return id, err
}

// === ProjectRepository ===

// GetProject retrieves a project by ID. Returns nil if not found.
func (s *Store) GetProject(id int) (*domain.Project, error) {
	var project *domain.Project
	err := s.withLock(func(data *storeData) error {
		if p, ok := data.Projects[strconv.Itoa(id)]; ok {
			project = p
			project.ID = id
		}
		return nil
	})
	return project, err
}

// ListProjects retrieves all projects ordered by ID.
func (s *Store) ListProjects() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := s.withLock(func(data *storeData) error {
		for key, p := range data.Projects {
			id, _ := strconv.Atoi(key)
			p.ID = id
			projects = append(projects, p)
		}
		return nil
	})

	slices.SortFunc(projects, func(a, b *domain.Project) int {
		return a.ID - b.ID
	})
	return projects, err
}

// SaveProject creates or updates a project.
func (s *Store) SaveProject(project *domain.Project) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Projects[strconv.Itoa(project.ID)] = project
		return nil
	})
}

// DeleteProject removes a project by ID.
func (s *Store) DeleteProject(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Projects, strconv.Itoa(id))
		return nil
	})
}

// NextProjectID returns the next available project ID.
func (s *Store) NextProjectID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextProjectID
		data.Meta.NextProjectID++
		return nil
	})
	return id, err
}

// === ProfileRepository ===

// GetProfile returns the stored profile, or nil if none exists.
func (s *Store) GetProfile() (*domain.Profile, error) {
	var profile *domain.Profile
	err := s.withLock(func(data *storeData) error {
		profile = data.Profile
		return nil
	})
	return profile, err
}

// SaveProfile stores the profile.
func (s *Store) SaveProfile(profile *domain.Profile) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Profile = profile
		return nil
	})
}

// === Locking and file I/O ===

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}
	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	// Ensure maps are initialized
	if data.Tasks == nil {
		data.Tasks = make(map[string]*domain.Task)
	}
	if data.Enhancements == nil {
		data.Enhancements = make(map[string]*domain.Enhancement)
	}
	if data.Meals == nil {
		data.Meals = make(map[string]*domain.Meal)
	}
	if data.Workouts == nil {
		data.Workouts = make(map[string]*domain.Workout)
	}
	if data.Projects == nil {
		data.Projects = make(map[string]*domain.Project)
	}
	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Interface conformance checks.
var (
	_ domain.TaskRepository    = (*Store)(nil)
	_ domain.MealRepository    = (*Store)(nil)
	_ domain.WorkoutRepository = (*Store)(nil)
	_ domain.ProjectRepository = (*Store)(nil)
	_ domain.ProfileRepository = (*Store)(nil)
	_ domain.StoreInitializer  = (*Store)(nil)
)
