package jsonstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, store.Initialize())
	return store
}

func TestStore_NotInitialized(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "store.json"))

	_, err := store.ListTasks()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestStore_InitializeIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	id, err := store.NextTaskID()
	require.NoError(t, err)
	require.NoError(t, store.SaveTask(&domain.Task{ID: id, Title: "Survivor"}))

	// Re-initializing must not wipe existing data.
	require.NoError(t, store.Initialize())
	tasks, err := store.ListTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestStore_TaskRoundTrip(t *testing.T) {
	store := newTestStore(t)

	id, err := store.NextTaskID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	due := time.Date(2024, 5, 15, 7, 0, 0, 0, time.Local)
	task := &domain.Task{
		ID:       id,
		Title:    "Morning run",
		Date:     domain.DateKey("2024-05-15"),
		DueAt:    &due,
		Priority: domain.PriorityMedium,
		Tags:     []string{"cardio"},
	}
	require.NoError(t, store.SaveTask(task))

	got, err := store.GetTask(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Morning run", got.Title)
	assert.Equal(t, domain.DateKey("2024-05-15"), got.Date)
	require.NotNil(t, got.DueAt)
	assert.True(t, due.Equal(*got.DueAt))

	missing, err := store.GetTask(99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_IDCountersAreIndependent(t *testing.T) {
	store := newTestStore(t)

	taskID, err := store.NextTaskID()
	require.NoError(t, err)
	mealID, err := store.NextMealID()
	require.NoError(t, err)
	taskID2, err := store.NextTaskID()
	require.NoError(t, err)

	assert.Equal(t, 1, taskID)
	assert.Equal(t, 1, mealID)
	assert.Equal(t, 2, taskID2)
}

func TestStore_EnhancementLazyDefault(t *testing.T) {
	store := newTestStore(t)

	// No stored record: a fresh default comes back, and it is not
	// persisted by the read.
	enh, err := store.GetEnhancement(1)
	require.NoError(t, err)
	require.NotNil(t, enh)
	assert.NotNil(t, enh.CompletedDates)
	assert.NotNil(t, enh.CompletedAtDates)

	key := domain.DateKey("2024-05-15")
	enh.CompletedDates[key] = true
	require.NoError(t, store.SaveEnhancement(1, enh))

	got, err := store.GetEnhancement(1)
	require.NoError(t, err)
	assert.True(t, got.CompletedOn(key))
}

func TestStore_DeleteTaskPurgesEnhancement(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveTask(&domain.Task{ID: 1, Title: "Doomed"}))
	enh := domain.NewEnhancement()
	enh.Repeat = "daily"
	enh.CompletedDates[domain.DateKey("2024-05-15")] = true
	require.NoError(t, store.SaveEnhancement(1, enh))

	require.NoError(t, store.DeleteTask(1))

	task, err := store.GetTask(1)
	require.NoError(t, err)
	assert.Nil(t, task)

	// The enhancement must be gone too: a fresh default with no
	// completion history comes back.
	got, err := store.GetEnhancement(1)
	require.NoError(t, err)
	assert.Empty(t, got.CompletedDates)
	assert.Empty(t, got.Repeat)
}

func TestStore_MealsFilteredByDate(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveMeal(&domain.Meal{ID: 1, Name: "Oatmeal", Date: domain.DateKey("2024-05-15")}))
	require.NoError(t, store.SaveMeal(&domain.Meal{ID: 2, Name: "Salad", Date: domain.DateKey("2024-05-15")}))
	require.NoError(t, store.SaveMeal(&domain.Meal{ID: 3, Name: "Old", Date: domain.DateKey("2024-05-14")}))

	meals, err := store.ListMeals(domain.DateKey("2024-05-15"))
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Oatmeal", meals[0].Name)
	assert.Equal(t, "Salad", meals[1].Name)

	assert.ErrorIs(t, store.DeleteMeal(99), domain.ErrMealNotFound)
	require.NoError(t, store.DeleteMeal(1))
}

func TestStore_WorkoutRoundTrip(t *testing.T) {
	store := newTestStore(t)

	workout := &domain.Workout{
		ID:        1,
		Name:      "Upper body",
		Type:      "strength",
		Intensity: domain.IntensityHigh,
		Date:      domain.DateKey("2024-05-15"),
		Duration:  45,
		Exercises: []domain.Exercise{{Name: "Bench press", Sets: 4, Reps: 8, Weight: 60}},
	}
	require.NoError(t, store.SaveWorkout(workout))

	workouts, err := store.ListWorkouts(domain.DateKey("2024-05-15"))
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "Bench press", workouts[0].Exercises[0].Name)

	assert.ErrorIs(t, store.DeleteWorkout(99), domain.ErrWorkoutNotFound)
}

func TestStore_ProjectsAndProfile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveProject(&domain.Project{ID: 2, Name: "Second"}))
	require.NoError(t, store.SaveProject(&domain.Project{ID: 1, Name: "First"}))

	projects, err := store.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Name)
	assert.Equal(t, "Second", projects[1].Name)

	profile, err := store.GetProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, store.SaveProfile(&domain.Profile{DisplayName: "Local User", Email: "local@fittrack.app"}))
	profile, err = store.GetProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Local User", profile.DisplayName)
}
