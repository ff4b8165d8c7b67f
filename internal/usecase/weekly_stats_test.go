package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/testutil"
	"github.com/fittrack/fittrack/internal/usecase"
)

func TestWeeklyStats(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 20, 0, 0, 0, time.Local)

	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Morning run", Date: domain.DateKey("2024-05-01")}
	enh := domain.NewEnhancement()
	enh.Repeat = "daily"
	enh.CompletedDates[domain.DateKey("2024-05-13")] = true
	enh.CompletedDates[domain.DateKey("2024-05-14")] = true
	tasks.Enhancements[1] = enh

	meals := testutil.NewMockMealRepository()
	meals.Meals[1] = &domain.Meal{ID: 1, Name: "Oatmeal", Type: domain.MealBreakfast, Date: domain.DateKey("2024-05-14"), Calories: 420}
	meals.Meals[2] = &domain.Meal{ID: 2, Name: "Salad", Type: domain.MealLunch, Date: domain.DateKey("2024-05-14"), Calories: 560}

	workouts := testutil.NewMockWorkoutRepository()
	workouts.Workouts[1] = &domain.Workout{ID: 1, Name: "Run", Date: domain.DateKey("2024-05-13"), Duration: 35, CaloriesBurned: 320}
	// Outside the trailing window.
	workouts.Workouts[2] = &domain.Workout{ID: 2, Name: "Old ride", Date: domain.DateKey("2024-05-01"), Duration: 90, CaloriesBurned: 700}

	uc := usecase.NewWeeklyStats(tasks, meals, workouts, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.WeeklyStatsInput{})
	require.NoError(t, err)
	require.Len(t, out.Days, 7)

	// Oldest first: 2024-05-09 .. 2024-05-15.
	assert.Equal(t, domain.DateKey("2024-05-09"), out.Days[0].Date)
	assert.Equal(t, domain.DateKey("2024-05-15"), out.Days[6].Date)

	byDate := make(map[domain.DateKey]usecase.DayStats)
	for _, d := range out.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, 1, byDate[domain.DateKey("2024-05-13")].TasksCompleted)
	assert.Equal(t, 1, byDate[domain.DateKey("2024-05-14")].TasksCompleted)
	assert.Equal(t, 0, byDate[domain.DateKey("2024-05-15")].TasksCompleted)
	assert.Equal(t, 980, byDate[domain.DateKey("2024-05-14")].CaloriesConsumed)
	assert.Equal(t, 35, byDate[domain.DateKey("2024-05-13")].WorkoutMinutes)
	assert.Equal(t, 320, byDate[domain.DateKey("2024-05-13")].CaloriesBurned)
	assert.Equal(t, 0, byDate[domain.DateKey("2024-05-09")].WorkoutMinutes)
}
