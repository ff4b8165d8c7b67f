package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// weeklyStatsDays is the trailing window of the weekly chart.
const weeklyStatsDays = 7

// WeeklyStatsInput contains the parameters for the weekly chart data.
type WeeklyStatsInput struct{}

// DayStats holds one day of the trailing week.
type DayStats struct {
	Date             domain.DateKey `json:"date"`
	TasksCompleted   int            `json:"tasksCompleted"`
	WorkoutMinutes   int            `json:"workoutMinutes"`
	CaloriesConsumed int            `json:"caloriesConsumed"`
	CaloriesBurned   int            `json:"caloriesBurned"`
}

// WeeklyStatsOutput contains the trailing seven days, oldest first.
type WeeklyStatsOutput struct {
	Days []DayStats
}

// WeeklyStats aggregates the trailing week for the stats view.
type WeeklyStats struct {
	tasks    domain.TaskRepository
	meals    domain.MealRepository
	workouts domain.WorkoutRepository
	clock    domain.Clock
}

// NewWeeklyStats creates a new WeeklyStats use case.
func NewWeeklyStats(tasks domain.TaskRepository, meals domain.MealRepository, workouts domain.WorkoutRepository, clock domain.Clock) *WeeklyStats {
	return &WeeklyStats{
		tasks:    tasks,
		meals:    meals,
		workouts: workouts,
		clock:    clock,
	}
}

// Execute builds the trailing-week aggregates.
func (uc *WeeklyStats) Execute(_ context.Context, _ WeeklyStatsInput) (*WeeklyStatsOutput, error) {
	now := uc.clock.Now()
	today := domain.NewDateKey(now)

	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	type taskWithEnh struct {
		task *domain.Task
		enh  *domain.Enhancement
	}
	pairs := make([]taskWithEnh, 0, len(tasks))
	for _, task := range tasks {
		enh, err := uc.tasks.GetEnhancement(task.ID)
		if err != nil {
			return nil, fmt.Errorf("get enhancement for task %d: %w", task.ID, err)
		}
		pairs = append(pairs, taskWithEnh{task: task, enh: enh})
	}

	days := make([]DayStats, 0, weeklyStatsDays)
	for offset := weeklyStatsDays - 1; offset >= 0; offset-- {
		date := today.AddDays(-offset)
		stats := DayStats{Date: date}

		for _, p := range pairs {
			occ, ok := domain.MaterializeOn(p.task, p.enh, date, now)
			if ok && occ.Completed {
				stats.TasksCompleted++
			}
		}

		meals, err := uc.meals.ListMeals(date)
		if err != nil {
			return nil, fmt.Errorf("list meals for %s: %w", date, err)
		}
		stats.CaloriesConsumed = domain.SumNutrition(meals).Calories

		workouts, err := uc.workouts.ListWorkouts(date)
		if err != nil {
			return nil, fmt.Errorf("list workouts for %s: %w", date, err)
		}
		totals := domain.SumWorkouts(workouts)
		stats.WorkoutMinutes = totals.Duration
		stats.CaloriesBurned = totals.CaloriesBurned

		days = append(days, stats)
	}

	return &WeeklyStatsOutput{Days: days}, nil
}
