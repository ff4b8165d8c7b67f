package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// DailySummaryInput selects the day to summarize.
type DailySummaryInput struct {
	Date domain.DateKey // Zero = today
}

// DailySummaryOutput is the dashboard headline: task progress plus
// nutrition and workout totals for one day.
type DailySummaryOutput struct {
	Date           domain.DateKey
	Nutrition      domain.NutritionTotals
	Workouts       domain.WorkoutTotals
	TasksDue       int
	TasksCompleted int
	TasksOverdue   int
}

// DailySummary aggregates one day across tasks, meals and workouts.
// Task counts are occurrence-based: a daily task counts every day it
// occurs, exactly as the calendar view shows it.
type DailySummary struct {
	tasks    domain.TaskRepository
	meals    domain.MealRepository
	workouts domain.WorkoutRepository
	clock    domain.Clock
}

// NewDailySummary creates a new DailySummary use case.
func NewDailySummary(tasks domain.TaskRepository, meals domain.MealRepository, workouts domain.WorkoutRepository, clock domain.Clock) *DailySummary {
	return &DailySummary{
		tasks:    tasks,
		meals:    meals,
		workouts: workouts,
		clock:    clock,
	}
}

// Execute builds the summary for the given day.
func (uc *DailySummary) Execute(_ context.Context, in DailySummaryInput) (*DailySummaryOutput, error) {
	now := uc.clock.Now()
	date := in.Date
	if date.IsZero() {
		date = domain.NewDateKey(now)
	}

	out := &DailySummaryOutput{Date: date}

	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for _, task := range tasks {
		enh, err := uc.tasks.GetEnhancement(task.ID)
		if err != nil {
			return nil, fmt.Errorf("get enhancement for task %d: %w", task.ID, err)
		}
		occ, ok := domain.MaterializeOn(task, enh, date, now)
		if !ok {
			continue
		}
		out.TasksDue++
		switch occ.State {
		case domain.StateCompleted:
			out.TasksCompleted++
		case domain.StateOverdue:
			out.TasksOverdue++
		}
	}

	meals, err := uc.meals.ListMeals(date)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	out.Nutrition = domain.SumNutrition(meals)

	workouts, err := uc.workouts.ListWorkouts(date)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	out.Workouts = domain.SumWorkouts(workouts)

	return out, nil
}
