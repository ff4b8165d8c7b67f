package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// ListWorkoutsInput contains the parameters for listing workouts.
type ListWorkoutsInput struct {
	Date domain.DateKey // Zero = today
}

// ListWorkoutsOutput contains the workouts of one day and their totals.
type ListWorkoutsOutput struct {
	Workouts []*domain.Workout
	Totals   domain.WorkoutTotals
}

// ListWorkouts is the use case for the workout day view.
type ListWorkouts struct {
	workouts domain.WorkoutRepository
	clock    domain.Clock
}

// NewListWorkouts creates a new ListWorkouts use case.
func NewListWorkouts(workouts domain.WorkoutRepository, clock domain.Clock) *ListWorkouts {
	return &ListWorkouts{
		workouts: workouts,
		clock:    clock,
	}
}

// Execute lists the workouts for the given day.
func (uc *ListWorkouts) Execute(_ context.Context, in ListWorkoutsInput) (*ListWorkoutsOutput, error) {
	date := in.Date
	if date.IsZero() {
		date = domain.NewDateKey(uc.clock.Now())
	}

	workouts, err := uc.workouts.ListWorkouts(date)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return &ListWorkoutsOutput{Workouts: workouts, Totals: domain.SumWorkouts(workouts)}, nil
}
