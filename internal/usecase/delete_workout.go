package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// DeleteWorkoutInput contains the parameters for deleting a workout.
type DeleteWorkoutInput struct {
	WorkoutID int
}

// DeleteWorkoutOutput contains the result of deleting a workout.
type DeleteWorkoutOutput struct{}

// DeleteWorkout is the use case for removing a training session.
type DeleteWorkout struct {
	workouts domain.WorkoutRepository
}

// NewDeleteWorkout creates a new DeleteWorkout use case.
func NewDeleteWorkout(workouts domain.WorkoutRepository) *DeleteWorkout {
	return &DeleteWorkout{workouts: workouts}
}

// Execute deletes the workout.
func (uc *DeleteWorkout) Execute(_ context.Context, in DeleteWorkoutInput) (*DeleteWorkoutOutput, error) {
	if err := uc.workouts.DeleteWorkout(in.WorkoutID); err != nil {
		return nil, fmt.Errorf("delete workout: %w", err)
	}
	return &DeleteWorkoutOutput{}, nil
}
