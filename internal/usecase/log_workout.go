package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// LogWorkoutInput contains the parameters for logging a workout.
// Fields are ordered to minimize memory padding.
type LogWorkoutInput struct {
	Name           string
	Type           string
	Notes          string
	Time           string // HH:MM, display only
	Date           domain.DateKey
	Intensity      domain.Intensity // Empty = medium
	Exercises      []domain.Exercise
	Duration       int // minutes
	CaloriesBurned int
}

// LogWorkoutOutput contains the result of logging a workout.
type LogWorkoutOutput struct {
	WorkoutID int
}

// LogWorkout is the use case for recording a training session.
type LogWorkout struct {
	workouts domain.WorkoutRepository
	clock    domain.Clock
}

// NewLogWorkout creates a new LogWorkout use case.
func NewLogWorkout(workouts domain.WorkoutRepository, clock domain.Clock) *LogWorkout {
	return &LogWorkout{
		workouts: workouts,
		clock:    clock,
	}
}

// Execute records the workout.
func (uc *LogWorkout) Execute(_ context.Context, in LogWorkoutInput) (*LogWorkoutOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	intensity := in.Intensity
	if intensity == "" {
		intensity = domain.IntensityMedium
	}
	if !intensity.IsValid() {
		return nil, domain.ErrInvalidIntensity
	}

	now := uc.clock.Now()
	date := in.Date
	if date.IsZero() {
		date = domain.NewDateKey(now)
	}

	id, err := uc.workouts.NextWorkoutID()
	if err != nil {
		return nil, fmt.Errorf("generate workout ID: %w", err)
	}

	workout := &domain.Workout{
		ID:             id,
		Name:           in.Name,
		Type:           in.Type,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Exercises:      in.Exercises,
		Notes:          in.Notes,
		Intensity:      intensity,
		Date:           date,
		Time:           in.Time,
		Created:        now,
	}
	if err := uc.workouts.SaveWorkout(workout); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	return &LogWorkoutOutput{WorkoutID: id}, nil
}
