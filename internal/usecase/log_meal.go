package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// LogMealInput contains the parameters for logging a meal.
// Fields are ordered to minimize memory padding.
type LogMealInput struct {
	Name     string
	Notes    string
	Time     string // HH:MM, display only
	Date     domain.DateKey
	Type     domain.MealType
	Calories int
	Protein  int
	Carbs    int
	Fats     int
}

// LogMealOutput contains the result of logging a meal.
type LogMealOutput struct {
	MealID int
}

// LogMeal is the use case for recording a nutrition entry.
type LogMeal struct {
	meals domain.MealRepository
	clock domain.Clock
}

// NewLogMeal creates a new LogMeal use case.
func NewLogMeal(meals domain.MealRepository, clock domain.Clock) *LogMeal {
	return &LogMeal{
		meals: meals,
		clock: clock,
	}
}

// Execute records the meal.
func (uc *LogMeal) Execute(_ context.Context, in LogMealInput) (*LogMealOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if !in.Type.IsValid() {
		return nil, domain.ErrInvalidMealType
	}

	now := uc.clock.Now()
	date := in.Date
	if date.IsZero() {
		date = domain.NewDateKey(now)
	}

	id, err := uc.meals.NextMealID()
	if err != nil {
		return nil, fmt.Errorf("generate meal ID: %w", err)
	}

	meal := &domain.Meal{
		ID:       id,
		Name:     in.Name,
		Type:     in.Type,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Notes:    in.Notes,
		Date:     date,
		Time:     in.Time,
		Created:  now,
	}
	if err := uc.meals.SaveMeal(meal); err != nil {
		return nil, fmt.Errorf("save meal: %w", err)
	}
	return &LogMealOutput{MealID: id}, nil
}
