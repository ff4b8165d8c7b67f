package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// DeleteMealInput contains the parameters for deleting a meal.
type DeleteMealInput struct {
	MealID int
}

// DeleteMealOutput contains the result of deleting a meal.
type DeleteMealOutput struct{}

// DeleteMeal is the use case for removing a nutrition entry.
type DeleteMeal struct {
	meals domain.MealRepository
}

// NewDeleteMeal creates a new DeleteMeal use case.
func NewDeleteMeal(meals domain.MealRepository) *DeleteMeal {
	return &DeleteMeal{meals: meals}
}

// Execute deletes the meal.
func (uc *DeleteMeal) Execute(_ context.Context, in DeleteMealInput) (*DeleteMealOutput, error) {
	if err := uc.meals.DeleteMeal(in.MealID); err != nil {
		return nil, fmt.Errorf("delete meal: %w", err)
	}
	return &DeleteMealOutput{}, nil
}
