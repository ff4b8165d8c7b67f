package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// ListMealsInput contains the parameters for listing meals.
type ListMealsInput struct {
	Date domain.DateKey // Zero = today
}

// ListMealsOutput contains the meals of one day and their macro totals.
type ListMealsOutput struct {
	Meals  []*domain.Meal
	Totals domain.NutritionTotals
}

// ListMeals is the use case for the nutrition day view.
type ListMeals struct {
	meals domain.MealRepository
	clock domain.Clock
}

// NewListMeals creates a new ListMeals use case.
func NewListMeals(meals domain.MealRepository, clock domain.Clock) *ListMeals {
	return &ListMeals{
		meals: meals,
		clock: clock,
	}
}

// Execute lists the meals for the given day.
func (uc *ListMeals) Execute(_ context.Context, in ListMealsInput) (*ListMealsOutput, error) {
	date := in.Date
	if date.IsZero() {
		date = domain.NewDateKey(uc.clock.Now())
	}

	meals, err := uc.meals.ListMeals(date)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return &ListMealsOutput{Meals: meals, Totals: domain.SumNutrition(meals)}, nil
}
