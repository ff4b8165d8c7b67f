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

func TestLogMeal(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		in      usecase.LogMealInput
		wantErr error
	}{
		{
			name: "valid meal",
			in:   usecase.LogMealInput{Name: "Oatmeal", Type: domain.MealBreakfast, Calories: 420},
		},
		{
			name:    "empty name",
			in:      usecase.LogMealInput{Type: domain.MealBreakfast},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "bad type",
			in:      usecase.LogMealInput{Name: "Mystery", Type: domain.MealType("brunch")},
			wantErr: domain.ErrInvalidMealType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := testutil.NewMockMealRepository()
			uc := usecase.NewLogMeal(repo, &testutil.MockClock{NowTime: now})

			out, err := uc.Execute(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			meal := repo.Meals[out.MealID]
			require.NotNil(t, meal)
			assert.Equal(t, domain.DateKey("2024-05-15"), meal.Date)
		})
	}
}

func TestListMeals_TotalsForDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 20, 0, 0, 0, time.Local)
	today := domain.DateKey("2024-05-15")
	repo := testutil.NewMockMealRepository()
	repo.Meals[1] = &domain.Meal{ID: 1, Name: "Oatmeal", Type: domain.MealBreakfast, Date: today, Calories: 420, Protein: 14, Carbs: 68, Fats: 9}
	repo.Meals[2] = &domain.Meal{ID: 2, Name: "Salad", Type: domain.MealLunch, Date: today, Calories: 560, Protein: 42, Carbs: 30, Fats: 24}
	repo.Meals[3] = &domain.Meal{ID: 3, Name: "Yesterday", Type: domain.MealDinner, Date: domain.DateKey("2024-05-14"), Calories: 800}
	uc := usecase.NewListMeals(repo, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), usecase.ListMealsInput{})
	require.NoError(t, err)
	require.Len(t, out.Meals, 2)
	assert.Equal(t, 980, out.Totals.Calories)
	assert.Equal(t, 56, out.Totals.Protein)
	assert.Equal(t, 98, out.Totals.Carbs)
	assert.Equal(t, 33, out.Totals.Fats)
}

func TestDeleteMeal_Unknown(t *testing.T) {
	t.Parallel()

	uc := usecase.NewDeleteMeal(testutil.NewMockMealRepository())
	_, err := uc.Execute(context.Background(), usecase.DeleteMealInput{MealID: 7})
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}
