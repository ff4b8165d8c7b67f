package domain

import "time"

// MealType categorizes when a meal was eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// IsValid returns true if the meal type is a known value.
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is a logged nutrition entry.
// Fields are ordered to minimize memory padding.
type Meal struct {
	Created  time.Time `json:"created"`
	Name     string    `json:"name"`
	Notes    string    `json:"notes,omitempty"`
	Time     string    `json:"time,omitempty"` // HH:MM, display only
	Date     DateKey   `json:"date"`
	Type     MealType  `json:"type"`
	ID       int       `json:"-"` // Stored as map key, not in value
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"` // grams
	Carbs    int       `json:"carbs"`   // grams
	Fats     int       `json:"fats"`    // grams
}

// NutritionTotals is the per-day macro summary over logged meals.
type NutritionTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// SumNutrition totals the macros of the given meals.
func SumNutrition(meals []*Meal) NutritionTotals {
	var t NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}
