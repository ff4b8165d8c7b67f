package domain

import "time"

// Intensity grades how hard a workout was.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// IsValid returns true if the intensity is a known value.
func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// Exercise is a single movement within a workout.
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets,omitempty"`
	Reps   int    `json:"reps,omitempty"`
	Weight int    `json:"weight,omitempty"` // kg
}

// Workout is a logged training session.
// Fields are ordered to minimize memory padding.
type Workout struct {
	Created        time.Time  `json:"created"`
	Name           string     `json:"name"`
	Type           string     `json:"type,omitempty"` // cardio, strength, ...
	Notes          string     `json:"notes,omitempty"`
	Time           string     `json:"time,omitempty"` // HH:MM, display only
	Date           DateKey    `json:"date"`
	Intensity      Intensity  `json:"intensity"`
	Exercises      []Exercise `json:"exercises,omitempty"`
	ID             int        `json:"-"` // Stored as map key, not in value
	Duration       int        `json:"duration"` // minutes
	CaloriesBurned int        `json:"caloriesBurned"`
}

// WorkoutTotals is the per-day summary over logged workouts.
type WorkoutTotals struct {
	Count          int `json:"count"`
	Duration       int `json:"duration"` // minutes
	CaloriesBurned int `json:"caloriesBurned"`
}

// SumWorkouts totals duration and burned calories of the given workouts.
func SumWorkouts(workouts []*Workout) WorkoutTotals {
	var t WorkoutTotals
	for _, w := range workouts {
		t.Count++
		t.Duration += w.Duration
		t.CaloriesBurned += w.CaloriesBurned
	}
	return t
}
