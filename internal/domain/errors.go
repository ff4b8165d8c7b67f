package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrMealNotFound     = errors.New("meal not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrSubtaskNotFound  = errors.New("subtask not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidQuadrant  = errors.New("invalid quadrant")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrInvalidIntensity = errors.New("invalid intensity")
	ErrInvalidDate      = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrNotInitialized   = errors.New("fittrack not initialized (run 'fittrack init' first)")
)
