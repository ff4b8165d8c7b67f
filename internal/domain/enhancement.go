package domain

import "time"

// Subtask is a checklist entry under a task.
type Subtask struct {
	ID        string `json:"id"` // UUID
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Enhancement is the mutable per-task metadata layered on top of a
// Task record: subtasks, the stored repeat rule, and per-date
// completion for repeating tasks. One enhancement per task, created
// lazily on first access. Fields are ordered to minimize memory padding.
type Enhancement struct {
	DueAt            *time.Time             `json:"dueAt,omitempty"`  // Due timestamp override
	Repeat           string                 `json:"repeat,omitempty"` // Legacy rule string; decomposed via ParseRepeat
	Subtasks         []Subtask              `json:"subtasks,omitempty"`
	CompletedDates   map[DateKey]bool       `json:"completedDates,omitempty"`   // Repeating tasks only
	CompletedAtDates map[DateKey]*time.Time `json:"completedAtDates,omitempty"` // Parallel to CompletedDates
	Tags             []string               `json:"tags,omitempty"`             // Fallback copy of Task.Tags
	Quadrant         Quadrant               `json:"quadrant,omitempty"`         // Fallback copy of Task.Quadrant
}

// NewEnhancement returns an enhancement with initialized maps.
func NewEnhancement() *Enhancement {
	return &Enhancement{
		CompletedDates:   make(map[DateKey]bool),
		CompletedAtDates: make(map[DateKey]*time.Time),
	}
}

// EnsureMaps initializes nil completion maps after deserialization.
func (e *Enhancement) EnsureMaps() {
	if e.CompletedDates == nil {
		e.CompletedDates = make(map[DateKey]bool)
	}
	if e.CompletedAtDates == nil {
		e.CompletedAtDates = make(map[DateKey]*time.Time)
	}
}

// CompletedOn reports whether the occurrence on key has been completed.
func (e *Enhancement) CompletedOn(key DateKey) bool {
	if e == nil {
		return false
	}
	return e.CompletedDates[key]
}

// CompletedAtOn returns the completion timestamp for the occurrence on
// key, or nil if it has not been completed.
func (e *Enhancement) CompletedAtOn(key DateKey) *time.Time {
	if e == nil {
		return nil
	}
	return e.CompletedAtDates[key]
}
