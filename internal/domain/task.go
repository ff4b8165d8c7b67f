// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// Quadrant represents an Eisenhower matrix quadrant.
type Quadrant string

const (
	QuadrantUrgentImportant       Quadrant = "urgent-important"
	QuadrantNotUrgentImportant    Quadrant = "not-urgent-important"
	QuadrantUrgentNotImportant    Quadrant = "urgent-not-important"
	QuadrantNotUrgentNotImportant Quadrant = "not-urgent-not-important"
)

// AllQuadrants returns the four quadrants in display order.
func AllQuadrants() []Quadrant {
	return []Quadrant{
		QuadrantUrgentImportant,
		QuadrantNotUrgentImportant,
		QuadrantUrgentNotImportant,
		QuadrantNotUrgentNotImportant,
	}
}

// IsValid returns true if the quadrant is one of the four known values.
// The empty quadrant is valid as "unassigned".
func (q Quadrant) IsValid() bool {
	switch q {
	case "", QuadrantUrgentImportant, QuadrantNotUrgentImportant,
		QuadrantUrgentNotImportant, QuadrantNotUrgentNotImportant:
		return true
	}
	return false
}

// Display returns a human-readable representation of the quadrant.
func (q Quadrant) Display() string {
	switch q {
	case QuadrantUrgentImportant:
		return "Urgent & Important"
	case QuadrantNotUrgentImportant:
		return "Not Urgent & Important"
	case QuadrantUrgentNotImportant:
		return "Urgent & Not Important"
	case QuadrantNotUrgentNotImportant:
		return "Not Urgent & Not Important"
	case "":
		return "Unassigned"
	default:
		return string(q)
	}
}

// Task represents a tracked to-do item.
// Completed and CompletedAt are authoritative only for non-repeating
// tasks; repeating tasks record completion per occurrence date in
// their Enhancement. Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time  `json:"created"`
	Updated     time.Time  `json:"updated"`
	DueAt       *time.Time `json:"dueAt,omitempty"`       // Absolute due timestamp (optional)
	CompletedAt *time.Time `json:"completedAt,omitempty"` // Non-repeating tasks only
	Title       string     `json:"title"`                 // Title (required)
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"` // May double as a legacy repeat hint
	Date        DateKey    `json:"date,omitempty"`     // Fallback calendar date
	Priority    Priority   `json:"priority"`
	Quadrant    Quadrant   `json:"quadrant,omitempty"`
	Tags        []string   `json:"tags,omitempty"` // Lowercase, deduplicated
	ID          int        `json:"-"`              // Stored as map key, not in value
	ProjectID   int        `json:"projectID,omitempty"`
	TimeSpent   int        `json:"timeSpent,omitempty"` // Minutes logged against the task
	Completed   bool       `json:"completed"`           // Non-repeating tasks only
}

// NormalizeTags lowercases and deduplicates tags, preserving first
// insertion order for display. Membership is set semantics.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// EffectiveTags returns the task's tags, falling back to the
// enhancement's copy when the task record has none.
func EffectiveTags(task *Task, enh *Enhancement) []string {
	if len(task.Tags) > 0 {
		return task.Tags
	}
	if enh != nil {
		return enh.Tags
	}
	return nil
}

// EffectiveQuadrant returns the task's quadrant, falling back to the
// enhancement's copy when the task record has none.
func EffectiveQuadrant(task *Task, enh *Enhancement) Quadrant {
	if task.Quadrant != "" {
		return task.Quadrant
	}
	if enh != nil {
		return enh.Quadrant
	}
	return ""
}
