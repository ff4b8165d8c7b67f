package domain

import "time"

// LifecycleState classifies an occurrence relative to a single
// wall-clock instant. Completion always wins over the due comparison;
// there are no timer-driven transitions, state is recomputed on every
// render pass.
type LifecycleState string

const (
	StateActive    LifecycleState = "active"    // Due now or in the future
	StateOverdue   LifecycleState = "overdue"   // Due instant has passed
	StateCompleted LifecycleState = "completed" // Completed, regardless of due instant
)

// Display returns a human-readable representation of the state.
func (s LifecycleState) Display() string {
	switch s {
	case StateActive:
		return "Active"
	case StateOverdue:
		return "Overdue"
	case StateCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Occurrence is one concrete instance of a (possibly repeating) task
// materialized for a specific calendar date. It is derived state,
// computed fresh on every render and never persisted.
// Fields are ordered to minimize memory padding.
type Occurrence struct {
	DueAt       time.Time      `json:"dueAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	DateKey     DateKey        `json:"dateKey"`
	State       LifecycleState `json:"state"`
	TaskID      int            `json:"taskID"`
	Completed   bool           `json:"completed"`
}

// endOfDayHour/Minute is the default due time when a task carries only
// a calendar date.
const (
	endOfDayHour   = 23
	endOfDayMinute = 59
)

// DueInstant combines the occurrence date with the time-of-day
// component of the task's due timestamp, so a daily 7am reminder shows
// 7am on every rendered day. Tasks without a due timestamp fall back
// to 23:59:00 local on the occurrence date.
func DueInstant(task *Task, enh *Enhancement, key DateKey) time.Time {
	day := key.Time()
	if due := effectiveDueAt(task, enh); due != nil {
		local := due.Local()
		return time.Date(day.Year(), day.Month(), day.Day(),
			local.Hour(), local.Minute(), local.Second(), 0, time.Local)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		endOfDayHour, endOfDayMinute, 0, 0, time.Local)
}

// ClassifyState derives the lifecycle state of an occurrence from its
// completion flag and due instant, compared against now.
func ClassifyState(completed bool, dueAt, now time.Time) LifecycleState {
	if completed {
		return StateCompleted
	}
	if dueAt.Before(now) {
		return StateOverdue
	}
	return StateActive
}

// MaterializeOn computes the occurrence of task on key, or false if
// the task does not occur on that date. Used by calendar-day renders.
// now must be sampled once per render pass so every task in the pass
// is classified against the same instant.
func MaterializeOn(task *Task, enh *Enhancement, key DateKey, now time.Time) (Occurrence, bool) {
	today := NewDateKey(now)
	if !OccursOn(task, enh, key, today) {
		return Occurrence{}, false
	}
	return materialize(task, enh, key, now), true
}

// MaterializeNext computes the single occurrence a task contributes to
// list/matrix/tag views: its next upcoming instance from today.
func MaterializeNext(task *Task, enh *Enhancement, now time.Time) Occurrence {
	today := NewDateKey(now)
	key := NextOccurrence(task, enh, today, today)
	return materialize(task, enh, key, now)
}

// materialize builds the occurrence descriptor for a date the task is
// known to occur on. Completion is read from exactly one source: the
// task record for non-repeating tasks, the enhancement's per-date maps
// otherwise. The two are never mixed.
func materialize(task *Task, enh *Enhancement, key DateKey, now time.Time) Occurrence {
	rule := EffectiveRule(task, enh)
	due := DueInstant(task, enh, key)

	var completed bool
	var completedAt *time.Time
	if rule.IsRepeating() {
		completed = enh.CompletedOn(key)
		completedAt = enh.CompletedAtOn(key)
	} else {
		completed = task.Completed || task.CompletedAt != nil
		completedAt = task.CompletedAt
	}

	return Occurrence{
		DueAt:       due,
		CompletedAt: completedAt,
		DateKey:     key,
		State:       ClassifyState(completed, due, now),
		TaskID:      task.ID,
		Completed:   completed,
	}
}
