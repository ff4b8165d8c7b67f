package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RepeatKind enumerates the supported recurrence patterns.
type RepeatKind string

const (
	RepeatNone     RepeatKind = "none"
	RepeatDaily    RepeatKind = "daily"
	RepeatWeekly   RepeatKind = "weekly"
	RepeatMonthly  RepeatKind = "monthly"
	RepeatInterval RepeatKind = "interval"
)

const (
	// defaultIntervalDays pads rules that carry no interval of their own.
	defaultIntervalDays = 2

	// scanHorizonDays bounds the forward scan for the next occurrence.
	scanHorizonDays = 40
)

// RepeatRule is the decomposed form of a recurrence rule. The legacy
// "interval:N" string form exists only at the storage boundary;
// everything past ParseRepeat works with this struct.
type RepeatRule struct {
	Kind         RepeatKind
	IntervalDays int
}

// ParseRepeat decodes a stored rule string. Anything malformed,
// including non-positive intervals, degrades to none rather than
// erroring: a bad rule in the store must never break a render.
func ParseRepeat(s string) RepeatRule {
	switch s {
	case "daily":
		return RepeatRule{Kind: RepeatDaily, IntervalDays: defaultIntervalDays}
	case "weekly":
		return RepeatRule{Kind: RepeatWeekly, IntervalDays: defaultIntervalDays}
	case "monthly":
		return RepeatRule{Kind: RepeatMonthly, IntervalDays: defaultIntervalDays}
	}
	if spec, ok := strings.CutPrefix(s, "interval:"); ok {
		if days, ok := parseIntervalSpec(spec); ok {
			return RepeatRule{Kind: RepeatInterval, IntervalDays: days}
		}
	}
	return RepeatRule{Kind: RepeatNone, IntervalDays: defaultIntervalDays}
}

// parseIntervalSpec accepts only unsigned decimal digits with a
// positive value, so "interval:-2" and "interval:1x" both fail.
func parseIntervalSpec(spec string) (int, bool) {
	if spec == "" {
		return 0, false
	}
	for _, r := range spec {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	days, err := strconv.Atoi(spec)
	if err != nil || days < 1 {
		return 0, false
	}
	return days, true
}

// String encodes the rule back to its storage form.
func (r RepeatRule) String() string {
	if r.Kind == RepeatInterval {
		return fmt.Sprintf("interval:%d", r.IntervalDays)
	}
	return string(r.Kind)
}

// IsRepeating reports whether the rule produces more than one occurrence.
func (r RepeatRule) IsRepeating() bool {
	return r.Kind != RepeatNone && r.Kind != ""
}

// EffectiveRule resolves the recurrence rule for a task. A non-empty
// enhancement rule always wins, even when it is malformed and degrades
// to none; the category-based legacy hint applies only when no
// enhancement rule was ever stored.
func EffectiveRule(task *Task, enh *Enhancement) RepeatRule {
	if enh != nil && enh.Repeat != "" {
		return ParseRepeat(enh.Repeat)
	}
	switch task.Category {
	case "daily":
		return RepeatRule{Kind: RepeatDaily, IntervalDays: defaultIntervalDays}
	case "weekly":
		return RepeatRule{Kind: RepeatWeekly, IntervalDays: defaultIntervalDays}
	case "monthly":
		return RepeatRule{Kind: RepeatMonthly, IntervalDays: defaultIntervalDays}
	}
	return RepeatRule{Kind: RepeatNone, IntervalDays: defaultIntervalDays}
}

// effectiveDueAt resolves the due timestamp, preferring the
// enhancement's override over the task record.
func effectiveDueAt(task *Task, enh *Enhancement) *time.Time {
	if enh != nil && enh.DueAt != nil {
		return enh.DueAt
	}
	return task.DueAt
}

// AnchorKey resolves the date the recurrence pattern is anchored on:
// the date portion of the due timestamp when one exists, else the
// task's calendar date, else today.
func AnchorKey(task *Task, enh *Enhancement, today DateKey) DateKey {
	if due := effectiveDueAt(task, enh); due != nil {
		return NewDateKey(due.Local())
	}
	if !task.Date.IsZero() {
		return task.Date
	}
	return today
}

// OccursOn reports whether the task occurs on key. No task occurs
// before its anchor date. Monthly recurrence is strict day-of-month
// equality with no end-of-month clamping, so a rule anchored on the
// 31st skips short months entirely.
func OccursOn(task *Task, enh *Enhancement, key DateKey, today DateKey) bool {
	anchor := AnchorKey(task, enh, today)
	if key.Before(anchor) {
		return false
	}
	rule := EffectiveRule(task, enh)
	switch rule.Kind {
	case RepeatDaily:
		return true
	case RepeatWeekly:
		return key.Weekday() == anchor.Weekday()
	case RepeatMonthly:
		return key.Day() == anchor.Day()
	case RepeatInterval:
		return WholeDaysBetween(anchor, key)%rule.IntervalDays == 0
	default:
		return key == anchor
	}
}

// NextOccurrence returns the first date at or after from on which the
// task occurs. A non-repeating task always answers its anchor date,
// past or future. Sparse rules are scanned day by day up to the
// horizon; past it the start key comes back so the caller still has
// something sortable to show.
func NextOccurrence(task *Task, enh *Enhancement, from DateKey, today DateKey) DateKey {
	rule := EffectiveRule(task, enh)
	anchor := AnchorKey(task, enh, today)
	if !rule.IsRepeating() {
		return anchor
	}

	start := from
	if start.Before(anchor) {
		start = anchor
	}
	if rule.Kind == RepeatDaily {
		return start
	}
	for d := 0; d <= scanHorizonDays; d++ {
		key := start.AddDays(d)
		if OccursOn(task, enh, key, today) {
			return key
		}
	}
	return from
}
