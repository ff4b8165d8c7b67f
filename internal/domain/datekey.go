package domain

import (
	"fmt"
	"time"
)

// dateKeyLayout is the canonical YYYY-MM-DD form. Zero padding makes
// lexicographic order equal chronological order.
const dateKeyLayout = "2006-01-02"

// DateKey identifies a calendar date in the local timezone. It is the
// unit of recurrence: occurrences, per-date completion and day views
// are all keyed by it.
type DateKey string

// NewDateKey returns the DateKey of t in its own location.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// ParseDateKey validates s as a canonical date key. Non-padded or
// impossible dates are rejected.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.ParseInLocation(dateKeyLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	// time.Parse normalizes some inputs; require the round trip to
	// match so only canonical keys are accepted.
	if t.Format(dateKeyLayout) != s {
		return "", fmt.Errorf("invalid date %q: %w", s, ErrInvalidDate)
	}
	return DateKey(s), nil
}

// IsZero reports whether the key is unset.
func (k DateKey) IsZero() bool {
	return k == ""
}

// Time returns local midnight of the key's date. The zero time is
// returned for malformed keys.
func (k DateKey) Time() time.Time {
	t, err := time.ParseInLocation(dateKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the key days later (or earlier when negative).
func (k DateKey) AddDays(days int) DateKey {
	return NewDateKey(k.Time().AddDate(0, 0, days))
}

// Weekday returns the day of the week of the key's date.
func (k DateKey) Weekday() time.Weekday {
	return k.Time().Weekday()
}

// Day returns the day of the month of the key's date.
func (k DateKey) Day() int {
	return k.Time().Day()
}

// Before reports whether k is chronologically before other. Plain
// string comparison suffices for canonical keys.
func (k DateKey) Before(other DateKey) bool {
	return k < other
}

// WholeDaysBetween returns the number of calendar days from a to b,
// negative when b precedes a. Both dates are normalized to UTC
// midnights first so DST transitions cannot skew the division.
func WholeDaysBetween(a, b DateKey) int {
	at := a.Time()
	bt := b.Time()
	au := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
