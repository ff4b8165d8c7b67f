package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

// CalendarMonthInput selects the month to render.
type CalendarMonthInput struct {
	Year  int        // Zero = current year
	Month time.Month // Zero = current month
}

// CalendarDay holds the occurrences of one calendar date.
type CalendarDay struct {
	Key   domain.DateKey
	Items []OccurrenceItem
}

// CalendarMonthOutput contains one entry per day of the month, in order.
type CalendarMonthOutput struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// CalendarMonth materializes every task occurrence for every day of a
// month. Unlike the list views this tests occurrence on each concrete
// date, so a daily task appears on every day.
type CalendarMonth struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewCalendarMonth creates a new CalendarMonth use case.
func NewCalendarMonth(tasks domain.TaskRepository, clock domain.Clock) *CalendarMonth {
	return &CalendarMonth{
		tasks: tasks,
		clock: clock,
	}
}

// Execute builds the per-day occurrence lists for the month.
func (uc *CalendarMonth) Execute(_ context.Context, in CalendarMonthInput) (*CalendarMonthOutput, error) {
	now := uc.clock.Now()
	year, month := in.Year, in.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	type taskWithEnh struct {
		task *domain.Task
		enh  *domain.Enhancement
	}
	pairs := make([]taskWithEnh, 0, len(tasks))
	for _, task := range tasks {
		enh, err := uc.tasks.GetEnhancement(task.ID)
		if err != nil {
			return nil, fmt.Errorf("get enhancement for task %d: %w", task.ID, err)
		}
		pairs = append(pairs, taskWithEnh{task: task, enh: enh})
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		key := domain.NewDateKey(time.Date(year, month, d, 0, 0, 0, 0, time.Local))
		day := CalendarDay{Key: key}
		for _, p := range pairs {
			occ, ok := domain.MaterializeOn(p.task, p.enh, key, now)
			if !ok {
				continue
			}
			day.Items = append(day.Items, OccurrenceItem{
				Task:       p.task,
				Occurrence: occ,
				Tags:       domain.EffectiveTags(p.task, p.enh),
				Quadrant:   domain.EffectiveQuadrant(p.task, p.enh),
				Repeat:     domain.EffectiveRule(p.task, p.enh),
				Subtasks:   p.enh.Subtasks,
			})
		}
		days = append(days, day)
	}

	return &CalendarMonthOutput{Year: year, Month: month, Days: days}, nil
}
