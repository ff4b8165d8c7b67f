// Package tui implements the interactive fittrack dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/usecase"
)

// Tab identifies one dashboard view.
type Tab int

const (
	TabTasks Tab = iota
	TabMatrix
	TabTags
	TabCalendar
	TabMeals
	TabWorkouts
	TabStats
	tabCount
)

// tabNames are the tab labels in display order.
var tabNames = [tabCount]string{"Tasks", "Matrix", "Tags", "Calendar", "Meals", "Workouts", "Stats"}

// tabByName maps config values to tabs.
var tabByName = map[string]Tab{
	"tasks":    TabTasks,
	"matrix":   TabMatrix,
	"tags":     TabTags,
	"calendar": TabCalendar,
	"meals":    TabMeals,
	"workouts": TabWorkouts,
	"stats":    TabStats,
}

// Model is the main bubbletea model for the dashboard.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Loaded data, refreshed as one render pass
	occurrences *usecase.ListOccurrencesOutput
	matrix      *usecase.MatrixBoardOutput
	tags        *usecase.TagBoardOutput
	calendar    *usecase.CalendarMonthOutput
	meals       *usecase.ListMealsOutput
	workouts    *usecase.ListWorkoutsOutput
	summary     *usecase.DailySummaryOutput
	weekly      *usecase.WeeklyStatsOutput

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Numeric state (smaller types last)
	tab      Tab
	cursor   int
	width    int
	height   int
	showHelp bool
}

// New creates a new dashboard Model with the given container.
func New(c *app.Container) *Model {
	tab := TabTasks
	if t, ok := tabByName[c.Config.UI.DefaultTab]; ok {
		tab = t
	}
	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		tab:       tab,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadData()
}

// loadData returns a command that loads every view's data in one pass.
func (m *Model) loadData() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		ctx := context.Background()

		occurrences, err := c.ListOccurrencesUseCase().Execute(ctx, usecase.ListOccurrencesInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		matrix, err := c.MatrixBoardUseCase().Execute(ctx, usecase.MatrixBoardInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		tags, err := c.TagBoardUseCase().Execute(ctx, usecase.TagBoardInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		calendar, err := c.CalendarMonthUseCase().Execute(ctx, usecase.CalendarMonthInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		meals, err := c.ListMealsUseCase().Execute(ctx, usecase.ListMealsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		workouts, err := c.ListWorkoutsUseCase().Execute(ctx, usecase.ListWorkoutsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		summary, err := c.DailySummaryUseCase().Execute(ctx, usecase.DailySummaryInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		weekly, err := c.WeeklyStatsUseCase().Execute(ctx, usecase.WeeklyStatsInput{})
		if err != nil {
			return MsgError{Err: err}
		}

		return MsgDataLoaded{
			Occurrences: occurrences,
			Matrix:      matrix,
			Tags:        tags,
			Calendar:    calendar,
			Meals:       meals,
			Workouts:    workouts,
			Summary:     summary,
			Weekly:      weekly,
		}
	}
}

// toggleSelected returns a command that toggles the selected occurrence
// on the Tasks tab.
func (m *Model) toggleSelected() tea.Cmd {
	if m.occurrences == nil || m.cursor >= len(m.occurrences.Items) {
		return nil
	}
	item := m.occurrences.Items[m.cursor]
	c := m.container
	return func() tea.Msg {
		out, err := c.ToggleOccurrenceUseCase().Execute(context.Background(), usecase.ToggleOccurrenceInput{
			TaskID:  item.Task.ID,
			DateKey: item.Occurrence.DateKey,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgOccurrenceToggled{TaskID: item.Task.ID, Completed: out.Completed}
	}
}

// visibleRows returns the row count of the current tab, for cursor
// clamping.
func (m *Model) visibleRows() int {
	if m.tab == TabTasks && m.occurrences != nil {
		return len(m.occurrences.Items)
	}
	return 0
}
