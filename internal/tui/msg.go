package tui

import (
	"github.com/fittrack/fittrack/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgDataLoaded is sent when a full render pass of store data finishes.
type MsgDataLoaded struct {
	Occurrences *usecase.ListOccurrencesOutput
	Matrix      *usecase.MatrixBoardOutput
	Tags        *usecase.TagBoardOutput
	Calendar    *usecase.CalendarMonthOutput
	Meals       *usecase.ListMealsOutput
	Workouts    *usecase.ListWorkoutsOutput
	Summary     *usecase.DailySummaryOutput
	Weekly      *usecase.WeeklyStatsOutput
}

func (MsgDataLoaded) sealed() {}

// MsgOccurrenceToggled is sent when a task occurrence has been toggled.
type MsgOccurrenceToggled struct {
	TaskID    int
	Completed bool
}

func (MsgOccurrenceToggled) sealed() {}

// MsgStoreChanged is sent by the file watcher when the store file
// changes on disk.
type MsgStoreChanged struct{}

func (MsgStoreChanged) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
