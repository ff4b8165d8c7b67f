package usecase

import (
	"context"

	"github.com/fittrack/fittrack/internal/domain"
)

// MatrixBoardInput contains the parameters for the Eisenhower matrix view.
type MatrixBoardInput struct {
	IncludeCompleted bool // Include completed occurrences
}

// MatrixCell holds the occurrences of one quadrant.
type MatrixCell struct {
	Quadrant domain.Quadrant
	Items    []OccurrenceItem
}

// MatrixBoardOutput contains the four quadrant cells in display order,
// plus unassigned tasks.
type MatrixBoardOutput struct {
	Cells      []MatrixCell
	Unassigned []OccurrenceItem
}

// MatrixBoard groups each task's next occurrence by Eisenhower quadrant.
type MatrixBoard struct {
	list *ListOccurrences
}

// NewMatrixBoard creates a new MatrixBoard use case.
func NewMatrixBoard(tasks domain.TaskRepository, clock domain.Clock) *MatrixBoard {
	return &MatrixBoard{list: NewListOccurrences(tasks, clock)}
}

// Execute builds the matrix board.
func (uc *MatrixBoard) Execute(ctx context.Context, in MatrixBoardInput) (*MatrixBoardOutput, error) {
	listed, err := uc.list.Execute(ctx, ListOccurrencesInput{})
	if err != nil {
		return nil, err
	}

	byQuadrant := make(map[domain.Quadrant][]OccurrenceItem)
	var unassigned []OccurrenceItem
	for _, item := range listed.Items {
		if !in.IncludeCompleted && item.Occurrence.State == domain.StateCompleted {
			continue
		}
		if item.Quadrant == "" {
			unassigned = append(unassigned, item)
			continue
		}
		byQuadrant[item.Quadrant] = append(byQuadrant[item.Quadrant], item)
	}

	cells := make([]MatrixCell, 0, 4)
	for _, q := range domain.AllQuadrants() {
		cells = append(cells, MatrixCell{Quadrant: q, Items: byQuadrant[q]})
	}

	return &MatrixBoardOutput{Cells: cells, Unassigned: unassigned}, nil
}
