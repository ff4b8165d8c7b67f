package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/fittrack/fittrack/internal/domain"
)

// UntaggedGroup is the bucket name for tasks without tags.
const UntaggedGroup = "untagged"

// TagBoardInput contains the parameters for the tag view.
type TagBoardInput struct {
	IncludeCompleted bool // Include completed occurrences
}

// TagGroup holds the occurrences sharing one tag. A task with several
// tags appears in each of its groups.
type TagGroup struct {
	Tag   string
	Items []OccurrenceItem
}

// TagBoardOutput contains tag groups sorted alphabetically, with the
// untagged bucket last.
type TagBoardOutput struct {
	Groups []TagGroup
}

// TagBoard groups each task's next occurrence by tag.
type TagBoard struct {
	list *ListOccurrences
}

// NewTagBoard creates a new TagBoard use case.
func NewTagBoard(tasks domain.TaskRepository, clock domain.Clock) *TagBoard {
	return &TagBoard{list: NewListOccurrences(tasks, clock)}
}

// Execute builds the tag board.
func (uc *TagBoard) Execute(ctx context.Context, in TagBoardInput) (*TagBoardOutput, error) {
	listed, err := uc.list.Execute(ctx, ListOccurrencesInput{})
	if err != nil {
		return nil, err
	}

	byTag := make(map[string][]OccurrenceItem)
	for _, item := range listed.Items {
		if !in.IncludeCompleted && item.Occurrence.State == domain.StateCompleted {
			continue
		}
		if len(item.Tags) == 0 {
			byTag[UntaggedGroup] = append(byTag[UntaggedGroup], item)
			continue
		}
		for _, tag := range item.Tags {
			byTag[tag] = append(byTag[tag], item)
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		if tag == UntaggedGroup {
			continue
		}
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, strings.Compare)
	if _, ok := byTag[UntaggedGroup]; ok {
		tags = append(tags, UntaggedGroup)
	}

	groups := make([]TagGroup, 0, len(tags))
	for _, tag := range tags {
		groups = append(groups, TagGroup{Tag: tag, Items: byTag[tag]})
	}

	return &TagBoardOutput{Groups: groups}, nil
}
