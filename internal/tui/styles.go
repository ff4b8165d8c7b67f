package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fittrack/fittrack/internal/domain"
)

// Colors defines the color palette for the dashboard.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	TitleText  lipgloss.Color
	Selected   lipgloss.Color
	Active     lipgloss.Color
	Overdue    lipgloss.Color
	Completed  lipgloss.Color
	TabBorder  lipgloss.Color
	FooterText lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	TitleText:  lipgloss.Color("#DFE6E9"), // Light gray
	Selected:   lipgloss.Color("#FFEAA7"), // Yellow (selected)
	Active:     lipgloss.Color("#74B9FF"), // Light blue
	Overdue:    lipgloss.Color("#D63031"), // Red
	Completed:  lipgloss.Color("#00B894"), // Green
	TabBorder:  lipgloss.Color("#636E72"),
	FooterText: lipgloss.Color("#636E72"),
}

// Styles holds the lipgloss styles for the dashboard.
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	SectionHead lipgloss.Style
	Item        lipgloss.Style
	ItemSel     lipgloss.Style
	Muted       lipgloss.Style
	ErrorMsg    lipgloss.Style
	Footer      lipgloss.Style
	StateActive lipgloss.Style
	StateLate   lipgloss.Style
	StateDone   lipgloss.Style
}

// DefaultStyles returns the default dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		App:         lipgloss.NewStyle().Padding(0, 1),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Tab:         lipgloss.NewStyle().Foreground(Colors.Muted).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true).Padding(0, 1).Underline(true),
		SectionHead: lipgloss.NewStyle().Bold(true).Foreground(Colors.TitleText),
		Item:        lipgloss.NewStyle().Foreground(Colors.TitleText),
		ItemSel:     lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(Colors.Muted),
		ErrorMsg:    lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		Footer:      lipgloss.NewStyle().Foreground(Colors.FooterText),
		StateActive: lipgloss.NewStyle().Foreground(Colors.Active),
		StateLate:   lipgloss.NewStyle().Foreground(Colors.Overdue).Bold(true),
		StateDone:   lipgloss.NewStyle().Foreground(Colors.Completed),
	}
}

// StateStyle returns the style for a lifecycle state.
func (s Styles) StateStyle(state domain.LifecycleState) lipgloss.Style {
	switch state {
	case domain.StateOverdue:
		return s.StateLate
	case domain.StateCompleted:
		return s.StateDone
	default:
		return s.StateActive
	}
}
