package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case MsgDataLoaded:
		m.err = nil
		m.occurrences = msg.Occurrences
		m.matrix = msg.Matrix
		m.tags = msg.Tags
		m.calendar = msg.Calendar
		m.meals = msg.Meals
		m.workouts = msg.Workouts
		m.summary = msg.Summary
		m.weekly = msg.Weekly
		m.clampCursor()
		return m, nil

	case MsgOccurrenceToggled:
		// Completion flips lifecycle state and ordering; reload the pass.
		return m, m.loadData()

	case MsgStoreChanged:
		return m, m.loadData()

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.visibleRows()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.tab == TabTasks {
			return m, m.toggleSelected()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadData()
	}

	return m, nil
}

func (m *Model) clampCursor() {
	if rows := m.visibleRows(); m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
