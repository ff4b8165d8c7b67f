package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/tui"
)

// launchDashboard starts the interactive dashboard with live reload of
// the store file.
func launchDashboard(c *app.Container) error {
	model := tui.New(c)
	program := tea.NewProgram(model, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(c.Paths.StorePath, program)
	if err != nil {
		// The dashboard still works without live reload.
		c.Logger.Warn("tui", "store watcher unavailable: "+err.Error())
	} else {
		defer cleanup()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
