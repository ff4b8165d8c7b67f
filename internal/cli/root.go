// Package cli provides the command-line interface for fittrack.
package cli

import (
	"github.com/fittrack/fittrack/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTasks    = "tasks"
	groupFitness  = "fitness"
	groupInsights = "insights"
)

// launchDashboardFunc is a function variable for launching the TUI,
// allowing it to be mocked in tests.
var launchDashboardFunc = launchDashboard

// NewRootCommand creates the root command for fittrack.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "fittrack",
		Short: "Personal productivity and fitness dashboard",
		Long: `fittrack is a local-first dashboard for recurring tasks, nutrition
and training. Everything lives in a single JSON store under your home
directory; no account, no network.

Running fittrack with no arguments opens the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchDashboardFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTasks, Title: "Task Management:"},
		&cobra.Group{ID: groupFitness, Title: "Fitness Tracking:"},
		&cobra.Group{ID: groupInsights, Title: "Insights:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	seedCmd := newSeedCommand(c)
	seedCmd.GroupID = groupSetup

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTasks

	projectCmd := newProjectCommand(c)
	projectCmd.GroupID = groupTasks

	mealCmd := newMealCommand(c)
	mealCmd.GroupID = groupFitness

	workoutCmd := newWorkoutCommand(c)
	workoutCmd.GroupID = groupFitness

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupInsights

	root.AddCommand(initCmd, configCmd, seedCmd, taskCmd, projectCmd, mealCmd, workoutCmd, statsCmd)

	return root
}
