package cli

import (
	"fmt"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the fittrack store",
		Long: `Create the fittrack directory and an empty JSON store.

Safe to run repeatedly; an existing store is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			if _, err := uc.Execute(cmd.Context()); err != nil {
				return err
			}
			c.Logger.Info("init", "store initialized at "+c.Paths.StorePath)
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fittrack store at %s\n", c.Paths.StorePath)
			return nil
		},
	}
}

// newSeedCommand creates the seed command.
func newSeedCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with demo data",
		Long: `Load a small demo dataset (profile, projects, repeating tasks,
meals and workouts) so the dashboard has something to show. Seeding
appends; existing records are never overwritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Seeder().Seed(); err != nil {
				return err
			}
			c.Logger.Info("seed", "demo data loaded")
			fmt.Fprintln(cmd.OutOrStdout(), "Demo data loaded.")
			return nil
		},
	}
}
