package cli

import (
	"fmt"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/infra/config"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command with its subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "directory:   %s\n", c.Paths.Dir)
			fmt.Fprintf(w, "store.path:  %s\n", c.Paths.StorePath)
			fmt.Fprintf(w, "log.level:   %s\n", c.Config.Log.Level)
			fmt.Fprintf(w, "ui.default_tab: %s\n", c.Config.UI.DefaultTab)
			fmt.Fprintf(w, "ui.week_start:  %s\n", c.Config.UI.WeekStart)
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := config.NewLoader(c.Paths.Dir)
			path, err := loader.WriteDefault()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}
