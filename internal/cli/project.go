package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/usecase"
	"github.com/spf13/cobra"
)

// newProjectCommand creates the project command with its subcommands.
func newProjectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and tracked time",
	}
	cmd.AddCommand(
		newProjectAddCommand(c),
		newProjectListCommand(c),
		newProjectDeleteCommand(c),
		newProjectTimeCommand(c),
	)
	return cmd
}

func newProjectAddCommand(c *app.Container) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddProjectUseCase().Execute(cmd.Context(), usecase.AddProjectInput{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project #%d\n", out.ProjectID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	return cmd
}

func newProjectListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListProjectsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tNAME\tDESCRIPTION")
			for _, p := range out.Projects {
				fmt.Fprintf(w, "#%d\t%dm\t%s\t%s\n", p.ID, p.TimeSpent, p.Name, p.Description)
			}
			return w.Flush()
		},
	}
}

func newProjectDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}
			if _, err := c.DeleteProjectUseCase().Execute(cmd.Context(), usecase.DeleteProjectInput{ProjectID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project #%d\n", id)
			return nil
		},
	}
}

func newProjectTimeCommand(c *app.Container) *cobra.Command {
	var taskID int

	cmd := &cobra.Command{
		Use:   "time <id> <minutes>",
		Short: "Log time spent on a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q", args[1])
			}
			out, err := c.LogProjectTimeUseCase().Execute(cmd.Context(), usecase.LogProjectTimeInput{
				ProjectID: id,
				TaskID:    taskID,
				Minutes:   minutes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project #%d total: %dm\n", id, out.TotalMinutes)
			return nil
		},
	}

	cmd.Flags().IntVar(&taskID, "task", 0, "Also accumulate on this task")
	return cmd
}
