package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/usecase"
	"github.com/spf13/cobra"
)

// newTaskCommand creates the task command with its subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and their occurrences",
	}
	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskEditCommand(c),
		newTaskDeleteCommand(c),
		newTaskToggleCommand(c),
		newTaskMatrixCommand(c),
		newTaskTagsCommand(c),
		newTaskCalendarCommand(c),
		newTaskSubtaskCommand(c),
	)
	return cmd
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

// parseDateArg validates an optional YYYY-MM-DD argument.
func parseDateArg(s string) (domain.DateKey, error) {
	if s == "" {
		return "", nil
	}
	return domain.ParseDateKey(s)
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Category    string
		Date        string
		Due         string
		Priority    string
		Quadrant    string
		Repeat      string
		Tags        []string
		ProjectID   int
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task.

Examples:
  # One-off task for today
  fittrack task add "Call the dentist"

  # Daily reminder at 7am
  fittrack task add "Morning run" --repeat daily --due "2025-01-06 07:00"

  # Every third day
  fittrack task add "Water plants" --repeat interval:3

  # Categorized with priority and quadrant
  fittrack task add "Pay rent" --repeat monthly --priority high --quadrant urgent-important`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(opts.Date)
			if err != nil {
				return err
			}

			in := usecase.AddTaskInput{
				Title:       args[0],
				Description: opts.Description,
				Category:    opts.Category,
				Date:        date,
				Priority:    domain.Priority(opts.Priority),
				Quadrant:    domain.Quadrant(opts.Quadrant),
				Repeat:      opts.Repeat,
				Tags:        opts.Tags,
				ProjectID:   opts.ProjectID,
			}
			if opts.Due != "" {
				due, err := time.ParseInLocation("2006-01-02 15:04", opts.Due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due time %q (expected YYYY-MM-DD HH:MM)", opts.Due)
				}
				in.DueAt = &due
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Category")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Calendar date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due timestamp (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, medium, high")
	cmd.Flags().StringVarP(&opts.Quadrant, "quadrant", "q", "", "Eisenhower quadrant")
	cmd.Flags().StringVarP(&opts.Repeat, "repeat", "r", "", "Repeat rule: daily, weekly, monthly, interval:N")
	cmd.Flags().StringSliceVarP(&opts.Tags, "tag", "t", nil, "Tag (repeatable)")
	cmd.Flags().IntVar(&opts.ProjectID, "project", 0, "Linked project ID")
	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		State    string
		Tag      string
		Quadrant string
		Priority string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with their next occurrence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListOccurrencesUseCase().Execute(cmd.Context(), usecase.ListOccurrencesInput{
				State:    domain.LifecycleState(opts.State),
				Tag:      opts.Tag,
				Quadrant: domain.Quadrant(opts.Quadrant),
				Priority: domain.Priority(opts.Priority),
			})
			if err != nil {
				return err
			}
			if len(out.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATE\tDUE\tREPEAT\tPRI\tTITLE\tTAGS")
			for _, item := range out.Items {
				fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					item.Task.ID,
					item.Occurrence.State.Display(),
					item.Occurrence.DueAt.Format("2006-01-02 15:04"),
					item.Repeat.String(),
					item.Task.Priority,
					item.Task.Title,
					strings.Join(item.Tags, ","),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.State, "state", "", "Filter by state: active, overdue, completed")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVar(&opts.Quadrant, "quadrant", "", "Filter by quadrant")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Filter by priority")
	return cmd
}

func newTaskShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Task #%d: %s\n", out.Task.ID, out.Task.Title)
			if out.Task.Description != "" {
				fmt.Fprintf(w, "  Description: %s\n", out.Task.Description)
			}
			fmt.Fprintf(w, "  Priority:    %s\n", out.Task.Priority.Display())
			rule := domain.EffectiveRule(out.Task, out.Enhancement)
			fmt.Fprintf(w, "  Repeat:      %s\n", rule.String())
			if q := domain.EffectiveQuadrant(out.Task, out.Enhancement); q != "" {
				fmt.Fprintf(w, "  Quadrant:    %s\n", q.Display())
			}
			if tags := domain.EffectiveTags(out.Task, out.Enhancement); len(tags) > 0 {
				fmt.Fprintf(w, "  Tags:        %s\n", strings.Join(tags, ", "))
			}
			fmt.Fprintf(w, "  Next:        %s (%s)\n",
				out.Occurrence.DueAt.Format("2006-01-02 15:04"),
				out.Occurrence.State.Display())
			if len(out.Enhancement.Subtasks) > 0 {
				fmt.Fprintln(w, "  Subtasks:")
				for _, sub := range out.Enhancement.Subtasks {
					mark := " "
					if sub.Completed {
						mark = "x"
					}
					fmt.Fprintf(w, "    [%s] %s (%s)\n", mark, sub.Title, sub.ID)
				}
			}
			return nil
		},
	}
}

func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Category    string
		Date        string
		Due         string
		Priority    string
		Quadrant    string
		Repeat      string
		Tags        []string
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Long:  "Edit task fields. Only flags that are set are applied.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			in := usecase.EditTaskInput{TaskID: id}
			flags := cmd.Flags()
			if flags.Changed("title") {
				in.Title = &opts.Title
			}
			if flags.Changed("description") {
				in.Description = &opts.Description
			}
			if flags.Changed("category") {
				in.Category = &opts.Category
			}
			if flags.Changed("date") {
				date, err := parseDateArg(opts.Date)
				if err != nil {
					return err
				}
				in.Date = &date
			}
			if flags.Changed("priority") {
				p := domain.Priority(opts.Priority)
				in.Priority = &p
			}
			if flags.Changed("quadrant") {
				q := domain.Quadrant(opts.Quadrant)
				in.Quadrant = &q
			}
			if flags.Changed("repeat") {
				in.Repeat = &opts.Repeat
			}
			if flags.Changed("tag") {
				in.Tags = &opts.Tags
			}
			switch {
			case opts.ClearDue:
				var cleared *time.Time
				in.DueAt = &cleared
			case flags.Changed("due"):
				due, err := time.ParseInLocation("2006-01-02 15:04", opts.Due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due time %q (expected YYYY-MM-DD HH:MM)", opts.Due)
				}
				duePtr := &due
				in.DueAt = &duePtr
			}

			if _, err := c.EditTaskUseCase().Execute(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&opts.Category, "category", "", "New category")
	cmd.Flags().StringVar(&opts.Date, "date", "", "New calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due timestamp (YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due timestamp")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&opts.Quadrant, "quadrant", "q", "", "New quadrant")
	cmd.Flags().StringVarP(&opts.Repeat, "repeat", "r", "", "New repeat rule")
	cmd.Flags().StringSliceVarP(&opts.Tags, "tag", "t", nil, "Replacement tags (repeatable)")
	return cmd
}

func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task and its completion history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}

func newTaskToggleCommand(c *app.Container) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle completion of a task occurrence",
		Long: `Toggle completion of a task occurrence.

For repeating tasks --date selects which occurrence to toggle
(default: today). Non-repeating tasks have a single completion state
and ignore --date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			date, err := parseDateArg(dateStr)
			if err != nil {
				return err
			}
			out, err := c.ToggleOccurrenceUseCase().Execute(cmd.Context(), usecase.ToggleOccurrenceInput{
				TaskID:  id,
				DateKey: date,
			})
			if err != nil {
				return err
			}
			state := "open"
			if out.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d on %s: %s\n", id, out.DateKey, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Occurrence date (YYYY-MM-DD, default today)")
	return cmd
}

func newTaskMatrixCommand(c *app.Container) *cobra.Command {
	var includeCompleted bool

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show the Eisenhower matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.MatrixBoardUseCase().Execute(cmd.Context(), usecase.MatrixBoardInput{
				IncludeCompleted: includeCompleted,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, cell := range out.Cells {
				fmt.Fprintf(w, "%s:\n", cell.Quadrant.Display())
				printMatrixItems(w, cell.Items)
			}
			if len(out.Unassigned) > 0 {
				fmt.Fprintln(w, "Unassigned:")
				printMatrixItems(w, out.Unassigned)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeCompleted, "all", false, "Include completed occurrences")
	return cmd
}

func printMatrixItems(w io.Writer, items []usecase.OccurrenceItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  #%d %s (%s)\n", item.Task.ID, item.Task.Title, item.Occurrence.State.Display())
	}
}

func newTaskTagsCommand(c *app.Container) *cobra.Command {
	var includeCompleted bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show tasks grouped by tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TagBoardUseCase().Execute(cmd.Context(), usecase.TagBoardInput{
				IncludeCompleted: includeCompleted,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Groups) == 0 {
				fmt.Fprintln(w, "No tasks.")
				return nil
			}
			for _, group := range out.Groups {
				fmt.Fprintf(w, "%s:\n", group.Tag)
				for _, item := range group.Items {
					fmt.Fprintf(w, "  #%d %s (%s)\n", item.Task.ID, item.Task.Title, item.Occurrence.State.Display())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeCompleted, "all", false, "Include completed occurrences")
	return cmd
}

func newTaskCalendarCommand(c *app.Container) *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show task occurrences per day of a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.CalendarMonthInput{}
			if monthStr != "" {
				t, err := time.ParseInLocation("2006-01", monthStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q (expected YYYY-MM)", monthStr)
				}
				in.Year, in.Month = t.Year(), t.Month()
			}

			out, err := c.CalendarMonthUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %d\n", out.Month, out.Year)
			for _, day := range out.Days {
				if len(day.Items) == 0 {
					continue
				}
				fmt.Fprintf(w, "%s:\n", day.Key)
				for _, item := range day.Items {
					fmt.Fprintf(w, "  #%d %s (%s)\n", item.Task.ID, item.Task.Title, item.Occurrence.State.Display())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to show (YYYY-MM, default current)")
	return cmd
}

func newTaskSubtaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage task checklists",
	}

	addCmd := &cobra.Command{
		Use:   "add <task-id> <title>",
		Short: "Add a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.AddSubtaskUseCase().Execute(cmd.Context(), usecase.AddSubtaskInput{
				TaskID: id,
				Title:  args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added subtask %s\n", out.Subtask.ID)
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <task-id> <subtask-id>",
		Short: "Toggle a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.ToggleSubtaskUseCase().Execute(cmd.Context(), usecase.ToggleSubtaskInput{
				TaskID:    id,
				SubtaskID: args[1],
			})
			if err != nil {
				return err
			}
			state := "open"
			if out.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Subtask %s: %s\n", args[1], state)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <task-id> <subtask-id>",
		Short: "Remove a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.RemoveSubtaskUseCase().Execute(cmd.Context(), usecase.RemoveSubtaskInput{
				TaskID:    id,
				SubtaskID: args[1],
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed subtask %s\n", args[1])
			return nil
		},
	}

	cmd.AddCommand(addCmd, toggleCmd, removeCmd)
	return cmd
}
