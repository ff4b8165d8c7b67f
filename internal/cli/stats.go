package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/usecase"
	"github.com/spf13/cobra"
)

// newStatsCommand creates the stats command with its subcommands.
func newStatsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Daily and weekly summaries",
	}
	cmd.AddCommand(
		newStatsSummaryCommand(c),
		newStatsWeeklyCommand(c),
	)
	return cmd
}

func newStatsSummaryCommand(c *app.Container) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the daily summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDateArg(dateStr)
			if err != nil {
				return err
			}
			out, err := c.DailySummaryUseCase().Execute(cmd.Context(), usecase.DailySummaryInput{Date: date})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Summary for %s\n", out.Date)
			fmt.Fprintf(w, "  Tasks:    %d due, %d completed, %d overdue\n",
				out.TasksDue, out.TasksCompleted, out.TasksOverdue)
			fmt.Fprintf(w, "  Intake:   %d kcal (%dg protein, %dg carbs, %dg fats)\n",
				out.Nutrition.Calories, out.Nutrition.Protein, out.Nutrition.Carbs, out.Nutrition.Fats)
			fmt.Fprintf(w, "  Training: %d min, %d kcal burned\n",
				out.Workouts.Duration, out.Workouts.CaloriesBurned)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newStatsWeeklyCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Show the trailing seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.WeeklyStatsUseCase().Execute(cmd.Context(), usecase.WeeklyStatsInput{})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDONE\tTRAIN MIN\tKCAL IN\tKCAL OUT")
			for _, day := range out.Days {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
					day.Date, day.TasksCompleted, day.WorkoutMinutes,
					day.CaloriesConsumed, day.CaloriesBurned)
			}
			return w.Flush()
		},
	}
}
