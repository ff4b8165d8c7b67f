package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/usecase"
	"github.com/spf13/cobra"
)

// newMealCommand creates the meal command with its subcommands.
func newMealCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meal",
		Short: "Log and review nutrition",
	}
	cmd.AddCommand(
		newMealLogCommand(c),
		newMealListCommand(c),
		newMealDeleteCommand(c),
	)
	return cmd
}

func newMealLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type     string
		Date     string
		Time     string
		Notes    string
		Calories int
		Protein  int
		Carbs    int
		Fats     int
	}

	cmd := &cobra.Command{
		Use:   "log <name>",
		Short: "Log a meal",
		Long: `Log a meal with its macros.

Examples:
  fittrack meal log "Oatmeal with berries" --type breakfast --calories 420 --protein 14
  fittrack meal log "Chicken salad" --type lunch --calories 560 --date 2025-01-05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(opts.Date)
			if err != nil {
				return err
			}
			out, err := c.LogMealUseCase().Execute(cmd.Context(), usecase.LogMealInput{
				Name:     args[0],
				Type:     domain.MealType(opts.Type),
				Date:     date,
				Time:     opts.Time,
				Notes:    opts.Notes,
				Calories: opts.Calories,
				Protein:  opts.Protein,
				Carbs:    opts.Carbs,
				Fats:     opts.Fats,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal #%d\n", out.MealID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Meal type: breakfast, lunch, dinner, snack")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Time of day (HH:MM, display only)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Notes")
	cmd.Flags().IntVar(&opts.Calories, "calories", 0, "Calories")
	cmd.Flags().IntVar(&opts.Protein, "protein", 0, "Protein (g)")
	cmd.Flags().IntVar(&opts.Carbs, "carbs", 0, "Carbs (g)")
	cmd.Flags().IntVar(&opts.Fats, "fats", 0, "Fats (g)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newMealListCommand(c *app.Container) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meals of a day with macro totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDateArg(dateStr)
			if err != nil {
				return err
			}
			out, err := c.ListMealsUseCase().Execute(cmd.Context(), usecase.ListMealsInput{Date: date})
			if err != nil {
				return err
			}
			if len(out.Meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tTIME\tKCAL\tP\tC\tF\tNAME")
			for _, meal := range out.Meals {
				fmt.Fprintf(w, "#%d\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
					meal.ID, meal.Type, meal.Time,
					meal.Calories, meal.Protein, meal.Carbs, meal.Fats, meal.Name)
			}
			fmt.Fprintf(w, "\tTOTAL\t\t%d\t%d\t%d\t%d\t\n",
				out.Totals.Calories, out.Totals.Protein, out.Totals.Carbs, out.Totals.Fats)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newMealDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a meal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid meal ID %q", args[0])
			}
			if _, err := c.DeleteMealUseCase().Execute(cmd.Context(), usecase.DeleteMealInput{MealID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal #%d\n", id)
			return nil
		},
	}
}
