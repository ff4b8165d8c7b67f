package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fittrack/fittrack/internal/app"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/usecase"
	"github.com/spf13/cobra"
)

// newWorkoutCommand creates the workout command with its subcommands.
func newWorkoutCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Log and review training sessions",
	}
	cmd.AddCommand(
		newWorkoutLogCommand(c),
		newWorkoutListCommand(c),
		newWorkoutDeleteCommand(c),
	)
	return cmd
}

// parseExerciseSpec decodes "name:sets:reps[:weight]".
func parseExerciseSpec(spec string) (domain.Exercise, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.Exercise{}, fmt.Errorf("invalid exercise %q (expected name:sets:reps[:weight])", spec)
	}
	sets, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("invalid sets in %q", spec)
	}
	reps, err := strconv.Atoi(parts[2])
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("invalid reps in %q", spec)
	}
	ex := domain.Exercise{Name: parts[0], Sets: sets, Reps: reps}
	if len(parts) == 4 {
		weight, err := strconv.Atoi(parts[3])
		if err != nil {
			return domain.Exercise{}, fmt.Errorf("invalid weight in %q", spec)
		}
		ex.Weight = weight
	}
	return ex, nil
}

func newWorkoutLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type      string
		Intensity string
		Date      string
		Time      string
		Notes     string
		Exercises []string
		Duration  int
		Calories  int
	}

	cmd := &cobra.Command{
		Use:   "log <name>",
		Short: "Log a workout",
		Long: `Log a training session.

Examples:
  fittrack workout log "Easy run" --type cardio --duration 35 --calories 320
  fittrack workout log "Upper body" --type strength --intensity high \
    --exercise "Bench press:4:8:60" --exercise "Pull-ups:4:10"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(opts.Date)
			if err != nil {
				return err
			}
			exercises := make([]domain.Exercise, 0, len(opts.Exercises))
			for _, spec := range opts.Exercises {
				ex, err := parseExerciseSpec(spec)
				if err != nil {
					return err
				}
				exercises = append(exercises, ex)
			}

			out, err := c.LogWorkoutUseCase().Execute(cmd.Context(), usecase.LogWorkoutInput{
				Name:           args[0],
				Type:           opts.Type,
				Intensity:      domain.Intensity(opts.Intensity),
				Date:           date,
				Time:           opts.Time,
				Notes:          opts.Notes,
				Exercises:      exercises,
				Duration:       opts.Duration,
				CaloriesBurned: opts.Calories,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout #%d\n", out.WorkoutID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Workout type (cardio, strength, ...)")
	cmd.Flags().StringVarP(&opts.Intensity, "intensity", "i", "", "Intensity: low, medium, high")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Time of day (HH:MM, display only)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Notes")
	cmd.Flags().StringArrayVarP(&opts.Exercises, "exercise", "e", nil, "Exercise as name:sets:reps[:weight] (repeatable)")
	cmd.Flags().IntVarP(&opts.Duration, "duration", "m", 0, "Duration in minutes")
	cmd.Flags().IntVar(&opts.Calories, "calories", 0, "Calories burned")
	return cmd
}

func newWorkoutListCommand(c *app.Container) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workouts of a day with totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDateArg(dateStr)
			if err != nil {
				return err
			}
			out, err := c.ListWorkoutsUseCase().Execute(cmd.Context(), usecase.ListWorkoutsInput{Date: date})
			if err != nil {
				return err
			}
			if len(out.Workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tINTENSITY\tMIN\tKCAL\tNAME")
			for _, workout := range out.Workouts {
				fmt.Fprintf(w, "#%d\t%s\t%s\t%d\t%d\t%s\n",
					workout.ID, workout.Type, workout.Intensity,
					workout.Duration, workout.CaloriesBurned, workout.Name)
			}
			fmt.Fprintf(w, "\tTOTAL\t\t%d\t%d\t\n", out.Totals.Duration, out.Totals.CaloriesBurned)
			if err := w.Flush(); err != nil {
				return err
			}

			for _, workout := range out.Workouts {
				if len(workout.Exercises) == 0 {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d exercises:\n", workout.ID)
				for _, ex := range workout.Exercises {
					if ex.Weight > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s %dx%d @%dkg\n", ex.Name, ex.Sets, ex.Reps, ex.Weight)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s %dx%d\n", ex.Name, ex.Sets, ex.Reps)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newWorkoutDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workout entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid workout ID %q", args[0])
			}
			if _, err := c.DeleteWorkoutUseCase().Execute(cmd.Context(), usecase.DeleteWorkoutInput{WorkoutID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout #%d\n", id)
			return nil
		},
	}
}
