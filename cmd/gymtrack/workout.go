// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, set, list, show, and delete subcommands.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

var (
	workoutDate    string
	workoutLimit   int
	setReps        float64
	setWeight      float64
	setDistance    float64
	setTimeSeconds float64
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Track workout sessions made of exercises and sets.

A workout is dated and holds any number of exercises. Each exercise holds
sets, and each set can record reps, weight (kg), distance (meters), and time
(seconds) in any combination.

WORKFLOW:

  1. Create a workout:   gymtrack workout add --date 2025-03-03
  2. Add sets to it:     gymtrack workout set abc123 "Squat" -r 5 -w 100
  3. View the details:   gymtrack workout show abc123

COMMANDS:

  add      Create a new workout
  set      Add a set to an exercise in a workout
  edit     Change a workout's date
  list     List recent workouts
  show     View a workout with all exercises and sets
  delete   Delete a workout

Exercise names are freeform and remembered: every name you use is saved with
its last sets, so the next 'workout set' can be autocompleted from
'exercise search'.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new workout",
	Long: `Add a new workout.

Examples:
  gymtrack workout add                     # Dated now
  gymtrack workout add --date 2025-03-03   # Backdated`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if workoutDate != "" {
			t, err := parseDate(workoutDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", workoutDate)
			}
			date = t
		}

		w := workouts.Add(models.NewWorkout(date))
		persistWorkout(w)

		color.Green("✓ Added workout")
		fmt.Printf("  ID: %s\n", w.ID.String()[:8])
		fmt.Printf("  Date: %s\n", w.Date.Format("2006-01-02"))

		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <workout-id> <exercise>",
	Short: "Add a set to an exercise in a workout",
	Long: `Add a set to the named exercise within a workout, creating the
exercise if the workout doesn't have it yet.

Examples:
  gymtrack workout set abc123 "Squat" -r 5 -w 100
  gymtrack workout set abc123 "Running" --distance 5 --time 1500
  gymtrack workout set abc123 "Plank" --time 90`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workouts.Find(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}
		name := args[1]

		set := models.ExerciseSet{
			ID:       uuid.New(),
			Reps:     setReps,
			Weight:   setWeight,
			Distance: setDistance,
			Time:     setTimeSeconds,
		}

		exercises := w.Exercises
		found := false
		for i := range exercises {
			if exercises[i].Name == name {
				exercises[i].Sets = append(exercises[i].Sets, set)
				found = true
				break
			}
		}
		if !found {
			exercises = append(exercises, models.Exercise{
				ID:   uuid.New(),
				Name: name,
				Sets: []models.ExerciseSet{set},
			})
		}

		workouts.Update(w.ID.String(), store.WorkoutPatch{Exercises: &exercises})
		updated, _ := workouts.Get(w.ID.String())
		persistWorkout(updated)

		color.Green("✓ Added set to %s", name)
		fmt.Printf("  %s\n", formatSet(set))

		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workout's date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workouts.Find(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}
		if workoutDate == "" {
			return fmt.Errorf("--date is required")
		}

		t, err := parseDate(workoutDate)
		if err != nil {
			return fmt.Errorf("invalid date: %s", workoutDate)
		}

		workouts.Update(w.ID.String(), store.WorkoutPatch{Date: &t})
		updated, _ := workouts.Get(w.ID.String())
		persistWorkout(updated)

		color.Green("✓ Updated workout %s", updated.ID.String()[:8])
		fmt.Printf("  Date: %s\n", updated.Date.Format("2006-01-02"))

		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := workouts.List()
		if len(list) > workoutLimit {
			list = list[:workoutLimit]
		}

		if len(list) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range list {
			names := make([]string, 0, len(w.Exercises))
			for _, ex := range w.Exercises {
				names = append(names, ex.Name)
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.Date.Format("2006-01-02")),
				truncate(strings.Join(names, ", "), 60))
		}

		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workouts.Find(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		fmt.Printf("Workout: %s\n", w.ID.String()[:8])
		fmt.Printf("Date: %s\n", w.Date.Format("2006-01-02"))

		for _, ex := range w.Exercises {
			fmt.Printf("\n%s\n", ex.Name)
			for i, set := range ex.Sets {
				fmt.Printf("  %d. %s\n", i+1, formatSet(set))
			}
		}

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workouts.Find(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		workouts.Delete(w.ID.String())
		persistWorkoutDelete(w.ID.String())

		color.Yellow("✗ Deleted workout")
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(w.ID.String()[:8]),
			w.Date.Format("2006-01-02"))

		return nil
	},
}

// formatSet renders the non-zero measures of a set.
func formatSet(set models.ExerciseSet) string {
	var parts []string
	if set.Reps > 0 {
		parts = append(parts, fmt.Sprintf("%g reps", set.Reps))
	}
	if set.Weight > 0 {
		parts = append(parts, fmt.Sprintf("%g kg", set.Weight))
	}
	if set.Distance > 0 {
		parts = append(parts, fmt.Sprintf("%g m", set.Distance))
	}
	if set.Time > 0 {
		parts = append(parts, fmt.Sprintf("%gs", set.Time))
	}
	if len(parts) == 0 {
		return "(empty set)"
	}
	return strings.Join(parts, " × ")
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
	}
	return t, err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	workoutAddCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "workout date (YYYY-MM-DD)")

	workoutSetCmd.Flags().Float64VarP(&setReps, "reps", "r", 0, "repetition count")
	workoutSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "weight in kg")
	workoutSetCmd.Flags().Float64Var(&setDistance, "distance", 0, "distance in meters")
	workoutSetCmd.Flags().Float64Var(&setTimeSeconds, "time", 0, "duration in seconds")

	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutEditCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "new workout date (YYYY-MM-DD)")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
