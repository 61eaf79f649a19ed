// ABOUTME: CLI commands for the saved-exercise memory.
// ABOUTME: Supports list and search subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse remembered exercises",
	Long: `Browse the exercise memory.

Every exercise name recorded in a workout is remembered together with the
sets you last did for it. Matching is case-insensitive, so "squat" and
"Squat" are the same entry; the most recent spelling and sets win.

EXAMPLES:

  gymtrack exercise list          # Everything you've ever logged
  gymtrack exercise search press  # Entries containing "press"`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List remembered exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		printSavedExercises("")
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search remembered exercises by name fragment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printSavedExercises(args[0])
		return nil
	},
}

func printSavedExercises(query string) {
	matches := workouts.SearchExercises(query)
	if len(matches) == 0 {
		fmt.Println("No exercises found.")
		return
	}

	faint := color.New(color.Faint)
	for _, e := range matches {
		last := ""
		if len(e.LastSets) > 0 {
			last = formatSet(e.LastSets[len(e.LastSets)-1])
		}
		fmt.Printf("%s %s %s\n",
			padRight(e.Name, 24),
			faint.Sprint(e.LastUsed.Format("2006-01-02")),
			faint.Sprint(last))
	}
}

func init() {
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseSearchCmd)
	rootCmd.AddCommand(exerciseCmd)
}
