// ABOUTME: CLI commands for managing goals and their lifecycle.
// ABOUTME: Supports add, progress, edit, done, list, show, delete, and check.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

var (
	goalDescription string
	goalUnit        string
	goalCurrent     float64
	goalTarget      float64
	goalDeadline    string
	goalTitle       string
	goalLimit       int
	goalShowAll     bool
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage goals",
	Long: `Track numeric goals with deadlines.

A goal moves a value from where it started toward a target by a deadline.
The direction is inferred from the numbers: a target above the starting
value means you're climbing (more reps, more weight), a target below means
you're cutting (less body weight, faster time).

LIFECYCLE:

  active     still in play
  achieved   the target was reached before the deadline
  failed     the deadline passed without reaching the target

Achieved and failed goals are frozen: progress updates and completion are
ignored, though metadata edits (title, unit, deadline, target) still work.
Overdue goals are settled on every command start, and swept every minute
while 'gymtrack mcp' runs.

EXAMPLES:

  gymtrack goal add "Bench 100kg" -c 80 -t 100 -u kg --deadline 2026-12-31
  gymtrack goal add "Cut to 80kg" -c 86 -t 80 -u kg --deadline 2026-06-01
  gymtrack goal progress abc123 85
  gymtrack goal show abc123
  gymtrack goal list --all`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new goal",
	Long: `Add a new goal.

The starting value (--current), target (--target), and deadline are
required. The starting value seeds the progress history.

Examples:
  gymtrack goal add "Bench 100kg" -c 80 -t 100 -u kg --deadline 2026-12-31
  gymtrack goal add "Run 10k under 50min" -c 56 -t 50 -u min --deadline 2026-09-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deadline, err := parseDate(goalDeadline)
		if err != nil {
			return fmt.Errorf("invalid deadline: %s", goalDeadline)
		}

		g := models.NewGoal(args[0], goalUnit, goalCurrent, goalTarget, deadline)
		if goalDescription != "" {
			g.WithDescription(goalDescription)
		}

		added := goals.Add(g)
		persistGoal(added)

		color.Green("✓ Added goal %q", added.Title)
		fmt.Printf("  ID: %s\n", added.ID.String()[:8])
		fmt.Printf("  %.2f → %.2f %s by %s\n",
			added.CurrentValue, added.TargetValue, added.Unit,
			added.Deadline.Format("2006-01-02"))

		return nil
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id> <value>",
	Short: "Record progress toward a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := goals.Find(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		if g.Terminal() {
			return fmt.Errorf("goal %q is already %s", g.Title, g.State())
		}

		goals.UpdateProgress(g.ID.String(), value)
		updated, _ := goals.Get(g.ID.String())
		persistGoal(updated)

		switch updated.State() {
		case models.GoalAchieved:
			color.Green("★ Goal achieved: %s", updated.Title)
		case models.GoalFailed:
			color.Red("✗ Deadline passed: %s", updated.Title)
		default:
			color.Green("✓ Progress recorded")
		}
		fmt.Printf("  %.2f %s (target %.2f)\n", updated.CurrentValue, updated.Unit, updated.TargetValue)

		return nil
	},
}

var goalEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit goal metadata",
	Long: `Edit a goal's title, description, unit, target, or deadline.

Edits never touch the progress history or the goal state, and they work on
achieved and failed goals too.

Examples:
  gymtrack goal edit abc123 --title "Bench 105kg" --target 105
  gymtrack goal edit abc123 --deadline 2027-06-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := goals.Find(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		var patch store.GoalPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &goalTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &goalDescription
		}
		if cmd.Flags().Changed("unit") {
			patch.Unit = &goalUnit
		}
		if cmd.Flags().Changed("target") {
			patch.TargetValue = &goalTarget
		}
		if cmd.Flags().Changed("deadline") {
			t, err := parseDate(goalDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline: %s", goalDeadline)
			}
			patch.Deadline = &t
		}

		goals.Edit(g.ID.String(), patch)
		updated, _ := goals.Get(g.ID.String())
		persistGoal(updated)

		color.Green("✓ Updated goal %s", updated.ID.String()[:8])
		fmt.Printf("  %s: %.2f → %.2f %s by %s\n",
			updated.Title, updated.CurrentValue, updated.TargetValue, updated.Unit,
			updated.Deadline.Format("2006-01-02"))

		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a goal achieved",
	Long: `Mark a goal achieved regardless of its current value.

Already achieved or failed goals are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := goals.Find(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		if g.Terminal() {
			fmt.Printf("Goal %q is already %s.\n", g.Title, g.State())
			return nil
		}

		goals.Complete(g.ID.String())
		updated, _ := goals.Get(g.ID.String())
		persistGoal(updated)

		color.Green("★ Goal achieved: %s", updated.Title)

		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := goals.List()

		shown := 0
		faint := color.New(color.Faint)
		for _, g := range list {
			if !goalShowAll && g.Terminal() {
				continue
			}
			if shown >= goalLimit {
				break
			}
			shown++

			fmt.Printf("%s %s %s %.2f/%.2f %s (%s)\n",
				faint.Sprint(g.ID.String()[:8]),
				stateBadge(g.State()),
				padRight(truncate(g.Title, 30), 30),
				g.CurrentValue, g.TargetValue, g.Unit,
				faint.Sprint("by "+g.Deadline.Format("2006-01-02")))
		}

		if shown == 0 {
			fmt.Println("No goals found.")
		}

		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show goal details and progress history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := goals.Find(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		fmt.Printf("Goal: %s\n", g.Title)
		if g.Description != "" {
			fmt.Printf("Description: %s\n", g.Description)
		}
		fmt.Printf("State: %s\n", g.State())
		fmt.Printf("Progress: %.2f → %.2f %s\n", g.CurrentValue, g.TargetValue, g.Unit)
		fmt.Printf("Deadline: %s\n", g.Deadline.Format("2006-01-02"))
		if g.CompletedAt != nil {
			fmt.Printf("Settled: %s\n", g.CompletedAt.Format("2006-01-02 15:04"))
		}

		if len(g.History) > 0 {
			fmt.Println("\nHistory (newest first):")
			faint := color.New(color.Faint)
			for _, p := range g.History {
				fmt.Printf("  %s %.2f %s\n",
					faint.Sprint(p.RecordedAt.Format("2006-01-02 15:04")),
					p.Value, g.Unit)
			}
		}

		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := goals.Find(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		goals.Delete(g.ID.String())
		persistGoalDelete(g.ID.String())

		color.Yellow("✗ Deleted goal %q", g.Title)

		return nil
	},
}

var goalCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Settle overdue goals",
	Long: `Settle overdue goals now: every active goal whose deadline has passed
without the target being reached is marked failed.

This also runs automatically on every command start, so check mostly
reports the current standing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transitioned := goals.CheckDeadlines()
		if charmClient != nil && len(transitioned) > 0 {
			if err := charmClient.SaveGoals(transitioned); err != nil {
				color.Yellow("⚠ Failed to persist goal transitions: %v", err)
			}
		}

		for _, g := range transitioned {
			color.Red("✗ Deadline passed: %s", g.Title)
		}

		counts := map[models.GoalState]int{}
		for _, g := range goals.List() {
			counts[g.State()]++
		}
		fmt.Printf("%d active, %d achieved, %d failed\n",
			counts[models.GoalActive], counts[models.GoalAchieved], counts[models.GoalFailed])

		return nil
	},
}

func stateBadge(s models.GoalState) string {
	switch s {
	case models.GoalAchieved:
		return color.GreenString("★")
	case models.GoalFailed:
		return color.RedString("✗")
	default:
		return color.CyanString("·")
	}
}

func init() {
	goalAddCmd.Flags().Float64VarP(&goalCurrent, "current", "c", 0, "starting value")
	goalAddCmd.Flags().Float64VarP(&goalTarget, "target", "t", 0, "target value")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "deadline (YYYY-MM-DD)")
	goalAddCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "unit of the tracked value")
	goalAddCmd.Flags().StringVar(&goalDescription, "description", "", "optional details")
	_ = goalAddCmd.MarkFlagRequired("target")
	_ = goalAddCmd.MarkFlagRequired("deadline")

	goalEditCmd.Flags().StringVar(&goalTitle, "title", "", "new title")
	goalEditCmd.Flags().StringVar(&goalDescription, "description", "", "new description")
	goalEditCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "new unit")
	goalEditCmd.Flags().Float64VarP(&goalTarget, "target", "t", 0, "new target value")
	goalEditCmd.Flags().StringVar(&goalDeadline, "deadline", "", "new deadline (YYYY-MM-DD)")

	goalListCmd.Flags().IntVarP(&goalLimit, "limit", "n", 20, "max number of results")
	goalListCmd.Flags().BoolVarP(&goalShowAll, "all", "a", false, "include achieved and failed goals")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalEditCmd)
	goalCmd.AddCommand(goalDoneCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(goalCheckCmd)
	rootCmd.AddCommand(goalCmd)
}
