// ABOUTME: Root Cobra command for gymtrack CLI.
// ABOUTME: Loads config, hydrates stores from Charm KV, handles client lifecycle.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/charm"
	"github.com/pwojcik/gymtrack/internal/config"
	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

var (
	cfg         *config.Config
	charmClient *charm.Client

	workouts     = store.NewWorkoutStore()
	measurements = store.NewMeasurementStore()
	goals        = store.NewGoalStore()
)

var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "Personal gym training tracker",
	Long: `Gymtrack is a CLI tool for tracking workouts, body measurements, and goals.

WHAT IT TRACKS:

  Workouts       training sessions with exercises and sets (reps, weight, distance, time)
  Measurements   body weight plus eight circumference fields, with progress photos
  Goals          numeric goals with deadlines, progress history, and automatic state

QUICK START:

  $ gymtrack workout add                          # Log an empty workout for today
  $ gymtrack workout set <id> "Squat" -r 5 -w 100 # Add a set to it
  $ gymtrack measure add --weight 82.5            # Log your weight
  $ gymtrack goal add "Bench 100kg" -c 80 -t 100 --deadline 2026-12-31
  $ gymtrack goal progress <id> 85                # Record progress
  $ gymtrack workout list                         # Recent workouts

ANALYSIS:

  $ gymtrack analysis exercise "Squat" weight     # Best squat weight per workout
  $ gymtrack analysis measure waist               # Waist over time
  $ gymtrack analysis months 2025                 # Workouts per month

GOALS:

  A goal tracks a value toward a target by a deadline. The direction is
  inferred: target above the starting value means climb, below means cut.
  Reaching the target marks the goal achieved; missing the deadline marks it
  failed. Achieved and failed goals are frozen. Overdue goals are also swept
  automatically every minute while 'gymtrack mcp' runs.

SYNC (AUTOMATIC):

  Data lives in Charm KV and syncs across devices via Charm Cloud,
  E2E encrypted with your SSH key.

  $ gymtrack sync status    # Check sync status
  $ gymtrack sync now       # Force a sync
  $ gymtrack sync reset     # Re-seed local data from the cloud

MCP INTEGRATION:

  Run 'gymtrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records are stored in Charm KV at ~/.local/share/charm/kv/gymtrack.
  Set "backend": "memory" in the config to run without persistence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsDataInit(cmd) {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.GetBackend() == config.BackendMemory {
			return nil
		}

		charmClient, err = charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}

		if err := hydrateStores(); err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		// Settle overdue goals before the command sees them.
		if transitioned := goals.CheckDeadlines(); len(transitioned) > 0 {
			if err := charmClient.SaveGoals(transitioned); err != nil {
				color.Yellow("⚠ Failed to persist goal transitions: %v", err)
			}
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if charmClient != nil {
			return charmClient.Close()
		}
		return nil
	},
}

// skipsDataInit reports whether cmd runs without stores or a Charm client.
func skipsDataInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	// Profile commands only touch the local profile file.
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "profile" {
			return true
		}
	}
	return false
}

// hydrateStores loads all records from Charm KV into the in-memory stores.
func hydrateStores() error {
	ws, err := charmClient.LoadWorkouts()
	if err != nil {
		return err
	}
	saved, err := charmClient.LoadExercises()
	if err != nil {
		return err
	}
	workouts.Restore(ws, saved)

	ms, err := charmClient.LoadMeasurements()
	if err != nil {
		return err
	}
	measurements.Restore(ms)

	gs, err := charmClient.LoadGoals()
	if err != nil {
		return err
	}
	goals.Restore(gs)

	return nil
}

// Persistence helpers. All are no-ops when running on the memory backend.
// Failures are warnings, not errors: the in-memory store already holds the
// change and the next successful write will sync it.

func persistWorkout(w *models.Workout) {
	if charmClient == nil {
		return
	}
	if err := charmClient.SaveWorkout(w); err != nil {
		color.Yellow("⚠ Failed to persist workout: %v", err)
	}
	if err := charmClient.SaveExercises(workouts.SavedExercises()); err != nil {
		color.Yellow("⚠ Failed to persist exercise memory: %v", err)
	}
}

func persistWorkoutDelete(id string) {
	if charmClient == nil {
		return
	}
	if err := charmClient.DeleteWorkout(id); err != nil {
		color.Yellow("⚠ Failed to delete workout record: %v", err)
	}
}

func persistMeasurement(m *models.Measurement) {
	if charmClient == nil {
		return
	}
	if err := charmClient.SaveMeasurement(m); err != nil {
		color.Yellow("⚠ Failed to persist measurement: %v", err)
	}
}

func persistMeasurementDelete(id string) {
	if charmClient == nil {
		return
	}
	if err := charmClient.DeleteMeasurement(id); err != nil {
		color.Yellow("⚠ Failed to delete measurement record: %v", err)
	}
}

func persistGoal(g *models.Goal) {
	if charmClient == nil {
		return
	}
	if err := charmClient.SaveGoal(g); err != nil {
		color.Yellow("⚠ Failed to persist goal: %v", err)
	}
}

func persistGoalDelete(id string) {
	if charmClient == nil {
		return
	}
	if err := charmClient.DeleteGoal(id); err != nil {
		color.Yellow("⚠ Failed to delete goal record: %v", err)
	}
}
