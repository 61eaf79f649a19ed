// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your training data
through a standardized protocol. The server communicates via stdin/stdout.

While the server runs, overdue goals are swept automatically on the
configured interval (60 seconds by default).

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "gymtrack": {
        "command": "gymtrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_workout             Record a workout with exercises and sets
  list_workouts           List recent workouts
  get_workout             Get a workout with all its details
  delete_workout          Delete a workout
  add_measurement         Record a body measurement entry
  list_measurements       List recent measurements
  add_goal                Create a goal
  update_goal_progress    Record progress toward a goal
  list_goals              List goals with their states
  search_exercises        Search the exercise memory
  exercise_series         Best value per workout for one exercise
  measurement_series      One measurement field over time
  monthly_workout_counts  Workouts per month for a year

AVAILABLE RESOURCES:

  gymtrack://summary          Training dashboard
  gymtrack://active-goals     Goals still in play
  gymtrack://recent-workouts  The 10 most recent workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := time.Duration(cfg.GetSweepIntervalSeconds()) * time.Second

		server, err := mcp.NewServer(workouts, measurements, goals, mcpPersister(), interval)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

// mcpPersister returns the charm client as an mcp.Persister, or nil on the
// memory backend. The nil interface must not wrap a nil *charm.Client.
func mcpPersister() mcp.Persister {
	if charmClient == nil {
		return nil
	}
	return charmClient
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
