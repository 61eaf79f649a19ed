// ABOUTME: MCP server setup for the gymtrack data model.
// ABOUTME: Wires stores, optional persistence, and the deadline sweeper.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

// Persister receives mutated records so they survive the process. A nil
// Persister keeps everything in memory only.
type Persister interface {
	SaveWorkout(w *models.Workout) error
	DeleteWorkout(id string) error
	SaveMeasurement(m *models.Measurement) error
	SaveGoal(g *models.Goal) error
	SaveGoals(goals []*models.Goal) error
	SaveExercises(exercises []*models.SavedExercise) error
}

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer     *mcp.Server
	workouts      *store.WorkoutStore
	measurements  *store.MeasurementStore
	goals         *store.GoalStore
	persist       Persister
	sweepInterval time.Duration
}

// NewServer creates a new MCP server over the given stores. persist may be
// nil for purely in-memory operation.
func NewServer(workouts *store.WorkoutStore, measurements *store.MeasurementStore, goals *store.GoalStore, persist Persister, sweepInterval time.Duration) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gymtrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:     mcpServer,
		workouts:      workouts,
		measurements:  measurements,
		goals:         goals,
		persist:       persist,
		sweepInterval: sweepInterval,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport. The deadline sweeper
// runs for the lifetime of the server and stops when ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	sweeper := store.NewSweeper(s.goals, s.sweepInterval, func(transitioned []*models.Goal) {
		if s.persist != nil {
			_ = s.persist.SaveGoals(transitioned)
		}
	})
	go sweeper.Run(ctx)

	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
