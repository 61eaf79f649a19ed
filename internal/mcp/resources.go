// ABOUTME: MCP resource implementations for the gymtrack data model.
// ABOUTME: Provides gymtrack://summary, gymtrack://active-goals, and gymtrack://recent-workouts.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pwojcik/gymtrack/internal/analysis"
	"github.com/pwojcik/gymtrack/internal/models"
)

func (s *Server) registerResources() {
	// gymtrack://summary - Dashboard with latest measurement, goal states, workout counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gymtrack://summary",
		Name:        "Training Summary Dashboard",
		Description: "Latest measurement, goal states, and this year's workout counts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// gymtrack://active-goals - Goals still in play
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gymtrack://active-goals",
		Name:        "Active Goals",
		Description: "Goals that are neither achieved nor failed",
		MIMEType:    "application/json",
	}, s.handleActiveGoalsResource)

	// gymtrack://recent-workouts - Last 10 workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gymtrack://recent-workouts",
		Name:        "Recent Workouts",
		Description: "The 10 most recent workouts with exercises and sets",
		MIMEType:    "application/json",
	}, s.handleRecentWorkoutsResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts := s.workouts.List()
	measurements := s.measurements.List()
	goals := s.goals.List()

	var latestMeasurement map[string]interface{}
	if len(measurements) > 0 {
		m := measurements[0]
		fields := make(map[string]interface{})
		for _, f := range models.AllMeasurementFields {
			if v := m.FieldValue(f); v != 0 {
				fields[string(f)] = map[string]interface{}{
					"value": v,
					"unit":  models.MeasurementFieldUnits[f],
				}
			}
		}
		latestMeasurement = map[string]interface{}{
			"date":   m.Date.Format("2006-01-02"),
			"fields": fields,
		}
	}

	goalStates := map[string]int{}
	for _, g := range goals {
		goalStates[string(g.State())]++
	}

	year := time.Now().Year()
	counts := analysis.MonthlyWorkoutCounts(workouts, year)
	monthly := make(map[string]int, 12)
	for i, c := range counts {
		monthly[time.Month(i+1).String()] = c
	}

	result := map[string]interface{}{
		"generated_at":       time.Now().Format(time.RFC3339),
		"latest_measurement": latestMeasurement,
		"goal_states":        goalStates,
		"workouts_by_month":  monthly,
		"summary": map[string]int{
			"total_workouts":     len(workouts),
			"total_measurements": len(measurements),
			"total_goals":        len(goals),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "gymtrack://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleActiveGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var active []*models.Goal
	for _, g := range s.goals.List() {
		if !g.Terminal() {
			active = append(active, g)
		}
	}

	result := map[string]interface{}{
		"goals": active,
		"count": len(active),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "gymtrack://active-goals",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentWorkoutsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts := s.workouts.List()
	if len(workouts) > 10 {
		workouts = workouts[:10]
	}

	result := map[string]interface{}{
		"workouts": workouts,
		"count":    len(workouts),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "gymtrack://recent-workouts",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
