// ABOUTME: MCP tool implementations for workouts, measurements, and goals.
// ABOUTME: Provides CRUD operations plus series queries over the stores.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pwojcik/gymtrack/internal/analysis"
	"github.com/pwojcik/gymtrack/internal/models"
)

func (s *Server) registerTools() {
	// add_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Record a workout session with exercises and sets",
	}, s.handleAddWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with all its exercises and sets",
	}, s.handleGetWorkout)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	// add_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_measurement",
		Description: "Record a body measurement entry (weight, chest, waist, etc.)",
	}, s.handleAddMeasurement)

	// list_measurements
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_measurements",
		Description: "List recent body measurements, newest first",
	}, s.handleListMeasurements)

	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a goal with a current value, target value, and deadline",
	}, s.handleAddGoal)

	// update_goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal_progress",
		Description: "Record a new progress value for a goal",
	}, s.handleUpdateGoalProgress)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals with their state (active, achieved, failed)",
	}, s.handleListGoals)

	// search_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Search previously used exercises by name fragment",
	}, s.handleSearchExercises)

	// exercise_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_series",
		Description: "Best value per workout for one exercise and metric (reps, weight, distance, time)",
	}, s.handleExerciseSeries)

	// measurement_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "measurement_series",
		Description: "Value over time for one measurement field",
	}, s.handleMeasurementSeries)

	// monthly_workout_counts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "monthly_workout_counts",
		Description: "Number of workouts per month for a given year",
	}, s.handleMonthlyWorkoutCounts)
}

// Tool input/output types

type setInput struct {
	Reps     float64 `json:"reps,omitempty" jsonschema:"Repetition count"`
	Weight   float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Distance float64 `json:"distance,omitempty" jsonschema:"Distance in meters"`
	Time     float64 `json:"time,omitempty" jsonschema:"Duration in seconds"`
}

type exerciseInput struct {
	Name string     `json:"name" jsonschema:"Exercise name"`
	Sets []setInput `json:"sets,omitempty" jsonschema:"Sets performed"`
}

type addWorkoutInput struct {
	Date      string          `json:"date,omitempty" jsonschema:"Workout date (ISO 8601), defaults to now"`
	Exercises []exerciseInput `json:"exercises,omitempty" jsonschema:"Exercises performed"`
}

type workoutOutput struct {
	ID        string `json:"id"`
	Exercises int    `json:"exercises"`
	Message   string `json:"message"`
}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Record ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addMeasurementInput struct {
	Date      string  `json:"date,omitempty" jsonschema:"Measurement date (ISO 8601), defaults to now"`
	Weight    float64 `json:"weight,omitempty" jsonschema:"Body weight in kg"`
	Shoulders float64 `json:"shoulders,omitempty" jsonschema:"Shoulder circumference in cm"`
	Chest     float64 `json:"chest,omitempty" jsonschema:"Chest circumference in cm"`
	Biceps    float64 `json:"biceps,omitempty" jsonschema:"Biceps circumference in cm"`
	Forearm   float64 `json:"forearm,omitempty" jsonschema:"Forearm circumference in cm"`
	Abdomen   float64 `json:"abdomen,omitempty" jsonschema:"Abdomen circumference in cm"`
	Waist     float64 `json:"waist,omitempty" jsonschema:"Waist circumference in cm"`
	Thigh     float64 `json:"thigh,omitempty" jsonschema:"Thigh circumference in cm"`
	Calf      float64 `json:"calf,omitempty" jsonschema:"Calf circumference in cm"`
}

type measurementOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type addGoalInput struct {
	Title        string  `json:"title" jsonschema:"Goal title"`
	Description  string  `json:"description,omitempty" jsonschema:"Optional details"`
	Unit         string  `json:"unit,omitempty" jsonschema:"Unit of the tracked value (kg, km, reps, ...)"`
	CurrentValue float64 `json:"current_value" jsonschema:"Starting value"`
	TargetValue  float64 `json:"target_value" jsonschema:"Target value"`
	Deadline     string  `json:"deadline" jsonschema:"Deadline (ISO 8601)"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	State   string `json:"state"`
	Message string `json:"message"`
}

type updateGoalProgressInput struct {
	ID    string  `json:"id" jsonschema:"Goal ID or prefix"`
	Value float64 `json:"value" jsonschema:"New progress value"`
}

type searchExercisesInput struct {
	Query string `json:"query,omitempty" jsonschema:"Name fragment, empty lists all"`
}

type exerciseSeriesInput struct {
	Exercise string `json:"exercise" jsonschema:"Exact exercise name"`
	Metric   string `json:"metric" jsonschema:"Metric to chart (reps, weight, distance, time)"`
	Start    string `json:"start,omitempty" jsonschema:"Range start date (ISO 8601)"`
	End      string `json:"end,omitempty" jsonschema:"Range end date (ISO 8601), inclusive"`
}

type measurementSeriesInput struct {
	Field string `json:"field" jsonschema:"Measurement field (weight, shoulders, chest, biceps, forearm, abdomen, waist, thigh, calf)"`
	Start string `json:"start,omitempty" jsonschema:"Range start date (ISO 8601)"`
	End   string `json:"end,omitempty" jsonschema:"Range end date (ISO 8601), inclusive"`
}

type monthlyCountsInput struct {
	Year int `json:"year" jsonschema:"Calendar year"`
}

// Tool handlers

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	date := time.Now()
	if input.Date != "" {
		t, err := parseToolTime(input.Date)
		if err != nil {
			return nil, workoutOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		date = t
	}

	w := models.NewWorkout(date)
	for _, e := range input.Exercises {
		ex := models.Exercise{ID: uuid.New(), Name: e.Name}
		for _, st := range e.Sets {
			ex.Sets = append(ex.Sets, models.ExerciseSet{
				ID:       uuid.New(),
				Reps:     st.Reps,
				Weight:   st.Weight,
				Distance: st.Distance,
				Time:     st.Time,
			})
		}
		w.Exercises = append(w.Exercises, ex)
	}

	added := s.workouts.Add(w)
	if s.persist != nil {
		if err := s.persist.SaveWorkout(added); err != nil {
			return nil, workoutOutput{}, fmt.Errorf("failed to save workout: %w", err)
		}
		_ = s.persist.SaveExercises(s.workouts.SavedExercises())
	}

	return nil, workoutOutput{
		ID:        added.ID.String()[:8],
		Exercises: len(added.Exercises),
		Message:   fmt.Sprintf("Added workout with %d exercise(s) (ID: %s)", len(added.Exercises), added.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts := s.workouts.List()
	if len(workouts) > input.Limit {
		workouts = workouts[:input.Limit]
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	return nil, workouts, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	w, err := s.workouts.Find(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("workout not found: %s", input.ID)
	}

	return nil, w, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.workouts.Find(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.ID)
	}

	s.workouts.Delete(w.ID.String())
	if s.persist != nil {
		if err := s.persist.DeleteWorkout(w.ID.String()); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
		}
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", w.ID.String()[:8]),
	}, nil
}

func (s *Server) handleAddMeasurement(ctx context.Context, req *mcp.CallToolRequest, input addMeasurementInput) (*mcp.CallToolResult, measurementOutput, error) {
	date := time.Now()
	if input.Date != "" {
		t, err := parseToolTime(input.Date)
		if err != nil {
			return nil, measurementOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		date = t
	}

	m := models.NewMeasurement(date)
	m.Weight = input.Weight
	m.Shoulders = input.Shoulders
	m.Chest = input.Chest
	m.Biceps = input.Biceps
	m.Forearm = input.Forearm
	m.Abdomen = input.Abdomen
	m.Waist = input.Waist
	m.Thigh = input.Thigh
	m.Calf = input.Calf

	added := s.measurements.Add(m)
	if s.persist != nil {
		if err := s.persist.SaveMeasurement(added); err != nil {
			return nil, measurementOutput{}, fmt.Errorf("failed to save measurement: %w", err)
		}
	}

	return nil, measurementOutput{
		ID:      added.ID.String()[:8],
		Message: fmt.Sprintf("Added measurement (ID: %s)", added.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMeasurements(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	measurements := s.measurements.List()
	if len(measurements) > input.Limit {
		measurements = measurements[:input.Limit]
	}

	if len(measurements) == 0 {
		return nil, map[string]interface{}{"message": "No measurements found."}, nil
	}

	return nil, measurements, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	deadline, err := parseToolTime(input.Deadline)
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("invalid deadline: %s", input.Deadline)
	}

	g := models.NewGoal(input.Title, input.Unit, input.CurrentValue, input.TargetValue, deadline)
	if input.Description != "" {
		g.WithDescription(input.Description)
	}

	added := s.goals.Add(g)
	if s.persist != nil {
		if err := s.persist.SaveGoal(added); err != nil {
			return nil, goalOutput{}, fmt.Errorf("failed to save goal: %w", err)
		}
	}

	return nil, goalOutput{
		ID:      added.ID.String()[:8],
		Title:   added.Title,
		State:   string(added.State()),
		Message: fmt.Sprintf("Added goal %q: %.2f → %.2f by %s (ID: %s)", added.Title, added.CurrentValue, added.TargetValue, deadline.Format("2006-01-02"), added.ID.String()[:8]),
	}, nil
}

func (s *Server) handleUpdateGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input updateGoalProgressInput) (*mcp.CallToolResult, goalOutput, error) {
	g, err := s.goals.Find(input.ID)
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}
	if g.Terminal() {
		return nil, goalOutput{}, fmt.Errorf("goal %q is already %s", g.Title, g.State())
	}

	s.goals.UpdateProgress(g.ID.String(), input.Value)
	updated, _ := s.goals.Get(g.ID.String())
	if s.persist != nil {
		if err := s.persist.SaveGoal(updated); err != nil {
			return nil, goalOutput{}, fmt.Errorf("failed to save goal: %w", err)
		}
	}

	return nil, goalOutput{
		ID:      updated.ID.String()[:8],
		Title:   updated.Title,
		State:   string(updated.State()),
		Message: fmt.Sprintf("Goal %q now at %.2f %s (%s)", updated.Title, updated.CurrentValue, updated.Unit, updated.State()),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	goals := s.goals.List()
	if len(goals) > input.Limit {
		goals = goals[:input.Limit]
	}

	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}

	type goalRow struct {
		*models.Goal
		CurrentState models.GoalState `json:"state"`
	}
	rows := make([]goalRow, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, goalRow{Goal: g, CurrentState: g.State()})
	}

	return nil, rows, nil
}

func (s *Server) handleSearchExercises(ctx context.Context, req *mcp.CallToolRequest, input searchExercisesInput) (*mcp.CallToolResult, any, error) {
	matches := s.workouts.SearchExercises(input.Query)
	if len(matches) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}

	return nil, matches, nil
}

func (s *Server) handleExerciseSeries(ctx context.Context, req *mcp.CallToolRequest, input exerciseSeriesInput) (*mcp.CallToolResult, any, error) {
	if !analysis.IsValidExerciseMetric(input.Metric) {
		return nil, nil, fmt.Errorf("unknown metric: %s", input.Metric)
	}

	r, err := parseToolRange(input.Start, input.End)
	if err != nil {
		return nil, nil, err
	}

	points := analysis.ExerciseSeries(s.workouts.List(), input.Exercise, analysis.ExerciseMetric(input.Metric), r)
	if len(points) == 0 {
		return nil, map[string]interface{}{"message": "No data points in range."}, nil
	}

	return nil, points, nil
}

func (s *Server) handleMeasurementSeries(ctx context.Context, req *mcp.CallToolRequest, input measurementSeriesInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidMeasurementField(input.Field) {
		return nil, nil, fmt.Errorf("unknown measurement field: %s", input.Field)
	}

	r, err := parseToolRange(input.Start, input.End)
	if err != nil {
		return nil, nil, err
	}

	points := analysis.MeasurementSeries(s.measurements.List(), models.MeasurementField(input.Field), r)
	if len(points) == 0 {
		return nil, map[string]interface{}{"message": "No data points in range."}, nil
	}

	return nil, points, nil
}

func (s *Server) handleMonthlyWorkoutCounts(ctx context.Context, req *mcp.CallToolRequest, input monthlyCountsInput) (*mcp.CallToolResult, any, error) {
	counts := analysis.MonthlyWorkoutCounts(s.workouts.List(), input.Year)

	result := make(map[string]int, 12)
	for i, c := range counts {
		result[time.Month(i+1).String()] = c
	}

	return nil, result, nil
}

func parseToolTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
	}
	return t, err
}

func parseToolRange(start, end string) (*analysis.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("start and end must be given together")
	}

	from, err := parseToolTime(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %s", start)
	}
	to, err := parseToolTime(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %s", end)
	}

	return &analysis.DateRange{Start: from, End: to}, nil
}
