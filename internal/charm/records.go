// ABOUTME: Record persistence for workouts, measurements, goals, and exercises.
// ABOUTME: Save/Load/Delete per entity type; stores hydrate from LoadX on start.
package charm

import (
	"fmt"
	"sort"

	"github.com/pwojcik/gymtrack/internal/models"
)

// SaveWorkout upserts a workout record.
func (c *Client) SaveWorkout(w *models.Workout) error {
	data, err := marshalJSON(w)
	if err != nil {
		return fmt.Errorf("marshal workout: %w", err)
	}
	return c.set(WorkoutPrefix+w.ID.String(), data)
}

// DeleteWorkout removes a workout record by full id.
func (c *Client) DeleteWorkout(id string) error {
	return c.delete(WorkoutPrefix + id)
}

// LoadWorkouts retrieves all persisted workouts, most recently created first.
func (c *Client) LoadWorkouts() ([]*models.Workout, error) {
	allData, err := c.listByPrefix(WorkoutPrefix)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	var workouts []*models.Workout
	for _, data := range allData {
		w, err := unmarshalJSON[models.Workout](data)
		if err != nil {
			continue // Skip invalid entries
		}
		workouts = append(workouts, w)
	}
	sortByCreatedAt(workouts, func(w *models.Workout) int64 { return w.CreatedAt.UnixNano() })
	return workouts, nil
}

// SaveMeasurement upserts a measurement record.
func (c *Client) SaveMeasurement(m *models.Measurement) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal measurement: %w", err)
	}
	return c.set(MeasurementPrefix+m.ID.String(), data)
}

// DeleteMeasurement removes a measurement record by full id.
func (c *Client) DeleteMeasurement(id string) error {
	return c.delete(MeasurementPrefix + id)
}

// LoadMeasurements retrieves all persisted measurements, most recently
// created first.
func (c *Client) LoadMeasurements() ([]*models.Measurement, error) {
	allData, err := c.listByPrefix(MeasurementPrefix)
	if err != nil {
		return nil, fmt.Errorf("load measurements: %w", err)
	}

	var measurements []*models.Measurement
	for _, data := range allData {
		m, err := unmarshalJSON[models.Measurement](data)
		if err != nil {
			continue
		}
		measurements = append(measurements, m)
	}
	sortByCreatedAt(measurements, func(m *models.Measurement) int64 { return m.CreatedAt.UnixNano() })
	return measurements, nil
}

// SaveGoal upserts a goal record.
func (c *Client) SaveGoal(g *models.Goal) error {
	data, err := marshalJSON(g)
	if err != nil {
		return fmt.Errorf("marshal goal: %w", err)
	}
	return c.set(GoalPrefix+g.ID.String(), data)
}

// SaveGoals upserts a batch of goals (used after deadline sweeps).
func (c *Client) SaveGoals(goals []*models.Goal) error {
	for _, g := range goals {
		if err := c.SaveGoal(g); err != nil {
			return err
		}
	}
	return nil
}

// DeleteGoal removes a goal record by full id.
func (c *Client) DeleteGoal(id string) error {
	return c.delete(GoalPrefix + id)
}

// LoadGoals retrieves all persisted goals, most recently created first.
func (c *Client) LoadGoals() ([]*models.Goal, error) {
	allData, err := c.listByPrefix(GoalPrefix)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}

	var goals []*models.Goal
	for _, data := range allData {
		g, err := unmarshalJSON[models.Goal](data)
		if err != nil {
			continue
		}
		goals = append(goals, g)
	}
	sortByCreatedAt(goals, func(g *models.Goal) int64 { return g.CreatedAt.UnixNano() })
	return goals, nil
}

// SaveExercises upserts the saved-exercise memory.
func (c *Client) SaveExercises(exercises []*models.SavedExercise) error {
	for _, e := range exercises {
		data, err := marshalJSON(e)
		if err != nil {
			return fmt.Errorf("marshal exercise: %w", err)
		}
		if err := c.set(ExercisePrefix+e.ID.String(), data); err != nil {
			return err
		}
	}
	return nil
}

// LoadExercises retrieves the persisted saved-exercise memory.
func (c *Client) LoadExercises() ([]*models.SavedExercise, error) {
	allData, err := c.listByPrefix(ExercisePrefix)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}

	var exercises []*models.SavedExercise
	for _, data := range allData {
		e, err := unmarshalJSON[models.SavedExercise](data)
		if err != nil {
			continue
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}

// sortByCreatedAt orders records most recently created first, matching the
// stores' native ordering.
func sortByCreatedAt[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) > key(items[j])
	})
}
