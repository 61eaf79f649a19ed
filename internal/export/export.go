// ABOUTME: Export and import of the full fitness data set.
// ABOUTME: Supports JSON, YAML, and Markdown export, and JSON re-import.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

// Data is the full export format across all three stores plus the
// saved-exercise memory.
type Data struct {
	Version        string                  `json:"version"`
	ExportedAt     time.Time               `json:"exported_at"`
	Tool           string                  `json:"tool"`
	Workouts       []*models.Workout       `json:"workouts"`
	Measurements   []*models.Measurement   `json:"measurements"`
	Goals          []*models.Goal          `json:"goals"`
	SavedExercises []*models.SavedExercise `json:"saved_exercises"`
}

// Collect snapshots all three stores for export.
func Collect(workouts *store.WorkoutStore, measurements *store.MeasurementStore, goals *store.GoalStore) *Data {
	return &Data{
		Version:        "1.0",
		ExportedAt:     time.Now(),
		Tool:           "gymtrack",
		Workouts:       workouts.List(),
		Measurements:   measurements.List(),
		Goals:          goals.List(),
		SavedExercises: workouts.SavedExercises(),
	}
}

// Apply restores the exported records into the given stores, replacing
// their contents.
func Apply(d *Data, workouts *store.WorkoutStore, measurements *store.MeasurementStore, goals *store.GoalStore) {
	workouts.Restore(d.Workouts, d.SavedExercises)
	measurements.Restore(d.Measurements)
	goals.Restore(d.Goals)
}

// JSON renders the export as indented JSON.
func (d *Data) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ParseJSON reads a JSON export.
func ParseJSON(b []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &d, nil
}

// YAML renders the export in a human-readable YAML form with short ids and
// formatted dates.
func (d *Data) YAML() ([]byte, error) {
	out := yamlExport{
		Version:    d.Version,
		ExportedAt: d.ExportedAt.Format(time.RFC3339),
		Tool:       d.Tool,
	}

	for _, w := range d.Workouts {
		yw := yamlWorkout{
			ID:   shortID(w.ID.String()),
			Date: w.Date.Format("2006-01-02"),
		}
		for _, ex := range w.Exercises {
			ye := yamlExercise{Name: ex.Name}
			for _, set := range ex.Sets {
				ye.Sets = append(ye.Sets, yamlSet{
					Reps:     set.Reps,
					Weight:   set.Weight,
					Distance: set.Distance,
					Time:     set.Time,
				})
			}
			yw.Exercises = append(yw.Exercises, ye)
		}
		out.Workouts = append(out.Workouts, yw)
	}

	for _, m := range d.Measurements {
		ym := yamlMeasurement{
			ID:   shortID(m.ID.String()),
			Date: m.Date.Format("2006-01-02"),
		}
		for _, f := range models.AllMeasurementFields {
			if v := m.FieldValue(f); v != 0 {
				if ym.Fields == nil {
					ym.Fields = make(map[string]float64)
				}
				ym.Fields[string(f)] = v
			}
		}
		out.Measurements = append(out.Measurements, ym)
	}

	for _, g := range d.Goals {
		yg := yamlGoal{
			ID:       shortID(g.ID.String()),
			Title:    g.Title,
			Unit:     g.Unit,
			Current:  g.CurrentValue,
			Target:   g.TargetValue,
			Deadline: g.Deadline.Format("2006-01-02"),
			State:    string(g.State()),
		}
		for _, h := range g.History {
			yg.History = append(yg.History, yamlProgress{
				Value: h.Value,
				At:    h.RecordedAt.Format(time.RFC3339),
			})
		}
		out.Goals = append(out.Goals, yg)
	}

	return yaml.Marshal(out)
}

type yamlExport struct {
	Version      string            `yaml:"version"`
	ExportedAt   string            `yaml:"exported_at"`
	Tool         string            `yaml:"tool"`
	Workouts     []yamlWorkout     `yaml:"workouts,omitempty"`
	Measurements []yamlMeasurement `yaml:"measurements,omitempty"`
	Goals        []yamlGoal        `yaml:"goals,omitempty"`
}

type yamlWorkout struct {
	ID        string         `yaml:"id"`
	Date      string         `yaml:"date"`
	Exercises []yamlExercise `yaml:"exercises,omitempty"`
}

type yamlExercise struct {
	Name string    `yaml:"name"`
	Sets []yamlSet `yaml:"sets,omitempty"`
}

type yamlSet struct {
	Reps     float64 `yaml:"reps,omitempty"`
	Weight   float64 `yaml:"weight,omitempty"`
	Distance float64 `yaml:"distance,omitempty"`
	Time     float64 `yaml:"time,omitempty"`
}

type yamlMeasurement struct {
	ID     string             `yaml:"id"`
	Date   string             `yaml:"date"`
	Fields map[string]float64 `yaml:"fields,omitempty"`
}

type yamlGoal struct {
	ID       string         `yaml:"id"`
	Title    string         `yaml:"title"`
	Unit     string         `yaml:"unit"`
	Current  float64        `yaml:"current"`
	Target   float64        `yaml:"target"`
	Deadline string         `yaml:"deadline"`
	State    string         `yaml:"state"`
	History  []yamlProgress `yaml:"history,omitempty"`
}

type yamlProgress struct {
	Value float64 `yaml:"value"`
	At    string  `yaml:"at"`
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
