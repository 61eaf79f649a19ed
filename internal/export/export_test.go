// ABOUTME: Tests for export and import across all three stores.
// ABOUTME: Covers the JSON round trip, YAML shape, and Markdown rendering.
package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

func seededStores(t *testing.T) (*store.WorkoutStore, *store.MeasurementStore, *store.GoalStore) {
	t.Helper()

	ws := store.NewWorkoutStore()
	ex := models.NewExercise("Squat")
	ex.Sets = []models.ExerciseSet{models.NewExerciseSet(5, 100, 0, 0)}
	ws.Add(models.NewWorkout(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)).
		WithExercises([]models.Exercise{ex}))

	ms := store.NewMeasurementStore()
	m := models.NewMeasurement(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	m.Weight = 82.5
	ms.Add(m)

	gs := store.NewGoalStore()
	gs.Add(models.NewGoal("Bench 100kg", "kg", 70, 100,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))

	return ws, ms, gs
}

func TestJSONRoundTrip(t *testing.T) {
	ws, ms, gs := seededStores(t)
	goalID := gs.List()[0].ID

	data := Collect(ws, ms, gs)
	raw, err := data.JSON()
	require.NoError(t, err)

	parsed, err := ParseJSON(raw)
	require.NoError(t, err)

	ws2 := store.NewWorkoutStore()
	ms2 := store.NewMeasurementStore()
	gs2 := store.NewGoalStore()
	Apply(parsed, ws2, ms2, gs2)

	require.Len(t, ws2.List(), 1)
	require.Len(t, ms2.List(), 1)
	require.Len(t, gs2.List(), 1)

	g, ok := gs2.Get(goalID.String())
	require.True(t, ok, "goal id must survive the round trip")
	assert.Equal(t, "Bench 100kg", g.Title)
	assert.Len(t, g.History, 1, "seeded history must survive")

	assert.Len(t, ws2.SavedExercises(), 1, "exercise memory must survive")
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	_, err := ParseJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestYAMLContainsRecords(t *testing.T) {
	ws, ms, gs := seededStores(t)

	raw, err := Collect(ws, ms, gs).YAML()
	require.NoError(t, err)

	out := string(raw)
	assert.Contains(t, out, "Squat")
	assert.Contains(t, out, "Bench 100kg")
	assert.Contains(t, out, "weight: 82.5")
	assert.Contains(t, out, "state: active")
}

func TestMarkdownTables(t *testing.T) {
	ws, ms, gs := seededStores(t)

	md := Collect(ws, ms, gs).Markdown()

	assert.Contains(t, md, "## Workouts")
	assert.Contains(t, md, "## Measurements")
	assert.Contains(t, md, "## Goals")
	assert.Contains(t, md, "| 2025-03-03 | Squat | 1 |")
	assert.Contains(t, md, "82.5")
	assert.True(t, strings.Contains(md, "active"))
}

func TestMarkdownEmptyStores(t *testing.T) {
	md := Collect(store.NewWorkoutStore(), store.NewMeasurementStore(), store.NewGoalStore()).Markdown()

	assert.Contains(t, md, "No workouts.")
	assert.Contains(t, md, "No measurements.")
	assert.Contains(t, md, "No goals.")
}
