// ABOUTME: Unit tests for Charm record persistence helpers.
// ABOUTME: Tests key formats and JSON marshalling without a live KV.
package charm

import (
	"testing"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

func TestWorkoutKeyFormat(t *testing.T) {
	w := models.NewWorkout(time.Now())
	key := WorkoutPrefix + w.ID.String()

	if key[:8] != "workout:" {
		t.Errorf("Expected key to start with 'workout:', got: %s", key[:8])
	}
}

func TestGoalKeyFormat(t *testing.T) {
	g := models.NewGoal("Bench 100kg", "kg", 70, 100, time.Now())
	key := GoalPrefix + g.ID.String()

	if key[:5] != "goal:" {
		t.Errorf("Expected key to start with 'goal:', got: %s", key[:5])
	}
}

func TestGoalRoundTripJSON(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	g := models.NewGoal("Bench 100kg", "kg", 70, 100, now.AddDate(0, 0, 30))
	g.History = []models.GoalProgress{{Value: 70, RecordedAt: now}}
	g.CompletedAt = &now

	data, err := marshalJSON(g)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	got, err := unmarshalJSON[models.Goal](data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if got.ID != g.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, g.ID)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt lost: %v", got.CompletedAt)
	}
	if len(got.History) != 1 {
		t.Errorf("history lost: %d entries", len(got.History))
	}
}

func TestSortByCreatedAtNewestFirst(t *testing.T) {
	old := models.NewWorkout(time.Now())
	old.CreatedAt = time.Now().Add(-time.Hour)
	recent := models.NewWorkout(time.Now())
	recent.CreatedAt = time.Now()

	items := []*models.Workout{old, recent}
	sortByCreatedAt(items, func(w *models.Workout) int64 { return w.CreatedAt.UnixNano() })

	if items[0].ID != recent.ID {
		t.Error("expected newest workout first")
	}
}
