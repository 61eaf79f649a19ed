// ABOUTME: Tests for the workout store and saved-exercise memory.
// ABOUTME: Covers ordering, patch updates, and case-insensitive upserts.
package store

import (
	"testing"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

func TestAddAndGetWorkout(t *testing.T) {
	s := NewWorkoutStore()
	now := time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	ex := models.NewExercise("Squat")
	ex.Sets = []models.ExerciseSet{models.NewExerciseSet(5, 100, 0, 0)}
	w := s.Add(models.NewWorkout(now).WithExercises([]models.Exercise{ex}))

	got, ok := s.Get(w.ID.String())
	if !ok {
		t.Fatal("workout not found")
	}
	if len(got.Exercises) != 1 || got.Exercises[0].Name != "Squat" {
		t.Errorf("unexpected exercises: %+v", got.Exercises)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Error("Add must stamp timestamps with the store clock")
	}
}

func TestWorkoutListMostRecentFirst(t *testing.T) {
	s := NewWorkoutStore()
	now := time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	first := s.Add(models.NewWorkout(now))
	now = now.Add(time.Hour)
	second := s.Add(models.NewWorkout(now))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Error("expected most-recent-first order")
	}
}

func TestUpdateWorkoutRefreshesUpdatedAt(t *testing.T) {
	s := NewWorkoutStore()
	now := time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	w := s.Add(models.NewWorkout(now))
	created := w.CreatedAt

	now = now.Add(2 * time.Hour)
	newDate := now.AddDate(0, 0, -1)
	s.Update(w.ID.String(), WorkoutPatch{Date: &newDate})

	got, _ := s.Get(w.ID.String())
	if !got.Date.Equal(newDate) {
		t.Errorf("Date = %v, want %v", got.Date, newDate)
	}
	if !got.CreatedAt.Equal(created) {
		t.Error("update must not touch CreatedAt")
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
}

func TestUpdateWorkoutUnknownIDIsNoop(t *testing.T) {
	s := NewWorkoutStore()
	date := time.Now()
	s.Update("missing", WorkoutPatch{Date: &date})

	if len(s.List()) != 0 {
		t.Error("update on empty store must not create records")
	}
}

func TestDeleteWorkout(t *testing.T) {
	s := NewWorkoutStore()
	w := s.Add(models.NewWorkout(time.Now()))

	s.Delete(w.ID.String())
	if _, ok := s.Get(w.ID.String()); ok {
		t.Error("workout still present after delete")
	}

	s.Delete(w.ID.String()) // second delete is a no-op
}

func TestExerciseMemoryUpsert(t *testing.T) {
	s := NewWorkoutStore()
	now := time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	ex := models.NewExercise("Squat")
	ex.Sets = []models.ExerciseSet{models.NewExerciseSet(5, 100, 0, 0)}
	s.Add(models.NewWorkout(now).WithExercises([]models.Exercise{ex}))

	saved := s.SavedExercises()
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved exercise, got %d", len(saved))
	}
	if saved[0].LastSets[0].Weight != 100 {
		t.Errorf("LastSets weight = %f, want 100", saved[0].LastSets[0].Weight)
	}

	// Same name in different case replaces, not appends.
	now = now.Add(time.Hour)
	ex2 := models.NewExercise("squat")
	ex2.Sets = []models.ExerciseSet{models.NewExerciseSet(5, 110, 0, 0)}
	s.Add(models.NewWorkout(now).WithExercises([]models.Exercise{ex2}))

	saved = s.SavedExercises()
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved exercise after reuse, got %d", len(saved))
	}
	if saved[0].LastSets[0].Weight != 110 {
		t.Errorf("last write should win: weight = %f, want 110", saved[0].LastSets[0].Weight)
	}
	if !saved[0].LastUsed.Equal(now) {
		t.Errorf("LastUsed = %v, want %v", saved[0].LastUsed, now)
	}
}

func TestExerciseMemoryFedByUpdate(t *testing.T) {
	s := NewWorkoutStore()
	w := s.Add(models.NewWorkout(time.Now()))

	ex := models.NewExercise("Deadlift")
	ex.Sets = []models.ExerciseSet{models.NewExerciseSet(3, 140, 0, 0)}
	exercises := []models.Exercise{ex}
	s.Update(w.ID.String(), WorkoutPatch{Exercises: &exercises})

	if len(s.SavedExercises()) != 1 {
		t.Error("update should feed the exercise memory")
	}
}

func TestSearchExercises(t *testing.T) {
	s := NewWorkoutStore()
	for _, name := range []string{"Bench Press", "Incline Bench", "Squat"} {
		ex := models.NewExercise(name)
		s.Add(models.NewWorkout(time.Now()).WithExercises([]models.Exercise{ex}))
	}

	hits := s.SearchExercises("bench")
	if len(hits) != 2 {
		t.Errorf("expected 2 matches for 'bench', got %d", len(hits))
	}
	if len(s.SearchExercises("")) != 3 {
		t.Error("empty query should return all saved exercises")
	}
	if len(s.SearchExercises("row")) != 0 {
		t.Error("expected no matches for 'row'")
	}
}

func TestWorkoutFindByPrefix(t *testing.T) {
	s := NewWorkoutStore()
	w := s.Add(models.NewWorkout(time.Now()))

	got, err := s.Find(w.ID.String()[:8])
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got.ID != w.ID {
		t.Errorf("Find returned %s, want %s", got.ID, w.ID)
	}

	if _, err := s.Find("zzzzzzzz"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestWorkoutRestore(t *testing.T) {
	s := NewWorkoutStore()
	ex := models.NewExercise("Squat")
	w := s.Add(models.NewWorkout(time.Now()).WithExercises([]models.Exercise{ex}))

	fresh := NewWorkoutStore()
	fresh.Restore(s.List(), s.SavedExercises())

	if _, ok := fresh.Get(w.ID.String()); !ok {
		t.Error("restored workout not found")
	}
	if len(fresh.SavedExercises()) != 1 {
		t.Error("restore must carry the exercise memory")
	}
}
