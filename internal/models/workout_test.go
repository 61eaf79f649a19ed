// ABOUTME: Tests for Workout, Exercise, and ExerciseSet models.
// ABOUTME: Validates constructors, Empty detection, and deep cloning.
package models

import (
	"testing"
	"time"
)

func TestNewWorkout(t *testing.T) {
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	w := NewWorkout(date)

	if w.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if !w.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", w.Date, date)
	}
	if len(w.Exercises) != 0 {
		t.Errorf("expected no exercises, got %d", len(w.Exercises))
	}
}

func TestExerciseSetEmpty(t *testing.T) {
	if !(ExerciseSet{}).Empty() {
		t.Error("zero set should be empty")
	}
	if NewExerciseSet(5, 100, 0, 0).Empty() {
		t.Error("set with reps and weight should not be empty")
	}
	if NewExerciseSet(0, 0, 0, 90).Empty() {
		t.Error("set with time should not be empty")
	}
}

func TestWorkoutClone(t *testing.T) {
	ex := NewExercise("Squat")
	ex.Sets = []ExerciseSet{NewExerciseSet(5, 100, 0, 0)}
	w := NewWorkout(time.Now()).WithExercises([]Exercise{ex})

	cp := w.Clone()
	cp.Exercises[0].Sets[0].Weight = 120

	if w.Exercises[0].Sets[0].Weight != 100 {
		t.Errorf("clone mutation leaked into original: weight = %f", w.Exercises[0].Sets[0].Weight)
	}
}

func TestSavedExerciseClone(t *testing.T) {
	s := &SavedExercise{
		Name:     "Bench Press",
		LastUsed: time.Now(),
		LastSets: []ExerciseSet{NewExerciseSet(8, 80, 0, 0)},
	}

	cp := s.Clone()
	cp.LastSets[0].Reps = 12

	if s.LastSets[0].Reps != 8 {
		t.Errorf("clone mutation leaked into original: reps = %f", s.LastSets[0].Reps)
	}
}
