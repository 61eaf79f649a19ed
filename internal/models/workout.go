// ABOUTME: Workout, Exercise, and ExerciseSet models for training sessions.
// ABOUTME: A workout holds an ordered list of exercises, each with ordered sets.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseSet is a single set within an exercise. All four measures are
// optional; a zero value means the measure was not recorded. Weight is in
// kilograms, distance in meters, time in seconds.
type ExerciseSet struct {
	ID       uuid.UUID `json:"id"`
	Reps     float64   `json:"reps,omitempty"`
	Weight   float64   `json:"weight,omitempty"`
	Distance float64   `json:"distance,omitempty"`
	Time     float64   `json:"time,omitempty"`
}

// NewExerciseSet creates a set with a generated ID.
func NewExerciseSet(reps, weight, distance, seconds float64) ExerciseSet {
	return ExerciseSet{
		ID:       uuid.New(),
		Reps:     reps,
		Weight:   weight,
		Distance: distance,
		Time:     seconds,
	}
}

// Empty reports whether the set carries no recorded measures. Empty sets are
// still stored; they are only skipped for display.
func (s ExerciseSet) Empty() bool {
	return s.Reps == 0 && s.Weight == 0 && s.Distance == 0 && s.Time == 0
}

// Exercise is a named group of sets within a workout. The name is free text
// and doubles as the join key into the saved-exercise memory.
type Exercise struct {
	ID   uuid.UUID     `json:"id"`
	Name string        `json:"name"`
	Sets []ExerciseSet `json:"sets"`
}

// NewExercise creates an exercise with a generated ID and no sets.
func NewExercise(name string) Exercise {
	return Exercise{ID: uuid.New(), Name: name}
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	cp := e
	cp.Sets = append([]ExerciseSet(nil), e.Sets...)
	return cp
}

// Workout represents a training session on a given date.
type Workout struct {
	ID        uuid.UUID  `json:"id"`
	Date      time.Time  `json:"date"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewWorkout creates a new Workout with generated UUID and current timestamps.
func NewWorkout(date time.Time) *Workout {
	now := time.Now()
	return &Workout{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithExercises sets the exercise list.
func (w *Workout) WithExercises(exercises []Exercise) *Workout {
	w.Exercises = exercises
	return w
}

// Clone returns a deep copy of the workout.
func (w *Workout) Clone() *Workout {
	cp := *w
	cp.Exercises = make([]Exercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		cp.Exercises = append(cp.Exercises, e.Clone())
	}
	return &cp
}

// SavedExercise remembers the most recent set configuration used under an
// exercise name, to pre-fill future entries. Last write wins per name;
// name matching is case-insensitive.
type SavedExercise struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	LastUsed time.Time     `json:"last_used"`
	LastSets []ExerciseSet `json:"last_sets"`
}

// Clone returns a deep copy of the saved exercise.
func (s *SavedExercise) Clone() *SavedExercise {
	cp := *s
	cp.LastSets = append([]ExerciseSet(nil), s.LastSets...)
	return &cp
}
