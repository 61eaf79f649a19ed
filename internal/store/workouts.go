// ABOUTME: In-memory workout store with most-recent-first ordering.
// ABOUTME: Feeds the saved-exercise memory on every add and update.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pwojcik/gymtrack/internal/models"
)

// WorkoutPatch holds optional fields for a workout update. Nil fields are
// left untouched.
type WorkoutPatch struct {
	Date      *time.Time
	Exercises *[]models.Exercise
}

// WorkoutStore owns the workout collection and the saved-exercise memory.
// New records are prepended; the slice order is the only ordering guarantee.
type WorkoutStore struct {
	mu       sync.RWMutex
	workouts []*models.Workout
	saved    []*models.SavedExercise
	nowFn    func() time.Time
}

// NewWorkoutStore creates an empty workout store.
func NewWorkoutStore() *WorkoutStore {
	return &WorkoutStore{nowFn: time.Now}
}

// SetNowFunc overrides the store clock. Intended for tests.
func (s *WorkoutStore) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// Add stamps timestamps on the workout, prepends it to the collection, and
// remembers its exercises. Always succeeds.
func (s *WorkoutStore) Add(w *models.Workout) *models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	w.CreatedAt = now
	w.UpdatedAt = now
	s.workouts = append([]*models.Workout{w}, s.workouts...)
	s.rememberExercises(w.Exercises, now)
	return w.Clone()
}

// Update merges the patch into the workout with the given id and refreshes
// UpdatedAt. Silent no-op if the id is unknown.
func (s *WorkoutStore) Update(id string, patch WorkoutPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return
	}

	now := s.nowFn()
	if patch.Date != nil {
		w.Date = *patch.Date
	}
	if patch.Exercises != nil {
		w.Exercises = *patch.Exercises
		s.rememberExercises(w.Exercises, now)
	}
	w.UpdatedAt = now
}

// Delete removes the workout with the given id. No-op if not found.
func (s *WorkoutStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.workouts {
		if w.ID.String() == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			return
		}
	}
}

// Get returns a copy of the workout with the given id.
func (s *WorkoutStore) Get(id string) (*models.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if w := s.find(id); w != nil {
		return w.Clone(), true
	}
	return nil, false
}

// Find resolves a workout by full ID or unique ID prefix.
func (s *WorkoutStore) Find(idOrPrefix string) (*models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *models.Workout
	for _, w := range s.workouts {
		if strings.HasPrefix(w.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple workouts", idOrPrefix)
			}
			match = w
		}
	}
	if match == nil {
		return nil, fmt.Errorf("workout not found: %s", idOrPrefix)
	}
	return match.Clone(), nil
}

// List returns copies of all workouts in store order (most recent first).
func (s *WorkoutStore) List() []*models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		out = append(out, w.Clone())
	}
	return out
}

// Restore replaces the store contents with previously persisted records,
// preserving their identifiers and timestamps.
func (s *WorkoutStore) Restore(workouts []*models.Workout, saved []*models.SavedExercise) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workouts = make([]*models.Workout, 0, len(workouts))
	for _, w := range workouts {
		s.workouts = append(s.workouts, w.Clone())
	}
	s.saved = make([]*models.SavedExercise, 0, len(saved))
	for _, e := range saved {
		s.saved = append(s.saved, e.Clone())
	}
}

// SavedExercises returns copies of all remembered exercises.
func (s *WorkoutStore) SavedExercises() []*models.SavedExercise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.SavedExercise, 0, len(s.saved))
	for _, e := range s.saved {
		out = append(out, e.Clone())
	}
	return out
}

// SearchExercises returns remembered exercises whose name contains the
// query, case-insensitively. An empty query returns everything.
func (s *WorkoutStore) SearchExercises(query string) []*models.SavedExercise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*models.SavedExercise
	for _, e := range s.saved {
		if q == "" || strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// find returns the stored workout with the given id, or nil.
// Caller must hold the lock.
func (s *WorkoutStore) find(id string) *models.Workout {
	for _, w := range s.workouts {
		if w.ID.String() == id {
			return w
		}
	}
	return nil
}

// rememberExercises upserts each exercise into the saved-exercise memory.
// Matching is case-insensitive; last write wins per name.
// Caller must hold the lock.
func (s *WorkoutStore) rememberExercises(exercises []models.Exercise, now time.Time) {
	for _, ex := range exercises {
		if ex.Name == "" {
			continue
		}
		entry := &models.SavedExercise{
			ID:       ex.ID,
			Name:     ex.Name,
			LastUsed: now,
			LastSets: append([]models.ExerciseSet(nil), ex.Sets...),
		}
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}

		found := false
		for i, have := range s.saved {
			if strings.EqualFold(have.Name, ex.Name) {
				s.saved[i] = entry
				found = true
				break
			}
		}
		if !found {
			s.saved = append(s.saved, entry)
		}
	}
}
