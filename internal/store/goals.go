// ABOUTME: In-memory goal store with the goal lifecycle engine.
// ABOUTME: Goals freeze once completed; deadline sweeps fail overdue goals.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pwojcik/gymtrack/internal/models"
)

// GoalPatch holds optional metadata fields for a goal edit. Nil fields are
// left untouched. Edits never touch completion flags or history, and are
// permitted on terminal goals.
type GoalPatch struct {
	Title       *string
	Description *string
	Unit        *string
	TargetValue *float64
	Deadline    *time.Time
}

// GoalStore owns the goal collection and applies lifecycle transitions.
type GoalStore struct {
	mu    sync.RWMutex
	goals []*models.Goal
	nowFn func() time.Time
}

// NewGoalStore creates an empty goal store.
func NewGoalStore() *GoalStore {
	return &GoalStore{nowFn: time.Now}
}

// SetNowFunc overrides the store clock. Intended for tests.
func (s *GoalStore) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// Add stamps timestamps, clears completion flags, seeds the first history
// entry with the initial current value, and prepends the goal. Always
// succeeds.
func (s *GoalStore) Add(g *models.Goal) *models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Completed = false
	g.Failed = false
	g.CompletedAt = nil
	g.History = []models.GoalProgress{{
		ID:         uuid.New(),
		Value:      g.CurrentValue,
		RecordedAt: now,
	}}
	s.goals = append([]*models.Goal{g}, s.goals...)
	return g.Clone()
}

// UpdateProgress records a new progress value for the goal and evaluates
// completion. No-op if the id is unknown or the goal is already terminal.
func (s *GoalStore) UpdateProgress(id string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.find(id)
	if g == nil || g.Completed {
		return
	}

	now := s.nowFn()
	entry := models.GoalProgress{
		ID:         uuid.New(),
		Value:      value,
		RecordedAt: now,
	}

	deadlinePassed := now.After(g.Deadline)
	reached := targetReached(g.TargetValue, g.CurrentValue, value)

	g.History = append([]models.GoalProgress{entry}, g.History...)
	g.CurrentValue = value
	g.Completed = reached || deadlinePassed
	g.Failed = deadlinePassed && !reached
	g.UpdatedAt = now
	if g.Completed {
		t := now
		g.CompletedAt = &t
	}
}

// Edit merges metadata fields into the goal and refreshes UpdatedAt.
// Silent no-op if the id is unknown.
func (s *GoalStore) Edit(id string, patch GoalPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.find(id)
	if g == nil {
		return
	}

	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.Unit != nil {
		g.Unit = *patch.Unit
	}
	if patch.TargetValue != nil {
		g.TargetValue = *patch.TargetValue
	}
	if patch.Deadline != nil {
		g.Deadline = *patch.Deadline
	}
	g.UpdatedAt = s.nowFn()
}

// Complete marks the goal as achieved by hand. No-op on unknown ids and on
// goals that are already terminal (a failed goal stays failed).
func (s *GoalStore) Complete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.find(id)
	if g == nil || g.Completed {
		return
	}

	now := s.nowFn()
	g.Completed = true
	g.Failed = false
	g.CompletedAt = &now
	g.UpdatedAt = now
}

// Delete removes the goal with the given id. No-op if not found.
// Confirmation is the caller's concern.
func (s *GoalStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID.String() == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return
		}
	}
}

// Get returns a copy of the goal with the given id.
func (s *GoalStore) Get(id string) (*models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g := s.find(id); g != nil {
		return g.Clone(), true
	}
	return nil, false
}

// Find resolves a goal by full ID or unique ID prefix.
func (s *GoalStore) Find(idOrPrefix string) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *models.Goal
	for _, g := range s.goals {
		if strings.HasPrefix(g.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple goals", idOrPrefix)
			}
			match = g
		}
	}
	if match == nil {
		return nil, fmt.Errorf("goal not found: %s", idOrPrefix)
	}
	return match.Clone(), nil
}

// List returns copies of all goals in store order (most recent first).
func (s *GoalStore) List() []*models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		out = append(out, g.Clone())
	}
	return out
}

// Restore replaces the store contents with previously persisted records.
func (s *GoalStore) Restore(goals []*models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = make([]*models.Goal, 0, len(goals))
	for _, g := range goals {
		s.goals = append(s.goals, g.Clone())
	}
}

// CheckDeadlines fails every active goal whose deadline has passed without
// its target being reached, and completes the ones that happen to sit on
// target. Returns copies of the goals that transitioned. Idempotent:
// terminal goals are never touched.
func (s *GoalStore) CheckDeadlines() []*models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	var transitioned []*models.Goal
	for _, g := range s.goals {
		if g.Completed || !now.After(g.Deadline) {
			continue
		}
		reached := targetReached(g.TargetValue, g.CurrentValue, g.CurrentValue)
		g.Completed = true
		g.Failed = !reached
		t := now
		g.CompletedAt = &t
		g.UpdatedAt = now
		transitioned = append(transitioned, g.Clone())
	}
	return transitioned
}

// find returns the stored goal with the given id, or nil.
// Caller must hold the lock.
func (s *GoalStore) find(id string) *models.Goal {
	for _, g := range s.goals {
		if g.ID.String() == id {
			return g
		}
	}
	return nil
}

// targetReached reports whether value satisfies the target. Direction is
// inferred from current: ascending when target >= current, descending
// otherwise. UpdateProgress passes the value stored before the update as
// current while CheckDeadlines passes the stored value for both arguments,
// so the two call sites can disagree about direction when an update crosses
// the target. That asymmetry is deliberate, kept from the shipped behavior.
func targetReached(target, current, value float64) bool {
	if target >= current {
		return value >= target
	}
	return value <= target
}
