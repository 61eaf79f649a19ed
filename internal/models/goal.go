// ABOUTME: Goal model with progress history and completion state.
// ABOUTME: Goals freeze once achieved or failed; history is append-only.
package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalState is the derived lifecycle state of a goal.
type GoalState string

const (
	GoalActive   GoalState = "active"
	GoalAchieved GoalState = "achieved"
	GoalFailed   GoalState = "failed"
)

// GoalProgress is one entry in a goal's progress history.
type GoalProgress struct {
	ID         uuid.UUID `json:"id"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Goal represents a numeric target with a deadline. Direction is not
// declared: a goal counts as ascending when its target is at or above the
// current value, descending otherwise.
type Goal struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Unit         string         `json:"unit"`
	CurrentValue float64        `json:"current_value"`
	TargetValue  float64        `json:"target_value"`
	Deadline     time.Time      `json:"deadline"`
	History      []GoalProgress `json:"history"`
	Completed    bool           `json:"completed"`
	Failed       bool           `json:"failed"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewGoal creates a new active Goal with generated UUID and current
// timestamps. The initial history entry is seeded by the store on Add.
func NewGoal(title, unit string, current, target float64, deadline time.Time) *Goal {
	now := time.Now()
	return &Goal{
		ID:           uuid.New(),
		Title:        title,
		Unit:         unit,
		CurrentValue: current,
		TargetValue:  target,
		Deadline:     deadline,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WithDescription sets the goal description.
func (g *Goal) WithDescription(desc string) *Goal {
	g.Description = desc
	return g
}

// State derives the lifecycle state from the completion flags.
// Failed implies Completed, so the failed check comes first.
func (g *Goal) State() GoalState {
	switch {
	case g.Failed:
		return GoalFailed
	case g.Completed:
		return GoalAchieved
	}
	return GoalActive
}

// Terminal reports whether the goal has reached a final state.
func (g *Goal) Terminal() bool {
	return g.Completed
}

// Clone returns a deep copy of the goal.
func (g *Goal) Clone() *Goal {
	cp := *g
	cp.History = append([]GoalProgress(nil), g.History...)
	if g.CompletedAt != nil {
		t := *g.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
