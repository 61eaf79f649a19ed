// ABOUTME: Periodic deadline sweep for the goal store.
// ABOUTME: Runs CheckDeadlines on start and on a ticker until cancelled.
package store

import (
	"context"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

// DefaultSweepInterval matches the cadence the goals screen used.
const DefaultSweepInterval = 60 * time.Second

// Sweeper drives the recurring deadline sweep. The owner of the goals view
// starts it and must cancel the context when tearing down, so the store is
// not mutated after its consumer is gone.
type Sweeper struct {
	goals    *GoalStore
	interval time.Duration
	onSweep  func([]*models.Goal)
}

// NewSweeper creates a sweeper for the given store. A non-positive interval
// falls back to DefaultSweepInterval. onSweep, if non-nil, is called with
// the goals each sweep transitioned (e.g. to persist them).
func NewSweeper(goals *GoalStore, interval time.Duration, onSweep func([]*models.Goal)) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{goals: goals, interval: interval, onSweep: onSweep}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	transitioned := s.goals.CheckDeadlines()
	if len(transitioned) > 0 && s.onSweep != nil {
		s.onSweep(transitioned)
	}
}
