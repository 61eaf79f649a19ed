// ABOUTME: Tests for the deadline sweeper.
// ABOUTME: Covers the immediate sweep, the callback, and cancellation.
package store

import (
	"context"
	"testing"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

func TestSweeperSweepsImmediately(t *testing.T) {
	s := NewGoalStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	g := s.Add(models.NewGoal("Run 10k", "km", 0, 10, now.Add(-time.Minute)))

	var swept []*models.Goal
	done := make(chan struct{})
	sw := NewSweeper(s, time.Hour, func(goals []*models.Goal) {
		swept = goals
		close(done)
	})

	ctx, cancel := context.WithCancel(context.Background())
	go sw.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep callback never fired")
	}
	cancel()

	if len(swept) != 1 || swept[0].ID != g.ID {
		t.Errorf("unexpected swept goals: %+v", swept)
	}
	got, _ := s.Get(g.ID.String())
	if !got.Failed {
		t.Error("overdue goal should be failed by the initial sweep")
	}
}

func TestSweeperStopsOnCancel(t *testing.T) {
	s := NewGoalStore()
	sw := NewSweeper(s, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		sw.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestSweeperDefaultInterval(t *testing.T) {
	sw := NewSweeper(NewGoalStore(), 0, nil)
	if sw.interval != DefaultSweepInterval {
		t.Errorf("interval = %v, want %v", sw.interval, DefaultSweepInterval)
	}
}
