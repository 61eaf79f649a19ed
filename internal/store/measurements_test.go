// ABOUTME: Tests for the measurement store.
// ABOUTME: Covers CRUD, patch merging, and photo updates.
package store

import (
	"testing"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

func TestAddAndGetMeasurement(t *testing.T) {
	s := NewMeasurementStore()
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	m := models.NewMeasurement(now)
	m.Weight = 82.5
	m.Chest = 104
	added := s.Add(m)

	got, ok := s.Get(added.ID.String())
	if !ok {
		t.Fatal("measurement not found")
	}
	if got.Weight != 82.5 || got.Chest != 104 {
		t.Errorf("values lost: weight=%f chest=%f", got.Weight, got.Chest)
	}
	if got.Biceps != 0 {
		t.Errorf("absent field should be 0, got %f", got.Biceps)
	}
}

func TestUpdateMeasurementPartial(t *testing.T) {
	s := NewMeasurementStore()
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	m := models.NewMeasurement(now)
	m.Weight = 82.5
	m.Waist = 84
	added := s.Add(m)

	now = now.Add(time.Hour)
	weight := 81.9
	s.Update(added.ID.String(), MeasurementPatch{Weight: &weight})

	got, _ := s.Get(added.ID.String())
	if got.Weight != 81.9 {
		t.Errorf("Weight = %f, want 81.9", got.Weight)
	}
	if got.Waist != 84 {
		t.Error("unpatched field must be untouched")
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
}

func TestUpdateMeasurementPhotos(t *testing.T) {
	s := NewMeasurementStore()
	added := s.Add(models.NewMeasurement(time.Now()))

	photos := models.Photos{Front: "photos/front.jpg", Back: "photos/back.jpg"}
	s.Update(added.ID.String(), MeasurementPatch{Photos: &photos})

	got, _ := s.Get(added.ID.String())
	if got.Photos.Front != "photos/front.jpg" || got.Photos.Back != "photos/back.jpg" {
		t.Errorf("photos not applied: %+v", got.Photos)
	}
	if got.Photos.Side != "" {
		t.Errorf("side photo should be empty, got %q", got.Photos.Side)
	}
}

func TestDeleteMeasurementUnknownIDIsNoop(t *testing.T) {
	s := NewMeasurementStore()
	s.Add(models.NewMeasurement(time.Now()))

	s.Delete("missing")
	if len(s.List()) != 1 {
		t.Errorf("store length = %d, want 1", len(s.List()))
	}
}

func TestMeasurementListOrderAndCopies(t *testing.T) {
	s := NewMeasurementStore()
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	s.SetNowFunc(fixedClock(&now))

	first := s.Add(models.NewMeasurement(now))
	now = now.Add(time.Hour)
	second := s.Add(models.NewMeasurement(now))

	list := s.List()
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Error("expected most-recent-first order")
	}

	// Mutating a listed copy must not affect the store.
	list[0].Weight = 999
	got, _ := s.Get(second.ID.String())
	if got.Weight == 999 {
		t.Error("List must return copies")
	}
}
