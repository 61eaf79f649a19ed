// ABOUTME: In-memory measurement store with most-recent-first ordering.
// ABOUTME: Supports partial field updates via pointer patches.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

// MeasurementPatch holds optional fields for a measurement update. Nil
// fields are left untouched.
type MeasurementPatch struct {
	Date      *time.Time
	Weight    *float64
	Shoulders *float64
	Chest     *float64
	Biceps    *float64
	Forearm   *float64
	Abdomen   *float64
	Waist     *float64
	Thigh     *float64
	Calf      *float64
	Photos    *models.Photos
}

// MeasurementStore owns the measurement collection.
type MeasurementStore struct {
	mu           sync.RWMutex
	measurements []*models.Measurement
	nowFn        func() time.Time
}

// NewMeasurementStore creates an empty measurement store.
func NewMeasurementStore() *MeasurementStore {
	return &MeasurementStore{nowFn: time.Now}
}

// SetNowFunc overrides the store clock. Intended for tests.
func (s *MeasurementStore) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// Add stamps timestamps on the measurement and prepends it. Always succeeds.
func (s *MeasurementStore) Add(m *models.Measurement) *models.Measurement {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.measurements = append([]*models.Measurement{m}, s.measurements...)
	return m.Clone()
}

// Update merges the patch into the measurement with the given id and
// refreshes UpdatedAt. Silent no-op if the id is unknown.
func (s *MeasurementStore) Update(id string, patch MeasurementPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.find(id)
	if m == nil {
		return
	}

	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.Weight != nil {
		m.Weight = *patch.Weight
	}
	if patch.Shoulders != nil {
		m.Shoulders = *patch.Shoulders
	}
	if patch.Chest != nil {
		m.Chest = *patch.Chest
	}
	if patch.Biceps != nil {
		m.Biceps = *patch.Biceps
	}
	if patch.Forearm != nil {
		m.Forearm = *patch.Forearm
	}
	if patch.Abdomen != nil {
		m.Abdomen = *patch.Abdomen
	}
	if patch.Waist != nil {
		m.Waist = *patch.Waist
	}
	if patch.Thigh != nil {
		m.Thigh = *patch.Thigh
	}
	if patch.Calf != nil {
		m.Calf = *patch.Calf
	}
	if patch.Photos != nil {
		m.Photos = *patch.Photos
	}
	m.UpdatedAt = s.nowFn()
}

// Delete removes the measurement with the given id. No-op if not found.
func (s *MeasurementStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.measurements {
		if m.ID.String() == id {
			s.measurements = append(s.measurements[:i], s.measurements[i+1:]...)
			return
		}
	}
}

// Get returns a copy of the measurement with the given id.
func (s *MeasurementStore) Get(id string) (*models.Measurement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m := s.find(id); m != nil {
		return m.Clone(), true
	}
	return nil, false
}

// Find resolves a measurement by full ID or unique ID prefix.
func (s *MeasurementStore) Find(idOrPrefix string) (*models.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *models.Measurement
	for _, m := range s.measurements {
		if strings.HasPrefix(m.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple measurements", idOrPrefix)
			}
			match = m
		}
	}
	if match == nil {
		return nil, fmt.Errorf("measurement not found: %s", idOrPrefix)
	}
	return match.Clone(), nil
}

// List returns copies of all measurements in store order (most recent first).
func (s *MeasurementStore) List() []*models.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Measurement, 0, len(s.measurements))
	for _, m := range s.measurements {
		out = append(out, m.Clone())
	}
	return out
}

// Restore replaces the store contents with previously persisted records.
func (s *MeasurementStore) Restore(measurements []*models.Measurement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.measurements = make([]*models.Measurement, 0, len(measurements))
	for _, m := range measurements {
		s.measurements = append(s.measurements, m.Clone())
	}
}

func (s *MeasurementStore) find(id string) *models.Measurement {
	for _, m := range s.measurements {
		if m.ID.String() == id {
			return m
		}
	}
	return nil
}
