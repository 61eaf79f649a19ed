// ABOUTME: Measurement model and MeasurementField enum for body metrics.
// ABOUTME: Nine independent numeric fields plus optional progress photos.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MeasurementField identifies one of the nine body-metric fields.
type MeasurementField string

const (
	FieldWeight    MeasurementField = "weight"
	FieldShoulders MeasurementField = "shoulders"
	FieldChest     MeasurementField = "chest"
	FieldBiceps    MeasurementField = "biceps"
	FieldForearm   MeasurementField = "forearm"
	FieldAbdomen   MeasurementField = "abdomen"
	FieldWaist     MeasurementField = "waist"
	FieldThigh     MeasurementField = "thigh"
	FieldCalf      MeasurementField = "calf"
)

// MeasurementFieldUnits maps fields to their display units.
var MeasurementFieldUnits = map[MeasurementField]string{
	FieldWeight:    "kg",
	FieldShoulders: "cm",
	FieldChest:     "cm",
	FieldBiceps:    "cm",
	FieldForearm:   "cm",
	FieldAbdomen:   "cm",
	FieldWaist:     "cm",
	FieldThigh:     "cm",
	FieldCalf:      "cm",
}

// AllMeasurementFields returns all valid measurement fields.
var AllMeasurementFields = []MeasurementField{
	FieldWeight, FieldShoulders, FieldChest, FieldBiceps, FieldForearm,
	FieldAbdomen, FieldWaist, FieldThigh, FieldCalf,
}

// IsValidMeasurementField checks if a string is a valid field name.
func IsValidMeasurementField(s string) bool {
	for _, f := range AllMeasurementFields {
		if string(f) == s {
			return true
		}
	}
	return false
}

// Photos holds optional progress photo references.
type Photos struct {
	Front string `json:"front,omitempty"`
	Side  string `json:"side,omitempty"`
	Back  string `json:"back,omitempty"`
}

// Measurement represents a body measurement entry on a given date.
// No field is required; absent values stay 0.
type Measurement struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Weight    float64   `json:"weight,omitempty"`
	Shoulders float64   `json:"shoulders,omitempty"`
	Chest     float64   `json:"chest,omitempty"`
	Biceps    float64   `json:"biceps,omitempty"`
	Forearm   float64   `json:"forearm,omitempty"`
	Abdomen   float64   `json:"abdomen,omitempty"`
	Waist     float64   `json:"waist,omitempty"`
	Thigh     float64   `json:"thigh,omitempty"`
	Calf      float64   `json:"calf,omitempty"`
	Photos    Photos    `json:"photos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMeasurement creates a new Measurement with generated UUID and current
// timestamps.
func NewMeasurement(date time.Time) *Measurement {
	now := time.Now()
	return &Measurement{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithPhotos sets the photo references.
func (m *Measurement) WithPhotos(p Photos) *Measurement {
	m.Photos = p
	return m
}

// FieldValue returns the value of the named field, or 0 for unknown fields.
func (m *Measurement) FieldValue(f MeasurementField) float64 {
	switch f {
	case FieldWeight:
		return m.Weight
	case FieldShoulders:
		return m.Shoulders
	case FieldChest:
		return m.Chest
	case FieldBiceps:
		return m.Biceps
	case FieldForearm:
		return m.Forearm
	case FieldAbdomen:
		return m.Abdomen
	case FieldWaist:
		return m.Waist
	case FieldThigh:
		return m.Thigh
	case FieldCalf:
		return m.Calf
	}
	return 0
}

// Clone returns a copy of the measurement.
func (m *Measurement) Clone() *Measurement {
	cp := *m
	return &cp
}
