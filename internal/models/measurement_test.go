// ABOUTME: Tests for Measurement model and MeasurementField.
// ABOUTME: Validates field constants, units mapping, and value accessor.
package models

import (
	"testing"
	"time"
)

func TestMeasurementFieldUnit(t *testing.T) {
	tests := []struct {
		field    MeasurementField
		wantUnit string
	}{
		{FieldWeight, "kg"},
		{FieldChest, "cm"},
		{FieldWaist, "cm"},
		{FieldCalf, "cm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got := MeasurementFieldUnits[tt.field]
			if got != tt.wantUnit {
				t.Errorf("MeasurementFieldUnits[%s] = %s, want %s", tt.field, got, tt.wantUnit)
			}
		})
	}
}

func TestAllMeasurementFieldsHaveUnits(t *testing.T) {
	for _, f := range AllMeasurementFields {
		if _, ok := MeasurementFieldUnits[f]; !ok {
			t.Errorf("MeasurementField %s has no unit defined", f)
		}
	}
}

func TestIsValidMeasurementField(t *testing.T) {
	if !IsValidMeasurementField("biceps") {
		t.Error("expected biceps to be valid")
	}
	if IsValidMeasurementField("wingspan") {
		t.Error("expected wingspan to be invalid")
	}
}

func TestFieldValue(t *testing.T) {
	m := NewMeasurement(time.Now())
	m.Weight = 82.5
	m.Thigh = 60

	if got := m.FieldValue(FieldWeight); got != 82.5 {
		t.Errorf("FieldValue(weight) = %f, want 82.5", got)
	}
	if got := m.FieldValue(FieldThigh); got != 60 {
		t.Errorf("FieldValue(thigh) = %f, want 60", got)
	}
	if got := m.FieldValue(FieldChest); got != 0 {
		t.Errorf("FieldValue(chest) = %f, want 0", got)
	}
}

func TestNewMeasurement(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	m := NewMeasurement(date)

	if m.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if !m.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", m.Date, date)
	}
	if m.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}
