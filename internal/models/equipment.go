package models

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is a maintainable asset (heater, dosing pump, filter bank).
// Only equipment with a measurement configuration and maintenance
// scheduling enabled ever generates tasks.
type Equipment struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty"`
	Name       string     `json:"name"`

	MaintenanceFrequency CheckFrequency `json:"maintenance_frequency,omitempty"`
	MaintenanceTimes     []string       `json:"maintenance_times,omitempty"` // "HH:MM"
	MaintenanceDays      []string       `json:"maintenance_days,omitempty"`

	HasMeasurementConfig bool `json:"has_measurement_config"`
	MaintenanceScheduled bool `json:"maintenance_scheduled"`
	SkipHolidays         bool `json:"skip_holidays"`
	Active               bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
