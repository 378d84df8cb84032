package models

import (
	"time"

	"github.com/google/uuid"
)

// PlantRoom is a pump/filtration room checked on its own recurrence,
// independent of the water bodies it serves.
type PlantRoom struct {
	ID             uuid.UUID      `json:"id"`
	PropertyID     uuid.UUID      `json:"property_id"`
	Name           string         `json:"name"`
	CheckFrequency CheckFrequency `json:"check_frequency"`
	CheckTimes     []string       `json:"check_times,omitempty"`// "HH:MM"
	CheckDays      []string       `json:"check_days,omitempty"` // numeric "0"-"6" or lowercase names
	Active         bool           `json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
}
