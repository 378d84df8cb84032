package models

import (
	"time"

	"github.com/google/uuid"
)

/*──────────────────────────────────────────────────────────────────────────────
  Custom schedule shapes
──────────────────────────────────────────────────────────────────────────────*/

// ScheduleType tags the shape of a custom schedule body. The resolver
// switches on this tag; field-presence sniffing is not allowed.
type ScheduleType string

const (
	ScheduleSimple  ScheduleType = "simple"
	ScheduleComplex ScheduleType = "complex"
)

// ScheduleEntry is one independent recurrence line of a complex schedule.
// Each entry carries its own time, days, and service kinds; entries are
// evaluated independently and may each emit a task on the same day.
type ScheduleEntry struct {
	Frequency    Frequency      `json:"frequency"`
	Days         []time.Weekday `json:"days,omitempty"`
	Time         string         `json:"time,omitempty"` // "HH:MM"
	ServiceTypes []ServiceType  `json:"service_types,omitempty"`
}

// OccupancyRules are occupancy-derived service floors that coexist with
// either schedule shape.
type OccupancyRules struct {
	OnArrival         bool          `json:"on_arrival"`
	WeeklyMinimumDay  *time.Weekday `json:"weekly_minimum_day,omitempty"`
	BiweeklyMinimumDay *time.Weekday `json:"biweekly_minimum_day,omitempty"`
}

// CustomSchedule is the one-per-unit record consulted when a unit's
// service frequency is "custom". A "custom" unit without one of these
// simply receives no tasks.
type CustomSchedule struct {
	ID           uuid.UUID    `json:"id"`
	UnitID       uuid.UUID    `json:"unit_id"`
	ScheduleType ScheduleType `json:"schedule_type"`

	// simple shape
	Frequency     Frequency      `json:"frequency,omitempty"`
	PreferredTime string         `json:"preferred_time,omitempty"`
	PreferredDay  *time.Weekday  `json:"preferred_day,omitempty"`
	SpecificDays  []time.Weekday `json:"specific_days,omitempty"`

	// complex shape
	Entries []ScheduleEntry `json:"entries,omitempty"`

	// shared
	ServiceTypes   map[Frequency][]ServiceType `json:"service_types,omitempty"`
	OccupancyRules *OccupancyRules             `json:"occupancy_rules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceTypeFor returns the first service kind registered for the given
// recurrence bucket, or full_service when none is registered.
func (s *CustomSchedule) ServiceTypeFor(freq Frequency) ServiceType {
	if kinds, ok := s.ServiceTypes[freq]; ok && len(kinds) > 0 {
		return kinds[0]
	}
	return ServiceFull
}
