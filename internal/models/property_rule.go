package models

import (
	"time"

	"github.com/google/uuid"
)

type RuleType string

const (
	// RuleRandomSelection rotates attention across a pool of shared
	// facilities: N of the matching units get the configured service each
	// day the recurrence fires. The enumeration is open for future rule
	// kinds; this is the only one the engine evaluates today.
	RuleRandomSelection RuleType = "random_selection"
)

// PropertyRule is a property-scoped scheduling rule evaluated in
// ascending Priority order.
type PropertyRule struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	RuleType   RuleType  `json:"rule_type"`

	Frequency      Frequency   `json:"frequency"`
	SelectionCount int         `json:"selection_count"`
	ServiceType    ServiceType `json:"service_type"`

	// Optional filters; each one present narrows the candidate pool.
	UnitTypes  []UnitType  `json:"unit_types,omitempty"`
	WaterTypes []WaterType `json:"water_types,omitempty"`
	UnitIDs    []uuid.UUID `json:"unit_ids,omitempty"`

	PreferredTime string `json:"preferred_time,omitempty"` // "HH:MM"
	Priority      int    `json:"priority"`
	SkipHolidays  bool   `json:"skip_holidays"`
	Active        bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClaimsUnitType reports whether the rule's unit-kind filter includes the
// given shared-facility kind. A rule with no unit-kind filter claims
// every shared-facility kind on its property.
func (r *PropertyRule) ClaimsUnitType(t UnitType) bool {
	if !t.IsSharedFacility() {
		return false
	}
	if len(r.UnitTypes) == 0 {
		return true
	}
	for _, ut := range r.UnitTypes {
		if ut == t {
			return true
		}
	}
	return false
}
