package models

import (
	"time"

	"github.com/google/uuid"
)

type UnitType string

const (
	UnitTypePool        UnitType = "pool"
	UnitTypeSpa         UnitType = "spa"
	UnitTypeSwimSpa     UnitType = "swim_spa"
	UnitTypeHotTub      UnitType = "hot_tub"
	UnitTypeMainPool    UnitType = "main_pool"
	UnitTypeKidsPool    UnitType = "kids_pool"
	UnitTypeLapPool     UnitType = "lap_pool"
	UnitTypeCommunalSpa UnitType = "communal_spa"
)

// IsSharedFacility reports whether the unit kind is a communal water body
// eligible for property-level rotation rules instead of per-unit defaults.
func (t UnitType) IsSharedFacility() bool {
	switch t {
	case UnitTypeMainPool, UnitTypeKidsPool, UnitTypeLapPool, UnitTypeCommunalSpa:
		return true
	default:
		return false
	}
}

type WaterType string

const (
	WaterTypeChlorine  WaterType = "chlorine"
	WaterTypeSaltwater WaterType = "saltwater"
	WaterTypeBromine   WaterType = "bromine"
	WaterTypeMineral   WaterType = "mineral"
)

// Unit is a serviceable water body belonging to a property.
type Unit struct {
	ID               uuid.UUID `json:"id"`
	PropertyID       uuid.UUID `json:"property_id"`
	Name             string    `json:"name"`
	UnitType         UnitType  `json:"unit_type"`
	WaterType        WaterType `json:"water_type"`
	ServiceFrequency Frequency `json:"service_frequency"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}
