package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixed reference days in June 2025: the 2nd is a Monday.
var (
	monday   = date(2025, time.June, 2)
	tuesday  = date(2025, time.June, 3)
	thursday = date(2025, time.June, 5)
	friday   = date(2025, time.June, 6)
)

func testUnit(name string, ut models.UnitType, freq models.Frequency) *models.Unit {
	return &models.Unit{
		ID:               uuid.New(),
		PropertyID:       uuid.New(),
		Name:             name,
		UnitType:         ut,
		WaterType:        models.WaterTypeChlorine,
		ServiceFrequency: freq,
		Active:           true,
	}
}

func bookingFor(unitID uuid.UUID, in, out time.Time) *models.Booking {
	return &models.Booking{
		ID:           uuid.New(),
		UnitID:       unitID,
		CheckInDate:  in,
		CheckOutDate: out,
	}
}

func emptyOccupancy() *OccupancyIndex {
	return BuildOccupancyIndex(nil, monday)
}

func weekdayPtr(d time.Weekday) *time.Weekday {
	return &d
}
