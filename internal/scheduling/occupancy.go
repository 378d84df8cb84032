package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

// OccupancyIndex answers the only two questions the scheduler asks about
// bookings: is this unit occupied today, and does a guest arrive today.
// Built once per property per run.
type OccupancyIndex struct {
	occupied map[uuid.UUID]struct{}
	arriving map[uuid.UUID]struct{}
}

// BuildOccupancyIndex scans the property's bookings for intervals that
// contain the date (check-in and check-out days inclusive) and for exact
// check-in matches. No other booking fields are consulted.
func BuildOccupancyIndex(bookings []*models.Booking, date time.Time) *OccupancyIndex {
	idx := &OccupancyIndex{
		occupied: make(map[uuid.UUID]struct{}),
		arriving: make(map[uuid.UUID]struct{}),
	}
	day := utils.DateOnly(date)
	for _, b := range bookings {
		in := utils.DateOnly(b.CheckInDate)
		out := utils.DateOnly(b.CheckOutDate)
		if !day.Before(in) && !day.After(out) {
			idx.occupied[b.UnitID] = struct{}{}
		}
		if in.Equal(day) {
			idx.arriving[b.UnitID] = struct{}{}
		}
	}
	return idx
}

func (idx *OccupancyIndex) Occupied(unitID uuid.UUID) bool {
	_, ok := idx.occupied[unitID]
	return ok
}

func (idx *OccupancyIndex) ArrivingToday(unitID uuid.UUID) bool {
	_, ok := idx.arriving[unitID]
	return ok
}
