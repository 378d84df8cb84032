package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a guest occupancy interval for a unit. The scheduler only
// reads the two date bounds; everything else about a stay lives in the
// booking subsystem.
type Booking struct {
	ID           uuid.UUID `json:"id"`
	UnitID       uuid.UUID `json:"unit_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	CreatedAt    time.Time `json:"created_at"`
}
