package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	// ListCoveringDate returns the property's bookings whose interval
	// contains the date, plus same-day check-ins. One query feeds both
	// sides of the occupancy index.
	ListCoveringDate(ctx context.Context, propID uuid.UUID, date time.Time) ([]*models.Booking, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type bookingRepo struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, b *models.Booking) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO bookings (id, unit_id, check_in_date, check_out_date, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, b.ID, b.UnitID, b.CheckInDate, b.CheckOutDate)
	return err
}

func (r *bookingRepo) ListCoveringDate(ctx context.Context, propID uuid.UUID, date time.Time) ([]*models.Booking, error) {
	rows, err := r.db.Query(ctx, `
        SELECT b.id, b.unit_id, b.check_in_date, b.check_out_date, b.created_at
        FROM bookings b
        JOIN units u ON u.id = b.unit_id
        WHERE u.property_id = $1
          AND b.check_in_date <= $2
          AND b.check_out_date >= $2
    `, propID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UnitID, &b.CheckInDate, &b.CheckOutDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
