package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PlantRoomRepository interface {
	Create(ctx context.Context, p *models.PlantRoom) error
	ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PlantRoom, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type plantRoomRepo struct {
	db DB
}

func NewPlantRoomRepository(db DB) PlantRoomRepository {
	return &plantRoomRepo{db: db}
}

func (r *plantRoomRepo) Create(ctx context.Context, p *models.PlantRoom) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO plant_rooms (
            id, property_id, name, check_frequency, check_times, check_days,
            active, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
    `, p.ID, p.PropertyID, p.Name, p.CheckFrequency, p.CheckTimes, p.CheckDays, p.Active)
	return err
}

func (r *plantRoomRepo) ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PlantRoom, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, name, check_frequency, check_times, check_days,
               active, created_at
        FROM plant_rooms
        WHERE property_id=$1 AND active
        ORDER BY name
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PlantRoom
	for rows.Next() {
		var p models.PlantRoom
		err := rows.Scan(
			&p.ID, &p.PropertyID, &p.Name, &p.CheckFrequency, &p.CheckTimes,
			&p.CheckDays, &p.Active, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
