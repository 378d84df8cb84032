package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type unitRepo struct {
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	return &unitRepo{db: db}
}

func baseSelectUnit() string {
	return `SELECT id, property_id, name, unit_type, water_type, service_frequency, active, created_at FROM units`
}

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO units (id, property_id, name, unit_type, water_type, service_frequency, active, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
    `, u.ID, u.PropertyID, u.Name, u.UnitType, u.WaterType, u.ServiceFrequency, u.Active)
	return err
}

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	row := r.db.QueryRow(ctx, baseSelectUnit()+` WHERE id=$1`, id)
	u, err := scanUnit(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *unitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+` WHERE property_id=$1 ORDER BY name`, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	if err := row.Scan(&u.ID, &u.PropertyID, &u.Name, &u.UnitType, &u.WaterType, &u.ServiceFrequency, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
