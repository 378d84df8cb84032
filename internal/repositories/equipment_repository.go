package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type EquipmentRepository interface {
	Create(ctx context.Context, e *models.Equipment) error
	ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Equipment, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type equipmentRepo struct {
	db DB
}

func NewEquipmentRepository(db DB) EquipmentRepository {
	return &equipmentRepo{db: db}
}

func (r *equipmentRepo) Create(ctx context.Context, e *models.Equipment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO equipment (
            id, property_id, unit_id, name, maintenance_frequency, maintenance_times,
            maintenance_days, has_measurement_config, maintenance_scheduled,
            skip_holidays, active, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, NOW())
    `,
		e.ID, e.PropertyID, e.UnitID, e.Name, e.MaintenanceFrequency, e.MaintenanceTimes,
		e.MaintenanceDays, e.HasMeasurementConfig, e.MaintenanceScheduled,
		e.SkipHolidays, e.Active,
	)
	return err
}

func (r *equipmentRepo) ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Equipment, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, unit_id, name, maintenance_frequency, maintenance_times,
               maintenance_days, has_measurement_config, maintenance_scheduled,
               skip_holidays, active, created_at
        FROM equipment
        WHERE property_id=$1 AND active
        ORDER BY name
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Equipment
	for rows.Next() {
		var e models.Equipment
		err := rows.Scan(
			&e.ID, &e.PropertyID, &e.UnitID, &e.Name, &e.MaintenanceFrequency,
			&e.MaintenanceTimes, &e.MaintenanceDays, &e.HasMeasurementConfig,
			&e.MaintenanceScheduled, &e.SkipHolidays, &e.Active, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
