package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type CustomScheduleRepository interface {
	Create(ctx context.Context, s *models.CustomSchedule) error
	// MapByPropertyID returns the property's custom schedules keyed by
	// unit id, the shape the resolver consumes.
	MapByPropertyID(ctx context.Context, propID uuid.UUID) (map[uuid.UUID]*models.CustomSchedule, error)
}

/* ------------------------------------------------------------------
   Implementation

   The simple/complex/occupancy bodies live in JSONB columns; the shape
   tag stays relational so queries can filter on it.
------------------------------------------------------------------ */

type customScheduleRepo struct {
	db DB
}

func NewCustomScheduleRepository(db DB) CustomScheduleRepository {
	return &customScheduleRepo{db: db}
}

func (r *customScheduleRepo) Create(ctx context.Context, s *models.CustomSchedule) error {
	entries, err := json.Marshal(s.Entries)
	if err != nil {
		return err
	}
	serviceTypes, err := json.Marshal(s.ServiceTypes)
	if err != nil {
		return err
	}
	occupancyRules, err := json.Marshal(s.OccupancyRules)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO custom_schedules (
            id, unit_id, schedule_type, frequency, preferred_time, preferred_day,
            specific_days, entries, service_types, occupancy_rules,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW(), NOW())
    `,
		s.ID, s.UnitID, s.ScheduleType, s.Frequency, s.PreferredTime, s.PreferredDay,
		weekdaysToInts(s.SpecificDays), entries, serviceTypes, occupancyRules,
	)
	return err
}

func (r *customScheduleRepo) MapByPropertyID(ctx context.Context, propID uuid.UUID) (map[uuid.UUID]*models.CustomSchedule, error) {
	rows, err := r.db.Query(ctx, `
        SELECT s.id, s.unit_id, s.schedule_type, s.frequency, s.preferred_time, s.preferred_day,
               s.specific_days, s.entries, s.service_types, s.occupancy_rules,
               s.created_at, s.updated_at
        FROM custom_schedules s
        JOIN units u ON u.id = s.unit_id
        WHERE u.property_id = $1
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*models.CustomSchedule)
	for rows.Next() {
		s, err := scanCustomSchedule(rows)
		if err != nil {
			return nil, err
		}
		out[s.UnitID] = s
	}
	return out, rows.Err()
}

func scanCustomSchedule(row pgx.Row) (*models.CustomSchedule, error) {
	var (
		s              models.CustomSchedule
		specificDays   []int16
		entries        []byte
		serviceTypes   []byte
		occupancyRules []byte
	)
	err := row.Scan(
		&s.ID, &s.UnitID, &s.ScheduleType, &s.Frequency, &s.PreferredTime, &s.PreferredDay,
		&specificDays, &entries, &serviceTypes, &occupancyRules,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.SpecificDays = intsToWeekdays(specificDays)
	if len(entries) > 0 {
		if err := json.Unmarshal(entries, &s.Entries); err != nil {
			return nil, err
		}
	}
	if len(serviceTypes) > 0 {
		if err := json.Unmarshal(serviceTypes, &s.ServiceTypes); err != nil {
			return nil, err
		}
	}
	if len(occupancyRules) > 0 {
		if err := json.Unmarshal(occupancyRules, &s.OccupancyRules); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
