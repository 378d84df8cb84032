package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRuleRepository interface {
	Create(ctx context.Context, r *models.PropertyRule) error
	ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyRule, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRuleRepo struct {
	db DB
}

func NewPropertyRuleRepository(db DB) PropertyRuleRepository {
	return &propertyRuleRepo{db: db}
}

func (r *propertyRuleRepo) Create(ctx context.Context, rule *models.PropertyRule) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_rules (
            id, property_id, rule_type, frequency, selection_count, service_type,
            unit_types, water_types, unit_ids, preferred_time, priority,
            skip_holidays, active, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, NOW(), NOW())
    `,
		rule.ID, rule.PropertyID, rule.RuleType, rule.Frequency, rule.SelectionCount,
		rule.ServiceType, rule.UnitTypes, rule.WaterTypes, rule.UnitIDs,
		rule.PreferredTime, rule.Priority, rule.SkipHolidays, rule.Active,
	)
	return err
}

func (r *propertyRuleRepo) ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyRule, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, rule_type, frequency, selection_count, service_type,
               unit_types, water_types, unit_ids, preferred_time, priority,
               skip_holidays, active, created_at, updated_at
        FROM property_rules
        WHERE property_id=$1 AND active
        ORDER BY priority
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyRule
	for rows.Next() {
		rule, err := scanPropertyRule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, rows.Err()
}

func scanPropertyRule(row pgx.Row) (*models.PropertyRule, error) {
	var rule models.PropertyRule
	err := row.Scan(
		&rule.ID, &rule.PropertyID, &rule.RuleType, &rule.Frequency, &rule.SelectionCount,
		&rule.ServiceType, &rule.UnitTypes, &rule.WaterTypes, &rule.UnitIDs,
		&rule.PreferredTime, &rule.Priority, &rule.SkipHolidays, &rule.Active,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
