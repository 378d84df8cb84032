package repositories

import (
	"context"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type TechnicianRepository interface {
	Create(ctx context.Context, t *models.Technician) error
	ListActive(ctx context.Context) ([]*models.Technician, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type technicianRepo struct {
	db DB
}

func NewTechnicianRepository(db DB) TechnicianRepository {
	return &technicianRepo{db: db}
}

func (r *technicianRepo) Create(ctx context.Context, t *models.Technician) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO technicians (id, company_id, name, email, active, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, t.ID, t.CompanyID, t.Name, t.Email, t.Active)
	return err
}

func (r *technicianRepo) ListActive(ctx context.Context) ([]*models.Technician, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, company_id, name, email, active, created_at
        FROM technicians
        WHERE active
        ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Technician
	for rows.Next() {
		var t models.Technician
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Email, &t.Active, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
