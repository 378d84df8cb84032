package models

import (
	"time"

	"github.com/google/uuid"
)

// Technician is pass-through data attached to a generated schedule for
// the caller's convenience; the engine never assigns tasks to one.
type Technician struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
