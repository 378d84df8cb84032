package dtos

import (
	"github.com/google/uuid"
)

/*
DailyScheduleQuery is the "request DTO" for GET /api/v1/schedule/daily.
Date defaults to today (server time) when omitted.
*/
type DailyScheduleQuery struct {
	Date        string      `validate:"omitempty,datetime=2006-01-02"`
	PropertyIDs []uuid.UUID `validate:"omitempty,max=100"`
}

/*
TaskDTO is one entry of the generated daily task list.
*/
type TaskDTO struct {
	Kind        string     `json:"kind"`
	PropertyID  uuid.UUID  `json:"property_id"`
	UnitID      *uuid.UUID `json:"unit_id,omitempty"`
	PlantRoomID *uuid.UUID `json:"plant_room_id,omitempty"`
	EquipmentID *uuid.UUID `json:"equipment_id,omitempty"`
	TargetName  string     `json:"target_name"`
	ServiceType string     `json:"service_type,omitempty"`
	Time        string     `json:"time"`
	Date        string     `json:"date"`
	Priority    string     `json:"priority"`
	Occupied    bool       `json:"occupied"`
	Source      string     `json:"source"`
}

type PropertyDTO struct {
	PropertyID uuid.UUID `json:"property_id"`
	Name       string    `json:"name"`
	TimeZone   string    `json:"timezone"`
}

type TechnicianDTO struct {
	TechnicianID uuid.UUID `json:"technician_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
}

/*
DailyScheduleResponse is the full response for the daily schedule query:
the ordered task list, the properties considered, and the company's
technicians (pass-through for the caller's assignment UI).
*/
type DailyScheduleResponse struct {
	Date        string          `json:"date"`
	Tasks       []TaskDTO       `json:"tasks"`
	TaskCount   int             `json:"task_count"`
	Properties  []PropertyDTO   `json:"properties"`
	Technicians []TechnicianDTO `json:"technicians"`
}
