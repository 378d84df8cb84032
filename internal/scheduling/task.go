package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

/*──────────────────────────────────────────────────────────────────────────────
  Task — the engine's sole output entity
──────────────────────────────────────────────────────────────────────────────*/

type TaskKind string

const (
	TaskService     TaskKind = "service"
	TaskPlantCheck  TaskKind = "plant_check"
	TaskMaintenance TaskKind = "maintenance"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for comparison and sorting: high < medium < low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// TaskSource identifies which resolver emitted a task. Arrival tasks get
// their own source so they dedup independently of regular service tasks.
type TaskSource string

const (
	SourceUnitDefault    TaskSource = "unit_default"
	SourceCustomSchedule TaskSource = "custom_schedule"
	SourceOccupancyRule  TaskSource = "occupancy_rule"
	SourceArrival        TaskSource = "arrival"
	SourcePropertyRule   TaskSource = "property_rule"
	SourcePlantRoom      TaskSource = "plant_room"
	SourceEquipment      TaskSource = "equipment"
)

// Task is freshly computed on every run, never persisted. Lifecycle:
// created by a resolver, possibly discarded by the aggregator, returned
// to the caller.
type Task struct {
	Kind       TaskKind   `json:"kind"`
	PropertyID uuid.UUID  `json:"property_id"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty"`
	PlantRoomID *uuid.UUID `json:"plant_room_id,omitempty"`
	EquipmentID *uuid.UUID `json:"equipment_id,omitempty"`

	TargetName  string             `json:"target_name"`
	ServiceType models.ServiceType `json:"service_type,omitempty"`
	Time        string             `json:"time"` // "HH:MM"
	Date        time.Time          `json:"date"`
	Priority    Priority           `json:"priority"`
	Occupied    bool               `json:"occupied"`
	Source      TaskSource         `json:"source"`
}

// DedupKey is the stable identity used to collapse duplicate tasks:
// service tasks collide per (unit, service kind, time, date); plant
// checks per (room, time, date); maintenance per (equipment, time, date).
// Arrival tasks carry a distinct service kind, so they survive alongside
// an ordinary same-time service.
func (t *Task) DedupKey() string {
	day := t.Date.Format("2006-01-02")
	switch t.Kind {
	case TaskPlantCheck:
		return fmt.Sprintf("check|%s|%s|%s", t.PlantRoomID, t.Time, day)
	case TaskMaintenance:
		return fmt.Sprintf("maint|%s|%s|%s", t.EquipmentID, t.Time, day)
	default:
		return fmt.Sprintf("service|%s|%s|%s|%s", t.UnitID, t.ServiceType, t.Time, day)
	}
}
