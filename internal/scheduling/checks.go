package scheduling

import (
	"time"

	"github.com/cmaclennan/aquivis-sub000/internal/constants"
	"github.com/cmaclennan/aquivis-sub000/internal/models"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

// SchedulePlantChecks emits one plant-check task per configured time for
// every active room whose recurrence fires today. Plant-room
// non-compliance is safety-critical, so these are always high priority.
func SchedulePlantChecks(date time.Time, rooms []*models.PlantRoom) []Task {
	var tasks []Task
	for _, room := range rooms {
		if !room.Active {
			continue
		}
		if !CheckMatches(room.CheckFrequency, date, room.CheckDays) {
			continue
		}

		times := room.CheckTimes
		if len(times) == 0 {
			times = constants.DefaultCheckTimes
		}
		for _, at := range times {
			roomID := room.ID
			tasks = append(tasks, Task{
				Kind:        TaskPlantCheck,
				PropertyID:  room.PropertyID,
				PlantRoomID: &roomID,
				TargetName:  room.Name,
				Time:        at,
				Date:        date,
				Priority:    PriorityHigh,
				Source:      SourcePlantRoom,
			})
		}
	}
	return tasks
}

// ScheduleEquipmentMaintenance emits maintenance tasks for equipment
// that has a measurement configuration, maintenance scheduling enabled,
// and a recurrence. Everything else never generates tasks, regardless
// of recurrence.
func ScheduleEquipmentMaintenance(date time.Time, equipment []*models.Equipment) []Task {
	var tasks []Task
	for _, eq := range equipment {
		if !eq.Active || !eq.HasMeasurementConfig || !eq.MaintenanceScheduled {
			continue
		}
		if eq.MaintenanceFrequency == "" {
			continue
		}
		if !CheckMatches(eq.MaintenanceFrequency, date, eq.MaintenanceDays) {
			continue
		}
		if eq.SkipHolidays && utils.IsUSFedHoliday(date) {
			continue
		}

		times := eq.MaintenanceTimes
		if len(times) == 0 {
			times = []string{constants.DefaultMaintenanceTime}
		}
		for _, at := range times {
			equipmentID := eq.ID
			tasks = append(tasks, Task{
				Kind:        TaskMaintenance,
				PropertyID:  eq.PropertyID,
				UnitID:      eq.UnitID,
				EquipmentID: &equipmentID,
				TargetName:  eq.Name,
				Time:        at,
				Date:        date,
				Priority:    PriorityMedium,
				Source:      SourceEquipment,
			})
		}
	}
	return tasks
}
