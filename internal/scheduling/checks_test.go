package scheduling

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

func testPlantRoom(freq models.CheckFrequency) *models.PlantRoom {
	return &models.PlantRoom{
		ID:             uuid.New(),
		PropertyID:     uuid.New(),
		Name:           "Main Plant Room",
		CheckFrequency: freq,
		Active:         true,
	}
}

func testEquipment() *models.Equipment {
	return &models.Equipment{
		ID:                   uuid.New(),
		PropertyID:           uuid.New(),
		Name:                 "Heater",
		MaintenanceFrequency: models.CheckDaily,
		HasMeasurementConfig: true,
		MaintenanceScheduled: true,
		Active:               true,
	}
}

func TestPlantChecksDefaultTimes(t *testing.T) {
	room := testPlantRoom(models.CheckTwiceDaily)

	tasks := SchedulePlantChecks(monday, []*models.PlantRoom{room})
	require.Len(t, tasks, 2)
	assert.Equal(t, "09:00", tasks[0].Time)
	assert.Equal(t, "15:00", tasks[1].Time)
	for _, task := range tasks {
		assert.Equal(t, TaskPlantCheck, task.Kind)
		assert.Equal(t, PriorityHigh, task.Priority)
		assert.Equal(t, room.ID, *task.PlantRoomID)
	}
}

func TestPlantChecksConfiguredTimesAndDays(t *testing.T) {
	room := testPlantRoom(models.CheckSpecificDays)
	room.CheckDays = []string{"monday"}
	room.CheckTimes = []string{"07:30"}

	tasks := SchedulePlantChecks(monday, []*models.PlantRoom{room})
	require.Len(t, tasks, 1)
	assert.Equal(t, "07:30", tasks[0].Time)

	assert.Empty(t, SchedulePlantChecks(tuesday, []*models.PlantRoom{room}))
}

func TestPlantChecksInactiveRoom(t *testing.T) {
	room := testPlantRoom(models.CheckDaily)
	room.Active = false
	assert.Empty(t, SchedulePlantChecks(monday, []*models.PlantRoom{room}))
}

func TestEquipmentMaintenanceDefaults(t *testing.T) {
	eq := testEquipment()

	tasks := ScheduleEquipmentMaintenance(monday, []*models.Equipment{eq})
	require.Len(t, tasks, 1)
	assert.Equal(t, TaskMaintenance, tasks[0].Kind)
	assert.Equal(t, "11:00", tasks[0].Time)
	assert.Equal(t, PriorityMedium, tasks[0].Priority)
	assert.Equal(t, eq.ID, *tasks[0].EquipmentID)
}

func TestEquipmentNeverSchedulesWhenDisabled(t *testing.T) {
	// maintenance_scheduled=false never produces a task, regardless of
	// recurrence or times.
	for _, freq := range []models.CheckFrequency{
		models.CheckDaily, models.CheckTwiceDaily, models.CheckWeekly, models.CheckEveryOtherDay,
	} {
		eq := testEquipment()
		eq.MaintenanceScheduled = false
		eq.MaintenanceFrequency = freq
		eq.MaintenanceTimes = []string{"08:00", "12:00"}
		for day := 0; day < 7; day++ {
			assert.Empty(t, ScheduleEquipmentMaintenance(monday.AddDate(0, 0, day), []*models.Equipment{eq}))
		}
	}
}

func TestEquipmentRequiresMeasurementConfig(t *testing.T) {
	eq := testEquipment()
	eq.HasMeasurementConfig = false
	assert.Empty(t, ScheduleEquipmentMaintenance(monday, []*models.Equipment{eq}))
}

func TestEquipmentRequiresFrequency(t *testing.T) {
	eq := testEquipment()
	eq.MaintenanceFrequency = ""
	assert.Empty(t, ScheduleEquipmentMaintenance(monday, []*models.Equipment{eq}))
}

func TestEquipmentWeeklyOnMonday(t *testing.T) {
	eq := testEquipment()
	eq.MaintenanceFrequency = models.CheckWeekly
	eq.MaintenanceTimes = []string{"13:00"}

	tasks := ScheduleEquipmentMaintenance(monday, []*models.Equipment{eq})
	require.Len(t, tasks, 1)
	assert.Equal(t, "13:00", tasks[0].Time)

	assert.Empty(t, ScheduleEquipmentMaintenance(tuesday, []*models.Equipment{eq}))
}
