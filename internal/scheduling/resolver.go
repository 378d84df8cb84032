package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/constants"
	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

// ResolveUnitTasks turns each active unit's effective schedule (default
// frequency or custom record) into candidate service tasks for the date.
//
// Unit kinds in `claimed` belong to an active random-selection rule and
// are skipped here — the rule engine is their sole source of service
// tasks — except that an on-arrival task may still fire independently.
func ResolveUnitTasks(
	date time.Time,
	units []*models.Unit,
	schedules map[uuid.UUID]*models.CustomSchedule,
	occ *OccupancyIndex,
	claimed map[models.UnitType]struct{},
) []Task {
	var tasks []Task

	for _, unit := range units {
		if !unit.Active {
			continue
		}

		_, kindClaimed := claimed[unit.UnitType]
		occupied := occ.Occupied(unit.ID)

		if unit.ServiceFrequency == models.FreqCustom {
			sched, ok := schedules[unit.ID]
			if !ok || sched == nil {
				// A "custom" unit without its record yields nothing,
				// not a fallback to the default frequency.
				continue
			}
			if !kindClaimed {
				tasks = append(tasks, resolveCustomSchedule(date, unit, sched, occupied)...)
			}
			if t := arrivalTask(date, unit, sched, occ); t != nil {
				tasks = append(tasks, *t)
			}
			continue
		}

		if kindClaimed {
			continue
		}

		if Matches(unit.ServiceFrequency, date, nil, nil, occupied) {
			tasks = append(tasks, serviceTask(
				date, unit, models.ServiceFull, constants.DefaultServiceTime,
				occupancyPriority(occupied), occupied, SourceUnitDefault,
			))
		}
	}

	return tasks
}

func resolveCustomSchedule(date time.Time, unit *models.Unit, sched *models.CustomSchedule, occupied bool) []Task {
	var tasks []Task

	switch sched.ScheduleType {
	case models.ScheduleSimple:
		if Matches(sched.Frequency, date, sched.PreferredDay, sched.SpecificDays, occupied) {
			tasks = append(tasks, serviceTask(
				date, unit, sched.ServiceTypeFor(sched.Frequency),
				timeOrDefault(sched.PreferredTime),
				occupancyPriority(occupied), occupied, SourceCustomSchedule,
			))
		}
	case models.ScheduleComplex:
		// Entries are independent; several can match the same day and
		// each emits its own task.
		for _, entry := range sched.Entries {
			if !Matches(entry.Frequency, date, nil, entry.Days, occupied) {
				continue
			}
			kind := sched.ServiceTypeFor(entry.Frequency)
			if len(entry.ServiceTypes) > 0 {
				kind = entry.ServiceTypes[0]
			}
			tasks = append(tasks, serviceTask(
				date, unit, kind, timeOrDefault(entry.Time),
				occupancyPriority(occupied), occupied, SourceCustomSchedule,
			))
		}
	}

	tasks = append(tasks, occupancyFloorTasks(date, unit, sched, occupied)...)
	return tasks
}

// occupancyFloorTasks implements the weekly/biweekly minimums of an
// occupancy_rules block: a guaranteed service on the named weekday
// regardless of what the simple/complex evaluation produced.
func occupancyFloorTasks(date time.Time, unit *models.Unit, sched *models.CustomSchedule, occupied bool) []Task {
	rules := sched.OccupancyRules
	if rules == nil {
		return nil
	}

	var tasks []Task
	if rules.WeeklyMinimumDay != nil && date.Weekday() == *rules.WeeklyMinimumDay {
		tasks = append(tasks, serviceTask(
			date, unit, sched.ServiceTypeFor(models.FreqWeekly),
			timeOrDefault(sched.PreferredTime),
			occupancyPriority(occupied), occupied, SourceOccupancyRule,
		))
	}
	if rules.BiweeklyMinimumDay != nil && date.Weekday() == *rules.BiweeklyMinimumDay && (date.Day()/7)%2 == 0 {
		tasks = append(tasks, serviceTask(
			date, unit, sched.ServiceTypeFor(models.FreqBiweekly),
			timeOrDefault(sched.PreferredTime),
			occupancyPriority(occupied), occupied, SourceOccupancyRule,
		))
	}
	return tasks
}

// arrivalTask emits the high-priority turn-over service on check-in day.
// Its service kind differs from the regular schedule's, so it survives
// deduplication as a distinct task.
func arrivalTask(date time.Time, unit *models.Unit, sched *models.CustomSchedule, occ *OccupancyIndex) *Task {
	if sched.OccupancyRules == nil || !sched.OccupancyRules.OnArrival {
		return nil
	}
	if !occ.ArrivingToday(unit.ID) {
		return nil
	}
	t := serviceTask(
		date, unit, models.ServiceArrivalPrep,
		timeOrDefault(sched.PreferredTime),
		PriorityHigh, true, SourceArrival,
	)
	return &t
}

func serviceTask(
	date time.Time,
	unit *models.Unit,
	kind models.ServiceType,
	at string,
	priority Priority,
	occupied bool,
	source TaskSource,
) Task {
	unitID := unit.ID
	return Task{
		Kind:        TaskService,
		PropertyID:  unit.PropertyID,
		UnitID:      &unitID,
		TargetName:  unit.Name,
		ServiceType: kind,
		Time:        at,
		Date:        date,
		Priority:    priority,
		Occupied:    occupied,
		Source:      source,
	}
}

func occupancyPriority(occupied bool) Priority {
	if occupied {
		return PriorityHigh
	}
	return PriorityMedium
}

func timeOrDefault(t string) string {
	if t == "" {
		return constants.DefaultServiceTime
	}
	return t
}
