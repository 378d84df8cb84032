package scheduling

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/constants"
	"github.com/cmaclennan/aquivis-sub000/internal/models"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

// EvaluatePropertyRules runs the property's active rules in ascending
// priority order. Only random_selection is implemented; unknown rule
// kinds are skipped, never an error.
func EvaluatePropertyRules(
	date time.Time,
	propertyID uuid.UUID,
	rules []*models.PropertyRule,
	units []*models.Unit,
	occ *OccupancyIndex,
) []Task {
	active := make([]*models.PropertyRule, 0, len(rules))
	for _, r := range rules {
		if r.Active {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority < active[j].Priority
	})

	var tasks []Task
	for _, rule := range active {
		if rule.RuleType != models.RuleRandomSelection {
			continue
		}
		tasks = append(tasks, evaluateRandomSelection(date, propertyID, rule, units, occ)...)
	}
	return tasks
}

// ClaimedUnitTypes returns the shared-facility unit kinds owned by the
// property's active rules. The per-unit resolver skips these kinds; the
// rules become their sole source of service tasks.
func ClaimedUnitTypes(rules []*models.PropertyRule, units []*models.Unit) map[models.UnitType]struct{} {
	claimed := make(map[models.UnitType]struct{})
	for _, rule := range rules {
		if !rule.Active || rule.RuleType != models.RuleRandomSelection {
			continue
		}
		for _, u := range units {
			if rule.ClaimsUnitType(u.UnitType) {
				claimed[u.UnitType] = struct{}{}
			}
		}
	}
	return claimed
}

// evaluateRandomSelection picks min(SelectionCount, pool) distinct units
// from the rule's filtered pool with a generator seeded from
// (property id, date): the same inputs always choose the same units,
// while different dates draw independently.
func evaluateRandomSelection(
	date time.Time,
	propertyID uuid.UUID,
	rule *models.PropertyRule,
	units []*models.Unit,
	occ *OccupancyIndex,
) []Task {
	if !Matches(rule.Frequency, date, nil, nil, false) {
		return nil
	}
	if rule.SkipHolidays && utils.IsUSFedHoliday(date) {
		return nil
	}

	pool := candidatePool(rule, units)
	if len(pool) == 0 || rule.SelectionCount <= 0 {
		return nil
	}

	seq := newSeededSequence(selectionSeed(propertyID, date))
	picks := seq.pickDistinct(len(pool), rule.SelectionCount)

	at := rule.PreferredTime
	if at == "" {
		at = constants.DefaultServiceTime
	}

	tasks := make([]Task, 0, len(picks))
	for _, i := range picks {
		unit := pool[i]
		// Rule-selected tasks always carry high priority: the rotation
		// guarantee is the point of the rule.
		tasks = append(tasks, serviceTask(
			date, unit, rule.ServiceType, at,
			PriorityHigh, occ.Occupied(unit.ID), SourcePropertyRule,
		))
	}
	return tasks
}

func candidatePool(rule *models.PropertyRule, units []*models.Unit) []*models.Unit {
	unitTypes := toSet(rule.UnitTypes)
	waterTypes := toSet(rule.WaterTypes)
	unitIDs := toSet(rule.UnitIDs)

	var pool []*models.Unit
	for _, u := range units {
		if !u.Active {
			continue
		}
		if len(unitTypes) > 0 {
			if _, ok := unitTypes[u.UnitType]; !ok {
				continue
			}
		}
		if len(waterTypes) > 0 {
			if _, ok := waterTypes[u.WaterType]; !ok {
				continue
			}
		}
		if len(unitIDs) > 0 {
			if _, ok := unitIDs[u.ID]; !ok {
				continue
			}
		}
		pool = append(pool, u)
	}
	return pool
}

func toSet[T comparable](values []T) map[T]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
