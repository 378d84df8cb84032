package scheduling

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

// PropertyInput is everything the engine needs about one property,
// already loaded into memory. The engine performs no I/O and no writes.
type PropertyInput struct {
	Property        *models.Property
	Units           []*models.Unit
	Bookings        []*models.Booking
	CustomSchedules map[uuid.UUID]*models.CustomSchedule
	Rules           []*models.PropertyRule
	PlantRooms      []*models.PlantRoom
	Equipment       []*models.Equipment
}

// Schedule is the engine's output: the ordered task list plus the
// properties that were considered.
type Schedule struct {
	Date       time.Time          `json:"date"`
	Tasks      []Task             `json:"tasks"`
	Properties []*models.Property `json:"properties"`
}

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Generate evaluates every property for the date and merges the results.
// Properties are independent, so resolution fans out across a bounded
// worker group; aggregation stays single-threaded.
func (e *Engine) Generate(ctx context.Context, date time.Time, inputs []*PropertyInput) (*Schedule, error) {
	date = utils.DateOnly(date)

	schedule := &Schedule{Date: date}
	if len(inputs) == 0 {
		schedule.Tasks = []Task{}
		return schedule, nil
	}

	perProperty := make([][]Task, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(len(inputs)))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			perProperty[i] = e.resolveProperty(date, input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []Task
	for i, input := range inputs {
		if input.Property != nil {
			schedule.Properties = append(schedule.Properties, input.Property)
		}
		candidates = append(candidates, perProperty[i]...)
	}

	schedule.Tasks = Aggregate(candidates)
	return schedule, nil
}

// resolveProperty runs the three task sources for one property. Pure
// computation over the input snapshot; safe to run concurrently with
// other properties.
func (e *Engine) resolveProperty(date time.Time, input *PropertyInput) []Task {
	occ := BuildOccupancyIndex(input.Bookings, date)
	claimed := ClaimedUnitTypes(input.Rules, input.Units)

	var tasks []Task
	tasks = append(tasks, ResolveUnitTasks(date, input.Units, input.CustomSchedules, occ, claimed)...)
	tasks = append(tasks, EvaluatePropertyRules(date, propertyID(input), input.Rules, input.Units, occ)...)
	tasks = append(tasks, SchedulePlantChecks(date, input.PlantRooms)...)
	tasks = append(tasks, ScheduleEquipmentMaintenance(date, input.Equipment)...)
	return tasks
}

// propertyID tolerates inputs without a loaded Property record; the
// random-selection seed then falls back to the units' owning property.
func propertyID(input *PropertyInput) uuid.UUID {
	if input.Property != nil {
		return input.Property.ID
	}
	if len(input.Units) > 0 {
		return input.Units[0].PropertyID
	}
	return uuid.Nil
}

func workerLimit(properties int) int {
	limit := runtime.NumCPU()
	if properties < limit {
		limit = properties
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}
