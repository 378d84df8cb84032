package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/cmaclennan/aquivis-sub000/internal/constants"
	"github.com/cmaclennan/aquivis-sub000/internal/dtos"
	"github.com/cmaclennan/aquivis-sub000/internal/models"
	"github.com/cmaclennan/aquivis-sub000/internal/repositories"
	"github.com/cmaclennan/aquivis-sub000/internal/scheduling"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

// ScheduleService loads scheduling inputs through the repositories,
// runs the engine, and caches the generated schedules. The engine never
// touches the database; everything is loaded up front per property.
type ScheduleService struct {
	propRepo  repositories.PropertyRepository
	unitRepo  repositories.UnitRepository
	bookRepo  repositories.BookingRepository
	schedRepo repositories.CustomScheduleRepository
	ruleRepo  repositories.PropertyRuleRepository
	roomRepo  repositories.PlantRoomRepository
	equipRepo repositories.EquipmentRepository
	techRepo  repositories.TechnicianRepository

	engine *scheduling.Engine
	cache  *gocache.Cache
}

func NewScheduleService(
	propRepo repositories.PropertyRepository,
	unitRepo repositories.UnitRepository,
	bookRepo repositories.BookingRepository,
	schedRepo repositories.CustomScheduleRepository,
	ruleRepo repositories.PropertyRuleRepository,
	roomRepo repositories.PlantRoomRepository,
	equipRepo repositories.EquipmentRepository,
	techRepo repositories.TechnicianRepository,
) *ScheduleService {
	return &ScheduleService{
		propRepo:  propRepo,
		unitRepo:  unitRepo,
		bookRepo:  bookRepo,
		schedRepo: schedRepo,
		ruleRepo:  ruleRepo,
		roomRepo:  roomRepo,
		equipRepo: equipRepo,
		techRepo:  techRepo,
		engine:    scheduling.NewEngine(),
		cache:     gocache.New(constants.ScheduleCacheTTL, constants.ScheduleCacheCleanup),
	}
}

// GenerateDailySchedule produces the day's ordered task list for the
// given property scope (all active properties when empty). Results are
// cached briefly: generation is a pure function of stored inputs.
func (s *ScheduleService) GenerateDailySchedule(
	ctx context.Context,
	date time.Time,
	propertyIDs []uuid.UUID,
) (*dtos.DailyScheduleResponse, error) {
	date = utils.DateOnly(date)

	key := cacheKey(date, propertyIDs)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dtos.DailyScheduleResponse), nil
	}

	props, err := s.loadProperties(ctx, propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("loading properties: %w", err)
	}

	inputs := make([]*scheduling.PropertyInput, 0, len(props))
	for _, prop := range props {
		input, err := s.loadPropertyInput(ctx, prop, date)
		if err != nil {
			return nil, fmt.Errorf("loading inputs for property %s: %w", prop.ID, err)
		}
		inputs = append(inputs, input)
	}

	schedule, err := s.engine.Generate(ctx, date, inputs)
	if err != nil {
		return nil, err
	}

	techs, err := s.techRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading technicians: %w", err)
	}

	resp := buildScheduleResponse(schedule, techs)
	s.cache.Set(key, resp, gocache.DefaultExpiration)

	utils.Logger.Infof(
		"Generated daily schedule for %s: %d tasks across %d properties",
		date.Format("2006-01-02"), len(resp.Tasks), len(resp.Properties),
	)
	return resp, nil
}

// WarmDailyCache pre-generates today's full schedule; wired to the
// just-after-midnight cron run so the first morning request is a cache
// hit.
func (s *ScheduleService) WarmDailyCache(ctx context.Context) {
	if _, err := s.GenerateDailySchedule(ctx, time.Now(), nil); err != nil {
		utils.Logger.WithError(err).Error("Failed to warm daily schedule cache")
	}
}

func (s *ScheduleService) loadProperties(ctx context.Context, ids []uuid.UUID) ([]*models.Property, error) {
	if len(ids) == 0 {
		return s.propRepo.ListActive(ctx)
	}
	return s.propRepo.ListActiveByIDs(ctx, ids)
}

func (s *ScheduleService) loadPropertyInput(
	ctx context.Context,
	prop *models.Property,
	date time.Time,
) (*scheduling.PropertyInput, error) {
	units, err := s.unitRepo.ListByPropertyID(ctx, prop.ID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookRepo.ListCoveringDate(ctx, prop.ID, date)
	if err != nil {
		return nil, err
	}
	schedules, err := s.schedRepo.MapByPropertyID(ctx, prop.ID)
	if err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.ListActiveByPropertyID(ctx, prop.ID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.roomRepo.ListActiveByPropertyID(ctx, prop.ID)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipRepo.ListActiveByPropertyID(ctx, prop.ID)
	if err != nil {
		return nil, err
	}

	return &scheduling.PropertyInput{
		Property:        prop,
		Units:           units,
		Bookings:        bookings,
		CustomSchedules: schedules,
		Rules:           rules,
		PlantRooms:      rooms,
		Equipment:       equipment,
	}, nil
}

func buildScheduleResponse(schedule *scheduling.Schedule, techs []*models.Technician) *dtos.DailyScheduleResponse {
	resp := &dtos.DailyScheduleResponse{
		Date:  schedule.Date.Format("2006-01-02"),
		Tasks: make([]dtos.TaskDTO, 0, len(schedule.Tasks)),
	}
	for _, t := range schedule.Tasks {
		resp.Tasks = append(resp.Tasks, dtos.TaskDTO{
			Kind:        string(t.Kind),
			PropertyID:  t.PropertyID,
			UnitID:      t.UnitID,
			PlantRoomID: t.PlantRoomID,
			EquipmentID: t.EquipmentID,
			TargetName:  t.TargetName,
			ServiceType: string(t.ServiceType),
			Time:        t.Time,
			Date:        t.Date.Format("2006-01-02"),
			Priority:    string(t.Priority),
			Occupied:    t.Occupied,
			Source:      string(t.Source),
		})
	}
	resp.TaskCount = len(resp.Tasks)
	for _, p := range schedule.Properties {
		resp.Properties = append(resp.Properties, dtos.PropertyDTO{
			PropertyID: p.ID,
			Name:       p.Name,
			TimeZone:   p.TimeZone,
		})
	}
	for _, t := range techs {
		resp.Technicians = append(resp.Technicians, dtos.TechnicianDTO{
			TechnicianID: t.ID,
			Name:         t.Name,
			Email:        t.Email,
		})
	}
	return resp
}

func cacheKey(date time.Time, propertyIDs []uuid.UUID) string {
	if len(propertyIDs) == 0 {
		return "daily|" + date.Format("2006-01-02") + "|all"
	}
	ids := make([]string, len(propertyIDs))
	for i, id := range propertyIDs {
		ids[i] = id.String()
	}
	sort.Strings(ids)
	return "daily|" + date.Format("2006-01-02") + "|" + strings.Join(ids, ",")
}
