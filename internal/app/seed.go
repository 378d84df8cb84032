package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
	"github.com/cmaclennan/aquivis-sub000/internal/repositories"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

// Helper to check for unique violation error (PostgreSQL specific code)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SeedDemoData creates a small two-property company: a resort with
// rotated shared pools, plant room, and equipment, plus a villa estate
// with per-unit schedules and live bookings. Safe to re-run; duplicate
// inserts are skipped.
func SeedDemoData(
	ctx context.Context,
	propRepo repositories.PropertyRepository,
	unitRepo repositories.UnitRepository,
	bookRepo repositories.BookingRepository,
	schedRepo repositories.CustomScheduleRepository,
	ruleRepo repositories.PropertyRuleRepository,
	roomRepo repositories.PlantRoomRepository,
	equipRepo repositories.EquipmentRepository,
	techRepo repositories.TechnicianRepository,
) error {
	companyID := uuid.MustParse("6b1f6f60-0000-4000-8000-000000000001")
	resortID := uuid.MustParse("6b1f6f60-0000-4000-8000-000000000010")
	estateID := uuid.MustParse("6b1f6f60-0000-4000-8000-000000000020")

	properties := []*models.Property{
		{ID: resortID, CompanyID: companyID, Name: "Sandpiper Resort", TimeZone: "America/Chicago", Active: true},
		{ID: estateID, CompanyID: companyID, Name: "Cypress Villas", TimeZone: "America/Chicago", Active: true},
	}
	for _, p := range properties {
		if err := propRepo.Create(ctx, p); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("seeding property %s: %w", p.Name, err)
		}
	}

	// Shared facilities at the resort, rotated by a random-selection rule.
	sharedUnits := []*models.Unit{
		{Name: "Main Pool", UnitType: models.UnitTypeMainPool},
		{Name: "Kids Pool", UnitType: models.UnitTypeKidsPool},
		{Name: "Lap Pool", UnitType: models.UnitTypeLapPool},
		{Name: "North Spa", UnitType: models.UnitTypeCommunalSpa},
		{Name: "South Spa", UnitType: models.UnitTypeCommunalSpa},
	}
	for i, u := range sharedUnits {
		u.ID = demoUUID(0x10, byte(i))
		u.PropertyID = resortID
		u.WaterType = models.WaterTypeChlorine
		u.ServiceFrequency = models.FreqWeekly
		u.Active = true
		if err := unitRepo.Create(ctx, u); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("seeding unit %s: %w", u.Name, err)
		}
	}

	rule := &models.PropertyRule{
		ID:             demoUUID(0x20, 0),
		PropertyID:     resortID,
		RuleType:       models.RuleRandomSelection,
		Frequency:      models.FreqDaily,
		SelectionCount: 2,
		ServiceType:    models.ServiceTestOnly,
		UnitTypes: []models.UnitType{
			models.UnitTypeMainPool, models.UnitTypeKidsPool,
			models.UnitTypeLapPool, models.UnitTypeCommunalSpa,
		},
		PreferredTime: "08:00",
		Priority:      1,
		Active:        true,
	}
	if err := ruleRepo.Create(ctx, rule); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("seeding property rule: %w", err)
	}

	room := &models.PlantRoom{
		ID:             demoUUID(0x30, 0),
		PropertyID:     resortID,
		Name:           "Main Plant Room",
		CheckFrequency: models.CheckTwiceDaily,
		Active:         true,
	}
	if err := roomRepo.Create(ctx, room); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("seeding plant room: %w", err)
	}

	heater := &models.Equipment{
		ID:                   demoUUID(0x40, 0),
		PropertyID:           resortID,
		Name:                 "Main Pool Heater",
		MaintenanceFrequency: models.CheckWeekly,
		HasMeasurementConfig: true,
		MaintenanceScheduled: true,
		Active:               true,
	}
	if err := equipRepo.Create(ctx, heater); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("seeding equipment: %w", err)
	}

	// Villas: default-frequency plunge pools plus one custom schedule.
	today := utils.DateOnly(time.Now())
	for i := 0; i < 4; i++ {
		villa := &models.Unit{
			ID:               demoUUID(0x50, byte(i)),
			PropertyID:       estateID,
			Name:             fmt.Sprintf("Villa %d Pool", i+1),
			UnitType:         models.UnitTypePool,
			WaterType:        models.WaterTypeSaltwater,
			ServiceFrequency: models.FreqDailyWhenOccupied,
			Active:           true,
		}
		if err := unitRepo.Create(ctx, villa); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("seeding unit %s: %w", villa.Name, err)
		}
		// Two of the villas are occupied this week.
		if i < 2 {
			booking := &models.Booking{
				ID:           demoUUID(0x60, byte(i)),
				UnitID:       villa.ID,
				CheckInDate:  today.AddDate(0, 0, -1),
				CheckOutDate: today.AddDate(0, 0, 5),
			}
			if err := bookRepo.Create(ctx, booking); err != nil && !isUniqueViolation(err) {
				return fmt.Errorf("seeding booking: %w", err)
			}
		}
	}

	customUnit := &models.Unit{
		ID:               demoUUID(0x50, 9),
		PropertyID:       estateID,
		Name:             "Penthouse Spa",
		UnitType:         models.UnitTypeSpa,
		WaterType:        models.WaterTypeBromine,
		ServiceFrequency: models.FreqCustom,
		Active:           true,
	}
	if err := unitRepo.Create(ctx, customUnit); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("seeding unit %s: %w", customUnit.Name, err)
	}

	friday := time.Friday
	sched := &models.CustomSchedule{
		ID:           demoUUID(0x70, 0),
		UnitID:       customUnit.ID,
		ScheduleType: models.ScheduleComplex,
		Entries: []models.ScheduleEntry{
			{Frequency: models.FreqDaily, Time: "10:00", ServiceTypes: []models.ServiceType{models.ServiceTestOnly}},
			{Frequency: models.FreqWeekly, Days: []time.Weekday{time.Friday}, Time: "14:00", ServiceTypes: []models.ServiceType{models.ServiceFull}},
		},
		OccupancyRules: &models.OccupancyRules{
			OnArrival:        true,
			WeeklyMinimumDay: &friday,
		},
	}
	if err := schedRepo.Create(ctx, sched); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("seeding custom schedule: %w", err)
	}

	techs := []*models.Technician{
		{ID: demoUUID(0x80, 0), CompanyID: companyID, Name: "Dana Reyes", Email: "dana@example.com", Active: true},
		{ID: demoUUID(0x80, 1), CompanyID: companyID, Name: "Marco Liu", Email: "marco@example.com", Active: true},
	}
	for _, t := range techs {
		if err := techRepo.Create(ctx, t); err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("seeding technician %s: %w", t.Name, err)
		}
	}

	return nil
}

func demoUUID(group, n byte) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("6b1f6f60-0000-4000-8000-0000000000%02x", int(group)+int(n)))
}
