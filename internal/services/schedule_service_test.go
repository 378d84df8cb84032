package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

// =============================================================================
// In-memory repository fakes
// =============================================================================

type fakeData struct {
	properties  []*models.Property
	units       map[uuid.UUID][]*models.Unit
	bookings    map[uuid.UUID][]*models.Booking
	schedules   map[uuid.UUID]map[uuid.UUID]*models.CustomSchedule
	rules       map[uuid.UUID][]*models.PropertyRule
	rooms       map[uuid.UUID][]*models.PlantRoom
	equipment   map[uuid.UUID][]*models.Equipment
	technicians []*models.Technician
}

type fakePropertyRepo struct{ d *fakeData }

func (f *fakePropertyRepo) Create(ctx context.Context, p *models.Property) error { return nil }
func (f *fakePropertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	for _, p := range f.d.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePropertyRepo) ListActive(ctx context.Context) ([]*models.Property, error) {
	return f.d.properties, nil
}
func (f *fakePropertyRepo) ListActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.d.properties {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeUnitRepo struct{ d *fakeData }

func (f *fakeUnitRepo) Create(ctx context.Context, u *models.Unit) error { return nil }
func (f *fakeUnitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	return nil, nil
}
func (f *fakeUnitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error) {
	return f.d.units[propID], nil
}

type fakeBookingRepo struct{ d *fakeData }

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error { return nil }
func (f *fakeBookingRepo) ListCoveringDate(ctx context.Context, propID uuid.UUID, date time.Time) ([]*models.Booking, error) {
	return f.d.bookings[propID], nil
}

type fakeScheduleRepo struct{ d *fakeData }

func (f *fakeScheduleRepo) Create(ctx context.Context, s *models.CustomSchedule) error { return nil }
func (f *fakeScheduleRepo) MapByPropertyID(ctx context.Context, propID uuid.UUID) (map[uuid.UUID]*models.CustomSchedule, error) {
	return f.d.schedules[propID], nil
}

type fakeRuleRepo struct{ d *fakeData }

func (f *fakeRuleRepo) Create(ctx context.Context, r *models.PropertyRule) error { return nil }
func (f *fakeRuleRepo) ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PropertyRule, error) {
	return f.d.rules[propID], nil
}

type fakeRoomRepo struct{ d *fakeData }

func (f *fakeRoomRepo) Create(ctx context.Context, p *models.PlantRoom) error { return nil }
func (f *fakeRoomRepo) ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.PlantRoom, error) {
	return f.d.rooms[propID], nil
}

type fakeEquipmentRepo struct{ d *fakeData }

func (f *fakeEquipmentRepo) Create(ctx context.Context, e *models.Equipment) error { return nil }
func (f *fakeEquipmentRepo) ListActiveByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Equipment, error) {
	return f.d.equipment[propID], nil
}

type fakeTechRepo struct{ d *fakeData }

func (f *fakeTechRepo) Create(ctx context.Context, t *models.Technician) error { return nil }
func (f *fakeTechRepo) ListActive(ctx context.Context) ([]*models.Technician, error) {
	return f.d.technicians, nil
}

func newTestService(d *fakeData) *ScheduleService {
	return NewScheduleService(
		&fakePropertyRepo{d},
		&fakeUnitRepo{d},
		&fakeBookingRepo{d},
		&fakeScheduleRepo{d},
		&fakeRuleRepo{d},
		&fakeRoomRepo{d},
		&fakeEquipmentRepo{d},
		&fakeTechRepo{d},
	)
}

// =============================================================================
// Fixtures
// =============================================================================

// A Monday; fixtures key off the default weekly service day.
var testMonday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func resortFixture() *fakeData {
	propID := uuid.New()
	prop := &models.Property{ID: propID, Name: "Sandpiper Resort", TimeZone: "America/Chicago", Active: true}

	units := make([]*models.Unit, 4)
	for i := range units {
		units[i] = &models.Unit{
			ID:               uuid.New(),
			PropertyID:       propID,
			Name:             "Shared Pool",
			UnitType:         models.UnitTypeMainPool,
			WaterType:        models.WaterTypeChlorine,
			ServiceFrequency: models.FreqWeekly,
			Active:           true,
		}
	}
	villa := &models.Unit{
		ID:               uuid.New(),
		PropertyID:       propID,
		Name:             "Villa Pool",
		UnitType:         models.UnitTypePool,
		WaterType:        models.WaterTypeSaltwater,
		ServiceFrequency: models.FreqWeekly,
		Active:           true,
	}

	rule := &models.PropertyRule{
		ID:             uuid.New(),
		PropertyID:     propID,
		RuleType:       models.RuleRandomSelection,
		Frequency:      models.FreqDaily,
		SelectionCount: 2,
		ServiceType:    models.ServiceTestOnly,
		PreferredTime:  "08:00",
		Priority:       1,
		Active:         true,
	}

	return &fakeData{
		properties: []*models.Property{prop},
		units:      map[uuid.UUID][]*models.Unit{propID: append(units, villa)},
		rules:      map[uuid.UUID][]*models.PropertyRule{propID: {rule}},
		technicians: []*models.Technician{
			{ID: uuid.New(), Name: "Dana Reyes", Email: "dana@example.com", Active: true},
		},
	}
}

// =============================================================================
// Tests
// =============================================================================

func TestGenerateDailyScheduleEndToEnd(t *testing.T) {
	svc := newTestService(resortFixture())

	resp, err := svc.GenerateDailySchedule(context.Background(), testMonday, nil)
	require.NoError(t, err)

	// Shared pools are claimed by the rotation rule: 2 rule picks plus
	// the villa's default weekly service on Monday.
	assert.Equal(t, 3, resp.TaskCount)
	assert.Equal(t, "2025-06-02", resp.Date)

	ruleTasks := 0
	villaTasks := 0
	for _, task := range resp.Tasks {
		switch task.Source {
		case "property_rule":
			ruleTasks++
			assert.Equal(t, "high", task.Priority)
		case "unit_default":
			villaTasks++
			assert.Equal(t, "Villa Pool", task.TargetName)
		}
	}
	assert.Equal(t, 2, ruleTasks)
	assert.Equal(t, 1, villaTasks)

	// Technicians are pass-through data.
	require.Len(t, resp.Technicians, 1)
	assert.Equal(t, "Dana Reyes", resp.Technicians[0].Name)

	require.Len(t, resp.Properties, 1)
	assert.Equal(t, "Sandpiper Resort", resp.Properties[0].Name)
}

func TestGenerateDailyScheduleCached(t *testing.T) {
	svc := newTestService(resortFixture())

	first, err := svc.GenerateDailySchedule(context.Background(), testMonday, nil)
	require.NoError(t, err)
	second, err := svc.GenerateDailySchedule(context.Background(), testMonday, nil)
	require.NoError(t, err)

	assert.Same(t, first, second, "second call should be served from cache")
}

func TestGenerateDailySchedulePropertyFilter(t *testing.T) {
	data := resortFixture()
	svc := newTestService(data)

	resp, err := svc.GenerateDailySchedule(context.Background(), testMonday, []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	assert.Zero(t, resp.TaskCount, "unknown property id filters everything out")

	resp, err = svc.GenerateDailySchedule(context.Background(), testMonday, []uuid.UUID{data.properties[0].ID})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TaskCount)
}

func TestGenerateDailyScheduleEmptyCompany(t *testing.T) {
	svc := newTestService(&fakeData{})

	resp, err := svc.GenerateDailySchedule(context.Background(), testMonday, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks)
	assert.Empty(t, resp.Properties)
}
