package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

func resortInput(name string) *PropertyInput {
	prop := &models.Property{ID: uuid.New(), Name: name, Active: true}

	units := make([]*models.Unit, 5)
	for i := range units {
		u := testUnit("Shared Pool", models.UnitTypeMainPool, models.FreqWeekly)
		u.PropertyID = prop.ID
		units[i] = u
	}

	rule := rotationRule(2)
	rule.PropertyID = prop.ID

	room := &models.PlantRoom{
		ID:             uuid.New(),
		PropertyID:     prop.ID,
		Name:           "Plant Room",
		CheckFrequency: models.CheckDaily,
		CheckTimes:     []string{"08:00"},
		Active:         true,
	}

	return &PropertyInput{
		Property:   prop,
		Units:      units,
		Rules:      []*models.PropertyRule{rule},
		PlantRooms: []*models.PlantRoom{room},
	}
}

func TestGenerateMergesAllProperties(t *testing.T) {
	engine := NewEngine()
	inputs := []*PropertyInput{resortInput("North"), resortInput("South")}

	schedule, err := engine.Generate(context.Background(), monday, inputs)
	require.NoError(t, err)

	// Per property: 2 rotation picks + 1 plant check. The rotation rule
	// claims the shared kind, so no default weekly tasks appear.
	assert.Len(t, schedule.Tasks, 6)
	assert.Len(t, schedule.Properties, 2)

	perProperty := map[uuid.UUID]int{}
	for _, task := range schedule.Tasks {
		perProperty[task.PropertyID]++
	}
	for _, input := range inputs {
		assert.Equal(t, 3, perProperty[input.Property.ID])
	}
}

func TestGenerateDeterministicAcrossRuns(t *testing.T) {
	engine := NewEngine()
	inputs := []*PropertyInput{resortInput("North"), resortInput("South"), resortInput("East")}

	first, err := engine.Generate(context.Background(), monday, inputs)
	require.NoError(t, err)
	second, err := engine.Generate(context.Background(), monday, inputs)
	require.NoError(t, err)

	assert.Equal(t, first.Tasks, second.Tasks)
}

func TestGenerateEmptyScope(t *testing.T) {
	schedule, err := NewEngine().Generate(context.Background(), monday, nil)
	require.NoError(t, err)
	assert.Empty(t, schedule.Tasks)
	assert.Empty(t, schedule.Properties)
}

func TestGenerateNormalizesDate(t *testing.T) {
	input := resortInput("North")
	atNoon := monday.Add(12 * time.Hour)

	fromMidnight, err := NewEngine().Generate(context.Background(), monday, []*PropertyInput{input})
	require.NoError(t, err)
	fromNoon, err := NewEngine().Generate(context.Background(), atNoon, []*PropertyInput{input})
	require.NoError(t, err)

	assert.Equal(t, fromMidnight.Tasks, fromNoon.Tasks)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine().Generate(ctx, monday, []*PropertyInput{resortInput("North")})
	assert.Error(t, err)
}
