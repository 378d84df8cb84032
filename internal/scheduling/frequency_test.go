package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

func TestMatchesIsPure(t *testing.T) {
	freqs := []models.Frequency{
		models.FreqDaily, models.FreqDailyWhenOccupied, models.FreqTwiceWeekly,
		models.FreqWeekly, models.FreqBiweekly, models.FreqMonthly,
	}
	for _, freq := range freqs {
		for day := 0; day < 30; day++ {
			d := monday.AddDate(0, 0, day)
			first := Matches(freq, d, nil, nil, true)
			second := Matches(freq, d, nil, nil, true)
			require.Equal(t, first, second, "freq %s on %s", freq, d)
		}
	}
}

func TestMatchesSpecificDaysOverride(t *testing.T) {
	days := []time.Weekday{time.Tuesday}

	// Explicit days decide alone; monthly's day-of-month check is skipped.
	assert.True(t, Matches(models.FreqMonthly, tuesday, nil, days, false))
	assert.False(t, Matches(models.FreqDaily, monday, nil, days, false))
}

func TestMatchesDaily(t *testing.T) {
	for day := 0; day < 14; day++ {
		assert.True(t, Matches(models.FreqDaily, monday.AddDate(0, 0, day), nil, nil, false))
	}
}

func TestMatchesDailyWhenOccupied(t *testing.T) {
	for day := 0; day < 14; day++ {
		d := monday.AddDate(0, 0, day)
		assert.True(t, Matches(models.FreqDailyWhenOccupied, d, nil, nil, true))
		assert.False(t, Matches(models.FreqDailyWhenOccupied, d, nil, nil, false))
	}
}

func TestMatchesTwiceWeekly(t *testing.T) {
	assert.True(t, Matches(models.FreqTwiceWeekly, monday, nil, nil, false))
	assert.True(t, Matches(models.FreqTwiceWeekly, thursday, nil, nil, false))
	assert.False(t, Matches(models.FreqTwiceWeekly, tuesday, nil, nil, false))
	assert.False(t, Matches(models.FreqTwiceWeekly, friday, nil, nil, false))
}

func TestMatchesWeekly(t *testing.T) {
	assert.True(t, Matches(models.FreqWeekly, monday, nil, nil, false))
	assert.False(t, Matches(models.FreqWeekly, tuesday, nil, nil, false))

	// Preferred day shifts the match.
	assert.True(t, Matches(models.FreqWeekly, tuesday, weekdayPtr(time.Tuesday), nil, false))
	assert.False(t, Matches(models.FreqWeekly, monday, weekdayPtr(time.Tuesday), nil, false))
}

func TestMatchesBiweeklyParity(t *testing.T) {
	// Day-of-month/7 parity: June 2 (0), June 16 (2) are even weeks,
	// June 9 (1) is odd. All three are Mondays.
	assert.True(t, Matches(models.FreqBiweekly, date(2025, time.June, 2), nil, nil, false))
	assert.False(t, Matches(models.FreqBiweekly, date(2025, time.June, 9), nil, nil, false))
	assert.True(t, Matches(models.FreqBiweekly, date(2025, time.June, 16), nil, nil, false))

	// Wrong weekday never matches, parity aside.
	assert.False(t, Matches(models.FreqBiweekly, date(2025, time.June, 3), nil, nil, false))
}

func TestMatchesMonthly(t *testing.T) {
	assert.True(t, Matches(models.FreqMonthly, date(2025, time.June, 1), nil, nil, false))
	for day := 2; day <= 28; day++ {
		assert.False(t, Matches(models.FreqMonthly, date(2025, time.June, day), nil, nil, false),
			"day %d must not match", day)
	}
}

func TestMatchesUnknownFrequency(t *testing.T) {
	assert.False(t, Matches(models.Frequency("fortnightly"), monday, nil, nil, true))
	// "custom" is a routing tag, not a recurrence; it never matches directly.
	assert.False(t, Matches(models.FreqCustom, monday, nil, nil, true))
}

func TestCheckMatchesDailyVariants(t *testing.T) {
	for _, freq := range []models.CheckFrequency{
		models.CheckDaily, models.CheckTwiceDaily, models.CheckThriceDaily,
	} {
		assert.True(t, CheckMatches(freq, monday, nil), "freq %s", freq)
		assert.True(t, CheckMatches(freq, tuesday, nil), "freq %s", freq)
	}
}

func TestCheckMatchesEveryOtherDay(t *testing.T) {
	// Epoch-day parity alternates daily and repeats with period two.
	a := CheckMatches(models.CheckEveryOtherDay, monday, nil)
	b := CheckMatches(models.CheckEveryOtherDay, monday.AddDate(0, 0, 1), nil)
	c := CheckMatches(models.CheckEveryOtherDay, monday.AddDate(0, 0, 2), nil)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}

func TestCheckMatchesWeekly(t *testing.T) {
	assert.True(t, CheckMatches(models.CheckWeekly, monday, nil))
	assert.False(t, CheckMatches(models.CheckWeekly, tuesday, nil))
}

func TestCheckMatchesSpecificDays(t *testing.T) {
	// Requires an explicit day list.
	assert.False(t, CheckMatches(models.CheckSpecificDays, monday, nil))

	// Named and numeric days both work; numeric is Sunday-first.
	assert.True(t, CheckMatches(models.CheckSpecificDays, tuesday, []string{"tuesday"}))
	assert.True(t, CheckMatches(models.CheckSpecificDays, tuesday, []string{"2"}))
	assert.False(t, CheckMatches(models.CheckSpecificDays, monday, []string{"tuesday", "5"}))
}

func TestCheckMatchesUnknownFrequency(t *testing.T) {
	assert.False(t, CheckMatches(models.CheckFrequency("hourly"), monday, nil))
}
