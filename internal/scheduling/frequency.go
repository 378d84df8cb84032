package scheduling

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmaclennan/aquivis-sub000/internal/models"
)

// Fixed weekdays baked into the service vocabulary.
const (
	defaultWeeklyDay = time.Monday
	twiceWeeklyDayA  = time.Monday
	twiceWeeklyDayB  = time.Thursday
)

// Matches decides whether a service recurrence fires on the given date.
// A non-empty specificDays list overrides all other recurrence handling:
// explicit days are an override, not a refinement. Unknown descriptors
// never match.
func Matches(freq models.Frequency, date time.Time, preferredDay *time.Weekday, specificDays []time.Weekday, occupied bool) bool {
	if len(specificDays) > 0 {
		for _, d := range specificDays {
			if date.Weekday() == d {
				return true
			}
		}
		return false
	}

	switch freq {
	case models.FreqDaily:
		return true
	case models.FreqDailyWhenOccupied:
		return occupied
	case models.FreqTwiceWeekly:
		return date.Weekday() == twiceWeeklyDayA || date.Weekday() == twiceWeeklyDayB
	case models.FreqWeekly:
		return date.Weekday() == weeklyDay(preferredDay)
	case models.FreqBiweekly:
		// Week-of-month parity from day-of-month divided by 7. This is
		// roughly-but-not-exactly fortnightly near month boundaries;
		// downstream behavior depends on the exact arithmetic, so it
		// stays as-is rather than switching to ISO weeks.
		if date.Weekday() != weeklyDay(preferredDay) {
			return false
		}
		return (date.Day()/7)%2 == 0
	case models.FreqMonthly:
		return date.Day() == 1
	default:
		return false
	}
}

func weeklyDay(preferred *time.Weekday) time.Weekday {
	if preferred != nil {
		return *preferred
	}
	return defaultWeeklyDay
}

// CheckMatches is the independent matcher for the plant-room/equipment
// vocabulary. The two vocabularies partially diverge (checks have
// multi-times-per-day and every-other-day; services have occupancy
// awareness), so they do not share an implementation.
func CheckMatches(freq models.CheckFrequency, date time.Time, checkDays []string) bool {
	switch freq {
	case models.CheckDaily, models.CheckTwiceDaily, models.CheckThriceDaily:
		return true
	case models.CheckEveryOtherDay:
		daysSinceEpoch := date.Unix() / 86400
		return daysSinceEpoch%2 == 0
	case models.CheckWeekly:
		return date.Weekday() == time.Monday
	case models.CheckSpecificDays:
		if len(checkDays) == 0 {
			return false
		}
		for _, d := range checkDays {
			if weekdayMatches(d, date.Weekday()) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// weekdayMatches accepts either numeric days ("0"-"6", Sunday first,
// matching time.Weekday) or lowercase weekday names.
func weekdayMatches(day string, weekday time.Weekday) bool {
	if n, err := strconv.Atoi(day); err == nil {
		return n == int(weekday)
	}
	return strings.EqualFold(day, weekday.String())
}
