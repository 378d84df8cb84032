package constants

import "time"

// Default times-of-day applied when a schedule, rule, or room does not
// configure its own.
const (
	DefaultServiceTime     = "09:00"
	DefaultMaintenanceTime = "11:00"
)

// DefaultCheckTimes are the plant-room check slots used when a room has
// none configured: one morning and one afternoon walk-through.
var DefaultCheckTimes = []string{"09:00", "15:00"}

// Schedule cache settings for the ScheduleService. Generated schedules
// are pure functions of stored inputs, so a short TTL only bounds
// staleness after configuration edits.
const (
	ScheduleCacheTTL     = 5 * time.Minute
	ScheduleCacheCleanup = 10 * time.Minute
)

// DailyWarmCronSpec warms the schedule cache shortly after midnight,
// before the first technicians pull their lists.
const DailyWarmCronSpec = "5 0 * * *"
