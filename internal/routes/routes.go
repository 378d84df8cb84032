package routes

const (
	// Health
	Health = "/health"

	// Schedule endpoints
	ScheduleDaily = "/api/v1/schedule/daily"
)
