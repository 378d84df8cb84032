package models

/*──────────────────────────────────────────────────────────────────────────────
  Recurrence vocabularies
──────────────────────────────────────────────────────────────────────────────*/

// Frequency is the service recurrence vocabulary used by units, custom
// schedules, and property rules.
type Frequency string

const (
	FreqDaily             Frequency = "daily"
	FreqDailyWhenOccupied Frequency = "daily_when_occupied"
	FreqTwiceWeekly       Frequency = "twice_weekly"
	FreqWeekly            Frequency = "weekly"
	FreqBiweekly          Frequency = "biweekly"
	FreqMonthly           Frequency = "monthly"
	FreqCustom            Frequency = "custom"
)

// CheckFrequency is the plant-room/equipment recurrence vocabulary. It
// diverges from Frequency: checks can run multiple times per day or every
// other day, but never depend on occupancy.
type CheckFrequency string

const (
	CheckDaily         CheckFrequency = "daily"
	CheckTwiceDaily    CheckFrequency = "2x_daily"
	CheckThriceDaily   CheckFrequency = "3x_daily"
	CheckEveryOtherDay CheckFrequency = "every_other_day"
	CheckWeekly        CheckFrequency = "weekly"
	CheckSpecificDays  CheckFrequency = "specific_days"
)

type ServiceType string

const (
	ServiceFull            ServiceType = "full_service"
	ServiceTestOnly        ServiceType = "test_only"
	ServiceChemicalBalance ServiceType = "chemical_balance"
	ServiceBackwash        ServiceType = "backwash"
	ServiceFilterClean     ServiceType = "filter_clean"
	ServiceArrivalPrep     ServiceType = "arrival_prep"
)
