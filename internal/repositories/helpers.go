package repositories

import "time"

// Weekday lists are stored as smallint arrays (0=Sunday .. 6=Saturday,
// matching time.Weekday).

func weekdaysToInts(days []time.Weekday) []int16 {
	if len(days) == 0 {
		return nil
	}
	out := make([]int16, len(days))
	for i, d := range days {
		out[i] = int16(d)
	}
	return out
}

func intsToWeekdays(days []int16) []time.Weekday {
	if len(days) == 0 {
		return nil
	}
	out := make([]time.Weekday, len(days))
	for i, d := range days {
		out[i] = time.Weekday(d)
	}
	return out
}
