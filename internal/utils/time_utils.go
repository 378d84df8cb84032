package utils

import "time"

// DateOnly truncates a timestamp to midnight UTC of the same calendar day.
// Scheduling works in calendar dates; wall-clock components are never
// compared across entities.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
