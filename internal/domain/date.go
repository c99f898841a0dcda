package domain

import "time"

// Midnight truncates a time to 00:00:00 UTC of the same calendar day.
// All day-count arithmetic in the scheduling core goes through this so that
// time-of-day never perturbs a day difference.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole days from `from` to `to`, both
// normalized to midnight, rounding any partial day up. Negative when `to`
// is in the past.
func DaysUntil(from, to time.Time) int {
	diff := Midnight(to).Sub(Midnight(from))
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// DateKey renders a date as YYYY-MM-DD, the canonical map key for
// per-day load tracking.
func DateKey(t time.Time) string {
	return Midnight(t).Format("2006-01-02")
}
