package utils

import (
	"math"
	"time"
)

// ParseDate accepts yyyy-mm-dd or RFC 3339 timestamps; API clients send
// either form.
func ParseDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, dateStr)
}

// TotalDays is the billable rental length: the ceiling of the difference
// between return and booking date in 24h days. Zero or negative means an
// invalid range.
func TotalDays(bookingDate, returnDate time.Time) int32 {
	hours := returnDate.Sub(bookingDate).Hours()
	return int32(math.Ceil(hours / 24))
}

// ItemTotal prices one booking line from the per-day rent snapshot.
func ItemTotal(perDayRent int64, quantity, totalDays int32) int64 {
	return perDayRent * int64(quantity) * int64(totalDays)
}

// DateOnly truncates a timestamp to midnight for date-only comparisons.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
