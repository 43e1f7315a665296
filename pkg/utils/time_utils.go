package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD trip boundary date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

// TripLengthDays is floor((end - start) in days) + 1, minimum 1. A trip
// that starts and ends on the same date is a one-day trip.
func TripLengthDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
