package types

import "time"

// DateFormat is the wire format of calendar dates.
const DateFormat = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// DateOnly drops the clock part of t, keeping its calendar date as a UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// DateKey returns the number of days since the Unix epoch, usable as a compact lock key.
func DateKey(t time.Time) int32 {
	return int32(DateOnly(t).Unix() / 86400)
}
