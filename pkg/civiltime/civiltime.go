// Package civiltime converts between civil dates/hours and absolute instants
// under one fixed UTC offset.
//
// The booking domain lives entirely in one wall-clock timezone (UTC+7).
// Every slot boundary is derived from that offset, never from the local
// timezone of the process or of a viewer, so the same civil slot always maps
// to the same instant.
package civiltime

import "time"

// OffsetHours is the fixed civil offset of the booking domain.
const OffsetHours = 7

// DateFormat is the canonical civil date string format.
const DateFormat = "2006-01-02"

// Location is the fixed civil timezone. All conversions go through it.
var Location = time.FixedZone("UTC+7", OffsetHours*60*60)

// ParseDate parses a civil date string in the fixed location.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, date, Location)
}

// DateOf returns the civil date string of the given instant.
func DateOf(t time.Time) string {
	return t.In(Location).Format(DateFormat)
}

// ToInstant converts a (date, hour) pair into an absolute instant.
//
// hour must be in [0,24). A malformed date string degrades deterministically
// to the civil date of now instead of failing, so a broken control value
// renders as "today" rather than crashing a picker.
func ToInstant(date string, hour int, now time.Time) time.Time {
	day, err := ParseDate(date)
	if err != nil {
		day, _ = ParseDate(DateOf(now))
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, Location)
}

// Weekday returns the civil weekday of the given date string, with the same
// malformed-date fallback as ToInstant.
func Weekday(date string, now time.Time) time.Weekday {
	return ToInstant(date, 0, now).Weekday()
}

// HourOf returns the civil hour of the given instant.
func HourOf(t time.Time) int {
	return t.In(Location).Hour()
}
