// Package timeutil provides calendar helpers for the registry: the current
// date, date-only values and the dd.MM.yyyy display format.
// No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"time"
)

// DisplayLayout is the day.month.year layout used on the console.
const DisplayLayout = "02.01.2006"

// ISOLayout is the layout accepted on the command line.
const ISOLayout = "2006-01-02"

// Now returns the current local time.
func Now() time.Time {
	return time.Now()
}

// CurrentYear returns the current calendar year in local time.
func CurrentYear() int {
	return Now().Year()
}

// Today returns the start of the current day in local time.
func Today() time.Time {
	return StartOfDay(Now())
}

// Date creates a local time at midnight of the given date.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// StartOfDay returns the start of the day (00:00:00) in the time's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate formats a date as dd.MM.yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseDate parses a YYYY-MM-DD date into local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}
