// Package timeutil is the single entry point for parsing stored timestamps
// and calendar dates. Every sort key and classifier in the app goes through
// Parse so that malformed or missing values degrade to a sentinel instead of
// breaking an operation.
package timeutil

import (
	"strings"
	"time"
)

const (
	// TimestampLayout is the wire format for created_at, completed_at and
	// history timestamps: minute precision, local time, no zone marker.
	TimestampLayout = "2006-01-02 15:04"
	// DateLayout is the wire format for due dates.
	DateLayout = "2006-01-02"
)

// MaxDueDate sorts undated and unparseable tasks after every real due date.
var MaxDueDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// Parse parses value against layout. It reports ok=false when value is empty
// or does not match; it never returns an error and never panics.
func Parse(value, layout string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseTimestamp parses a "YYYY-MM-DD HH:MM" timestamp.
func ParseTimestamp(value string) (time.Time, bool) {
	return Parse(value, TimestampLayout)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(value string) (time.Time, bool) {
	return Parse(value, DateLayout)
}

// FormatTimestamp renders t in the wire timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatDate renders t in the wire date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the signed whole-day difference to - from, ignoring any
// time-of-day component on either side.
func DaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
