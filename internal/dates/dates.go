// Package dates implements local-calendar date arithmetic on zero-padded
// ISO-8601 day strings (YYYY-MM-DD). Because the format is zero padded,
// lexical comparison of two day strings orders them chronologically, so the
// rest of the application compares dates with plain string operators.
package dates

import (
	"errors"
	"fmt"
	"time"
)

const (
	// Layout is the canonical day format shared by the task collection,
	// the persisted state and every view.
	Layout = "2006-01-02"

	// ClockLayout is the 24-hour wall-clock format used for task times.
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate  = errors.New("dates: invalid calendar date")
	ErrInvalidClock = errors.New("dates: invalid clock time")
)

// Format renders t as a local calendar day.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Clock renders t as a local HH:mm wall-clock value.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// Parse converts a YYYY-MM-DD string into a local midnight time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Valid reports whether s is a well-formed calendar day.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// ValidClock reports whether s is a well-formed HH:mm value.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// AddDays shifts a day by n calendar days, rolling over month and year
// boundaries.
func AddDays(s string, n int) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// Weekday returns the day-of-week of s with Sunday as 0 and Saturday as 6.
func Weekday(s string) (int, error) {
	t, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// DaysUntilWeekday returns how many days forward from a day with weekday
// `from` until the next day whose weekday is `to`, in [0, 6].
func DaysUntilWeekday(from, to int) int {
	return ((to-from)%7 + 7) % 7
}
