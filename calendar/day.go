// Package calendar holds the plain Gregorian date arithmetic used by the
// simulator. A "day" is a time.Time at midnight UTC; any clock or zone on
// an incoming value is dropped by Day.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the on-disk and command-line form of a calendar day.
const Layout = "2006-01-02"

// Day returns the calendar date of t at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// AddDays moves a calendar day n days forward (or back when n < 0).
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// DaysBetween returns the whole number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsMonthEnd reports whether t falls on the last day of its month.
func IsMonthEnd(t time.Time) bool {
	return t.Day() == DaysInMonth(t.Year(), t.Month())
}

// EndOfMonth moves t to the last day of its month, keeping the clock.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, DaysInMonth(y, m), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddMonths shifts t by n months. Unlike time.AddDate, a day that does not
// exist in the target month is clamped to that month's last day
// (Jan 31 + 1 month = Feb 28/29) instead of overflowing.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, n, 0)
	if last := DaysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}
