package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrNegativeSpan is returned by MonthsBetween when end precedes start and
// negative spans were disallowed.
var ErrNegativeSpan = errors.New("end is before start")

type monthsOptions struct {
	eomRule       bool
	allowNegative bool
}

// MonthsOption tunes MonthsBetween.
type MonthsOption func(*monthsOptions)

// WithoutEOMRule disables month-end pinning: a start on Jan 31 steps to
// Feb 28/29 and then Mar 28/29 rather than Mar 31.
func WithoutEOMRule() MonthsOption {
	return func(o *monthsOptions) { o.eomRule = false }
}

// DisallowNegative makes MonthsBetween fail instead of returning a negative
// value when end is before start.
func DisallowNegative() MonthsOption {
	return func(o *monthsOptions) { o.allowNegative = false }
}

// MonthsBetween returns the elapsed time from start to end in decimal months.
//
// Whole calendar months are counted first; the remainder is the fraction
// (end - anchor) / (nextAnchor - anchor) of the month that follows the last
// whole-month anchor. When start is a month end and the EOM rule is on (the
// default), month steps land on month ends.
func MonthsBetween(start, end time.Time, opts ...MonthsOption) (float64, error) {
	o := monthsOptions{eomRule: true, allowNegative: true}
	for _, opt := range opts {
		opt(&o)
	}

	sign := 1.0
	if end.Before(start) {
		if !o.allowNegative {
			return 0, fmt.Errorf("months between %s and %s: %w", Format(start), Format(end), ErrNegativeSpan)
		}
		start, end = end, start
		sign = -1.0
	}
	if end.Equal(start) {
		return 0, nil
	}

	step := func(t time.Time, n int) time.Time {
		if o.eomRule && IsMonthEnd(t) {
			return EndOfMonth(AddMonths(t, n))
		}
		return AddMonths(t, n)
	}

	diff := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	whole := diff
	if step(start, diff).After(end) {
		whole--
	}

	anchor := step(start, whole)
	next := step(anchor, 1)

	frac := 0.0
	if next.After(anchor) {
		frac = float64(end.Sub(anchor)) / float64(next.Sub(anchor))
		frac = min(max(frac, 0), 1)
	}

	return sign * (float64(whole) + frac), nil
}
