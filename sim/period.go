package sim

import (
	"fmt"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/shopspring/decimal"
)

// InterestPeriod is a run of calendar days [start, end) earning a nominal
// annual rate. A rate of 0.05 is 5% per year.
type InterestPeriod struct {
	start      time.Time
	end        time.Time
	annualRate decimal.Decimal
}

// NewInterestPeriod validates and builds a period. Both bounds are reduced
// to calendar days; end must fall strictly after start.
func NewInterestPeriod(start, end time.Time, annualRate decimal.Decimal) (InterestPeriod, error) {
	start, end = calendar.Day(start), calendar.Day(end)
	if !end.After(start) {
		return InterestPeriod{}, fmt.Errorf("interest period %s..%s: %w",
			calendar.Format(start), calendar.Format(end), ErrInvalidPeriod)
	}
	return InterestPeriod{start: start, end: end, annualRate: annualRate}, nil
}

// Start is the first day of the period (inclusive).
func (p InterestPeriod) Start() time.Time { return p.start }

// End is the day after the last day of the period (exclusive).
func (p InterestPeriod) End() time.Time { return p.end }

// AnnualRate is the nominal yearly rate applied while the period is active.
func (p InterestPeriod) AnnualRate() decimal.Decimal { return p.annualRate }

// DurationDays is the number of days the period covers.
func (p InterestPeriod) DurationDays() int {
	return calendar.DaysBetween(p.start, p.end)
}

// Contains reports whether day falls inside [start, end).
func (p InterestPeriod) Contains(day time.Time) bool {
	day = calendar.Day(day)
	return !day.Before(p.start) && day.Before(p.end)
}

func (p InterestPeriod) String() string {
	return fmt.Sprintf("%s..%s @ %s", calendar.Format(p.start), calendar.Format(p.end), p.annualRate.String())
}
