package sim

import (
	"fmt"
	"slices"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept on daily rates and on
// each day's interest. It matches a 28-digit decimal representation.
const Precision = 28

// daysPerYear converts an annual rate to a daily one; leap years are not
// special-cased.
var daysPerYear = decimal.NewFromInt(365)

// DailyRate converts a nominal annual rate to the rate applied per day.
func DailyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.DivRound(daysPerYear, Precision)
}

// Scenario is an immutable set of interest periods and payments, each
// sorted chronologically with insertion order kept for ties. Build one with
// NewScenario or take one from an Engine.
type Scenario struct {
	periods    []InterestPeriod
	dailyRates []decimal.Decimal
	payments   []Payment
}

// NewScenario copies and sorts the given inputs. Periods are ordered by
// start day, payments by date. Later changes to the argument slices do not
// affect the scenario.
func NewScenario(periods []InterestPeriod, payments []Payment) Scenario {
	ps := slices.Clone(periods)
	slices.SortStableFunc(ps, func(a, b InterestPeriod) int {
		return a.start.Compare(b.start)
	})

	rates := make([]decimal.Decimal, len(ps))
	for i, p := range ps {
		rates[i] = DailyRate(p.annualRate)
	}

	pays := make([]Payment, len(payments))
	for i, p := range payments {
		p.Date = calendar.Day(p.Date)
		pays[i] = p
	}
	slices.SortStableFunc(pays, func(a, b Payment) int {
		return a.Date.Compare(b.Date)
	})

	return Scenario{periods: ps, dailyRates: rates, payments: pays}
}

// Periods returns the sorted interest periods.
func (s Scenario) Periods() []InterestPeriod { return slices.Clone(s.periods) }

// Payments returns the sorted payments.
func (s Scenario) Payments() []Payment { return slices.Clone(s.payments) }

// RateOn returns the annual rate in force on day. When periods overlap the
// first one in start order wins; the others are ignored for that day.
func (s Scenario) RateOn(day time.Time) (decimal.Decimal, bool) {
	if i := s.periodIndex(day); i >= 0 {
		return s.periods[i].annualRate, true
	}
	return decimal.Zero, false
}

func (s Scenario) periodIndex(day time.Time) int {
	for i, p := range s.periods {
		if p.Contains(day) {
			return i
		}
	}
	return -1
}

// Start begins a lazy simulation over [start, end). It fails with
// ErrInvalidRange unless end falls strictly after start.
func (s Scenario) Start(start, end time.Time, initialBalance decimal.Decimal) (*Run, error) {
	start, end = calendar.Day(start), calendar.Day(end)
	if !end.After(start) {
		return nil, fmt.Errorf("simulate %s..%s: %w", calendar.Format(start), calendar.Format(end), ErrInvalidRange)
	}
	return &Run{
		scenario: s,
		day:      start,
		end:      end,
		balance:  initialBalance,
		interest: decimal.Zero,
	}, nil
}

// Simulate runs the scenario to completion and returns one snapshot per day
// in [start, end).
func (s Scenario) Simulate(start, end time.Time, initialBalance decimal.Decimal) ([]Snapshot, error) {
	run, err := s.Start(start, end, initialBalance)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, 0, run.Remaining())
	for run.Next() {
		out = append(out, run.Snapshot())
	}
	return out, nil
}
