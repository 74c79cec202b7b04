package sim

import (
	"iter"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/shopspring/decimal"
)

// Run steps a Scenario one calendar day at a time. It is finite and cannot
// be restarted: once Next returns false it keeps returning false.
//
// Each step applies every payment dated that day, then one day of interest
// on the post-payment balance at the first matching period's rate, then
// records the closing snapshot.
type Run struct {
	scenario Scenario
	day      time.Time
	end      time.Time
	balance  decimal.Decimal
	interest decimal.Decimal
	cursor   int
	cur      Snapshot
	done     bool
}

// Next advances the run by one day and reports whether a snapshot is
// available.
func (r *Run) Next() bool {
	if r.done || !r.day.Before(r.end) {
		r.done = true
		return false
	}

	day := r.day
	pays := r.scenario.payments

	// Payments dated before the run's first day never apply.
	for r.cursor < len(pays) && pays[r.cursor].Date.Before(day) {
		r.cursor++
	}
	for r.cursor < len(pays) && pays[r.cursor].Date.Equal(day) {
		r.balance = r.balance.Add(pays[r.cursor].Amount)
		r.cursor++
	}

	if i := r.scenario.periodIndex(day); i >= 0 {
		daily := r.balance.Mul(r.scenario.dailyRates[i]).Round(Precision)
		r.balance = r.balance.Add(daily)
		r.interest = r.interest.Add(daily)
	}

	r.cur = Snapshot{
		Date:               day,
		Balance:            r.balance,
		CumulativeInterest: r.interest,
	}
	r.day = day.AddDate(0, 0, 1)
	return true
}

// Snapshot returns the snapshot produced by the last successful Next.
func (r *Run) Snapshot() Snapshot { return r.cur }

// Remaining is the number of days left to simulate.
func (r *Run) Remaining() int {
	if r.done {
		return 0
	}
	return max(calendar.DaysBetween(r.day, r.end), 0)
}

// All drains the rest of the run as a sequence.
func (r *Run) All() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for r.Next() {
			if !yield(r.cur) {
				return
			}
		}
	}
}
