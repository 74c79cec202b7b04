package sim

import (
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/shopspring/decimal"
)

// Summary aggregates a simulated trace.
type Summary struct {
	Start time.Time // first simulated day
	End   time.Time // last simulated day
	Days  int

	StartBalance  decimal.Decimal
	EndBalance    decimal.Decimal
	TotalInterest decimal.Decimal
	NetPayments   decimal.Decimal
	MinBalance    decimal.Decimal
	MaxBalance    decimal.Decimal

	// Months is the covered span in decimal months.
	Months float64
}

// Summarize folds snapshots produced from initialBalance into a Summary.
// An empty trace leaves every balance at initialBalance.
func Summarize(initialBalance decimal.Decimal, snaps []Snapshot) Summary {
	s := Summary{
		StartBalance:  initialBalance,
		EndBalance:    initialBalance,
		TotalInterest: decimal.Zero,
		NetPayments:   decimal.Zero,
		MinBalance:    initialBalance,
		MaxBalance:    initialBalance,
	}
	if len(snaps) == 0 {
		return s
	}

	first, last := snaps[0], snaps[len(snaps)-1]
	s.Start, s.End = first.Date, last.Date
	s.Days = len(snaps)
	s.EndBalance = last.Balance
	s.TotalInterest = last.CumulativeInterest
	s.NetPayments = last.Balance.Sub(initialBalance).Sub(last.CumulativeInterest)

	s.MinBalance, s.MaxBalance = first.Balance, first.Balance
	for _, snap := range snaps[1:] {
		s.MinBalance = decimal.Min(s.MinBalance, snap.Balance)
		s.MaxBalance = decimal.Max(s.MaxBalance, snap.Balance)
	}

	s.Months, _ = calendar.MonthsBetween(s.Start, calendar.AddDays(s.End, 1))
	return s
}

// DailyInterest returns the interest credited on each snapshot's day.
func DailyInterest(snaps []Snapshot) []decimal.Decimal {
	out := make([]decimal.Decimal, len(snaps))
	prev := decimal.Zero
	for i, snap := range snaps {
		out[i] = snap.CumulativeInterest.Sub(prev)
		prev = snap.CumulativeInterest
	}
	return out
}

// MonthEnds keeps the snapshots that fall on the last day of a month.
func MonthEnds(snaps []Snapshot) []Snapshot {
	var out []Snapshot
	for _, snap := range snaps {
		if calendar.IsMonthEnd(snap.Date) {
			out = append(out, snap)
		}
	}
	return out
}

// SimpleInterest is the non-compounded interest on principal at annualRate
// over days, on the same 365-day basis as the simulator.
func SimpleInterest(principal, annualRate decimal.Decimal, days int) decimal.Decimal {
	return principal.Mul(annualRate).Mul(decimal.NewFromInt(int64(days))).DivRound(daysPerYear, Precision)
}
