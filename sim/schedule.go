package sim

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/shopspring/decimal"
)

// Interval is the spacing between recurring payments.
type Interval struct {
	Days   int
	Months int
}

// ParseInterval reads intervals such as "14d", "2w", "1m" or "1y".
func ParseInterval(s string) (Interval, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Interval{}, fmt.Errorf("parse interval %q: %w", s, ErrInvalidSchedule)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return Interval{}, fmt.Errorf("parse interval %q: %w", s, ErrInvalidSchedule)
	}

	switch s[len(s)-1] {
	case 'd':
		return Interval{Days: n}, nil
	case 'w':
		return Interval{Days: 7 * n}, nil
	case 'm':
		return Interval{Months: n}, nil
	case 'y':
		return Interval{Months: 12 * n}, nil
	}
	return Interval{}, fmt.Errorf("parse interval %q: unknown unit: %w", s, ErrInvalidSchedule)
}

func (iv Interval) String() string {
	switch {
	case iv.Months > 0 && iv.Days > 0:
		return fmt.Sprintf("%dm%dd", iv.Months, iv.Days)
	case iv.Months > 0:
		return fmt.Sprintf("%dm", iv.Months)
	default:
		return fmt.Sprintf("%dd", iv.Days)
	}
}

func (iv Interval) valid() bool {
	return iv.Days >= 0 && iv.Months >= 0 && iv.Days+iv.Months > 0
}

// nth returns the k-th occurrence counted from first. Month steps are
// anchored on first so a schedule starting on the 31st keeps landing on
// month ends rather than drifting.
func (iv Interval) nth(first time.Time, k int) time.Time {
	return calendar.AddMonths(first, k*iv.Months).AddDate(0, 0, k*iv.Days)
}

// Schedule is a recurring payment: Amount on First and every Every after
// it, up to and including Until.
type Schedule struct {
	First       time.Time
	Until       time.Time
	Every       Interval
	Amount      decimal.Decimal
	Description string
}

// Payments expands the schedule in date order.
func (s Schedule) Payments() ([]Payment, error) {
	first, until := calendar.Day(s.First), calendar.Day(s.Until)
	if !s.Every.valid() {
		return nil, fmt.Errorf("schedule %q: interval %+v: %w", s.Description, s.Every, ErrInvalidSchedule)
	}
	if until.Before(first) {
		return nil, fmt.Errorf("schedule %q: until %s before first %s: %w",
			s.Description, calendar.Format(until), calendar.Format(first), ErrInvalidSchedule)
	}

	var out []Payment
	for k := 0; ; k++ {
		d := s.Every.nth(first, k)
		if d.After(until) {
			break
		}
		out = append(out, NewPayment(d, s.Amount, s.Description))
	}
	return out, nil
}
