package sim

import (
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/shopspring/decimal"
)

// Payment is a dated cash movement. Positive amounts are deposits,
// negative amounts withdrawals.
type Payment struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// NewPayment builds a payment on the calendar day of date. Any amount and
// any date are accepted.
func NewPayment(date time.Time, amount decimal.Decimal, description string) Payment {
	return Payment{
		Date:        calendar.Day(date),
		Amount:      amount,
		Description: description,
	}
}
