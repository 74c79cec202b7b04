package sim

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the close-of-day state of the account: balance after the
// day's payments and interest, and all interest accrued so far.
type Snapshot struct {
	Date               time.Time
	Balance            decimal.Decimal
	CumulativeInterest decimal.Decimal
}
