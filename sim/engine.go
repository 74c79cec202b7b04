package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Engine accumulates interest periods and payments and answers simulation
// queries against them. The collections persist across queries, so an
// Engine can be built up once and simulated over many ranges.
//
// Each query works on a Scenario snapshot taken when it starts; adding
// inputs while a query is running does not affect it.
type Engine struct {
	mu       sync.RWMutex
	periods  []InterestPeriod
	payments []Payment
}

func NewEngine() *Engine {
	return &Engine{}
}

// AddInterestPeriod appends a period. Ordering is established at
// simulation time.
func (e *Engine) AddInterestPeriod(p InterestPeriod) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.periods = append(e.periods, p)
}

// AddPayment appends a payment. Payments on the same day apply in the order
// they were added.
func (e *Engine) AddPayment(p Payment) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.payments = append(e.payments, p)
}

// AddSchedule expands a recurring schedule and appends its payments.
func (e *Engine) AddSchedule(s Schedule) error {
	pays, err := s.Payments()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.payments = append(e.payments, pays...)
	return nil
}

// Scenario returns an immutable, sorted copy of the engine's inputs.
func (e *Engine) Scenario() Scenario {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return NewScenario(e.periods, e.payments)
}

// Simulate returns the daily snapshots for [start, end). It fails with
// ErrInvalidRange when end is not after start.
func (e *Engine) Simulate(start, end time.Time, initialBalance decimal.Decimal) ([]Snapshot, error) {
	return e.Scenario().Simulate(start, end, initialBalance)
}

// FinalBalance returns the closing balance of the last simulated day.
func (e *Engine) FinalBalance(start, end time.Time, initialBalance decimal.Decimal) (decimal.Decimal, error) {
	snaps, err := e.Simulate(start, end, initialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("final balance: %w", err)
	}
	if len(snaps) == 0 {
		return initialBalance, nil
	}
	return snaps[len(snaps)-1].Balance, nil
}

// TotalInterest returns the interest accrued over [start, end).
func (e *Engine) TotalInterest(start, end time.Time, initialBalance decimal.Decimal) (decimal.Decimal, error) {
	snaps, err := e.Simulate(start, end, initialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total interest: %w", err)
	}
	if len(snaps) == 0 {
		return decimal.Zero, nil
	}
	return snaps[len(snaps)-1].CumulativeInterest, nil
}
