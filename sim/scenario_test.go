package sim

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScenarioSortsCopies(t *testing.T) {
	t.Parallel()

	late := mustPeriod(t, day(2024, 3, 1), day(2024, 4, 1), "0.03")
	early := mustPeriod(t, day(2024, 1, 1), day(2024, 2, 1), "0.02")
	periods := []InterestPeriod{late, early}

	payments := []Payment{
		NewPayment(day(2024, 1, 9), dec("3"), "c"),
		NewPayment(day(2024, 1, 2), dec("1"), "a"),
		NewPayment(day(2024, 1, 9), dec("4"), "d"),
		NewPayment(day(2024, 1, 2), dec("2"), "b"),
	}

	sc := NewScenario(periods, payments)

	got := sc.Periods()
	require.Len(t, got, 2)
	assert.Equal(t, early.Start(), got[0].Start())
	assert.Equal(t, late.Start(), got[1].Start())

	var order []string
	for _, p := range sc.Payments() {
		order = append(order, p.Description)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)

	// Mutating the inputs afterwards does not leak in.
	payments[0].Amount = dec("1000")
	periods[0] = early
	assert.True(t, dec("3").Equal(sc.Payments()[2].Amount))
	assert.Equal(t, early.Start(), sc.Periods()[0].Start())
}

func TestScenarioRateOn(t *testing.T) {
	t.Parallel()

	sc := NewScenario([]InterestPeriod{
		mustPeriod(t, day(2024, 1, 1), day(2024, 2, 1), "0.02"),
	}, nil)

	rate, ok := sc.RateOn(day(2024, 1, 31))
	require.True(t, ok)
	assert.True(t, dec("0.02").Equal(rate))

	rate, ok = sc.RateOn(day(2024, 2, 1))
	assert.False(t, ok)
	assert.True(t, rate.IsZero())
}

func TestRunIsLazyAndNotRestartable(t *testing.T) {
	t.Parallel()

	sc := NewScenario(nil, []Payment{NewPayment(day(2024, 1, 2), dec("5"), "")})

	run, err := sc.Start(day(2024, 1, 1), day(2024, 1, 4), dec("10"))
	require.NoError(t, err)
	assert.Equal(t, 3, run.Remaining())

	require.True(t, run.Next())
	assert.Equal(t, day(2024, 1, 1), run.Snapshot().Date)
	assert.Equal(t, 2, run.Remaining())

	var rest []Snapshot
	for s := range run.All() {
		rest = append(rest, s)
	}
	require.Len(t, rest, 2)
	assert.True(t, dec("15").Equal(rest[0].Balance))

	assert.False(t, run.Next())
	assert.False(t, run.Next())
	assert.Equal(t, 0, run.Remaining())

	var again int
	for range run.All() {
		again++
	}
	assert.Zero(t, again)
}

func TestRunAllStopsEarly(t *testing.T) {
	t.Parallel()

	run, err := NewScenario(nil, nil).Start(day(2024, 1, 1), day(2024, 1, 11), decimal.Zero)
	require.NoError(t, err)

	var n int
	for range run.All() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
	assert.Equal(t, 6, run.Remaining())

	require.True(t, run.Next())
	assert.Equal(t, day(2024, 1, 5), run.Snapshot().Date)
}

func TestScenarioStartRejectsBadRange(t *testing.T) {
	t.Parallel()

	run, err := NewScenario(nil, nil).Start(day(2024, 1, 2), day(2024, 1, 1), decimal.Zero)
	assert.Nil(t, run)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}
