package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestMonthsBetweenReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		start, end string
		want       float64
	}{
		{"2024-01-31", "2024-02-29", 1.0},
		{"2023-01-31", "2023-02-28", 1.0},
		{"2024-01-31", "2024-03-15", 1.4839},
		{"2025-03-01", "2025-03-31", 0.9677},
		{"2025-02-10", "2025-02-10", 0.0},
		{"2024-01-01", "2025-01-01", 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			got, err := MonthsBetween(mustDay(t, tt.start), mustDay(t, tt.end))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestMonthsBetweenSigned(t *testing.T) {
	t.Parallel()

	got, err := MonthsBetween(mustDay(t, "2025-03-31"), mustDay(t, "2025-03-01"))
	require.NoError(t, err)
	assert.InDelta(t, -0.9677, got, 1e-4)

	_, err = MonthsBetween(mustDay(t, "2025-03-31"), mustDay(t, "2025-03-01"), DisallowNegative())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeSpan))
}

func TestMonthsBetweenSymmetry(t *testing.T) {
	t.Parallel()

	a, b := mustDay(t, "2024-01-31"), mustDay(t, "2024-03-15")

	fwd, err := MonthsBetween(a, b)
	require.NoError(t, err)
	rev, err := MonthsBetween(b, a)
	require.NoError(t, err)

	assert.InDelta(t, fwd, -rev, 1e-12)
}

func TestMonthsBetweenWithoutEOMRule(t *testing.T) {
	t.Parallel()

	// Without pinning, Feb 29 steps to Mar 29 and the last two days of
	// March are a fraction of the Mar 29 -> Apr 29 window.
	got, err := MonthsBetween(mustDay(t, "2024-01-31"), mustDay(t, "2024-03-31"), WithoutEOMRule())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)

	got, err = MonthsBetween(mustDay(t, "2024-02-29"), mustDay(t, "2024-03-31"), WithoutEOMRule())
	require.NoError(t, err)
	assert.InDelta(t, 1.0+2.0/31.0, got, 1e-9)

	got, err = MonthsBetween(mustDay(t, "2024-02-29"), mustDay(t, "2024-03-31"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}
