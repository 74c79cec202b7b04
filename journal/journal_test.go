package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleRun(runID string) RunRecord {
	return RunRecord{
		RunID:          runID,
		Name:           "savings",
		Created:        time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		Start:          day(2024, 1, 1),
		End:            day(2024, 2, 1),
		Days:           31,
		InitialBalance: dec("1000"),
		FinalBalance:   dec("1031.4613901349201036787430391"),
		TotalInterest:  dec("31.4613901349201036787430391"),
		NetPayments:    decimal.Zero,
	}
}

func newTestSQLite(t *testing.T) (*SQLiteJournal, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func TestJournalImplementations(t *testing.T) {
	t.Parallel()

	var _ Journal = Nop{}
	var _ Journal = (*CSVJournal)(nil)
	var _ BatchJournal = (*SQLiteJournal)(nil)
	var _ BatchJournal = (*Memory)(nil)
}

func TestNop(t *testing.T) {
	t.Parallel()

	var j Nop
	assert.NoError(t, j.RecordRun(sampleRun("R1")))
	assert.NoError(t, j.RecordSnapshot(SnapshotRecord{RunID: "R1"}))
	assert.NoError(t, j.Close())
}

func TestMemory(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	require.NoError(t, m.RecordRun(sampleRun("R1")))
	require.NoError(t, m.RecordSnapshot(SnapshotRecord{RunID: "R1", Date: day(2024, 1, 1), Balance: dec("1001")}))
	require.NoError(t, m.RecordSnapshot(SnapshotRecord{RunID: "R1", Date: day(2024, 1, 2), Balance: dec("1002")}))

	runs := m.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, "savings", runs[0].Name)

	snaps := m.Snapshots()
	require.Len(t, snaps, 2)
	assert.True(t, dec("1002").Equal(snaps[1].Balance))

	// Returned slices are copies.
	snaps[0].RunID = "changed"
	assert.Equal(t, "R1", m.Snapshots()[0].RunID)

	assert.False(t, m.Closed())
	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
	assert.Error(t, m.RecordRun(sampleRun("R2")))
	assert.Error(t, m.RecordSnapshot(SnapshotRecord{}))
}

func TestMemoryRecordRunWithSnapshots(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	snaps := []SnapshotRecord{
		{RunID: "R1", Date: day(2024, 1, 1), Balance: dec("1001")},
		{RunID: "R1", Date: day(2024, 1, 2), Balance: dec("1002")},
	}
	require.NoError(t, m.RecordRunWithSnapshots(sampleRun("R1"), snaps))
	assert.Len(t, m.Runs(), 1)
	assert.Len(t, m.Snapshots(), 2)

	require.NoError(t, m.Close())
	assert.Error(t, m.RecordRunWithSnapshots(sampleRun("R2"), snaps))
	assert.Error(t, m.RecordSnapshots(snaps))
	assert.Len(t, m.Runs(), 1)
}
