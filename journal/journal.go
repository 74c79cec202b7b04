// Package journal persists simulation runs and their daily snapshots.
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunRecord describes one simulation run. Start is the first simulated day
// and End the exclusive upper bound, as passed to the simulator.
type RunRecord struct {
	RunID          string
	Name           string
	Created        time.Time
	Start          time.Time
	End            time.Time
	Days           int
	InitialBalance decimal.Decimal
	FinalBalance   decimal.Decimal
	TotalInterest  decimal.Decimal
	NetPayments    decimal.Decimal
}

// SnapshotRecord is one closing day of a run.
type SnapshotRecord struct {
	RunID              string
	Date               time.Time
	Balance            decimal.Decimal
	CumulativeInterest decimal.Decimal
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordSnapshot(SnapshotRecord) error
	Close() error
}

// BatchJournal is implemented by journals that can store many records in
// one write. RecordRunWithSnapshots stores a run and its trace together or
// not at all.
type BatchJournal interface {
	Journal
	RecordSnapshots([]SnapshotRecord) error
	RecordRunWithSnapshots(RunRecord, []SnapshotRecord) error
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordRun(RunRecord) error           { return nil }
func (Nop) RecordSnapshot(SnapshotRecord) error { return nil }
func (Nop) Close() error                        { return nil }
