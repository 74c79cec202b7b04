package journal

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/settle/calendar"
)

var (
	runsHeader      = []string{"run_id", "name", "created", "start", "end", "days", "initial_balance", "final_balance", "total_interest", "net_payments"}
	snapshotsHeader = []string{"run_id", "date", "balance", "cumulative_interest"}
)

// CSVJournal appends runs and snapshots to two CSV files. Each write is
// flushed so a partially written journal is still readable.
type CSVJournal struct {
	runs      *csv.Writer
	snapshots *csv.Writer
	rf, sf    *os.File
}

func NewCSV(runsPath, snapshotsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(snapshotsPath)
	if err != nil {
		_ = rf.Close()
		return nil, err
	}

	j := &CSVJournal{
		runs:      csv.NewWriter(rf),
		snapshots: csv.NewWriter(sf),
		rf:        rf,
		sf:        sf,
	}

	if err := write(j.runs, runsHeader); err != nil {
		_ = j.closeFiles()
		return nil, err
	}
	if err := write(j.snapshots, snapshotsHeader); err != nil {
		_ = j.closeFiles()
		return nil, err
	}
	return j, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	return write(j.runs, []string{
		r.RunID,
		r.Name,
		r.Created.UTC().Format(time.RFC3339),
		calendar.Format(r.Start),
		calendar.Format(r.End),
		strconv.Itoa(r.Days),
		r.InitialBalance.String(),
		r.FinalBalance.String(),
		r.TotalInterest.String(),
		r.NetPayments.String(),
	})
}

func (j *CSVJournal) RecordSnapshot(s SnapshotRecord) error {
	return write(j.snapshots, []string{
		s.RunID,
		calendar.Format(s.Date),
		s.Balance.String(),
		s.CumulativeInterest.String(),
	})
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	j.snapshots.Flush()
	return errors.Join(j.runs.Error(), j.snapshots.Error(), j.closeFiles())
}

func (j *CSVJournal) closeFiles() error {
	return errors.Join(j.rf.Close(), j.sf.Close())
}

func write(w *csv.Writer, rec []string) error {
	if err := w.Write(rec); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
