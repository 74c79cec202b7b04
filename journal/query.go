package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const runColumns = `run_id, name, created, start_date, end_date, days, initial_balance, final_balance, total_interest, net_payments`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	err := row.Scan(
		&r.RunID,
		&r.Name,
		&r.Created,
		&r.Start,
		&r.End,
		&r.Days,
		&r.InitialBalance,
		&r.FinalBalance,
		&r.TotalInterest,
		&r.NetPayments,
	)
	return r, err
}

// GetRun returns a single run by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	r, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return r, nil
}

// ListRuns returns every run, oldest first.
func (j *SQLiteJournal) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`SELECT ` + runColumns + ` FROM runs ORDER BY run_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSnapshots returns the full trace of a run in date order.
func (j *SQLiteJournal) ListSnapshots(runID string) ([]SnapshotRecord, error) {
	return j.querySnapshots(`
		SELECT run_id, date, balance, cumulative_interest
		FROM snapshots
		WHERE run_id = ?
		ORDER BY date ASC`, runID)
}

// ListSnapshotsBetween returns a run's snapshots dated within [start, end).
func (j *SQLiteJournal) ListSnapshotsBetween(runID string, start, end time.Time) ([]SnapshotRecord, error) {
	return j.querySnapshots(`
		SELECT run_id, date, balance, cumulative_interest
		FROM snapshots
		WHERE run_id = ? AND date >= ? AND date < ?
		ORDER BY date ASC`, runID, start, end)
}

func (j *SQLiteJournal) querySnapshots(query string, args ...any) ([]SnapshotRecord, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var s SnapshotRecord
		if err := rows.Scan(&s.RunID, &s.Date, &s.Balance, &s.CumulativeInterest); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
