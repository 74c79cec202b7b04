package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and ensures the schema.
func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

const insertRun = `
	INSERT INTO runs
	(run_id, name, created, start_date, end_date, days, initial_balance, final_balance, total_interest, net_payments)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func recordRun(db execer, r RunRecord) error {
	_, err := db.Exec(insertRun,
		r.RunID, r.Name, r.Created.UTC(), r.Start, r.End, r.Days,
		r.InitialBalance, r.FinalBalance, r.TotalInterest, r.NetPayments,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.RunID, err)
	}
	return nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	return recordRun(j.db, r)
}

const insertSnapshot = `
	INSERT INTO snapshots
	(run_id, date, balance, cumulative_interest)
	VALUES (?, ?, ?, ?)`

func (j *SQLiteJournal) RecordSnapshot(s SnapshotRecord) error {
	if _, err := j.db.Exec(insertSnapshot, s.RunID, s.Date, s.Balance, s.CumulativeInterest); err != nil {
		return fmt.Errorf("record snapshot %s: %w", s.Date.Format("2006-01-02"), err)
	}
	return nil
}

// RecordSnapshots stores all snapshots in a single transaction.
func (j *SQLiteJournal) RecordSnapshots(snaps []SnapshotRecord) error {
	return j.inTx(func(tx *sql.Tx) error {
		return recordSnapshots(tx, snaps)
	})
}

// RecordRunWithSnapshots stores a run and its snapshots in one transaction.
func (j *SQLiteJournal) RecordRunWithSnapshots(r RunRecord, snaps []SnapshotRecord) error {
	return j.inTx(func(tx *sql.Tx) error {
		if err := recordRun(tx, r); err != nil {
			return err
		}
		return recordSnapshots(tx, snaps)
	})
}

func (j *SQLiteJournal) inTx(fn func(*sql.Tx) error) error {
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func recordSnapshots(tx *sql.Tx, snaps []SnapshotRecord) error {
	stmt, err := tx.Prepare(insertSnapshot)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, s := range snaps {
		if _, err := stmt.Exec(s.RunID, s.Date, s.Balance, s.CumulativeInterest); err != nil {
			return fmt.Errorf("record snapshot %s: %w", s.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
