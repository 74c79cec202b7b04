// Package runner drives a scenario from configuration through the simulator
// into a journal.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/rustyeddy/settle/config"
	"github.com/rustyeddy/settle/internal/id"
	"github.com/rustyeddy/settle/internal/log"
	"github.com/rustyeddy/settle/journal"
	"github.com/rustyeddy/settle/sim"
	"github.com/shopspring/decimal"
)

type Options struct {
	// Name labels the run in the journal. Defaults to "run".
	Name string

	// Now stamps the run. Defaults to time.Now.
	Now func() time.Time
}

// Runner simulates an engine over a range and journals the trace.
type Runner struct {
	Engine  *sim.Engine
	Journal journal.Journal
	Log     *log.Logger
	Options Options
}

// Result is everything a run produced.
type Result struct {
	Run       journal.RunRecord
	Snapshots []sim.Snapshot
	Summary   sim.Summary
}

// Run simulates [start, end) from initialBalance. The context is checked
// once per simulated day and between journal writes. A run row is only
// journaled together with or after its full snapshot trace, so a cancelled
// or failed run never leaves a run without snapshots.
func (r *Runner) Run(ctx context.Context, start, end time.Time, initialBalance decimal.Decimal) (Result, error) {
	if r.Engine == nil {
		return Result{}, fmt.Errorf("runner: Engine is required")
	}
	j := r.Journal
	if j == nil {
		j = journal.Nop{}
	}
	lg := r.Log
	if lg == nil {
		lg = log.Discard()
	}
	now := r.Options.Now
	if now == nil {
		now = time.Now
	}
	name := r.Options.Name
	if name == "" {
		name = "run"
	}

	run, err := r.Engine.Scenario().Start(start, end, initialBalance)
	if err != nil {
		return Result{}, err
	}

	created := now()
	runID := id.At(created)
	lg = lg.With(log.FieldRunID, runID, log.FieldScenario, name)
	lg.Debug("simulation starting",
		log.FieldStart, calendar.Format(start),
		log.FieldEnd, calendar.Format(end),
		log.FieldDays, run.Remaining(),
	)

	snaps := make([]sim.Snapshot, 0, run.Remaining())
	for s := range run.All() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		snaps = append(snaps, s)
	}

	sum := sim.Summarize(initialBalance, snaps)
	rec := journal.RunRecord{
		RunID:          runID,
		Name:           name,
		Created:        created.UTC(),
		Start:          calendar.Day(start),
		End:            calendar.Day(end),
		Days:           len(snaps),
		InitialBalance: initialBalance,
		FinalBalance:   sum.EndBalance,
		TotalInterest:  sum.TotalInterest,
		NetPayments:    sum.NetPayments,
	}

	if err := record(ctx, j, rec, snaps); err != nil {
		return Result{}, err
	}

	lg.Info("simulation complete",
		log.FieldDays, rec.Days,
		log.FieldBalance, rec.FinalBalance.StringFixed(2),
		log.FieldInterest, rec.TotalInterest.StringFixed(2),
	)

	return Result{Run: rec, Snapshots: snaps, Summary: sum}, nil
}

func record(ctx context.Context, j journal.Journal, rec journal.RunRecord, snaps []sim.Snapshot) error {
	recs := make([]journal.SnapshotRecord, len(snaps))
	for i, s := range snaps {
		recs[i] = SnapshotRecord(rec.RunID, s)
	}

	if bj, ok := j.(journal.BatchJournal); ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		return bj.RecordRunWithSnapshots(rec, recs)
	}

	// The run row goes last so it never exists without its trace.
	for _, s := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.RecordSnapshot(s); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return j.RecordRun(rec)
}

// SnapshotRecord converts a simulator snapshot into its journal form.
func SnapshotRecord(runID string, s sim.Snapshot) journal.SnapshotRecord {
	return journal.SnapshotRecord{
		RunID:              runID,
		Date:               s.Date,
		Balance:            s.Balance,
		CumulativeInterest: s.CumulativeInterest,
	}
}

// OpenJournal opens the journal a configuration asks for.
func OpenJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case config.JournalCSV:
		return journal.NewCSV(jc.RunsFile, jc.SnapshotsFile)
	case config.JournalSQLite:
		return journal.NewSQLite(jc.DBPath)
	case config.JournalNone, "":
		return journal.Nop{}, nil
	}
	return nil, fmt.Errorf("unknown journal type %q", jc.Type)
}

// RunConfig builds the engine described by cfg, simulates it and journals
// the result to j. A nil j opens the journal cfg names and closes it
// afterwards.
func RunConfig(ctx context.Context, cfg *config.Config, j journal.Journal, lg *log.Logger, opts Options) (res Result, err error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}
	start, end, err := cfg.Range()
	if err != nil {
		return Result{}, err
	}
	engine, err := cfg.Engine()
	if err != nil {
		return Result{}, err
	}

	if j == nil {
		opened, oerr := OpenJournal(cfg.Journal)
		if oerr != nil {
			return Result{}, fmt.Errorf("create journal: %w", oerr)
		}
		defer func() {
			if cerr := opened.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close journal: %w", cerr)
			}
		}()
		j = opened

		jl := lg
		if jl == nil {
			jl = log.Discard()
		}
		jl.WithComponent(log.ComponentJournal).Info("journal opened",
			log.FieldJournal, journalType(cfg.Journal),
			log.FieldPath, journalPath(cfg.Journal),
		)
	}

	if opts.Name == "" {
		opts.Name = cfg.Account.Name
	}
	if opts.Name == "" {
		opts.Name = cfg.Account.ID
	}

	r := &Runner{Engine: engine, Journal: j, Log: lg, Options: opts}
	return r.Run(ctx, start, end, cfg.Account.Balance)
}

func journalType(jc config.JournalConfig) string {
	if jc.Type == "" {
		return config.JournalNone
	}
	return jc.Type
}

func journalPath(jc config.JournalConfig) string {
	switch jc.Type {
	case config.JournalCSV:
		return jc.RunsFile
	case config.JournalSQLite:
		return jc.DBPath
	}
	return ""
}
