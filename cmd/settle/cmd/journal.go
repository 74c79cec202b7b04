package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/rustyeddy/settle/config"
	"github.com/rustyeddy/settle/internal/report"
	"github.com/rustyeddy/settle/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the run journal",
	Long: `Query and display recorded runs from a SQLite journal.

Subcommands:
  runs       - List every recorded run
  run        - Show one run as org-mode
  snapshots  - List the daily snapshots of a run

Examples:
  settle journal runs
  settle journal run <run-id>
  settle journal snapshots <run-id> --from 2024-03-01 --to 2024-04-01`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "Show a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRun,
}

var journalSnapshotsCmd = &cobra.Command{
	Use:   "snapshots <run-id>",
	Short: "List the snapshots of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSnapshots,
}

var (
	journalDBPath string
	journalFrom   string
	journalTo     string
	journalOrg    bool
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalRunCmd)
	journalCmd.AddCommand(journalSnapshotsCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./settle.db", "path to SQLite journal DB (or "+config.EnvDBPath+")")
	journalCmd.PersistentFlags().BoolVar(&journalOrg, "org", false, "print org-mode instead of a table")
	journalSnapshotsCmd.Flags().StringVar(&journalFrom, "from", "", "first day to include (YYYY-MM-DD)")
	journalSnapshotsCmd.Flags().StringVar(&journalTo, "to", "", "first day to exclude (YYYY-MM-DD)")
}

func openJournal(cmd *cobra.Command) (*journal.SQLiteJournal, error) {
	path := journalDBPath
	if !cmd.Flags().Changed("db") {
		if v := os.Getenv(config.EnvDBPath); v != "" {
			path = v
		}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if journalOrg {
		fmt.Fprintln(out, journal.FormatRunsOrg(runs))
		return nil
	}
	return report.PrintRuns(out, runs)
}

func runJournalRun(cmd *cobra.Command, args []string) error {
	j, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatRunOrg(rec))
	return nil
}

func runJournalSnapshots(cmd *cobra.Command, args []string) error {
	j, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	runID := args[0]
	var snaps []journal.SnapshotRecord
	if journalFrom == "" && journalTo == "" {
		snaps, err = j.ListSnapshots(runID)
	} else {
		var start, end time.Time
		start, end, err = snapshotBounds(journalFrom, journalTo)
		if err != nil {
			return err
		}
		snaps, err = j.ListSnapshotsBetween(runID, start, end)
	}
	if err != nil {
		return fmt.Errorf("query snapshots: %w", err)
	}

	out := cmd.OutOrStdout()
	if journalOrg {
		fmt.Fprint(out, journal.FormatSnapshotsOrg(snaps))
		return nil
	}
	return report.PrintSnapshots(out, snaps)
}

// snapshotBounds parses --from/--to into a half-open range. A missing side
// is left unbounded.
func snapshotBounds(from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := calendar.Date(9999, 12, 31)

	if from != "" {
		t, err := calendar.ParseDay(from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
		}
		start = t
	}
	if to != "" {
		t, err := calendar.ParseDay(to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
		}
		end = t
	}
	return start, end, nil
}
