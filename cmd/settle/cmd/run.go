package cmd

import (
	"fmt"

	"github.com/rustyeddy/settle/config"
	"github.com/rustyeddy/settle/internal/log"
	"github.com/rustyeddy/settle/internal/report"
	"github.com/rustyeddy/settle/internal/runner"
	"github.com/rustyeddy/settle/journal"
	"github.com/rustyeddy/settle/sim"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation from a scenario file",
	Long: `Run a balance simulation using a scenario file.

The file specifies the opening balance, the simulated range, interest
periods, one-off payments and recurring schedules, and where to journal
the result.

Example:
  settle run -f examples/savings.yaml --month-ends`,
	RunE: runRun,
}

var (
	runConfigPath string
	runName       string
	runDaily      int
	runMonthEnds  bool
	runOrgPath    string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "file", "f", "", "path to scenario file (YAML or JSON) (required)")
	runCmd.Flags().StringVar(&runName, "name", "", "run name recorded in the journal (default account name)")
	runCmd.Flags().IntVar(&runDaily, "daily", 0, "print the first N daily snapshots")
	runCmd.Flags().BoolVar(&runMonthEnds, "month-ends", false, "print month-end balances")
	runCmd.Flags().StringVar(&runOrgPath, "org", "", "write an org-mode report to this path")
	runCmd.MarkFlagRequired("file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	lg := logger.WithComponent(log.ComponentRunner).With(log.FieldPath, runConfigPath)
	res, err := runner.RunConfig(cmd.Context(), cfg, nil, lg, runner.Options{Name: runName})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.PrintRun(out, res.Run, res.Summary)

	if runDaily > 0 {
		fmt.Fprintln(out, "Daily Breakdown")
		if err := report.PrintDaily(out, res.Snapshots, runDaily); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if runMonthEnds {
		fmt.Fprintln(out, "Month Ends")
		if err := report.PrintMonthEnds(out, res.Snapshots); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if runOrgPath != "" {
		rep := journal.Report{Run: res.Run}
		for _, s := range sim.MonthEnds(res.Snapshots) {
			rep.MonthEnds = append(rep.MonthEnds, runner.SnapshotRecord(res.Run.RunID, s))
		}
		if err := rep.WriteOrg(runOrgPath); err != nil {
			return fmt.Errorf("write org report: %w", err)
		}
		fmt.Fprintf(out, "Org Report:    %s\n", runOrgPath)
	}

	switch cfg.Journal.Type {
	case config.JournalCSV:
		fmt.Fprintf(out, "Results saved to:\n  - %s\n  - %s\n", cfg.Journal.RunsFile, cfg.Journal.SnapshotsFile)
	case config.JournalSQLite:
		fmt.Fprintf(out, "Results saved to: %s\n", cfg.Journal.DBPath)
	}
	return nil
}
