// Package report renders runs as plain text for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/rustyeddy/settle/internal/id"
	"github.com/rustyeddy/settle/journal"
	"github.com/rustyeddy/settle/sim"
)

const rule = "--------------------------------------------------"

// PrintRun writes the run header and account summary.
func PrintRun(w io.Writer, r journal.RunRecord, s sim.Summary) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Simulation Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Run ID:        %s\n", r.RunID)
	fmt.Fprintf(w, "Name:          %s\n", r.Name)
	fmt.Fprintf(w, "Created:       %s\n", r.Created.Format(time.RFC3339))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Start:         %s\n", calendar.Format(r.Start))
	fmt.Fprintf(w, "End:           %s (exclusive)\n", calendar.Format(r.End))
	fmt.Fprintf(w, "Days:          %d\n", r.Days)
	if s.Days > 0 {
		fmt.Fprintf(w, "Months:        %.2f\n", s.Months)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Start Balance: %s\n", r.InitialBalance.StringFixed(2))
	fmt.Fprintf(w, "End Balance:   %s\n", r.FinalBalance.StringFixed(2))
	fmt.Fprintf(w, "Interest:      %s\n", r.TotalInterest.StringFixed(2))
	fmt.Fprintf(w, "Net Payments:  %s\n", r.NetPayments.StringFixed(2))
	if s.Days > 0 {
		fmt.Fprintf(w, "Min Balance:   %s\n", s.MinBalance.StringFixed(2))
		fmt.Fprintf(w, "Max Balance:   %s\n", s.MaxBalance.StringFixed(2))
	}

	fmt.Fprintln(w)
}

// PrintDaily writes one row per snapshot with the interest credited that
// day. A positive limit keeps only the first limit rows.
func PrintDaily(w io.Writer, snaps []sim.Snapshot, limit int) error {
	if limit > 0 && limit < len(snaps) {
		snaps = snaps[:limit]
	}
	daily := sim.DailyInterest(snaps)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tBalance\tInterest\tCumulative\t")
	for i, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			calendar.Format(s.Date),
			s.Balance.StringFixed(2),
			daily[i].StringFixed(4),
			s.CumulativeInterest.StringFixed(2),
		)
	}
	return tw.Flush()
}

// PrintMonthEnds writes the balance at each month end covered by snaps.
func PrintMonthEnds(w io.Writer, snaps []sim.Snapshot) error {
	ends := sim.MonthEnds(snaps)
	if len(ends) == 0 {
		_, err := fmt.Fprintln(w, "no month ends in range")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tBalance\tInterest\t")
	for _, s := range ends {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
			s.Date.Format("2006-01"),
			s.Balance.StringFixed(2),
			s.CumulativeInterest.StringFixed(2),
		)
	}
	return tw.Flush()
}

// PrintRuns lists journalled runs, one per line.
func PrintRuns(w io.Writer, runs []journal.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND\tDAYS\tFINAL\tINTEREST")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			id.Short(r.RunID),
			r.Name,
			calendar.Format(r.Start),
			calendar.Format(r.End),
			r.Days,
			r.FinalBalance.StringFixed(2),
			r.TotalInterest.StringFixed(2),
		)
	}
	return tw.Flush()
}

// PrintSnapshots lists journalled snapshots.
func PrintSnapshots(w io.Writer, snaps []journal.SnapshotRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tBalance\tCumulative\t")
	for _, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
			calendar.Format(s.Date),
			s.Balance.StringFixed(2),
			s.CumulativeInterest.StringFixed(2),
		)
	}
	return tw.Flush()
}
