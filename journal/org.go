package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/settle/calendar"
	"github.com/rustyeddy/settle/internal/id"
)

// FormatRunOrg renders a run as an org-mode heading with a property drawer.
func FormatRunOrg(r RunRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Run: %s (%s)\n", r.Name, id.Short(r.RunID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", r.RunID)
	fmt.Fprintf(&b, ":ID: %s\n", r.RunID)
	fmt.Fprintf(&b, ":CREATED: %s\n", r.Created.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":START: %s\n", calendar.Format(r.Start))
	fmt.Fprintf(&b, ":END: %s\n", calendar.Format(r.End))
	fmt.Fprintf(&b, ":DAYS: %d\n", r.Days)
	fmt.Fprintf(&b, ":INITIAL_BALANCE: %s\n", r.InitialBalance.StringFixed(2))
	fmt.Fprintf(&b, ":FINAL_BALANCE: %s\n", r.FinalBalance.StringFixed(2))
	fmt.Fprintf(&b, ":TOTAL_INTEREST: %s\n", r.TotalInterest.StringFixed(2))
	fmt.Fprintf(&b, ":NET_PAYMENTS: %s\n", r.NetPayments.StringFixed(2))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n")
	return b.String()
}

// FormatRunsOrg renders multiple runs separated by blank lines.
func FormatRunsOrg(runs []RunRecord) string {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatRunOrg(r))
	}
	return b.String()
}

// FormatSnapshotsOrg renders snapshots as an org table rounded to cents.
func FormatSnapshotsOrg(snaps []SnapshotRecord) string {
	var b strings.Builder
	b.WriteString("| Date | Balance | Interest |\n")
	b.WriteString("|------+---------+----------|\n")
	for _, s := range snaps {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			calendar.Format(s.Date),
			s.Balance.StringFixed(2),
			s.CumulativeInterest.StringFixed(2),
		)
	}
	return b.String()
}
