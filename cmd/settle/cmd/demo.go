package cmd

import (
	"fmt"
	"io"

	"github.com/rustyeddy/settle/calendar"
	"github.com/rustyeddy/settle/internal/report"
	"github.com/rustyeddy/settle/sim"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run example simulations",
	Long: `Run canned scenarios that show how the simulator behaves.

Available demos:
  simple      - One year at a fixed 5% rate
  rates       - A rate change halfway through the year
  streams     - Monthly deposits and quarterly withdrawals
  compounding - Daily compounding against simple interest
  savings     - A year of paychecks, bills, bonuses and rate changes
  all         - Every demo in turn

Examples:
  settle demo simple
  settle demo all`,
}

type demo struct {
	name  string
	short string
	run   func(io.Writer) error
}

var demos = []demo{
	{"simple", "One year at a fixed 5% rate", demoSimple},
	{"rates", "A rate change halfway through the year", demoRates},
	{"streams", "Monthly deposits and quarterly withdrawals", demoStreams},
	{"compounding", "Daily compounding against simple interest", demoCompounding},
	{"savings", "A year of paychecks, bills, bonuses and rate changes", demoSavings},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	for _, d := range demos {
		demoCmd.AddCommand(&cobra.Command{
			Use:   d.name,
			Short: d.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return d.run(cmd.OutOrStdout())
			},
		})
	}

	demoCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range demos {
				if err := d.run(out); err != nil {
					return fmt.Errorf("demo %s: %w", d.name, err)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	})
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "--------------------------------------------------")
}

func addPeriod(e *sim.Engine, start, end string, rate string) error {
	s, err := calendar.ParseDay(start)
	if err != nil {
		return err
	}
	en, err := calendar.ParseDay(end)
	if err != nil {
		return err
	}
	p, err := sim.NewInterestPeriod(s, en, amount(rate))
	if err != nil {
		return err
	}
	e.AddInterestPeriod(p)
	return nil
}

func results(w io.Writer, snaps []sim.Snapshot) {
	last := snaps[len(snaps)-1]
	fmt.Fprintf(w, "Final Balance:  %s\n", last.Balance.StringFixed(2))
	fmt.Fprintf(w, "Total Interest: %s\n", last.CumulativeInterest.StringFixed(2))
}

func demoSimple(w io.Writer) error {
	heading(w, "Simple Interest")
	e := sim.NewEngine()
	if err := addPeriod(e, "2024-01-01", "2025-01-01", "0.05"); err != nil {
		return err
	}
	snaps, err := e.Simulate(calendar.Date(2024, 1, 1), calendar.Date(2024, 12, 31), amount("10000"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Initial Balance: 10000.00 at 5% for 365 days")
	results(w, snaps)
	return nil
}

func demoRates(w io.Writer) error {
	heading(w, "Time-Varying Interest Rates")
	e := sim.NewEngine()
	if err := addPeriod(e, "2024-01-01", "2024-07-01", "0.03"); err != nil {
		return err
	}
	if err := addPeriod(e, "2024-07-01", "2025-01-01", "0.07"); err != nil {
		return err
	}
	snaps, err := e.Simulate(calendar.Date(2024, 1, 1), calendar.Date(2024, 12, 31), amount("10000"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Initial Balance: 10000.00, 3% to June then 7%")
	results(w, snaps)
	return nil
}

func demoStreams(w io.Writer) error {
	heading(w, "Multiple Payment Streams")
	e := sim.NewEngine()
	if err := addPeriod(e, "2024-01-01", "2025-01-01", "0.04"); err != nil {
		return err
	}
	schedules := []sim.Schedule{
		{First: calendar.Date(2024, 1, 1), Until: calendar.Date(2024, 12, 1), Every: sim.Interval{Months: 1}, Amount: amount("1000"), Description: "deposit"},
		{First: calendar.Date(2024, 3, 31), Until: calendar.Date(2024, 12, 31), Every: sim.Interval{Months: 3}, Amount: amount("-500"), Description: "withdrawal"},
	}
	for _, s := range schedules {
		if err := e.AddSchedule(s); err != nil {
			return err
		}
	}

	start := amount("5000")
	snaps, err := e.Simulate(calendar.Date(2024, 1, 1), calendar.Date(2025, 1, 1), start)
	if err != nil {
		return err
	}
	sum := sim.Summarize(start, snaps)
	fmt.Fprintln(w, "Initial Balance: 5000.00 at 4%")
	fmt.Fprintf(w, "Net Payments:   %s\n", sum.NetPayments.StringFixed(2))
	results(w, snaps)
	return nil
}

func demoCompounding(w io.Writer) error {
	heading(w, "Daily Compounding")
	e := sim.NewEngine()
	if err := addPeriod(e, "2024-01-01", "2024-02-01", "0.12"); err != nil {
		return err
	}
	principal := amount("10000")
	snaps, err := e.Simulate(calendar.Date(2024, 1, 1), calendar.Date(2024, 1, 31), principal)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Initial Balance: 10000.00 at 12% for 30 days")
	if err := report.PrintDaily(w, snaps, 10); err != nil {
		return err
	}

	compound := snaps[len(snaps)-1].CumulativeInterest
	simple := sim.SimpleInterest(principal, amount("0.12"), len(snaps))
	fmt.Fprintf(w, "Compound interest: %s\n", compound.StringFixed(2))
	fmt.Fprintf(w, "Simple interest:   %s\n", simple.StringFixed(2))
	fmt.Fprintf(w, "Benefit:           %s\n", compound.Sub(simple).StringFixed(2))
	return nil
}

func demoSavings(w io.Writer) error {
	heading(w, "Savings Account Evolution")
	e := sim.NewEngine()
	rates := [][3]string{
		{"2024-01-01", "2024-04-01", "0.025"},
		{"2024-04-01", "2024-07-01", "0.035"},
		{"2024-07-01", "2024-10-01", "0.045"},
		{"2024-10-01", "2025-01-01", "0.055"},
	}
	for _, r := range rates {
		if err := addPeriod(e, r[0], r[1], r[2]); err != nil {
			return err
		}
	}

	end := calendar.Date(2024, 12, 31)
	schedules := []sim.Schedule{
		{First: calendar.Date(2024, 1, 5), Until: end, Every: sim.Interval{Days: 14}, Amount: amount("2000"), Description: "paycheck"},
		{First: calendar.Date(2024, 1, 1), Until: end, Every: sim.Interval{Months: 1}, Amount: amount("-1500"), Description: "rent"},
		{First: calendar.Date(2024, 1, 15), Until: end, Every: sim.Interval{Months: 1}, Amount: amount("-200"), Description: "utilities"},
		{First: calendar.Date(2024, 3, 15), Until: end, Every: sim.Interval{Months: 3}, Amount: amount("5000"), Description: "bonus"},
	}
	for _, s := range schedules {
		if err := e.AddSchedule(s); err != nil {
			return err
		}
	}

	snaps, err := e.Simulate(calendar.Date(2024, 1, 1), end, amount("10000"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Initial Balance: 10000.00, quarterly rates 2.5% to 5.5%")
	results(w, snaps)
	fmt.Fprintln(w)
	return report.PrintMonthEnds(w, snaps)
}
