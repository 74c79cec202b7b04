package cmd

import (
	"fmt"

	"github.com/rustyeddy/settle/calendar"
	"github.com/spf13/cobra"
)

var monthsCmd = &cobra.Command{
	Use:   "months <start> <end>",
	Short: "Print the span between two dates in decimal months",
	Long: `Compute the number of months between two dates, counting whole months
first and the remainder as a fraction of the following month.

Examples:
  settle months 2024-01-31 2024-02-29
  settle months 2024-01-15 2024-03-01 --no-eom`,
	Args: cobra.ExactArgs(2),
	RunE: runMonths,
}

var (
	monthsNoEOM  bool
	monthsStrict bool
)

func init() {
	rootCmd.AddCommand(monthsCmd)

	monthsCmd.Flags().BoolVar(&monthsNoEOM, "no-eom", false, "do not treat month ends as aligned")
	monthsCmd.Flags().BoolVar(&monthsStrict, "strict", false, "fail when end is before start")
}

func runMonths(cmd *cobra.Command, args []string) error {
	start, err := calendar.ParseDay(args[0])
	if err != nil {
		return err
	}
	end, err := calendar.ParseDay(args[1])
	if err != nil {
		return err
	}

	var opts []calendar.MonthsOption
	if monthsNoEOM {
		opts = append(opts, calendar.WithoutEOMRule())
	}
	if monthsStrict {
		opts = append(opts, calendar.DisallowNegative())
	}

	m, err := calendar.MonthsBetween(start, end, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", m)
	return nil
}
