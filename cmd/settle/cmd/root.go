package cmd

import (
	"github.com/rustyeddy/settle/config"
	"github.com/rustyeddy/settle/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "settle",
	Short: "Daily-compounding account balance simulator",
	Long: `Settle simulates an interest-bearing account one calendar day at a time.

It provides tools for:
  - Simulating balances over time-varying annual rates
  - Applying one-off and recurring deposits and withdrawals
  - Journalling daily snapshots to CSV or SQLite
  - Querying and exporting past runs as org-mode
  - Measuring spans in decimal months`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	logLevel string
	envFiles []string

	logger = log.Discard()
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", nil, "dotenv files to load (default ./.env when present)")
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger = log.New(log.Config{
		Level:     level,
		Component: log.ComponentCLI,
		Output:    cmd.ErrOrStderr(),
	})

	if err := config.LoadEnv(envFiles...); err != nil {
		return err
	}
	logger.Debug("command starting", "command", cmd.CommandPath())
	return nil
}
