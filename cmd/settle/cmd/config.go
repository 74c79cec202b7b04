package cmd

import (
	"fmt"

	"github.com/rustyeddy/settle/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate scenario files",
	Long: `Manage scenario files for balance simulations.

Subcommands:
  init     - Generate a default scenario file
  validate - Validate an existing scenario file

Examples:
  settle config init -o savings.yaml
  settle config validate -f savings.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default scenario file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "scenario.yaml", "output scenario file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to scenario file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created default scenario: %s\n", configInitOutput)
	fmt.Fprintln(out, "\nEdit the file and run with:")
	fmt.Fprintf(out, "  settle run -f %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Scenario valid: %s\n", configValidatePath)
	fmt.Fprintf(out, "  Account: %s (Balance: %s)\n", cfg.Account.ID, cfg.Account.Balance.StringFixed(2))
	fmt.Fprintf(out, "  Range: %s .. %s\n", cfg.Simulation.Start, cfg.Simulation.End)
	fmt.Fprintf(out, "  Periods: %d, Payments: %d, Schedules: %d\n", len(cfg.Periods), len(cfg.Payments), len(cfg.Schedules))
	fmt.Fprintf(out, "  Journal: %s\n", cfg.Journal.Type)
	return nil
}
