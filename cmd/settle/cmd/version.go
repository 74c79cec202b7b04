package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the settle CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "settle version %s\n", version)
		fmt.Fprintln(out, "A daily-compounding account balance simulator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
