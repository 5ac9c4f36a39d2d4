package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the breakeven CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "breakeven version %s\n", version)
		fmt.Fprintln(out, "Breakeven win rate and expected profit calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
