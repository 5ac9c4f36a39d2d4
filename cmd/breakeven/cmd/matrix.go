package cmd

import (
	"github.com/rustyeddy/breakeven/risk"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the breakeven matrix",
	Long: `Print expected profit per trade for risk-reward ratios 1 through 10 and
win rates 0% through 100% in steps of 10. Fees are not applied.

Example:
  breakeven matrix
  breakeven matrix --no-color`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderer(cmd).Matrix(risk.ComputeBreakevenMatrix())
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
