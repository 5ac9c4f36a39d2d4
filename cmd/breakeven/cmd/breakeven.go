package cmd

import (
	"fmt"

	"github.com/rustyeddy/breakeven/risk"
	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Print the win rate needed to break even",
	Long: `Compute the breakeven win rate for a risk-reward ratio and fee.

Examples:
  breakeven breakeven --rr 2
  breakeven breakeven --rr 1.5 --fee 3 --unit pips`,
	Args: cobra.NoArgs,
	RunE: runBreakeven,
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
	addScenarioFlags(breakevenCmd, false)
}

func runBreakeven(cmd *cobra.Command, args []string) error {
	in := scenarioInput(cmd)
	p, err := in.Resolve()
	if err != nil {
		return fmt.Errorf("breakeven: %w", err)
	}

	return renderer(cmd).Breakeven(in, p, risk.ComputeBreakeven(p.RiskReward, p.FeePct))
}
