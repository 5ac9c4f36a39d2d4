package cmd

import (
	"fmt"

	"github.com/rustyeddy/breakeven/scenario"
	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Print the full report for one set of inputs",
	Long: `Print the breakeven matrix, the breakeven win rate and both curves.

Examples:
  breakeven scenario --rr 2 --fee 0.1
  breakeven scenario --rr 1.5 --fee 2 --unit pips --stake 250 --trades 40 --json`,
	Args: cobra.NoArgs,
	RunE: runScenario,
}

var (
	scenarioEvery int
	scenarioJSON  bool
)

func init() {
	rootCmd.AddCommand(scenarioCmd)
	addScenarioFlags(scenarioCmd, true)
	scenarioCmd.Flags().IntVarP(&scenarioEvery, "every", "n", 10, "print every nth curve point")
	scenarioCmd.Flags().BoolVar(&scenarioJSON, "json", false, "print the report as JSON")
}

func runScenario(cmd *cobra.Command, args []string) error {
	rep, err := scenario.Evaluate(scenarioInput(cmd))
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if scenarioJSON {
		return printJSON(cmd, rep)
	}
	return renderer(cmd).Scenario(rep, scenarioEvery)
}
