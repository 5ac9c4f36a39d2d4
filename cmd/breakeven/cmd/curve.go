package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/breakeven/report"
	"github.com/rustyeddy/breakeven/risk"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print profit curves over win rate",
	Long: `Print one of the two curves sampled at 100 evenly spaced win rates.

Subcommands:
  profit - Average gain per trade as a percent of the amount risked
  euro   - Total gain or loss in euro after all trades

Examples:
  breakeven curve profit --rr 3 --every 5
  breakeven curve euro --stake 50 --trades 200 --json`,
}

var curveProfitCmd = &cobra.Command{
	Use:   "profit",
	Short: "Average gain (%) per trade by win rate",
	Args:  cobra.NoArgs,
	RunE:  runCurveProfit,
}

var curveEuroCmd = &cobra.Command{
	Use:   "euro",
	Short: "Total gain/loss (€) after all trades by win rate",
	Args:  cobra.NoArgs,
	RunE:  runCurveEuro,
}

var (
	curveEvery int
	curveJSON  bool
)

func init() {
	rootCmd.AddCommand(curveCmd)
	curveCmd.AddCommand(curveProfitCmd)
	curveCmd.AddCommand(curveEuroCmd)

	curveCmd.PersistentFlags().IntVarP(&curveEvery, "every", "n", 10, "print every nth point")
	curveCmd.PersistentFlags().BoolVar(&curveJSON, "json", false, "print the chart descriptor as JSON")

	addScenarioFlags(curveProfitCmd, false)
	addScenarioFlags(curveEuroCmd, true)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runCurveProfit(cmd *cobra.Command, args []string) error {
	p, err := scenarioInput(cmd).Resolve()
	if err != nil {
		return fmt.Errorf("curve: %w", err)
	}

	c := risk.ComputeProfitCurve(p.RiskReward, p.FeePct)
	if curveJSON {
		return printJSON(cmd, report.ProfitChart(c))
	}
	return renderer(cmd).ProfitCurve(c, curveEvery)
}

func runCurveEuro(cmd *cobra.Command, args []string) error {
	p, err := scenarioInput(cmd).Resolve()
	if err != nil {
		return fmt.Errorf("curve: %w", err)
	}

	c := risk.ComputeEuroCurve(p.RiskReward, p.FeePct, p.Stake, p.Trades)
	if curveJSON {
		return printJSON(cmd, report.EuroChart(c))
	}
	return renderer(cmd).EuroCurve(c, curveEvery)
}
