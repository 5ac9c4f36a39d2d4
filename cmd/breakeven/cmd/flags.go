package cmd

import (
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
	"github.com/spf13/cobra"
)

// Scenario flags are shared by every command that computes something.
// Only flags set on the command line override the configured scenario.
var scenarioFlags struct {
	riskReward float64
	feeUnit    string
	feeValue   float64
	stake      float64
	trades     int
}

func addScenarioFlags(c *cobra.Command, withStake bool) {
	def := scenario.Default()
	f := c.Flags()
	f.Float64Var(&scenarioFlags.riskReward, "rr", def.RiskReward, "risk-reward ratio (win/loss)")
	f.StringVar(&scenarioFlags.feeUnit, "unit", string(def.FeeUnit), "fee unit: percent|pips")
	f.Float64Var(&scenarioFlags.feeValue, "fee", def.FeeValue, "fee per trade in the chosen unit")
	if withStake {
		f.Float64Var(&scenarioFlags.stake, "stake", def.Stake, "amount risked per trade (€)")
		f.IntVar(&scenarioFlags.trades, "trades", def.Trades, "number of trades")
	}
}

// scenarioInput merges changed flags over the configured scenario.
func scenarioInput(c *cobra.Command) scenario.Input {
	in := cfg.Scenario
	f := c.Flags()
	if f.Changed("rr") {
		in.RiskReward = scenarioFlags.riskReward
	}
	if f.Changed("unit") {
		in.FeeUnit = risk.FeeUnit(scenarioFlags.feeUnit)
	}
	if f.Changed("fee") {
		in.FeeValue = scenarioFlags.feeValue
	}
	if f.Changed("stake") {
		in.Stake = scenarioFlags.stake
	}
	if f.Changed("trades") {
		in.Trades = scenarioFlags.trades
	}
	return in
}
