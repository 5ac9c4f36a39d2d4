package risk

// Params are the resolved, already validated inputs of a scenario.
type Params struct {
	RiskReward float64 `json:"risk_reward"` // reward multiple, e.g. 2 for 1:2
	FeePct     float64 `json:"fee_percent"` // percent of stake, pips already converted

	Stake  float64 `json:"stake"` // currency risked per trade
	Trades int     `json:"trades"`
}

// MatrixRatios returns the fixed row axis of the breakeven matrix.
func MatrixRatios() []float64 {
	return []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

// MatrixWinRates returns the fixed column axis of the breakeven matrix.
func MatrixWinRates() []float64 {
	return []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
}

// CurvePoints is the number of evenly spaced win rate samples of a curve.
const CurvePoints = 100

// Bounds enforced by the boundary layer before values reach this package.
const (
	MinRiskReward = 0.5
	MaxRiskReward = 10.0
	MinStake      = 1.0
	MaxStake      = 1e9
	MinTrades     = 1
	MaxTrades     = 1000
)
