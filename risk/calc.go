package risk

// All public values are percentages in [0,100]. Win rates are converted to
// a fraction in [0,1] only inside this file.

// WinFraction converts a win rate percentage into a fraction.
func WinFraction(winRatePct float64) float64 {
	return winRatePct / 100
}

// ProfitFraction is the expected result of one trade as a multiple of the
// amount risked: a win pays rr, a loss costs 1.
//
// The product is rounded on its own before the subtraction. A fused
// multiply-subtract turns the grid's exact zeros into tiny residues.
func ProfitFraction(winFraction, rr float64) float64 {
	return float64(winFraction*rr) - (1 - winFraction)
}

// ExpectedProfitPct returns the expected profit per trade as a percent of
// the amount risked, net of feePct (already in percent-of-stake).
func ExpectedProfitPct(winRatePct, rr, feePct float64) float64 {
	return ProfitFraction(WinFraction(winRatePct), rr)*100 - feePct
}

// BreakevenFraction is the fee-free win fraction at which a trade with
// reward multiple rr has zero expectancy.
func BreakevenFraction(rr float64) float64 {
	return 1 / (1 + rr)
}

// BreakevenPct returns the win rate percentage needed to break even.
//
// The fee is added in percentage points on top of the fee-free root rather
// than solving the fee-adjusted profit equation. Displayed values depend on
// this exact form.
func BreakevenPct(rr, feePct float64) float64 {
	return BreakevenFraction(rr)*100 + feePct
}

// TotalGain is the cumulative currency result of trades independent trades
// of a fixed stake each. There is no compounding.
func TotalGain(winRatePct, rr, feePct, stake float64, trades int) float64 {
	return ExpectedProfitPct(winRatePct, rr, feePct) / 100 * stake * float64(trades)
}
