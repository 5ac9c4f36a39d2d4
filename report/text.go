package report

import (
	"fmt"
	"strconv"

	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
)

// Legend explains the matrix colours.
var Legend = []string{
	"Green: positive expectancy (profitable strategy).",
	"Yellow: breakeven, neither loss nor gain (0%).",
	"Red: negative expectancy (losing strategy).",
}

// BreakevenSentence states the win rate needed to break even.
func BreakevenSentence(rr, feePct, breakevenPct float64) string {
	return fmt.Sprintf("To break even with a risk-reward ratio of %s:1 and fees of %.2f%%, you must win at least %.2f%% of your trades.",
		strconv.FormatFloat(rr, 'f', -1, 64), feePct, breakevenPct)
}

// FeeNote shows the converted fee when it was entered in pips.
func FeeNote(in scenario.Input) string {
	if in.Normalize().FeeUnit != risk.FeePips {
		return ""
	}
	return fmt.Sprintf("Fees as a percentage: %.2f%%", in.FeePct())
}

// RowLabel and ColumnLabel name the matrix axes.
func RowLabel(rr float64) string {
	return "RRR " + strconv.FormatFloat(rr, 'f', -1, 64)
}

func ColumnLabel(winRate float64) string {
	return strconv.FormatFloat(winRate, 'f', -1, 64) + "%"
}

// Pct formats a percentage.
func Pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Euro formats a currency amount.
func Euro(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}
