package risk

// Category tags a matrix cell for colouring.
type Category string

const (
	Zero     Category = "zero"
	Negative Category = "negative"
	Positive Category = "positive"
)

// Classify compares against exactly zero. The matrix is built from exact
// fee-free inputs so a breakeven cell is only reached by construction.
func Classify(v float64) Category {
	switch {
	case v == 0:
		return Zero
	case v < 0:
		return Negative
	default:
		return Positive
	}
}

// Cell is one entry of the breakeven matrix.
type Cell struct {
	RiskReward float64  `json:"risk_reward"`
	WinRate    float64  `json:"win_rate"`
	Value      float64  `json:"value"`
	Category   Category `json:"category"`
}

// Matrix is row-major: one row per ratio of MatrixRatios, one column per
// win rate of MatrixWinRates.
type Matrix struct {
	Ratios   []float64 `json:"ratios"`
	WinRates []float64 `json:"win_rates"`
	Cells    [][]Cell  `json:"cells"`
}

// ComputeBreakevenMatrix evaluates the fee-free profit formula over the
// fixed grid.
func ComputeBreakevenMatrix() Matrix {
	m := Matrix{
		Ratios:   MatrixRatios(),
		WinRates: MatrixWinRates(),
	}
	m.Cells = make([][]Cell, len(m.Ratios))
	for i, rr := range m.Ratios {
		row := make([]Cell, len(m.WinRates))
		for j, wr := range m.WinRates {
			v := ExpectedProfitPct(wr, rr, 0)
			row[j] = Cell{RiskReward: rr, WinRate: wr, Value: v, Category: Classify(v)}
		}
		m.Cells[i] = row
	}
	return m
}

