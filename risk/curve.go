package risk

import "gonum.org/v1/gonum/floats"

// Point is one sample of a curve.
type Point struct {
	WinRate float64 `json:"win_rate"`
	Value   float64 `json:"value"`
}

// Curve is a sampled series plus a zero reference line of the same length.
type Curve struct {
	Points    []Point   `json:"points"`
	Reference []float64 `json:"reference"`
}

// Values returns the y values of the curve.
func (c Curve) Values() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Value
	}
	return out
}

// WinRateDomain returns CurvePoints evenly spaced win rates from 0 to 100
// inclusive.
func WinRateDomain() []float64 {
	return floats.Span(make([]float64, CurvePoints), 0, 100)
}

func sample(fn func(winRatePct float64) float64) Curve {
	domain := WinRateDomain()
	c := Curve{
		Points:    make([]Point, len(domain)),
		Reference: make([]float64, len(domain)),
	}
	for i, wr := range domain {
		c.Points[i] = Point{WinRate: wr, Value: fn(wr)}
	}
	return c
}

// ComputeBreakeven returns the breakeven win rate in percent.
func ComputeBreakeven(rr, feePct float64) float64 {
	return BreakevenPct(rr, feePct)
}

// ComputeProfitCurve samples the expected profit percent per trade.
func ComputeProfitCurve(rr, feePct float64) Curve {
	return sample(func(wr float64) float64 {
		return ExpectedProfitPct(wr, rr, feePct)
	})
}

// ComputeEuroCurve samples the total currency gain after trades trades of
// stake each.
func ComputeEuroCurve(rr, feePct, stake float64, trades int) Curve {
	return sample(func(wr float64) float64 {
		return TotalGain(wr, rr, feePct, stake, trades)
	})
}
