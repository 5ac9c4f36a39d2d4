package report

import (
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
)

// Series is one line of a chart.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Dashed bool      `json:"dashed"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// Axis describes an axis. A nil Range lets the renderer autoscale.
type Axis struct {
	Title  string    `json:"title"`
	Range  []float64 `json:"range,omitempty"`
	Prefix string    `json:"prefix,omitempty"`
	Suffix string    `json:"suffix,omitempty"`
}

// Chart is a rendering-agnostic description of a plot.
type Chart struct {
	Title  string   `json:"title"`
	X      Axis     `json:"x_axis"`
	Y      Axis     `json:"y_axis"`
	Series []Series `json:"series"`
}

func winRateAxis() Axis {
	return Axis{Title: "Win rate (%)", Range: []float64{0, 100}, Suffix: " %"}
}

func curveSeries(name, color string, c risk.Curve) []Series {
	x := make([]float64, len(c.Points))
	for i, p := range c.Points {
		x[i] = p.WinRate
	}
	return []Series{
		{Name: name, Color: color, X: x, Y: c.Values()},
		{Name: "Breakeven", Color: "red", Dashed: true, X: x, Y: append([]float64(nil), c.Reference...)},
	}
}

// ProfitChart plots the average gain per trade against the win rate.
func ProfitChart(c risk.Curve) Chart {
	return Chart{
		Title:  "Average gain (%) per trade by win rate",
		X:      winRateAxis(),
		Y:      Axis{Title: "Average gain (% of amount risked)", Range: []float64{-100, 200}, Suffix: " %"},
		Series: curveSeries("Average gain", "green", c),
	}
}

// EuroChart plots the total currency result after all trades.
func EuroChart(c risk.Curve) Chart {
	return Chart{
		Title:  "Total gain/loss (€) after all trades",
		X:      winRateAxis(),
		Y:      Axis{Title: "Gain/Loss (€)", Prefix: "€"},
		Series: curveSeries("Gain/Loss (€)", "blue", c),
	}
}

// Charts returns both charts of a report.
func Charts(rep scenario.Report) (profit, euro Chart) {
	return ProfitChart(rep.ProfitCurve), EuroChart(rep.EuroCurve)
}
