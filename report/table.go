package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
)

var categoryColors = map[risk.Category]text.Colors{
	risk.Zero:     {text.BgYellow, text.FgBlack},
	risk.Negative: {text.BgRed, text.FgWhite},
	risk.Positive: {text.BgGreen, text.FgBlack},
}

// Renderer writes tables to Out.
type Renderer struct {
	Out   io.Writer
	Color bool
}

func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{Out: out, Color: color}
}

func (r *Renderer) newWriter() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.Out, s)
	return err
}

// cellTransformer formats a profit percent and colours it by category.
func (r *Renderer) cellTransformer(val interface{}) string {
	v, ok := val.(float64)
	if !ok {
		return "error"
	}
	if !r.Color {
		return Pct(v)
	}
	return categoryColors[risk.Classify(v)].Sprint(Pct(v))
}

// Matrix renders the breakeven matrix followed by its legend.
func (r *Renderer) Matrix(m risk.Matrix) error {
	t := r.newWriter()

	header := table.Row{""}
	for _, wr := range m.WinRates {
		header = append(header, ColumnLabel(wr))
	}
	t.AppendHeader(header)

	for i, row := range m.Cells {
		tr := table.Row{RowLabel(m.Ratios[i])}
		for _, c := range row {
			tr = append(tr, c.Value)
		}
		t.AppendRow(tr)
	}

	configs := make([]table.ColumnConfig, 0, len(m.WinRates))
	for j := range m.WinRates {
		configs = append(configs, table.ColumnConfig{
			Number:      j + 2,
			Align:       text.AlignRight,
			Transformer: r.cellTransformer,
		})
	}
	t.SetColumnConfigs(configs)
	if err := r.println(t.Render()); err != nil {
		return err
	}

	for _, l := range Legend {
		if err := r.println(l); err != nil {
			return err
		}
	}
	return nil
}

// Curve renders every nth point of a curve. The last point is always shown.
func (r *Renderer) Curve(title, valueHeader string, c risk.Curve, every int, format func(float64) string) error {
	if every < 1 {
		every = 1
	}

	t := r.newWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Win rate", valueHeader})
	for i, p := range c.Points {
		if i%every != 0 && i != len(c.Points)-1 {
			continue
		}
		v := format(p.Value)
		if r.Color {
			v = categoryColors[risk.Classify(p.Value)].Sprint(v)
		}
		t.AppendRow(table.Row{Pct(p.WinRate), v})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
	})
	return r.println(t.Render())
}

// ProfitCurve renders the average gain per trade table.
func (r *Renderer) ProfitCurve(c risk.Curve, every int) error {
	return r.Curve("Average gain per trade", "Gain (% risked)", c, every, Pct)
}

// EuroCurve renders the total currency result table.
func (r *Renderer) EuroCurve(c risk.Curve, every int) error {
	return r.Curve("Total gain/loss after all trades", "Gain/Loss", c, every, Euro)
}

// Breakeven writes the breakeven sentence, and the converted fee for pips.
func (r *Renderer) Breakeven(in scenario.Input, p risk.Params, breakevenPct float64) error {
	if note := FeeNote(in); note != "" {
		if err := r.println(note); err != nil {
			return err
		}
	}
	return r.println(BreakevenSentence(p.RiskReward, p.FeePct, breakevenPct))
}

// Scenario renders a full report.
func (r *Renderer) Scenario(rep scenario.Report, every int) error {
	steps := []func() error{
		func() error { return r.Matrix(rep.BreakevenMatrix) },
		func() error { return r.println("") },
		func() error { return r.Breakeven(rep.Input, rep.Params, rep.BreakevenPct) },
		func() error { return r.println("") },
		func() error { return r.ProfitCurve(rep.ProfitCurve, every) },
		func() error { return r.EuroCurve(rep.EuroCurve, every) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
