package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustyeddy/breakeven/report"
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
)

type field int

const (
	fieldRiskReward field = iota
	fieldFeeUnit
	fieldFeeValue
	fieldStake
	fieldTrades
	fieldCount
)

var fieldNames = [fieldCount]string{
	"Risk-reward ratio",
	"Fee unit",
	"Fee",
	"Stake per trade (€)",
	"Number of trades",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00E5FF"))
	focusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1B6B"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7280"))
	profitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2AFFAA"))
	euroStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const (
	defaultWidth  = 60
	minChartWidth = 10
)

// Model owns the current input values. Every change recomputes the report
// from scratch.
type Model struct {
	in         scenario.Input
	initial    scenario.Input
	focus      field
	keys       KeyMap
	width      int
	showMatrix bool
	rep        scenario.Report
	err        error
}

// New starts from in, clamped into range.
func New(in scenario.Input) Model {
	m := Model{
		in:      in.Clamp(),
		keys:    DefaultKeyMap(),
		width:   defaultWidth,
		initial: in.Clamp(),
	}
	m.recompute()
	return m
}

func (m *Model) recompute() {
	m.in = m.in.Clamp()
	p, err := m.in.Resolve()
	m.err = err
	if err != nil {
		return
	}
	m.rep = scenario.Compute(m.in, p)
}

// Input returns the current values.
func (m Model) Input() scenario.Input { return m.in }

// Report returns the report for the current values.
func (m Model) Report() scenario.Report { return m.rep }

func (m Model) Init() tea.Cmd {
	return nil
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// step moves the focused field by n increments.
func (m *Model) step(n int) {
	d := float64(n)
	switch m.focus {
	case fieldRiskReward:
		m.in.RiskReward = round(m.in.RiskReward+0.1*d, 1)
	case fieldFeeUnit:
		m.toggleUnit()
	case fieldFeeValue:
		if m.in.FeeUnit == risk.FeePips {
			m.in.FeeValue = round(m.in.FeeValue+d, 2)
		} else {
			m.in.FeeValue = round(m.in.FeeValue+0.01*d, 2)
		}
	case fieldStake:
		m.in.Stake = round(m.in.Stake+d, 2)
	case fieldTrades:
		m.in.Trades += n
	}
}

// toggleUnit switches units and keeps the fee in percent unchanged.
func (m *Model) toggleUnit() {
	pct := m.in.FeePct()
	if m.in.FeeUnit == risk.FeePips {
		m.in.FeeUnit = risk.FeePercent
		m.in.FeeValue = round(pct, 4)
	} else {
		m.in.FeeUnit = risk.FeePips
		m.in.FeeValue = round(pct/risk.PctPerPip, 4)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.focus = (m.focus + 1) % fieldCount
			return m, nil
		case key.Matches(msg, m.keys.Dec):
			m.step(-1)
		case key.Matches(msg, m.keys.Inc):
			m.step(1)
		case key.Matches(msg, m.keys.DecBig):
			m.step(-10)
		case key.Matches(msg, m.keys.IncBig):
			m.step(10)
		case key.Matches(msg, m.keys.ToggleUnit):
			m.toggleUnit()
		case key.Matches(msg, m.keys.ToggleMatrix):
			m.showMatrix = !m.showMatrix
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.in = m.initial
		default:
			return m, nil
		}
		m.recompute()
	}
	return m, nil
}

func (m Model) fieldValue(f field) string {
	switch f {
	case fieldRiskReward:
		return fmt.Sprintf("1:%.1f", m.in.RiskReward)
	case fieldFeeUnit:
		return string(m.in.FeeUnit)
	case fieldFeeValue:
		if m.in.FeeUnit == risk.FeePips {
			return fmt.Sprintf("%.2f pips", m.in.FeeValue)
		}
		return fmt.Sprintf("%.2f%%", m.in.FeeValue)
	case fieldStake:
		return fmt.Sprintf("€%.2f", m.in.Stake)
	case fieldTrades:
		return fmt.Sprintf("%d", m.in.Trades)
	}
	return ""
}

func (m Model) chartWidth() int {
	w := m.width - 6
	if w > risk.CurvePoints {
		w = risk.CurvePoints
	}
	if w < minChartWidth {
		w = minChartWidth
	}
	return w
}

func (m Model) chart(title string, st lipgloss.Style, c risk.Curve, format func(float64) string) string {
	vals := Resample(c.Values(), m.chartWidth())
	line := st.Render(Sparkline(vals))

	marker := ""
	if i := Crossing(vals); i >= 0 {
		marker = strings.Repeat(" ", i) + breakStyle.Render("^ breakeven")
	}

	lo, hi := vals[0], vals[len(vals)-1]
	return strings.Join([]string{
		titleStyle.Render(title),
		line,
		marker,
		mutedStyle.Render(fmt.Sprintf("0%%: %s   100%%: %s", format(lo), format(hi))),
	}, "\n")
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Breakeven and average gain per trade"))
	b.WriteString("\n\n")

	for f := field(0); f < fieldCount; f++ {
		label := fmt.Sprintf("%-20s %s", fieldNames[f], m.fieldValue(f))
		if f == m.focus {
			b.WriteString(focusStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(breakStyle.Render(m.err.Error()) + "\n")
		return b.String()
	}
	if note := report.FeeNote(m.in); note != "" {
		b.WriteString(note + "\n")
	}
	b.WriteString(report.BreakevenSentence(m.rep.Params.RiskReward, m.rep.Params.FeePct, m.rep.BreakevenPct))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.chart("Average gain (%) per trade", profitStyle, m.rep.ProfitCurve, report.Pct)))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.chart("Total gain/loss (€) after all trades", euroStyle, m.rep.EuroCurve, report.Euro)))
	b.WriteString("\n")

	if m.showMatrix {
		// strings.Builder never fails a write
		_ = report.NewRenderer(&b, false).Matrix(m.rep.BreakevenMatrix)
	}

	help := make([]string, 0, len(m.keys.Help()))
	for _, k := range m.keys.Help() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(mutedStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program.
func Run(in scenario.Input) error {
	_, err := tea.NewProgram(New(in), tea.WithAltScreen()).Run()
	return err
}
