package scenario

import "github.com/rustyeddy/breakeven/risk"

// Report is everything the calculator displays for one set of inputs.
// It is recomputed from scratch on every change.
type Report struct {
	Input           Input       `json:"input"`
	Params          risk.Params `json:"params"`
	BreakevenPct    float64     `json:"breakeven_percent"`
	ProfitCurve     risk.Curve  `json:"profit_curve"`
	EuroCurve       risk.Curve  `json:"euro_curve"`
	BreakevenMatrix risk.Matrix `json:"matrix"`
}

// Evaluate validates in and runs all three components.
func Evaluate(in Input) (Report, error) {
	p, err := in.Resolve()
	if err != nil {
		return Report{}, err
	}
	return Compute(in, p), nil
}

// Compute runs the core on already resolved parameters.
func Compute(in Input, p risk.Params) Report {
	in = in.Normalize()
	return Report{
		Input:           in,
		Params:          p,
		BreakevenPct:    risk.ComputeBreakeven(p.RiskReward, p.FeePct),
		ProfitCurve:     risk.ComputeProfitCurve(p.RiskReward, p.FeePct),
		EuroCurve:       risk.ComputeEuroCurve(p.RiskReward, p.FeePct, p.Stake, p.Trades),
		BreakevenMatrix: risk.ComputeBreakevenMatrix(),
	}
}
