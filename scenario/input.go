package scenario

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/breakeven/risk"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Input holds the raw values a presentation layer collects from the user.
type Input struct {
	RiskReward float64      `json:"risk_reward" yaml:"risk_reward" form:"rr"`
	FeeUnit    risk.FeeUnit `json:"fee_unit" yaml:"fee_unit" form:"unit"`
	FeeValue   float64      `json:"fee_value" yaml:"fee_value" form:"fee"`
	Stake      float64      `json:"stake" yaml:"stake" form:"stake"`
	Trades     int          `json:"trades" yaml:"trades" form:"trades"`
}

// Default matches the initial widget values of the calculator.
func Default() Input {
	return Input{
		RiskReward: 2.0,
		FeeUnit:    risk.FeePercent,
		FeeValue:   0,
		Stake:      100,
		Trades:     100,
	}
}

type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

// ValidationError lists every rule an Input broke.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) add(code, msg string) {
	e.Violations = append(e.Violations, Violation{Code: code, Msg: msg})
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Msg
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Validate checks every bound and returns a *ValidationError when any fails.
func (in Input) Validate() error {
	ve := &ValidationError{}

	switch {
	case !finite(in.RiskReward):
		ve.add("RR_NOT_FINITE", "risk-reward ratio must be a finite number")
	case in.RiskReward < risk.MinRiskReward || in.RiskReward > risk.MaxRiskReward:
		ve.add("RR_OUT_OF_RANGE",
			fmt.Sprintf("risk-reward ratio %.2f outside [%.1f, %.1f]", in.RiskReward, risk.MinRiskReward, risk.MaxRiskReward))
	}

	if _, err := risk.ParseFeeUnit(string(in.FeeUnit)); err != nil {
		ve.add("FEE_UNIT_UNKNOWN", err.Error())
	}
	switch {
	case !finite(in.FeeValue):
		ve.add("FEE_NOT_FINITE", "fee must be a finite number")
	case in.FeeValue < 0:
		ve.add("FEE_NEGATIVE", fmt.Sprintf("fee %.2f must not be negative", in.FeeValue))
	}

	switch {
	case !finite(in.Stake):
		ve.add("STAKE_NOT_FINITE", "stake must be a finite number")
	case in.Stake < risk.MinStake:
		ve.add("STAKE_TOO_LOW", fmt.Sprintf("stake %.2f below minimum %.1f", in.Stake, risk.MinStake))
	case in.Stake > risk.MaxStake:
		ve.add("STAKE_TOO_HIGH", fmt.Sprintf("stake %.2f above maximum %.0f", in.Stake, risk.MaxStake))
	}

	if in.Trades < risk.MinTrades || in.Trades > risk.MaxTrades {
		ve.add("TRADES_OUT_OF_RANGE",
			fmt.Sprintf("trade count %d outside [%d, %d]", in.Trades, risk.MinTrades, risk.MaxTrades))
	}

	if len(ve.Violations) > 0 {
		return ve
	}

	// Each bound holds, but a huge fee can still overflow the euro curve.
	if !finite(worstTotal(in.RiskReward, in.FeePct(), in.Stake, in.Trades)) {
		ve.add("RESULT_NOT_FINITE", "fee too large: total gain/loss overflows")
		return ve
	}
	return nil
}

// worstTotal bounds the magnitude of any point of the euro curve.
func worstTotal(rr, feePct, stake float64, trades int) float64 {
	perTrade := math.Max(rr, 1)*100 + feePct
	return perTrade / 100 * stake * float64(trades)
}

// Clamp pulls numeric values into their bounds the way a slider would.
// Non-finite values fall back to the defaults.
func (in Input) Clamp() Input {
	def := Default()
	out := in

	if !finite(out.RiskReward) {
		out.RiskReward = def.RiskReward
	}
	out.RiskReward = math.Min(math.Max(out.RiskReward, risk.MinRiskReward), risk.MaxRiskReward)

	if unit, err := risk.ParseFeeUnit(string(out.FeeUnit)); err != nil {
		out.FeeUnit = def.FeeUnit
	} else {
		out.FeeUnit = unit
	}
	if !finite(out.FeeValue) || out.FeeValue < 0 {
		out.FeeValue = 0
	}

	if !finite(out.Stake) {
		out.Stake = def.Stake
	}
	out.Stake = math.Min(math.Max(out.Stake, risk.MinStake), risk.MaxStake)

	if out.Trades < risk.MinTrades {
		out.Trades = risk.MinTrades
	}
	if out.Trades > risk.MaxTrades {
		out.Trades = risk.MaxTrades
	}
	return out
}

// Normalize returns in with the fee unit in its canonical spelling. An
// unknown unit is left as is for Validate to report.
func (in Input) Normalize() Input {
	if unit, err := risk.ParseFeeUnit(string(in.FeeUnit)); err == nil {
		in.FeeUnit = unit
	}
	return in
}

// FeePct is the fee normalized to percent of stake.
func (in Input) FeePct() float64 {
	unit, err := risk.ParseFeeUnit(string(in.FeeUnit))
	if err != nil {
		unit = risk.FeePercent
	}
	return risk.FeePct(unit, in.FeeValue)
}

// Resolve validates the input and converts it into core parameters.
func (in Input) Resolve() (risk.Params, error) {
	if err := in.Validate(); err != nil {
		return risk.Params{}, err
	}
	return risk.Params{
		RiskReward: in.RiskReward,
		FeePct:     in.FeePct(),
		Stake:      in.Stake,
		Trades:     in.Trades,
	}, nil
}
