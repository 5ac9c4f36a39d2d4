package scenario

import (
	"errors"
	"math"
	"testing"

	"github.com/rustyeddy/breakeven/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(err error) []string {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]string, len(ve.Violations))
	for i, v := range ve.Violations {
		out[i] = v.Code
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Input
		want  []string
	}{
		{"default", Default(), nil},
		{"lower bounds", Input{RiskReward: 0.5, FeeUnit: risk.FeePips, Stake: 1, Trades: 1}, nil},
		{"upper bounds", Input{RiskReward: 10, FeeUnit: risk.FeePercent, FeeValue: 5, Stake: 1e6, Trades: 1000}, nil},
		{"ratio too low", Input{RiskReward: 0.4, Stake: 100, Trades: 10}, []string{"RR_OUT_OF_RANGE"}},
		{"ratio too high", Input{RiskReward: 10.1, Stake: 100, Trades: 10}, []string{"RR_OUT_OF_RANGE"}},
		{"ratio NaN", Input{RiskReward: math.NaN(), Stake: 100, Trades: 10}, []string{"RR_NOT_FINITE"}},
		{"unknown unit", Input{RiskReward: 2, FeeUnit: "bps", Stake: 100, Trades: 10}, []string{"FEE_UNIT_UNKNOWN"}},
		{"negative fee", Input{RiskReward: 2, FeeValue: -0.1, Stake: 100, Trades: 10}, []string{"FEE_NEGATIVE"}},
		{"infinite fee", Input{RiskReward: 2, FeeValue: math.Inf(1), Stake: 100, Trades: 10}, []string{"FEE_NOT_FINITE"}},
		{"small stake", Input{RiskReward: 2, Stake: 0.5, Trades: 10}, []string{"STAKE_TOO_LOW"}},
		{"max stake", Input{RiskReward: 10, Stake: risk.MaxStake, Trades: 1000}, nil},
		{"huge stake", Input{RiskReward: 10, Stake: 1e307, Trades: 1000}, []string{"STAKE_TOO_HIGH"}},
		{"fee overflows total", Input{RiskReward: 2, FeeValue: 1e305, Stake: 1e6, Trades: 1000}, []string{"RESULT_NOT_FINITE"}},
		{"negative trades", Input{RiskReward: 2, Stake: 100, Trades: -3}, []string{"TRADES_OUT_OF_RANGE"}},
		{"too many trades", Input{RiskReward: 2, Stake: 100, Trades: 1001}, []string{"TRADES_OUT_OF_RANGE"}},
		{
			"everything wrong",
			Input{RiskReward: math.Inf(-1), FeeUnit: "x", FeeValue: -1, Stake: math.NaN()},
			[]string{"RR_NOT_FINITE", "FEE_UNIT_UNKNOWN", "FEE_NEGATIVE", "STAKE_NOT_FINITE", "TRADES_OUT_OF_RANGE"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, tt.want, codes(err))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	err := Input{RiskReward: 20, Stake: 100, Trades: 0}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
	assert.Contains(t, err.Error(), "risk-reward ratio 20.00 outside [0.5, 10.0]")
	assert.Contains(t, err.Error(), "trade count 0 outside [1, 1000]")
}

func TestClamp(t *testing.T) {
	t.Parallel()

	got := Input{RiskReward: 42, FeeUnit: "bogus", FeeValue: -2, Stake: 0, Trades: 5000}.Clamp()
	assert.Equal(t, Input{RiskReward: 10, FeeUnit: risk.FeePercent, FeeValue: 0, Stake: 1, Trades: 1000}, got)
	assert.NoError(t, got.Validate())

	got = Input{RiskReward: math.NaN(), FeeUnit: "pip", FeeValue: 3, Stake: math.Inf(1), Trades: -1}.Clamp()
	assert.Equal(t, 2.0, got.RiskReward)
	assert.Equal(t, risk.FeePips, got.FeeUnit)
	assert.Equal(t, 100.0, got.Stake)
	assert.Equal(t, 1, got.Trades)
	assert.NoError(t, got.Validate())
}

func TestValidate_TotalStaysFinite(t *testing.T) {
	t.Parallel()

	in := Input{RiskReward: risk.MaxRiskReward, FeeUnit: risk.FeePercent, FeeValue: 100, Stake: risk.MaxStake, Trades: risk.MaxTrades}
	p, err := in.Resolve()
	require.NoError(t, err)

	c := risk.ComputeEuroCurve(p.RiskReward, p.FeePct, p.Stake, p.Trades)
	for _, v := range c.Values() {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestClamp_StakeUpperBound(t *testing.T) {
	t.Parallel()

	got := Input{RiskReward: 2, Stake: 1e307, Trades: 10}.Clamp()
	assert.Equal(t, risk.MaxStake, got.Stake)
	assert.NoError(t, got.Validate())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unit risk.FeeUnit
		want risk.FeeUnit
	}{
		{"", risk.FeePercent},
		{"pct", risk.FeePercent},
		{"%", risk.FeePercent},
		{"percent", risk.FeePercent},
		{"pip", risk.FeePips},
		{"pips", risk.FeePips},
		{"bps", "bps"},
	}
	for _, tt := range tests {
		in := Default()
		in.FeeUnit = tt.unit
		assert.Equal(t, tt.want, in.Normalize().FeeUnit, "unit %q", tt.unit)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	p, err := Input{RiskReward: 2, FeeUnit: risk.FeePips, FeeValue: 25, Stake: 100, Trades: 100}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.RiskReward)
	assert.InDelta(t, 0.25, p.FeePct, 1e-12)
	assert.Equal(t, 100.0, p.Stake)
	assert.Equal(t, 100, p.Trades)

	_, err = Input{RiskReward: 0}.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)
}
