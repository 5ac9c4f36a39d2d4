package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeePct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		unit  FeeUnit
		value float64
		want  float64
	}{
		{"percent identity", FeePercent, 0.25, 0.25},
		{"zero pips", FeePips, 0, 0},
		{"one pip", FeePips, 1, 0.01},
		{"fifty pips", FeePips, 50, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, FeePct(tt.unit, tt.value), 1e-12)
		})
	}
}

func TestParseFeeUnit(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]FeeUnit{
		"":        FeePercent,
		"percent": FeePercent,
		"%":       FeePercent,
		"pips":    FeePips,
		"pip":     FeePips,
	} {
		got, err := ParseFeeUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFeeUnit("bps")
	assert.Error(t, err)
}
