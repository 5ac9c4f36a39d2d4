package risk

import "fmt"

// FeeUnit is the unit a broker fee is entered in.
type FeeUnit string

const (
	FeePercent FeeUnit = "percent"
	FeePips    FeeUnit = "pips"
)

// PctPerPip converts a fee in pips to percent of stake.
const PctPerPip = 0.01

// ParseFeeUnit accepts the unit names and a few common spellings.
func ParseFeeUnit(s string) (FeeUnit, error) {
	switch s {
	case "percent", "pct", "%", "":
		return FeePercent, nil
	case "pips", "pip":
		return FeePips, nil
	}
	return "", fmt.Errorf("unknown fee unit %q", s)
}

// FeePct normalizes a fee value to percent of stake.
func FeePct(unit FeeUnit, value float64) float64 {
	if unit == FeePips {
		return value * PctPerPip
	}
	return value
}
