package tui

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Resample picks width values spread evenly over data, first and last
// included.
func Resample(data []float64, width int) []float64 {
	if width <= 0 || len(data) == 0 {
		return nil
	}
	if len(data) <= width {
		return append([]float64(nil), data...)
	}
	if width == 1 {
		return []float64{data[len(data)-1]}
	}
	idx := floats.Span(make([]float64, width), 0, float64(len(data)-1))
	out := make([]float64, width)
	for i, x := range idx {
		out[i] = data[int(x+0.5)]
	}
	return out
}

// Sparkline draws data as block characters scaled between its min and max.
func Sparkline(data []float64) string {
	if len(data) == 0 {
		return ""
	}
	lo, hi := floats.Min(data), floats.Max(data)
	if lo == hi {
		return strings.Repeat(string(sparkChars[3]), len(data))
	}

	var b strings.Builder
	for _, v := range data {
		i := int((v - lo) / (hi - lo) * float64(len(sparkChars)-1))
		if i < 0 {
			i = 0
		} else if i >= len(sparkChars) {
			i = len(sparkChars) - 1
		}
		b.WriteRune(sparkChars[i])
	}
	return b.String()
}

// Crossing returns the index where data first reaches zero, or -1.
func Crossing(data []float64) int {
	for i, v := range data {
		if v >= 0 {
			return i
		}
	}
	return -1
}
