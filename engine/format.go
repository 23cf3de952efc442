package engine

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a result with up to 10 decimals, trailing zeros trimmed.
// Extreme magnitudes fall back to scientific notation.
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e12 || abs < 1e-9 {
		return strconv.FormatFloat(v, 'g', 10, 64)
	}
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
