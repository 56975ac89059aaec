// Package numfmt formats floating point numbers for debug strings.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Float formats v using the shortest representation that round-trips.
// The result always carries a fractional part ("1.0", never "1").
// Magnitudes outside [1e-3, 1e7) use scientific notation ("1.0E7",
// "1.5E-4"). Non-finite values are "NaN", "Infinity" and "-Infinity".
func Float(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv gives "1.5E-04"; strip the exponent sign and padding.
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-0")
	if neg {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}
