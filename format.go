package fielddata

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the canonical text of a 32-bit float.
//
// Digits are the shortest that round-trip through float32. Magnitudes in
// [1e-3, 1e7) are written as plain decimals with at least one fractional digit
// ("3.5", "100.0"); everything else uses "d.dddE<exp>" ("1.0E7", "1.5E-4").
// A mantissa always has at least two digits, the second being the closest
// one that still round-trips ("1.4E-45" for the smallest subnormal).
func FormatFloat(f float32) string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(v); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 32)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}

	// strconv yields e.g. "1.5E-04" or "1E+07".
	s := strconv.FormatFloat(v, 'E', -1, 32)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mant, '.') {
		// A single shortest digit is widened to the closest two-digit decimal
		// that still identifies f, so subnormals print as "1.4E-45", not "1.0E-45".
		s2 := strconv.FormatFloat(v, 'E', 1, 32)
		if p, err := strconv.ParseFloat(s2, 32); err == nil && float32(p) == f {
			mant, exp, _ = strings.Cut(s2, "E")
		} else {
			mant += ".0"
		}
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}
