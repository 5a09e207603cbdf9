package projection

import "math"

// Dollars converts integer cents to float dollars. Monetary inputs stay in
// cents until this point; rounding happens only at presentation via Round2.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// Round2 rounds to 2 decimal places for display. Never call it on a value
// that still feeds further arithmetic.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ceilDiv is integer ceiling division for positive divisors.
func ceilDiv(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
