//go:build fastmath

package scalar

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// powImpl computes a**b using fast approximation.
// Uses the identity: a**b = e^(b * ln(a)), valid for finite positive a
// and nonzero finite b. Every other domain (zero, negative or non-finite
// base; zero or non-finite exponent) falls back to math.Pow so sentinel
// and NaN behavior match the standard build exactly.
func powImpl(a, b float64) float64 {
	if !(a > 0) || b == 0 || math.IsInf(a, 1) || math.IsInf(b, 0) || math.IsNaN(b) {
		return math.Pow(a, b)
	}

	return approx.FastExp(b * approx.FastLog(a))
}
