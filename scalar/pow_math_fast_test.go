//go:build fastmath

package scalar

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-mathlib/internal/testutil"
)

// TestPowerFastSentinelDomains verifies that every domain outside the fast
// path is bit-identical to math.Pow, so the sentinel contract does not
// depend on the build tag.
func TestPowerFastSentinelDomains(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{name: "zero exponent", a: 123.456, b: 0},
		{name: "zero exponent nan base", a: math.NaN(), b: 0},
		{name: "zero base", a: 0, b: 2},
		{name: "zero base negative exponent", a: 0, b: -1},
		{name: "negative base integer exponent", a: -2, b: 3},
		{name: "negative base fractional exponent", a: -8, b: 1.0 / 3.0},
		{name: "nan base", a: math.NaN(), b: 2},
		{name: "nan exponent", a: 2, b: math.NaN()},
		{name: "inf base", a: math.Inf(1), b: 2},
		{name: "inf exponent", a: 2, b: math.Inf(1)},
		{name: "negative inf exponent", a: 2, b: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireSameValue(t, Power(tt.a, tt.b), math.Pow(tt.a, tt.b))
		})
	}
}

// TestPowerFastAccuracy bounds the relative error of the approximation on
// the fast path (finite positive base, nonzero finite exponent). The log
// factor's error passes through the exponential, so the result's relative
// error grows with |b*ln(a)| and the tolerance scales accordingly.
func TestPowerFastAccuracy(t *testing.T) {
	bases := []float64{0.01, 0.5, 1, 2, 2.718281828, 10, 42.5, 100}
	exponents := []float64{-3, -1.5, -1, -0.5, 0.5, 1, 1.5, 2, 3}

	for _, a := range bases {
		for _, b := range exponents {
			eps := 0.01 + 0.01*math.Abs(b*math.Log(a))
			testutil.RequireNearlyEqual(t, Power(a, b), math.Pow(a, b), eps)
		}
	}
}
