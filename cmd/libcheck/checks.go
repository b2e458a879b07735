package main

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-mathlib/scalar"
)

// mathlib holds the six operations bound from a loaded shared library.
type mathlib struct {
	add       func(a, b float64) float64
	sub       func(a, b float64) float64
	mul       func(a, b float64) float64
	div       func(a, b float64) float64
	pow       func(a, b float64) float64
	factorial func(n int32) uint64
}

// checkResult records one conformance check against the loaded library.
type checkResult struct {
	name string
	got  string
	want string
	ok   bool
}

// powEps is the relative tolerance for pow on regular domains. The
// loaded library may be a foreign implementation whose pow differs from
// math.Pow in the last ulp; everything else must match exactly.
const powEps = 1e-12

// operandPairs is the grid the binary operations are verified on.
var operandPairs = [][2]float64{
	{10.5, 2},
	{-7, 3.25},
	{0.125, -4},
	{1e10, 3},
	{-2.5, -2.5},
	{0, 5},
}

// runChecks verifies the loaded library against package scalar and the
// fixed sentinel contract, and returns one result per check.
func runChecks(m *mathlib) []checkResult {
	var results []checkResult

	exact := func(name string, got, want float64) {
		results = append(results, checkResult{
			name: name,
			got:  formatFloat(got),
			want: formatFloat(want),
			ok:   sameFloat(got, want),
		})
	}

	near := func(name string, got, want, eps float64) {
		ok := sameFloat(got, want)
		if !ok && !math.IsNaN(got) && !math.IsNaN(want) && want != 0 {
			ok = math.Abs(got-want)/math.Abs(want) <= eps
		}
		results = append(results, checkResult{
			name: name,
			got:  formatFloat(got),
			want: formatFloat(want),
			ok:   ok,
		})
	}

	uexact := func(name string, got, want uint64) {
		results = append(results, checkResult{
			name: name,
			got:  strconv.FormatUint(got, 10),
			want: strconv.FormatUint(want, 10),
			ok:   got == want,
		})
	}

	for _, p := range operandPairs {
		a, b := p[0], p[1]
		pair := "(" + formatFloat(a) + ", " + formatFloat(b) + ")"

		exact("add"+pair, m.add(a, b), scalar.Add(a, b))
		exact("sub"+pair, m.sub(a, b), scalar.Subtract(a, b))
		exact("mul"+pair, m.mul(a, b), scalar.Multiply(a, b))
		exact("div"+pair, m.div(a, b), scalar.Divide(a, b))
		// pow is held to the C99 contract via math.Pow rather than
		// scalar.Power, so a fastmath-built checker still verifies a
		// conforming library.
		near("pow"+pair, m.pow(a, b), math.Pow(a, b), powEps)
	}

	// Zero-divisor sentinel: +Inf for every numerator, including 0/0.
	exact("div(10.5, 0)", m.div(10.5, 0), math.Inf(1))
	exact("div(-3, 0)", m.div(-3, 0), math.Inf(1))
	exact("div(0, 0)", m.div(0, 0), math.Inf(1))
	exact("div(1, -0)", m.div(1, math.Copysign(0, -1)), math.Inf(1))

	// IEEE pow corners.
	exact("pow(2, 0)", m.pow(2, 0), 1)
	exact("pow(0, 0)", m.pow(0, 0), 1)
	exact("pow(-3, 0)", m.pow(-3, 0), 1)
	exact("pow(-2, 0.5)", m.pow(-2, 0.5), math.NaN())
	exact("pow(0, -1)", m.pow(0, -1), math.Inf(1))

	// Factorial: exact range, negative sentinel, unchecked wrap.
	for _, n := range []int32{0, 1, 5, 10, 12, 20} {
		uexact("factorial("+strconv.Itoa(int(n))+")", m.factorial(n), scalar.Factorial(n))
	}
	uexact("factorial(20) literal", m.factorial(20), 2432902008176640000)
	uexact("factorial(-1)", m.factorial(-1), 0)
	uexact("factorial(-100)", m.factorial(-100), 0)
	uexact("factorial(21) wraps", m.factorial(21), 14197454024290336768)
	uexact("factorial(22) wraps", m.factorial(22), 17196083355034583040)
	uexact("factorial(66) wraps to zero", m.factorial(66), 0)

	return results
}

// sameFloat reports whether two float64 values are interchangeable,
// treating all NaNs as equal. +Inf and -Inf stay distinct.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
