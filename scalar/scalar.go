package scalar

import "math"

// Add returns a + b under native IEEE-754 semantics.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b under native IEEE-754 semantics.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b under native IEEE-754 semantics.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b.
// A zero divisor (positive or negative zero) returns +Inf for every
// numerator, including Divide(0, 0) and negative numerators; the
// quotient is never evaluated in that case.
func Divide(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}

	return a / b
}

// Power returns a raised to the power b with math.Pow semantics:
// NaN for invalid domains such as a negative base with a fractional
// exponent, and Power(x, 0) == 1 for every x, NaN included.
func Power(a, b float64) float64 {
	return powImpl(a, b)
}
