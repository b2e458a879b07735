//go:build !fastmath

package scalar

import "math"

// powImpl computes a**b using standard library math.
func powImpl(a, b float64) float64 {
	return math.Pow(a, b)
}
