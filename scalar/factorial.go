package scalar

// MaxFactorial64 is the largest n for which Factorial(n) is exact.
// Above it the running product exceeds 64 bits and wraps.
const MaxFactorial64 = 20

// Factorial returns n! as an unsigned 64-bit integer.
// Negative n returns 0. Factorial(0) and Factorial(1) are both 1.
// Results past MaxFactorial64 wrap modulo 2^64 rather than failing;
// from Factorial(66) on the accumulated factors of two wrap the
// product all the way to 0.
func Factorial(n int32) uint64 {
	if n < 0 {
		return 0
	}

	res := uint64(1)
	for i := int32(2); i <= n; i++ {
		res *= uint64(i)
		if res == 0 {
			// 2^64 divides 66!, so from there the product is zero
			// and no later factor changes it.
			break
		}
	}

	return res
}
