// Command cshared compiles the scalar arithmetic library into a C shared
// library for use from other languages via dlopen/ctypes/FFI.
//
// Build:
//
//	go build -buildmode=c-shared -o libmathlib.so ./lib/cshared     # Linux
//	go build -buildmode=c-shared -o libmathlib.dylib ./lib/cshared  # macOS
//	go build -buildmode=c-shared -o mathlib.dll ./lib/cshared       # Windows
//
// The build also emits a C header with the exported prototypes:
//
//	double             add_double(double a, double b);
//	double             sub_double(double a, double b);
//	double             mul_double(double a, double b);
//	double             div_double(double a, double b);
//	double             pow_double(double a, double b);
//	unsigned long long factorial_int(int n);
//
// Exported symbols use flat C names and types so ctypes and dlopen hosts
// bind them without glue. Each export delegates to package scalar; no
// arithmetic lives at the boundary. Edge cases follow
// the scalar sentinel contract: div_double returns +Inf for any zero
// divisor, factorial_int returns 0 for negative n and wraps modulo 2^64
// past 20!.
package main

import "C"

import "github.com/cwbudde/algo-mathlib/scalar"

// add_double returns a + b.
//
//export add_double
func add_double(a, b C.double) C.double {
	return C.double(scalar.Add(float64(a), float64(b)))
}

// sub_double returns a - b.
//
//export sub_double
func sub_double(a, b C.double) C.double {
	return C.double(scalar.Subtract(float64(a), float64(b)))
}

// mul_double returns a * b.
//
//export mul_double
func mul_double(a, b C.double) C.double {
	return C.double(scalar.Multiply(float64(a), float64(b)))
}

// div_double returns a / b, or +Inf when b is zero.
//
//export div_double
func div_double(a, b C.double) C.double {
	return C.double(scalar.Divide(float64(a), float64(b)))
}

// pow_double returns a raised to the power b.
//
//export pow_double
func pow_double(a, b C.double) C.double {
	return C.double(scalar.Power(float64(a), float64(b)))
}

// factorial_int returns n!, 0 for negative n, wrapping modulo 2^64.
//
//export factorial_int
func factorial_int(n C.int) C.ulonglong {
	return C.ulonglong(scalar.Factorial(int32(n)))
}

func main() {}
