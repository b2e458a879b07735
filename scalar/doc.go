// Package scalar implements elementary arithmetic on 64-bit scalars:
// addition, subtraction, multiplication, division, exponentiation, and
// factorial.
//
// Every function is pure and stateless, so the package is safe for
// concurrent use from any number of goroutines without synchronization.
// Edge cases surface as sentinel return values rather than errors:
// division by a zero divisor returns +Inf, a negative factorial argument
// returns 0, and factorial results past MaxFactorial64 wrap modulo 2^64.
// The sentinel contract keeps every function callable across a plain
// binary boundary (see lib/cshared and web/wasm), where Go error values
// cannot travel.
package scalar
