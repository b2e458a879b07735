package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// relative to the magnitude of want. Exact-zero want falls back to an
// absolute comparison. NaN on either side fails.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.IsNaN(got) || math.IsNaN(want) {
		t.Fatalf("got %v, want %v (NaN is never nearly equal)", got, want)
	}

	diff := math.Abs(got - want)
	if want == 0 {
		if diff > eps {
			t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
		}
		return
	}

	relErr := diff / math.Abs(want)
	if relErr > eps {
		t.Fatalf("got %v, want %v (rel err %v > eps %v)", got, want, relErr, eps)
	}
}

// RequireSameValue fails t unless got and want are the same IEEE value,
// treating all NaNs as equal to each other. +Inf and -Inf stay distinct.
func RequireSameValue(t *testing.T, got, want float64) {
	t.Helper()

	if math.IsNaN(got) && math.IsNaN(want) {
		return
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// RequirePosInf fails t unless v is positive infinity.
func RequirePosInf(t *testing.T, v float64) {
	t.Helper()

	if !math.IsInf(v, 1) {
		t.Fatalf("got %v, want +Inf", v)
	}
}

// RequireNaN fails t unless v is NaN.
func RequireNaN(t *testing.T, v float64) {
	t.Helper()

	if !math.IsNaN(v) {
		t.Fatalf("got %v, want NaN", v)
	}
}
