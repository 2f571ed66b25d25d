package flash

import (
	"math"
	"testing"
)

func TestEaseIn_Endpoints(t *testing.T) {
	if got := EaseIn(0, 0, 1, 1); got != 0 {
		t.Errorf("EaseIn(0) = %v, want 0", got)
	}
	if got := EaseIn(1, 0, 1, 1); got != 1 {
		t.Errorf("EaseIn(1) = %v, want 1", got)
	}
	// Begin and change are applied around the curve.
	if got := EaseIn(2, 3, -2, 2); got != 1 {
		t.Errorf("EaseIn at end of a 3 -> 1 tween = %v, want 1", got)
	}
}

func TestEaseIn_Midpoint(t *testing.T) {
	got := float64(EaseIn(0.5, 0, 1, 1))
	if math.Abs(got-0.31536) > 1e-3 {
		t.Errorf("EaseIn(0.5) = %v, want ~0.3154", got)
	}
}

func TestEaseIn_MonotonicBelowLinear(t *testing.T) {
	prev := float32(0)
	for i := 1; i <= 200; i++ {
		x := float32(i) / 200
		v := EaseIn(x, 0, 1, 1)
		if v < prev {
			t.Fatalf("EaseIn decreased at %v: %v < %v", x, v, prev)
		}
		if v > x+1e-4 {
			t.Fatalf("EaseIn(%v) = %v, above the linear curve", x, v)
		}
		prev = v
	}
}

func TestCubicBezier_Linear(t *testing.T) {
	linear := CubicBezier(0, 0, 1, 1)
	for i := 0; i <= 10; i++ {
		x := float32(i) / 10
		if got := linear(x, 0, 1, 1); math.Abs(float64(got-x)) > 1e-4 {
			t.Errorf("linear(%v) = %v", x, got)
		}
	}
}

func TestCubicBezier_ZeroDuration(t *testing.T) {
	if got := EaseIn(0, 0.25, 0.5, 0); got != 0.75 {
		t.Errorf("zero duration = %v, want the end value 0.75", got)
	}
}
