package flash

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseIn is the ramp curve used by every flash transition,
// cubic-bezier(0.42, 0, 1, 1).
var EaseIn = CubicBezier(0.42, 0, 1, 1)

// CubicBezier returns a gween easing function following the CSS
// cubic-bezier() curve with control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(solveBezier(x1, y1, x2, y2, float64(t/d)))
	}
}

func solveBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	u := x
	for range 8 {
		dx := bezierAt(x1, x2, u) - x
		if math.Abs(dx) < 1e-7 {
			return bezierAt(y1, y2, u)
		}
		slope := bezierSlope(x1, x2, u)
		if math.Abs(slope) < 1e-7 {
			break
		}
		u -= dx / slope
	}

	// Newton stalled near a flat segment, bisect instead.
	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for range 20 {
		dx := bezierAt(x1, x2, u) - x
		if math.Abs(dx) < 1e-7 {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return bezierAt(y1, y2, u)
}

// bezierAt evaluates one axis of the curve anchored at 0 and 1.
func bezierAt(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}
