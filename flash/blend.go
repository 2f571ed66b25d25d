package flash

import (
	"image/color"
	"math"

	"github.com/automoto/camflash/config"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFor maps warmth in [0,1] to the flash tint. Below 0.5 it blends the
// cool anchor toward neutral, above it blends neutral toward the warm
// anchor. Blending is componentwise in sRGB space.
func ColorFor(warmth float64, a config.FlashAnchors) color.RGBA {
	w := clamp01(warmth)
	if w < 0.5 {
		return blendRGB(a.Cool, a.Neutral, clamp01(w/0.5))
	}
	return blendRGB(a.Neutral, a.Warm, clamp01((w-0.5)/0.5))
}

// Blend mixes two colors componentwise, t = 0 giving from and t = 1 giving
// to. Tint widgets use it to follow the invert value.
func Blend(from, to color.RGBA, t float64) color.RGBA {
	return blendRGB(from, to, clamp01(t))
}

func blendRGB(from, to color.RGBA, t float64) color.RGBA {
	c1, _ := colorful.MakeColor(from)
	c2, _ := colorful.MakeColor(to)
	r, g, b := c1.BlendRgb(c2, t).RGB255()
	alpha := lerp(float64(from.A), float64(to.A), t)
	return color.RGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha))}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 also maps NaN to 0 so a bad input never leaks into the gradient.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
