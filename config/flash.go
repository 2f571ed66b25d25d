package config

import (
	"image/color"
	"time"
)

// FlashTiming holds the flash protocol delays. They define how long the
// flash looks to the host and are not user tunable.
type FlashTiming struct {
	RampUp       time.Duration // invert 0 -> 1 before capture
	CaptureHold  time.Duration // pause at full flash before the capture callback
	Settle       time.Duration // between releasing illumination and the fade
	RampDown     time.Duration // invert 1 -> 0 after capture
	Preview      time.Duration // preview ramps, both directions
	PreviewLevel float64       // invert reached by a preview
}

// FlashAnchors are the colors warmth blends between.
type FlashAnchors struct {
	Cool    color.RGBA
	Neutral color.RGBA
	Warm    color.RGBA
}

// FlashPreset is one entry of the host-facing color selector.
type FlashPreset struct {
	Name   string
	Warmth float64
}

// FlashConfig contains the flash overlay configuration
type FlashConfig struct {
	Warmth     float64 // 0 = cool, 0.5 = neutral, 1 = warm
	Intensity  float64 // scales the gradient opacity and the requested illumination
	ColorIndex int     // selected preset, host-facing only

	Timing  FlashTiming
	Anchors FlashAnchors
	Presets []FlashPreset

	CornerRadius      float64 // foreground rounded rect, pixels
	HysteresisEpsilon float64 // invert change ignored by the gradient cache
	ExtendedColor     bool    // float gradient stops instead of 8-bit
}

// Preset returns the preset at i, falling back to the first one.
func (c FlashConfig) Preset(i int) FlashPreset {
	if i < 0 || i >= len(c.Presets) {
		if len(c.Presets) == 0 {
			return FlashPreset{Name: "White", Warmth: 0.5}
		}
		return c.Presets[0]
	}
	return c.Presets[i]
}
