package config

import (
	"image/color"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ForegroundConfig places the live preview inset over the background
type ForegroundConfig struct {
	Width, Height int     // inset size before scaling
	X, Y          float64 // default offset from the layout position
	Scale         float64 // default uniform scale
	MinScale      float64
	MaxScale      float64
	ScaleStep     float64 // per mouse wheel notch
	BorderColor   color.RGBA
}

// ViewfinderConfig contains the fake camera feed drawn under the overlay
type ViewfinderConfig struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	GridSpacing     float64
	SubjectColor    color.RGBA
	SubjectRadius   float64
	DriftSpeed      float64 // radians per second of the subject's orbit
}

// TintableConfig contains the tinted overlay widgets
type TintableConfig struct {
	Size        float64
	Light       color.RGBA // drawn at invert 0
	Dark        color.RGBA // drawn at invert 1
	ShutterRing float64    // ring thickness of the shutter widget
}

// HUDConfig contains the status text and capture thumbnail layout
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	TextColor      color.RGBA
	ThumbnailScale float64
	ThumbnailFrame color.RGBA
	IlluminationOn color.RGBA
	MessageBox     color.RGBA
	MessageFrames  int // how long a status message stays up
}

// PanelConfig contains the ebitenui control panel configuration
type PanelConfig struct {
	BackgroundColor color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	TextColor       color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	Padding         int
	Spacing         int
	WarmthStep      float64
	IntensityStep   float64
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowHitboxes bool // outline pointer hit areas
	LogFrames    bool // log every invert tick
}

// Global configuration instances
var C *Config
var Flash FlashConfig
var Foreground ForegroundConfig
var Viewfinder ViewfinderConfig
var Tintable TintableConfig
var HUD HUDConfig
var Panel PanelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	FlashCool    = color.RGBA{R: 0x8c, G: 0xdf, B: 0xff, A: 255}
	FlashWarm    = color.RGBA{R: 0xfe, G: 0xee, B: 0x8c, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "camflash",
	}

	Flash = FlashConfig{
		Warmth:     0.75,
		Intensity:  1.0,
		ColorIndex: 0,

		Timing: FlashTiming{
			RampUp:       320 * time.Millisecond,
			CaptureHold:  320 * time.Millisecond,
			Settle:       80 * time.Millisecond,
			RampDown:     240 * time.Millisecond,
			Preview:      240 * time.Millisecond,
			PreviewLevel: 0.85,
		},

		Anchors: FlashAnchors{
			Cool:    FlashCool,
			Neutral: White,
			Warm:    FlashWarm,
		},

		// Same order as the camera's color picker: white, warm, cold
		Presets: []FlashPreset{
			{Name: "White", Warmth: 0.5},
			{Name: "Warm", Warmth: 1.0},
			{Name: "Cold", Warmth: 0.0},
		},

		CornerRadius:      10,
		HysteresisEpsilon: 0.005,
		ExtendedColor:     true,
	}

	Foreground = ForegroundConfig{
		Width:       288,
		Height:      384,
		X:           0,
		Y:           0,
		Scale:       1.0,
		MinScale:    0.5,
		MaxScale:    2.0,
		ScaleStep:   0.05,
		BorderColor: color.RGBA{R: 255, G: 255, B: 255, A: 90},
	}

	Viewfinder = ViewfinderConfig{
		BackgroundColor: color.RGBA{R: 18, G: 22, B: 30, A: 255},
		GridColor:       color.RGBA{R: 255, G: 255, B: 255, A: 24},
		GridSpacing:     60,
		SubjectColor:    color.RGBA{R: 220, G: 120, B: 80, A: 255},
		SubjectRadius:   48,
		DriftSpeed:      0.6,
	}

	Tintable = TintableConfig{
		Size:        44,
		Light:       White,
		Dark:        Black,
		ShutterRing: 4,
	}

	HUD = HUDConfig{
		Margin:         12,
		LineHeight:     14,
		TextColor:      White,
		ThumbnailScale: 0.2,
		ThumbnailFrame: color.RGBA{R: 255, G: 255, B: 255, A: 200},
		IlluminationOn: BrightOrange,
		MessageBox:     BlackOverlay,
		MessageFrames:  120,
	}

	Panel = PanelConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 200},
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 120, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		TextColor:       White,
		ButtonWidth:     64,
		ButtonHeight:    24,
		Padding:         8,
		Spacing:         4,
		WarmthStep:      0.05,
		IntensityStep:   0.1,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
		LogFrames:    false,
	}
}
