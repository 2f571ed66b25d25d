package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFlashConfig is wrapped by every validation failure of an
// override file.
var ErrInvalidFlashConfig = errors.New("invalid flash config")

// Overrides is the optional YAML file layered over the built-in defaults.
// Missing keys keep their default.
type Overrides struct {
	Window *WindowOverrides `yaml:"window"`
	Flash  *FlashOverrides  `yaml:"flash"`
	Debug  *DebugOverrides  `yaml:"debug"`
}

type WindowOverrides struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type FlashOverrides struct {
	Warmth            *float64         `yaml:"warmth"`
	Intensity         *float64         `yaml:"intensity"`
	ColorIndex        *int             `yaml:"color_index"`
	CornerRadius      *float64         `yaml:"corner_radius"`
	HysteresisEpsilon *float64         `yaml:"hysteresis_epsilon"`
	ExtendedColor     *bool            `yaml:"extended_color"`
	Anchors           *AnchorOverrides `yaml:"anchors"`
	Presets           []PresetOverride `yaml:"presets"`
}

// AnchorOverrides holds hex colors such as "#8cdfff".
type AnchorOverrides struct {
	Cool    string `yaml:"cool"`
	Neutral string `yaml:"neutral"`
	Warm    string `yaml:"warm"`
}

type PresetOverride struct {
	Name   string  `yaml:"name"`
	Warmth float64 `yaml:"warmth"`
}

type DebugOverrides struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
	LogFrames    bool `yaml:"log_frames"`
}

// LoadOverrides reads and validates an override file and applies it to the
// global configuration. Nothing is applied if any value is invalid.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return o.Apply()
}

// ParseOverrides decodes override YAML without applying it.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &o, nil
}

// Apply validates the overrides against the current globals and, when they
// are all valid, writes them in.
func (o *Overrides) Apply() error {
	flash, err := o.flashConfig(Flash)
	if err != nil {
		return err
	}
	window := *C
	if w := o.Window; w != nil {
		if w.Width < 0 || w.Height < 0 {
			return fmt.Errorf("%w: window size %dx%d", ErrInvalidFlashConfig, w.Width, w.Height)
		}
		if w.Width > 0 {
			window.Width = w.Width
		}
		if w.Height > 0 {
			window.Height = w.Height
		}
		if w.Title != "" {
			window.Title = w.Title
		}
	}

	Flash = flash
	C = &window
	if d := o.Debug; d != nil {
		Debug.ShowHitboxes = d.ShowHitboxes
		Debug.LogFrames = d.LogFrames
	}
	return nil
}

func (o *Overrides) flashConfig(base FlashConfig) (FlashConfig, error) {
	f := o.Flash
	if f == nil {
		return base, nil
	}
	out := base

	if f.Warmth != nil {
		out.Warmth = *f.Warmth
	}
	if f.Intensity != nil {
		out.Intensity = *f.Intensity
	}
	if f.CornerRadius != nil {
		out.CornerRadius = *f.CornerRadius
	}
	if f.HysteresisEpsilon != nil {
		out.HysteresisEpsilon = *f.HysteresisEpsilon
	}
	if f.ExtendedColor != nil {
		out.ExtendedColor = *f.ExtendedColor
	}
	if len(f.Presets) > 0 {
		out.Presets = make([]FlashPreset, 0, len(f.Presets))
		for _, p := range f.Presets {
			out.Presets = append(out.Presets, FlashPreset{Name: p.Name, Warmth: p.Warmth})
		}
	}
	if f.ColorIndex != nil {
		out.ColorIndex = *f.ColorIndex
	}
	if a := f.Anchors; a != nil {
		var err error
		if out.Anchors.Cool, err = parseAnchor("cool", a.Cool, out.Anchors.Cool); err != nil {
			return base, err
		}
		if out.Anchors.Neutral, err = parseAnchor("neutral", a.Neutral, out.Anchors.Neutral); err != nil {
			return base, err
		}
		if out.Anchors.Warm, err = parseAnchor("warm", a.Warm, out.Anchors.Warm); err != nil {
			return base, err
		}
	}

	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// Validate checks the user tunable values.
func (c FlashConfig) Validate() error {
	switch {
	case c.Warmth < 0 || c.Warmth > 1:
		return fmt.Errorf("%w: warmth %v outside [0,1]", ErrInvalidFlashConfig, c.Warmth)
	case c.Intensity < 0 || c.Intensity > 1:
		return fmt.Errorf("%w: intensity %v outside [0,1]", ErrInvalidFlashConfig, c.Intensity)
	case c.CornerRadius < 0:
		return fmt.Errorf("%w: negative corner radius %v", ErrInvalidFlashConfig, c.CornerRadius)
	case c.HysteresisEpsilon < 0 || c.HysteresisEpsilon >= 0.5:
		return fmt.Errorf("%w: hysteresis epsilon %v outside [0,0.5)", ErrInvalidFlashConfig, c.HysteresisEpsilon)
	case c.ColorIndex < 0 || (len(c.Presets) > 0 && c.ColorIndex >= len(c.Presets)):
		return fmt.Errorf("%w: color index %d with %d presets", ErrInvalidFlashConfig, c.ColorIndex, len(c.Presets))
	}
	for i, p := range c.Presets {
		if p.Warmth < 0 || p.Warmth > 1 {
			return fmt.Errorf("%w: preset %d (%s) warmth %v outside [0,1]", ErrInvalidFlashConfig, i, p.Name, p.Warmth)
		}
	}
	return nil
}

func parseAnchor(name, hex string, fallback color.RGBA) (color.RGBA, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s anchor: %v", ErrInvalidFlashConfig, name, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
