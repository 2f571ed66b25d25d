package systems

import (
	"testing"

	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
)

func TestTriggerFlash_CaptureRoundTrip(t *testing.T) {
	s := newScene(t)
	f := s.data()
	timing := cfg.Flash.Timing

	TriggerFlash(s.ecs)
	if f.Illumination != f.Views.Intensity() {
		t.Fatalf("illumination = %v, want %v", f.Illumination, f.Views.Intensity())
	}

	s.run(timing.RampUp + timing.CaptureHold + 2*frame)
	c := components.Capture.Get(s.flash)
	if !c.Pending || c.Finish == nil {
		t.Fatalf("capture not requested, state %s", f.Views.State())
	}
	if f.Views.Invert() != 1 {
		t.Errorf("invert at capture = %v, want 1", f.Views.Invert())
	}

	// Nothing happens until the picture has been taken.
	finishCapture(s.flash)
	if f.Views.State() != flash.StateAwaitingCapture {
		t.Fatalf("state = %s before the snapshot", f.Views.State())
	}

	c.Taken = true
	finishCapture(s.flash)
	if c.Pending || c.Taken || c.Finish != nil {
		t.Errorf("capture not reset: %+v", c)
	}
	if f.Illumination != flash.IlluminationAuto {
		t.Errorf("illumination = %v, want auto after finish", f.Illumination)
	}

	s.run(timing.Settle + timing.RampDown + 2*frame)
	if f.Views.State() != flash.StateIdle || f.Views.Invert() != 0 {
		t.Errorf("state %s invert %v after ramp down", f.Views.State(), f.Views.Invert())
	}
	if f.Shots != 1 {
		t.Errorf("Shots = %d, want 1", f.Shots)
	}
}

func TestTriggerFlash_Busy(t *testing.T) {
	s := newScene(t)
	if FlashBusy(s.ecs) {
		t.Fatal("busy before any flash")
	}
	TriggerFlash(s.ecs)
	s.run(2 * frame)
	if !FlashBusy(s.ecs) {
		t.Fatal("not busy while ramping up")
	}
	TriggerFlash(s.ecs)
	if got := s.message(); got != "Flash busy" {
		t.Errorf("message = %q", got)
	}
}

func TestFlash_InvalidatesSurfacesAndTints(t *testing.T) {
	s := newScene(t)
	bg := components.Surface.Get(s.background)
	fg := components.Surface.Get(s.foreground)
	shutter := components.Tint.Get(s.shutter)
	bg.Dirty, fg.Dirty, shutter.Dirty = false, false, false

	FlashIn(s.ecs)
	s.run(5 * frame)

	if !bg.Dirty || !fg.Dirty {
		t.Errorf("surfaces dirty = %v/%v, want both", bg.Dirty, fg.Dirty)
	}
	if !shutter.Dirty || shutter.Invert <= 0 {
		t.Errorf("shutter dirty %v invert %v", shutter.Dirty, shutter.Invert)
	}
	if got := components.Tint.Get(s.mode).Invert; got != shutter.Invert {
		t.Errorf("tints disagree: %v vs %v", got, shutter.Invert)
	}

	s.run(cfg.Flash.Timing.RampUp)
	if st := s.data().Views.State(); st != flash.StateLit {
		t.Errorf("state = %s, want Lit", st)
	}
	FlashOut(s.ecs)
	if s.data().Illumination != flash.IlluminationAuto {
		t.Error("FlashOut should hand illumination back")
	}
}

func TestPreview(t *testing.T) {
	s := newScene(t)
	StartPreview(s.ecs)
	s.run(cfg.Flash.Timing.Preview + frame)
	if got := s.data().Views.Invert(); got != cfg.Flash.Timing.PreviewLevel {
		t.Errorf("invert = %v, want preview level", got)
	}
	if s.data().Illumination != flash.IlluminationAuto {
		t.Error("preview must not touch illumination")
	}
	EndPreview(s.ecs)
	s.run(cfg.Flash.Timing.Preview + frame)
	if got := s.data().Views.Invert(); got != 0 {
		t.Errorf("invert = %v after preview end", got)
	}
}

func TestAdjustments(t *testing.T) {
	s := newScene(t)
	v := s.data().Views

	tests := []struct {
		name      string
		do        func()
		warmth    float64
		intensity float64
		index     int
	}{
		{"warmer clamps", func() { AdjustWarmth(s.ecs, 1) }, 1, 1, 0},
		{"dimmer", func() { AdjustIntensity(s.ecs, -0.5) }, 1, 0.5, 0},
		{"dimmer clamps", func() { AdjustIntensity(s.ecs, -2) }, 1, 0, 0},
		{"cold preset", func() { SelectPreset(s.ecs, 2) }, 0, 0, 2},
		{"cycle wraps", func() { CyclePreset(s.ecs) }, 0.5, 0, 0},
		{"out of range preset ignored", func() { SelectPreset(s.ecs, 7) }, 0.5, 0, 0},
	}
	for _, tt := range tests {
		tt.do()
		if v.Warmth() != tt.warmth || v.Intensity() != tt.intensity || v.ColorIndex() != tt.index {
			t.Errorf("%s: warmth %v intensity %v index %d", tt.name, v.Warmth(), v.Intensity(), v.ColorIndex())
		}
	}
	if !HasUnsavedFlash(s.ecs) {
		t.Error("adjustments should mark the settings unsaved")
	}
	if got := s.message(); got != "White flash" {
		t.Errorf("message = %q", got)
	}
}

func TestFlashStateName(t *testing.T) {
	s := newScene(t)
	if got := FlashStateName(s.ecs); got != "idle" {
		t.Errorf("state name = %q", got)
	}
}
