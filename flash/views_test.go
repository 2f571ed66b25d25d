package flash

import (
	"image/color"
	"testing"

	"github.com/automoto/camflash/config"
)

func newViews(t *testing.T) (*Views, *Loop, *counter, *counter) {
	t.Helper()
	cfg := config.Flash
	cfg.Warmth = 0.5
	cfg.Intensity = 1
	loop := NewLoop()
	v := New(loop, &hostLog{}, cfg)
	bg, fg := &counter{}, &counter{}
	v.AttachSurfaces(bg, fg)
	return v, loop, bg, fg
}

func TestViews_SetWarmthAnchors(t *testing.T) {
	v, _, _, _ := newViews(t)
	a := config.Flash.Anchors

	v.SetWarmth(0)
	if v.Color() != a.Cool {
		t.Errorf("warmth 0 color = %v, want %v", v.Color(), a.Cool)
	}
	v.SetWarmth(1)
	if v.Color() != a.Warm {
		t.Errorf("warmth 1 color = %v, want %v", v.Color(), a.Warm)
	}
	v.SetWarmth(7)
	if v.Warmth() != 1 {
		t.Errorf("Warmth = %v, want clamped to 1", v.Warmth())
	}
}

func TestViews_UsesConfiguredAnchors(t *testing.T) {
	cfg := config.Flash
	cfg.Anchors = config.FlashAnchors{
		Cool:    color.RGBA{R: 1, G: 2, B: 3, A: 255},
		Neutral: color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Warm:    color.RGBA{R: 250, G: 200, B: 10, A: 255},
	}
	v := New(NewLoop(), nil, cfg)

	tests := []struct {
		warmth float64
		want   color.RGBA
	}{
		{0, cfg.Anchors.Cool},
		{0.5, cfg.Anchors.Neutral},
		{1, cfg.Anchors.Warm},
	}
	for _, tt := range tests {
		v.SetWarmth(tt.warmth)
		if got := v.Color(); got != tt.want {
			t.Errorf("warmth %v color = %v, want %v", tt.warmth, got, tt.want)
		}
	}
	if config.Flash.Anchors.Cool == cfg.Anchors.Cool {
		t.Error("defaults were modified")
	}
}

func TestViews_Busy(t *testing.T) {
	v, loop, _, _ := newViews(t)
	if v.Busy() {
		t.Fatal("busy before Flash")
	}
	var finish func(func())
	if err := v.Flash(func(f func(func())) { finish = f }); err != nil {
		t.Fatalf("Flash: %v", err)
	}
	if !v.Busy() {
		t.Fatal("not busy after Flash")
	}
	timing := config.Flash.Timing
	loop.Advance(timing.RampUp)
	loop.Advance(timing.CaptureHold)
	if finish == nil {
		t.Fatalf("capture not requested, state %v", v.State())
	}
	finish(nil)
	loop.Advance(timing.Settle)
	loop.Advance(timing.RampDown)
	if v.Busy() || v.State() != StateIdle {
		t.Errorf("busy=%v state=%v after ramp down", v.Busy(), v.State())
	}
}

func TestViews_WarmthRedrawsOnlyWhenMeasured(t *testing.T) {
	v, _, bg, fg := newViews(t)

	v.SetWarmth(0.2)
	if bg.n != 0 || fg.n != 0 {
		t.Fatalf("unmeasured overlay redrew: bg=%d fg=%d", bg.n, fg.n)
	}

	v.MeasureBackground(400, 300)
	if bg.n != 1 || fg.n != 1 {
		t.Fatalf("measure redraws: bg=%d fg=%d, want 1 each", bg.n, fg.n)
	}

	v.SetWarmth(0.9)
	if bg.n != 2 || fg.n != 2 {
		t.Errorf("warmth change redraws: bg=%d fg=%d, want 2 each", bg.n, fg.n)
	}
	v.SetWarmth(0.9)
	if bg.n != 2 {
		t.Errorf("same warmth redrew again: bg=%d", bg.n)
	}
}

func TestViews_IntensityScalesAlpha(t *testing.T) {
	v, loop, _, _ := newViews(t)

	v.FlashIn(nil)
	drain(t, loop)
	if v.Invert() != 1 || v.Alpha() != 255 {
		t.Fatalf("lit overlay invert=%v alpha=%d", v.Invert(), v.Alpha())
	}

	v.SetIntensity(0.5)
	if v.Alpha() != 127 {
		t.Errorf("alpha at half intensity = %d, want 127", v.Alpha())
	}
	if v.Intensity() != 0.5 {
		t.Errorf("Intensity = %v", v.Intensity())
	}
}

func TestViews_TintsFollowInvert(t *testing.T) {
	v, loop, _, _ := newViews(t)
	var trail []string
	w := &recorder{name: "shutter", trail: &trail}
	v.Add(w)

	v.PreviewStart()
	drain(t, loop)

	if w.invert != v.Invert() || w.invert != config.Flash.Timing.PreviewLevel {
		t.Errorf("widget invert = %v, overlay %v", w.invert, v.Invert())
	}
}

func TestViews_PaintForeground(t *testing.T) {
	v, loop, _, _ := newViews(t)
	v.MeasureBackground(400, 300)
	v.FlashIn(nil)
	drain(t, loop)

	c := &recordingCanvas{}
	v.SetForeground(120, 160, Transform{X: 20, Y: 40, ScaleX: 1, ScaleY: 1})
	v.PaintForeground(c)
	if len(c.rounds) != 1 || c.rounds[0] != config.Flash.CornerRadius {
		t.Fatalf("rounded fills = %v", c.rounds)
	}
	if c.rects[0].W != 120 || c.rects[0].H != 160 {
		t.Errorf("foreground region = %+v", c.rects[0])
	}

	c = &recordingCanvas{}
	v.SetForeground(120, 160, Transform{ScaleX: 0, ScaleY: 0})
	v.PaintForeground(c)
	if len(c.rects) != 0 {
		t.Error("collapsed foreground still painted")
	}

	c = &recordingCanvas{}
	v.PaintBackground(c)
	if len(c.rects) != 1 || len(c.rounds) != 0 || c.rects[0].W != 400 {
		t.Errorf("background fills = %+v", c.rects)
	}
}

func TestViews_ColorIndexIsStoredOnly(t *testing.T) {
	v, _, _, _ := newViews(t)
	before := v.Color()
	v.SetColorIndex(2)
	if v.ColorIndex() != 2 {
		t.Errorf("ColorIndex = %d", v.ColorIndex())
	}
	if v.Color() != before {
		t.Error("color index changed the tint")
	}
}
