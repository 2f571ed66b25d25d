package flash

import (
	"image/color"

	"github.com/automoto/camflash/config"
)

// Views is the flash overlay: one animated invert value shared by the
// background and foreground surfaces and every registered tint widget.
type Views struct {
	cfg config.FlashConfig

	color     color.RGBA
	animator  *Animator
	tints     *Broadcaster
	gradient  *GradientCache
	sequencer *Sequencer

	background layer
	foreground layer
}

type layer struct {
	surface   Invalidator
	width     int
	height    int
	transform Transform
}

func (l *layer) invalidate() {
	if l.surface != nil {
		l.surface.Invalidate()
	}
}

// New builds the overlay on loop. The host receives illumination requests
// from the flash sequence.
func New(loop *Loop, host Host, cfg config.FlashConfig) *Views {
	v := &Views{
		cfg:        cfg,
		tints:      NewBroadcaster(cfg.Intensity),
		gradient:   NewGradientCache(SelectColorPolicy(cfg.ExtendedColor), cfg.HysteresisEpsilon),
		foreground: layer{transform: IdentityTransform()},
	}
	v.cfg.Warmth = clamp01(cfg.Warmth)
	v.cfg.Intensity = clamp01(cfg.Intensity)
	v.color = ColorFor(v.cfg.Warmth, v.cfg.Anchors)
	v.animator = NewAnimator(loop, func(float64) { v.update() })
	v.sequencer = NewSequencer(loop, v.animator, host, cfg.Timing, v.Intensity)
	return v
}

// AttachSurfaces sets the surfaces redrawn on every change.
func (v *Views) AttachSurfaces(background, foreground Invalidator) {
	v.background.surface = background
	v.foreground.surface = foreground
}

// Add registers a tint widget and syncs it to the current invert value.
func (v *Views) Add(o Invertable) {
	v.tints.Register(o)
}

func (v *Views) SetWarmth(warmth float64) {
	v.cfg.Warmth = clamp01(warmth)
	v.color = ColorFor(v.cfg.Warmth, v.cfg.Anchors)
	v.invalidateGradient()
}

func (v *Views) SetIntensity(intensity float64) {
	v.cfg.Intensity = clamp01(intensity)
	v.tints.SetIntensity(v.cfg.Intensity)
	v.update()
}

// SetColorIndex stores the host's preset selection. The overlay itself does
// not read it.
func (v *Views) SetColorIndex(i int) {
	v.cfg.ColorIndex = i
}

// MeasureBackground records the background size the gradient is laid out on.
func (v *Views) MeasureBackground(width, height int) {
	v.background.width = width
	v.background.height = height
	v.invalidateGradient()
}

// SetForeground records the foreground size and its placement over the
// background.
func (v *Views) SetForeground(width, height int, t Transform) {
	v.foreground.width = width
	v.foreground.height = height
	v.foreground.transform = t
	v.foreground.invalidate()
}

// PaintBackground fills the whole background with the gradient.
func (v *Views) PaintBackground(c Canvas) {
	v.gradient.Paint(c, v.inputs(), PaintOp{
		Region:     Rect{W: float64(v.background.width), H: float64(v.background.height)},
		Background: true,
		Alpha:      v.tints.Alpha(),
	})
}

// PaintForeground fills the foreground's rounded rect, compensating for its
// transform so the gradient stays aligned with the background.
func (v *Views) PaintForeground(c Canvas) {
	t := v.foreground.transform
	if !t.Visible() {
		return
	}
	v.gradient.Paint(c, v.inputs(), PaintOp{
		Region:       Rect{W: float64(v.foreground.width), H: float64(v.foreground.height)},
		Matrix:       t.GradientMatrix(),
		Alpha:        v.tints.Alpha(),
		CornerRadius: v.cfg.CornerRadius,
	})
}

func (v *Views) Flash(capture CaptureFunc) error { return v.sequencer.Flash(capture) }
func (v *Views) PreviewStart()                   { v.sequencer.PreviewStart() }
func (v *Views) PreviewEnd()                     { v.sequencer.PreviewEnd() }
func (v *Views) FlashIn(done func())             { v.sequencer.FlashIn(done) }
func (v *Views) FlashOut()                       { v.sequencer.FlashOut() }
func (v *Views) State() State                    { return v.sequencer.State() }
func (v *Views) Busy() bool                      { return v.sequencer.Busy() }

func (v *Views) Warmth() float64    { return v.cfg.Warmth }
func (v *Views) Intensity() float64 { return v.cfg.Intensity }
func (v *Views) ColorIndex() int    { return v.cfg.ColorIndex }
func (v *Views) Color() color.RGBA  { return v.color }
func (v *Views) Invert() float64    { return v.animator.Value() }
func (v *Views) Alpha() uint8       { return v.tints.Alpha() }

// Gradient exposes the cache, mostly for inspection.
func (v *Views) Gradient() *GradientCache { return v.gradient }

func (v *Views) update() {
	v.tints.Broadcast(v.animator.Value())
	v.background.invalidate()
	v.foreground.invalidate()
}

func (v *Views) invalidateGradient() {
	if v.gradient.Refresh(v.inputs()) {
		v.background.invalidate()
		v.foreground.invalidate()
	}
}

func (v *Views) inputs() GradientInputs {
	return GradientInputs{
		Color:  v.color,
		Width:  v.background.width,
		Height: v.background.height,
		Invert: v.animator.Value(),
	}
}
