package flash

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is a region in surface-local pixels.
type Rect struct {
	X, Y, W, H float64
}

// Descriptor is the geometry and color of the radial flash gradient, in
// background pixels.
type Descriptor struct {
	CenterX, CenterY float64
	Radius           float64
	InnerStop        float64
	OuterStop        float64
	ColorStart       color.NRGBA
	ColorEnd         color.NRGBA
}

// Gradient is a computed descriptor with its stops resolved by a
// ColorPolicy. It is immutable once built.
type Gradient struct {
	Descriptor
	Start    [4]float32
	End      [4]float32
	Straight bool
}

// At returns the premultiplied color of the gradient at (x, y) in gradient
// space. Outside the stops the edge colors are clamped.
func (g *Gradient) At(x, y float64) [4]float32 {
	t := 1.0
	if g.Radius > 0 {
		t = math.Hypot(x-g.CenterX, y-g.CenterY) / g.Radius
	}

	var f float64
	switch {
	case t <= g.InnerStop:
		f = 0
	case t >= g.OuterStop:
		f = 1
	default:
		f = (t - g.InnerStop) / (g.OuterStop - g.InnerStop)
	}

	var c [4]float32
	for i := range c {
		c[i] = g.Start[i] + (g.End[i]-g.Start[i])*float32(f)
	}
	if g.Straight {
		c[0] *= c[3]
		c[1] *= c[3]
		c[2] *= c[3]
	}
	return c
}

// Shader is what a Canvas fills with: the gradient, the matrix mapping
// gradient space into the surface's local space, and the paint alpha.
type Shader struct {
	Gradient *Gradient
	Matrix   ebiten.GeoM
	Alpha    uint8
}

// At samples the shader at a surface-local point.
func (s Shader) At(x, y float64) [4]float32 {
	inv := s.Matrix
	if !inv.IsInvertible() {
		return [4]float32{}
	}
	inv.Invert()
	gx, gy := inv.Apply(x, y)
	c := s.Gradient.At(gx, gy)
	a := float32(s.Alpha) / 255
	return [4]float32{c[0] * a, c[1] * a, c[2] * a, c[3] * a}
}

// Canvas is the drawing context of a surface.
type Canvas interface {
	FillRect(r Rect, s Shader)
	FillRoundRect(r Rect, radius float64, s Shader)
}

// GradientInputs are everything the gradient depends on.
type GradientInputs struct {
	Color  color.RGBA
	Width  int
	Height int
	Invert float64
}

// PaintOp describes one paint of a surface.
type PaintOp struct {
	Region       Rect
	Background   bool
	Matrix       ebiten.GeoM
	Alpha        uint8
	CornerRadius float64
}

// GradientCache owns the gradient and rebuilds it only when its inputs move.
// Invert changes within epsilon are ignored so animation jitter does not
// reallocate it.
type GradientCache struct {
	policy     ColorPolicy
	epsilon    float64
	last       GradientInputs
	primed     bool
	gradient   *Gradient
	generation int
}

func NewGradientCache(policy ColorPolicy, epsilon float64) *GradientCache {
	if policy == nil {
		policy = StandardColorPolicy{}
	}
	return &GradientCache{policy: policy, epsilon: epsilon}
}

// Refresh rebuilds the gradient if in differs from the cached inputs and
// reports whether it did.
func (g *GradientCache) Refresh(in GradientInputs) bool {
	if g.primed &&
		in.Color == g.last.Color &&
		in.Width == g.last.Width &&
		in.Height == g.last.Height &&
		math.Abs(in.Invert-g.last.Invert) <= g.epsilon {
		return false
	}
	g.primed = true
	g.last = in

	if in.Width <= 0 || in.Height <= 0 {
		g.gradient = nil
		return false
	}

	d := describe(in)
	start, end := g.policy.Stops(in.Color)
	g.gradient = &Gradient{
		Descriptor: d,
		Start:      start,
		End:        end,
		Straight:   g.policy.Straight(),
	}
	g.generation++
	return true
}

// Paint refreshes the gradient and fills op.Region with it. Nothing is drawn
// until the surface has a positive size.
func (g *GradientCache) Paint(c Canvas, in GradientInputs, op PaintOp) {
	g.Refresh(in)
	if g.gradient == nil || op.Region.W <= 0 || op.Region.H <= 0 {
		return
	}

	s := Shader{Gradient: g.gradient, Matrix: op.Matrix, Alpha: op.Alpha}
	if op.Background {
		c.FillRect(op.Region, s)
		return
	}
	c.FillRoundRect(op.Region, op.CornerRadius, s)
}

// Gradient returns the cached gradient, or nil before the first sized
// refresh.
func (g *GradientCache) Gradient() *Gradient {
	return g.gradient
}

// Generation counts rebuilds.
func (g *GradientCache) Generation() int {
	return g.generation
}

func (g *GradientCache) Policy() ColorPolicy {
	return g.policy
}

func describe(in GradientInputs) Descriptor {
	w, h := float64(in.Width), float64(in.Height)
	c := in.Color
	return Descriptor{
		CenterX:    w * 0.5,
		CenterY:    h * 0.4,
		Radius:     math.Min(w, h) / 2 * 1.35 * (2 - in.Invert),
		InnerStop:  lerp(0.9, 0.22, in.Invert),
		OuterStop:  1,
		ColorStart: color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0},
		ColorEnd:   color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255},
	}
}

// Transform is the independent placement of the foreground surface
// relative to the background: a translation plus a scale about a pivot in
// foreground-local pixels.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	PivotX, PivotY float64
}

// IdentityTransform places the foreground exactly over the background.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Visible is false for a collapsed scale.
func (t Transform) Visible() bool {
	return t.ScaleX != 0 && t.ScaleY != 0
}

// GeoM maps foreground-local points to background points.
func (t Transform) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-t.PivotX, -t.PivotY)
	m.Scale(t.ScaleX, t.ScaleY)
	m.Translate(t.PivotX+t.X, t.PivotY+t.Y)
	return m
}

// GradientMatrix maps background points into foreground-local space, the
// inverse of GeoM. Painting the foreground through it keeps the gradient
// continuous with the background however the foreground is panned or
// scaled.
func (t Transform) GradientMatrix() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-t.X, -t.Y)
	m.Translate(-t.PivotX, -t.PivotY)
	m.Scale(1/t.ScaleX, 1/t.ScaleY)
	m.Translate(t.PivotX, t.PivotY)
	return m
}

// Bounds is the background-space box covered by a w×h foreground.
func (t Transform) Bounds(w, h float64) Rect {
	m := t.GeoM()
	x0, y0 := m.Apply(0, 0)
	x1, y1 := m.Apply(w, h)
	return Rect{
		X: math.Min(x0, x1),
		Y: math.Min(y0, y1),
		W: math.Abs(x1 - x0),
		H: math.Abs(y1 - y0),
	}
}
