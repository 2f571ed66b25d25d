package systems

import (
	"image/color"
	"math"

	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
	"github.com/automoto/camflash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	surfaceDrawOp = &ebiten.DrawImageOptions{}
	tintDrawOp    = &ebiten.DrawImageOptions{}
)

// UpdateViewfinder moves the fake subject along its orbit.
func UpdateViewfinder(ecs *ecs.ECS) {
	entry, ok := components.Viewfinder.First(ecs.World)
	if !ok {
		return
	}
	v := components.Viewfinder.Get(entry)
	v.Angle = math.Mod(v.Angle+cfg.Viewfinder.DriftSpeed/float64(ebiten.TPS()), 2*math.Pi)
	v.Subject.X = v.Anchor.X + math.Cos(v.Angle)*v.Orbit
	v.Subject.Y = v.Anchor.Y + math.Sin(v.Angle)*v.Orbit*0.5
}

// DrawViewfinder draws the simulated camera feed under the overlay.
func DrawViewfinder(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Viewfinder.BackgroundColor)

	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	step := float32(cfg.Viewfinder.GridSpacing)
	if step > 0 {
		for x := step; x < w; x += step {
			vector.StrokeLine(screen, x, 0, x, h, 1, cfg.Viewfinder.GridColor, false)
		}
		for y := step; y < h; y += step {
			vector.StrokeLine(screen, 0, y, w, y, 1, cfg.Viewfinder.GridColor, false)
		}
	}

	entry, ok := components.Viewfinder.First(ecs.World)
	if !ok {
		return
	}
	v := components.Viewfinder.Get(entry)
	vector.FillCircle(screen, float32(v.Subject.X), float32(v.Subject.Y),
		float32(cfg.Viewfinder.SubjectRadius), cfg.Viewfinder.SubjectColor, true)
}

// DrawBackground paints the full-screen gradient layer.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Background.First(ecs.World)
	if !ok {
		return
	}
	f := getFlash(ecs)
	if f == nil {
		return
	}
	s := components.Surface.Get(entry)
	if repaintSurface(s) {
		f.Views.PaintBackground(shaderCanvas{dst: s.Image})
	}
	screen.DrawImage(s.Image, surfaceDrawOp)
}

// DrawForeground draws the preview inset with its own gradient layer,
// placed by the inset transform.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Foreground.First(ecs.World)
	if !ok {
		return
	}
	f := getFlash(ecs)
	if f == nil {
		return
	}
	s := components.Surface.Get(entry)
	if !s.Transform.Visible() {
		return
	}

	b := s.Transform.Bounds(float64(s.Width), float64(s.Height))
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), cfg.BlackOverlay, false)

	if repaintSurface(s) {
		f.Views.PaintForeground(shaderCanvas{dst: s.Image})
	}
	op := &ebiten.DrawImageOptions{GeoM: s.Transform.GeoM()}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.Image, op)

	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, cfg.Foreground.BorderColor, false)
}

// repaintSurface makes sure the surface image matches its size and clears it
// when a repaint is due. It reports whether the caller should paint.
func repaintSurface(s *components.SurfaceData) bool {
	if s.Image == nil || s.Image.Bounds().Dx() != s.Width || s.Image.Bounds().Dy() != s.Height {
		if s.Image != nil {
			s.Image.Deallocate()
		}
		s.Image = ebiten.NewImage(max(s.Width, 1), max(s.Height, 1))
		s.Dirty = true
	}
	if !s.Dirty {
		return false
	}
	s.Image.Clear()
	s.Dirty = false
	s.Redraws++
	return true
}

// DrawTintables draws every tint widget, re-rendering the ones whose invert
// changed.
func DrawTintables(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Tint.Each(ecs.World, func(entry *donburi.Entry) {
		tint := components.Tint.Get(entry)
		size := int(math.Ceil(tint.Size))
		if tint.Rendered == nil {
			tint.Rendered = ebiten.NewImage(size, size)
			tint.Dirty = true
		}
		if tint.Dirty {
			tint.Rendered.Clear()
			renderTint(tint)
			tint.Dirty = false
		}
		tintDrawOp.GeoM.Reset()
		tintDrawOp.GeoM.Translate(tint.X, tint.Y)
		screen.DrawImage(tint.Rendered, tintDrawOp)
	})
}

func renderTint(tint *components.TintData) {
	dst := tint.Rendered
	clr := tintColor(tint.Invert)
	size := float32(tint.Size)
	c := size / 2

	switch tint.Kind {
	case components.TintShutter:
		ring := float32(cfg.Tintable.ShutterRing)
		vector.StrokeCircle(dst, c, c, c-ring/2, ring, clr, true)
		vector.FillCircle(dst, c, c, c-ring*2, clr, true)
	case components.TintGlyph:
		vector.StrokeRect(dst, size*0.2, size*0.3, size*0.6, size*0.45, 2, clr, true)
		vector.FillCircle(dst, c, size*0.525, size*0.12, clr, true)
		vector.FillRect(dst, size*0.35, size*0.22, size*0.3, size*0.08, clr, false)
	case components.TintImage:
		if tint.Icon == nil {
			tint.Icon = newGalleryIcon(int(math.Ceil(tint.Size)))
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale = tintColorScale(tint.Invert)
		dst.DrawImage(tint.Icon, op)
	}
}

// tintColor is the widget color for an invert value: light when the flash
// is down, dark when it is fully up.
func tintColor(invert float64) color.RGBA {
	return flash.Blend(cfg.Tintable.Light, cfg.Tintable.Dark, invert)
}

// tintColorScale multiplies an image widget by the tint color.
func tintColorScale(invert float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(tintColor(invert))
	return cs
}

// newGalleryIcon draws a white thumbnail frame with a small landscape in it.
func newGalleryIcon(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.StrokeRect(img, 2, 2, s-4, s-4, 2, cfg.White, true)
	ridge := [][2]float32{{0.2, 0.75}, {0.42, 0.45}, {0.58, 0.62}, {0.68, 0.52}, {0.8, 0.75}}
	for i := 1; i < len(ridge); i++ {
		a, b := ridge[i-1], ridge[i]
		vector.StrokeLine(img, s*a[0], s*a[1], s*b[0], s*b[1], 2, cfg.White, true)
	}
	vector.FillCircle(img, s*0.7, s*0.3, s*0.08, cfg.White, true)
	return img
}
