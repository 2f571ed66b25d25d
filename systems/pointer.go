package systems

import (
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pointerEvent is one frame of mouse input.
type pointerEvent struct {
	X, Y    float64
	Pressed bool    // left button went down this frame
	Held    bool    // left button is down
	Wheel   float64 // vertical wheel notches
}

// UpdatePointer moves the probe to the cursor, drags and scales the
// foreground inset, and fires the flash from the shutter widget.
func UpdatePointer(ecs *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	applyPointer(ecs, pointerEvent{
		X:       float64(x),
		Y:       float64(y),
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Held:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   wheel,
	})
}

func applyPointer(ecs *ecs.ECS, ev pointerEvent) {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return
	}
	p := components.Pointer.Get(entry)
	p.X, p.Y = ev.X, ev.Y
	p.Probe.X, p.Probe.Y = ev.X, ev.Y
	p.Probe.Update()

	if p.Dragging {
		if !ev.Held {
			p.Dragging = false
		} else if fg, ok := tags.Foreground.First(ecs.World); ok {
			moveForeground(ecs, fg, ev.X-p.GrabX, ev.Y-p.GrabY)
		}
	}

	p.Hover = hitTest(p.Probe, ev.X, ev.Y)
	if p.Hover == nil {
		return
	}

	if p.Hover.HasComponent(tags.Foreground) {
		if ev.Wheel != 0 {
			scaleForeground(ecs, p.Hover, ev.Wheel*cfg.Foreground.ScaleStep)
		}
		if ev.Pressed {
			t := components.Surface.Get(p.Hover).Transform
			p.Dragging = true
			p.GrabX = ev.X - t.X
			p.GrabY = ev.Y - t.Y
		}
		return
	}

	if ev.Pressed && p.Hover.HasComponent(components.Tint) {
		activateTint(ecs, p.Hover)
	}
}

// hitTest returns the entity under (x, y), tint widgets first.
func hitTest(probe *resolv.Object, x, y float64) *donburi.Entry {
	check := probe.Check(0, 0, tags.ResolvTint, tags.ResolvForeground)
	if check == nil {
		return nil
	}
	for _, tag := range []string{tags.ResolvTint, tags.ResolvForeground} {
		for _, obj := range check.ObjectsByTags(tag) {
			if x < obj.X || y < obj.Y || x >= obj.X+obj.W || y >= obj.Y+obj.H {
				continue
			}
			if e, ok := obj.Data.(*donburi.Entry); ok {
				return e
			}
		}
	}
	return nil
}

func activateTint(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(tags.Shutter) {
		TriggerFlash(ecs)
		return
	}
	tint := components.Tint.Get(entry)
	if tint.Name == "flash-mode" {
		CyclePreset(ecs)
		return
	}
	ShowMessage(ecs, tint.Name)
}

func moveForeground(ecs *ecs.ECS, entry *donburi.Entry, x, y float64) {
	s := components.Surface.Get(entry)
	s.Transform.X = x
	s.Transform.Y = y
	syncForeground(ecs, entry)
}

// scaleForeground changes the inset scale about its center, within the
// configured range.
func scaleForeground(ecs *ecs.ECS, entry *donburi.Entry, delta float64) {
	s := components.Surface.Get(entry)
	scale := s.Transform.ScaleX + delta
	scale = max(cfg.Foreground.MinScale, min(cfg.Foreground.MaxScale, scale))
	s.Transform.ScaleX = scale
	s.Transform.ScaleY = scale
	syncForeground(ecs, entry)
}

// syncForeground pushes the inset placement to the overlay and moves its
// hit area to match.
func syncForeground(ecs *ecs.ECS, entry *donburi.Entry) {
	s := components.Surface.Get(entry)
	if f := getFlash(ecs); f != nil {
		f.Views.SetForeground(s.Width, s.Height, s.Transform)
	}

	b := s.Transform.Bounds(float64(s.Width), float64(s.Height))
	obj := components.Object.Get(entry)
	obj.X, obj.Y = b.X, b.Y
	if obj.W != b.W || obj.H != b.H {
		obj.W, obj.H = b.W, b.H
		obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	}
	obj.Update()
}
