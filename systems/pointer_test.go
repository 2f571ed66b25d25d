package systems

import (
	"testing"

	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
	"github.com/yohamta/donburi"
)

func (s *scene) pointer() *components.PointerData {
	entry, _ := components.Pointer.First(s.ecs.World)
	return components.Pointer.Get(entry)
}

func TestPointer_HitTest(t *testing.T) {
	s := newScene(t)

	tests := []struct {
		name string
		x, y float64
		want *donburi.Entry
	}{
		{"shutter", 120, 420, s.shutter},
		{"glyph", 239, 400, s.mode},
		{"between widgets", 150, 420, nil},
		{"foreground", 700, 90, s.foreground},
		{"foreground right edge is outside", 800, 90, nil},
		{"empty", 10, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyPointer(s.ecs, pointerEvent{X: tt.x, Y: tt.y})
			if got := s.pointer().Hover; got != tt.want {
				t.Errorf("hover at (%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPointer_DragForeground(t *testing.T) {
	s := newScene(t)
	p := s.pointer()

	applyPointer(s.ecs, pointerEvent{X: 650, Y: 60, Pressed: true, Held: true})
	if !p.Dragging || p.GrabX != 50 || p.GrabY != 20 {
		t.Fatalf("drag not started: %+v", p)
	}

	applyPointer(s.ecs, pointerEvent{X: 450, Y: 160, Held: true})
	fg := components.Surface.Get(s.foreground)
	if fg.Transform.X != 400 || fg.Transform.Y != 140 {
		t.Errorf("transform = %+v, want origin (400,140)", fg.Transform)
	}
	obj := components.Object.Get(s.foreground)
	if obj.X != 400 || obj.Y != 140 {
		t.Errorf("hit area at (%v,%v), want (400,140)", obj.X, obj.Y)
	}
	if !fg.Dirty {
		t.Error("moving the foreground should repaint it")
	}

	applyPointer(s.ecs, pointerEvent{X: 450, Y: 160})
	if p.Dragging {
		t.Error("releasing the button should end the drag")
	}
	applyPointer(s.ecs, pointerEvent{X: 900, Y: 500, Held: true})
	if fg.Transform.X != 400 {
		t.Error("foreground moved after the drag ended")
	}
}

func TestPointer_WheelScalesWithinRange(t *testing.T) {
	s := newScene(t)
	fg := components.Surface.Get(s.foreground)

	applyPointer(s.ecs, pointerEvent{X: 700, Y: 90, Wheel: -2})
	want := 1 - 2*cfg.Foreground.ScaleStep
	if fg.Transform.ScaleX != want || fg.Transform.ScaleY != want {
		t.Errorf("scale = %v, want %v", fg.Transform.ScaleX, want)
	}
	obj := components.Object.Get(s.foreground)
	if d := obj.W - 200*want; d > 1e-9 || d < -1e-9 {
		t.Errorf("hit area width = %v, want %v", obj.W, 200*want)
	}

	applyPointer(s.ecs, pointerEvent{X: 700, Y: 90, Wheel: 500})
	if fg.Transform.ScaleX != cfg.Foreground.MaxScale {
		t.Errorf("scale = %v, want clamped to %v", fg.Transform.ScaleX, cfg.Foreground.MaxScale)
	}
}

func TestPointer_ClickTints(t *testing.T) {
	s := newScene(t)

	applyPointer(s.ecs, pointerEvent{X: 220, Y: 420, Pressed: true, Held: true})
	if got := s.data().Views.ColorIndex(); got != 1 {
		t.Errorf("flash-mode click: color index = %d, want 1", got)
	}

	applyPointer(s.ecs, pointerEvent{X: 120, Y: 420, Pressed: true, Held: true})
	if st := s.data().Views.State(); st != flash.StateRampingUp {
		t.Errorf("shutter click: state = %s, want ramping-up", st)
	}
}
