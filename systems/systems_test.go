package systems

import (
	"testing"
	"time"

	"github.com/automoto/camflash/assets"
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/systems/factory"
	"github.com/automoto/camflash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = time.Second / 60

var testForeground = assets.ForegroundSpawn{X: 600, Y: 40, Width: 200, Height: 100, Scale: 1}

type scene struct {
	ecs        *ecs.ECS
	flash      *donburi.Entry
	background *donburi.Entry
	foreground *donburi.Entry
	shutter    *donburi.Entry
	mode       *donburi.Entry
}

// newScene builds the camera screen without any images or input.
func newScene(t *testing.T) *scene {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(factory.CreateSpace(e, 960, 540, 20, 20))

	s := &scene{ecs: e}
	s.flash = factory.CreateFlash(e, cfg.Flash)
	views := components.Flash.Get(s.flash).Views
	s.background, s.foreground = factory.CreateSurfaces(e, views, space, 960, 540, testForeground)

	var err error
	s.shutter, err = factory.CreateTintable(e, views, space, assets.TintableSpawn{Name: "shutter", Kind: "shutter", X: 100, Y: 400, Size: 40})
	if err != nil {
		t.Fatal(err)
	}
	s.mode, err = factory.CreateTintable(e, views, space, assets.TintableSpawn{Name: "flash-mode", Kind: "glyph", X: 200, Y: 400, Size: 40})
	if err != nil {
		t.Fatal(err)
	}
	factory.CreatePointer(e, space)
	return s
}

func (s *scene) data() *components.FlashData {
	return components.Flash.Get(s.flash)
}

// run advances the overlay clock by d in frame steps.
func (s *scene) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.data().Loop.Advance(frame)
	}
}

func (s *scene) message() string {
	return getOrCreateMessageState(s.ecs).Text
}

func TestCreateTintable_UnknownKind(t *testing.T) {
	s := newScene(t)
	space := components.Space.Get(mustFirst(t, s.ecs, components.Space))
	_, err := factory.CreateTintable(s.ecs, s.data().Views, space, assets.TintableSpawn{Name: "x", Kind: "sprite"})
	if err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func mustFirst[T any](t *testing.T, e *ecs.ECS, c *donburi.ComponentType[T]) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	if !ok {
		t.Fatal("component not found")
	}
	return entry
}

func TestScene_Wiring(t *testing.T) {
	s := newScene(t)
	f := s.data()

	if f.Illumination != -1 {
		t.Errorf("initial illumination = %v, want auto", f.Illumination)
	}
	if !s.shutter.HasComponent(tags.Shutter) || s.mode.HasComponent(tags.Shutter) {
		t.Error("only the shutter should carry the shutter tag")
	}
	fg := components.Surface.Get(s.foreground)
	if fg.Width != 200 || fg.Height != 100 || !fg.Dirty {
		t.Errorf("foreground surface = %+v", fg)
	}
	obj := components.Object.Get(s.foreground)
	if obj.X != 600 || obj.Y != 40 || obj.W != 200 || obj.H != 100 {
		t.Errorf("foreground hit area = (%v,%v %vx%v)", obj.X, obj.Y, obj.W, obj.H)
	}
}

func TestForegroundTransform_KeepsTopLeft(t *testing.T) {
	spawn := assets.ForegroundSpawn{X: 680, Y: 48, Width: 288, Height: 384, Scale: 0.75}
	b := factory.ForegroundTransform(spawn).Bounds(spawn.Width, spawn.Height)
	if b.X != 680 || b.Y != 48 || b.W != 216 || b.H != 288 {
		t.Errorf("bounds = %+v", b)
	}
}
