package factory

import (
	"github.com/automoto/camflash/archetypes"
	"github.com/automoto/camflash/assets"
	"github.com/automoto/camflash/components"
	"github.com/automoto/camflash/flash"
	"github.com/automoto/camflash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSurfaces creates the full-screen background surface and the
// foreground preview inset, and attaches both to the overlay.
func CreateSurfaces(ecs *ecs.ECS, views *flash.Views, space *resolv.Space, width, height int, spawn assets.ForegroundSpawn) (background, foreground *donburi.Entry) {
	background = archetypes.Background.Spawn(ecs)
	components.Surface.SetValue(background, components.SurfaceData{
		Kind:   components.SurfaceBackground,
		Width:  width,
		Height: height,
		Dirty:  true,
	})

	foreground = archetypes.Foreground.Spawn(ecs)
	w, h := int(spawn.Width), int(spawn.Height)
	t := ForegroundTransform(spawn)
	components.Surface.SetValue(foreground, components.SurfaceData{
		Kind:      components.SurfaceForeground,
		Width:     w,
		Height:    h,
		Transform: t,
		Dirty:     true,
	})

	b := t.Bounds(spawn.Width, spawn.Height)
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvForeground)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = foreground
	space.Add(obj)
	components.Object.Set(foreground, &components.ObjectData{Object: obj})

	views.AttachSurfaces(surfaceRef{entry: background}, surfaceRef{entry: foreground})
	views.MeasureBackground(width, height)
	views.SetForeground(w, h, t)

	return background, foreground
}

// ForegroundTransform places the inset with its top-left corner at the
// spawn point, scaled about its center.
func ForegroundTransform(spawn assets.ForegroundSpawn) flash.Transform {
	s := spawn.Scale
	if s == 0 {
		s = 1
	}
	px, py := spawn.Width/2, spawn.Height/2
	return flash.Transform{
		X:      spawn.X - px*(1-s),
		Y:      spawn.Y - py*(1-s),
		ScaleX: s,
		ScaleY: s,
		PivotX: px,
		PivotY: py,
	}
}
