package factory

import (
	"fmt"

	"github.com/automoto/camflash/archetypes"
	"github.com/automoto/camflash/assets"
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
	"github.com/automoto/camflash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tintKinds = map[string]components.TintKind{
	"glyph":   components.TintGlyph,
	"shutter": components.TintShutter,
	"image":   components.TintImage,
}

// CreateTintable creates a widget tinted by the overlay and registers it
// with views. The spawn point is the widget's top-left corner.
func CreateTintable(ecs *ecs.ECS, views *flash.Views, space *resolv.Space, spawn assets.TintableSpawn) (*donburi.Entry, error) {
	kind, ok := tintKinds[spawn.Kind]
	if !ok {
		return nil, fmt.Errorf("tintable %q: unknown kind %q", spawn.Name, spawn.Kind)
	}
	size := spawn.Size
	if size <= 0 {
		size = cfg.Tintable.Size
	}

	var entry *donburi.Entry
	resolvTags := []string{tags.ResolvTint}
	if kind == components.TintShutter {
		entry = archetypes.Tintable.Spawn(ecs, tags.Shutter)
		resolvTags = append(resolvTags, tags.ResolvShutter)
	} else {
		entry = archetypes.Tintable.Spawn(ecs)
	}

	components.Tint.SetValue(entry, components.TintData{
		Kind:  kind,
		Name:  spawn.Name,
		X:     spawn.X,
		Y:     spawn.Y,
		Size:  size,
		Dirty: true,
	})

	obj := resolv.NewObject(spawn.X, spawn.Y, size, size, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry
	space.Add(obj)
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	views.Add(tintRef{entry: entry})
	return entry, nil
}
