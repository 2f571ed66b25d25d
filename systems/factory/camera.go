package factory

import (
	"github.com/automoto/camflash/archetypes"
	"github.com/automoto/camflash/assets"
	"github.com/automoto/camflash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewfinder creates the fake camera feed, its subject orbiting the
// layout's subject point.
func CreateViewfinder(ecs *ecs.ECS, layout assets.Layout) *donburi.Entry {
	entry := archetypes.Viewfinder.Spawn(ecs)
	components.Viewfinder.SetValue(entry, components.ViewfinderData{
		Subject: layout.Subject,
		Anchor:  layout.Subject,
		Orbit:   layout.Orbit,
	})
	return entry
}
