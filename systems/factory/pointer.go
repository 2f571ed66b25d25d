package factory

import (
	"github.com/automoto/camflash/archetypes"
	"github.com/automoto/camflash/components"
	"github.com/automoto/camflash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePointer creates the mouse probe used for hit-testing.
func CreatePointer(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	entry := archetypes.Pointer.Spawn(ecs)

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	probe.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	space.Add(probe)

	components.Pointer.SetValue(entry, components.PointerData{Probe: probe})
	return entry
}
