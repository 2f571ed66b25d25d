package archetypes

import (
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Flash = newArchetype(
		components.Flash,
		components.Capture,
		components.Settings,
	)
	Background = newArchetype(
		tags.Background,
		components.Surface,
	)
	Foreground = newArchetype(
		tags.Foreground,
		components.Surface,
		components.Object,
	)
	Tintable = newArchetype(
		tags.Tintable,
		components.Tint,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
	Viewfinder = newArchetype(
		components.Viewfinder,
	)
	Panel = newArchetype(
		components.Panel,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components[:len(a.components):len(a.components)], cs...)...,
	))
	return e
}
