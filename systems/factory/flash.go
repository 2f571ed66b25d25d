package factory

import (
	"github.com/automoto/camflash/archetypes"
	"github.com/automoto/camflash/components"
	"github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFlash creates the overlay singleton. Surfaces and tint widgets
// attach to its Views as they are created.
func CreateFlash(ecs *ecs.ECS, cfg config.FlashConfig) *donburi.Entry {
	entry := archetypes.Flash.Spawn(ecs)

	loop := flash.NewLoop()
	components.Flash.SetValue(entry, components.FlashData{
		Loop:         loop,
		Illumination: flash.IlluminationAuto,
	})
	components.Flash.Get(entry).Views = flash.New(loop, screenHost{entry: entry}, cfg)

	return entry
}
