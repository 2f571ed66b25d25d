package systems

import (
	"github.com/automoto/camflash/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePanel runs the control panel's widgets and syncs its labels.
func UpdatePanel(ecs *ecs.ECS) {
	entry, ok := components.Panel.First(ecs.World)
	if !ok {
		return
	}
	p := components.Panel.Get(entry)
	if p.UI == nil {
		return
	}
	p.UI.Update()
	if p.Refresh != nil {
		p.Refresh()
	}
}

func DrawPanel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Panel.First(ecs.World)
	if !ok {
		return
	}
	p := components.Panel.Get(entry)
	if p.UI != nil {
		p.UI.Draw(screen)
	}
}
