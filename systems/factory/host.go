package factory

import (
	"log"

	"github.com/automoto/camflash/components"
	"github.com/automoto/camflash/flash"
	"github.com/yohamta/donburi"
)

// screenHost stands in for the device brightness control. It records the
// requested level on the flash singleton so the HUD can show it.
type screenHost struct {
	entry *donburi.Entry
}

func (h screenHost) SetIllumination(level float64) {
	f := components.Flash.Get(h.entry)
	f.Illumination = level
	if level == flash.IlluminationAuto {
		log.Printf("[flash] illumination handed back")
		return
	}
	log.Printf("[flash] illumination %.2f", level)
}

// surfaceRef marks a surface entity for repaint.
type surfaceRef struct {
	entry *donburi.Entry
}

func (s surfaceRef) Invalidate() {
	components.Surface.Get(s.entry).Dirty = true
}

// tintRef connects a tint widget entity to the overlay's broadcaster.
type tintRef struct {
	entry *donburi.Entry
}

func (t tintRef) SetInvert(v float64) {
	components.Tint.Get(t.entry).Invert = v
}

func (t tintRef) Invalidate() {
	components.Tint.Get(t.entry).Dirty = true
}
