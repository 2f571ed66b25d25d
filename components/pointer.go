package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PointerData tracks the mouse against the hit areas in the space.
type PointerData struct {
	X, Y     float64
	Probe    *resolv.Object // 1x1 object moved to the cursor every frame
	Hover    *donburi.Entry
	Dragging bool
	GrabX    float64 // cursor offset from the foreground origin while dragging
	GrabY    float64
}

var Pointer = donburi.NewComponentType[PointerData]()
