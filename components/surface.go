package components

import (
	"github.com/automoto/camflash/flash"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SurfaceKind int

const (
	SurfaceBackground SurfaceKind = iota
	SurfaceForeground
)

// SurfaceData is an offscreen layer the gradient is painted into. It is
// repainted only after an invalidation.
type SurfaceData struct {
	Kind      SurfaceKind
	Image     *ebiten.Image
	Width     int
	Height    int
	Transform flash.Transform // placement over the background, foreground only
	Dirty     bool
	Redraws   int
}

var Surface = donburi.NewComponentType[SurfaceData]()
