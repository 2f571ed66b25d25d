package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type TintKind int

const (
	TintGlyph   TintKind = iota // outlined icon drawn in the blended color
	TintShutter                 // shutter ring, clicking it fires the flash
	TintImage                   // bitmap multiplied by the blended color
)

// TintData is a widget whose color follows the overlay's invert value.
type TintData struct {
	Kind   TintKind
	Name   string
	X, Y   float64
	Size   float64
	Invert float64
	Dirty  bool
	Icon   *ebiten.Image // TintImage only

	Rendered *ebiten.Image // cached widget, redrawn when Dirty
}

var Tint = donburi.NewComponentType[TintData]()
