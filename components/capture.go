package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CaptureData holds a capture requested by the flash sequence. The snapshot
// is taken on the next drawn frame, while the overlay is fully up, and the
// sequence is finished on the update after that.
type CaptureData struct {
	Pending   bool
	Taken     bool
	Finish    func(onFinished func())
	Thumbnail *ebiten.Image
}

var Capture = donburi.NewComponentType[CaptureData]()
