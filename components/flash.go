package components

import (
	"github.com/automoto/camflash/flash"
	"github.com/yohamta/donburi"
)

// FlashData is the singleton holding the overlay and the clock it runs on.
type FlashData struct {
	Loop  *flash.Loop
	Views *flash.Views

	// Illumination is the last level requested by the overlay, or
	// flash.IlluminationAuto once it has been handed back.
	Illumination float64
	Shots        int
}

var Flash = donburi.NewComponentType[FlashData]()
