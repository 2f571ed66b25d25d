package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ViewfinderData is the simulated camera feed shown under the overlay.
type ViewfinderData struct {
	Subject math.Vec2 // current subject position
	Anchor  math.Vec2 // center of the subject's orbit
	Angle   float64   // orbit phase in radians
	Orbit   float64   // orbit radius
}

var Viewfinder = donburi.NewComponentType[ViewfinderData]()
