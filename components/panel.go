package components

import (
	"github.com/ebitenui/ebitenui"
	"github.com/yohamta/donburi"
)

// PanelData is the on-screen control panel.
type PanelData struct {
	UI      *ebitenui.UI
	Refresh func() // syncs labels with the overlay state
}

var Panel = donburi.NewComponentType[PanelData]()
