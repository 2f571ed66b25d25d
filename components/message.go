package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the status line under the HUD
type MessageStateData struct {
	Text         string
	DisplayTimer int // Frames remaining to display the current text
}

var MessageState = donburi.NewComponentType[MessageStateData]()
