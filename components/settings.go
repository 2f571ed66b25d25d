package components

import "github.com/yohamta/donburi"

// SettingsData tracks the persisted flash preferences.
type SettingsData struct {
	Restored bool // a saved profile was applied at startup
	Unsaved  bool // warmth, intensity or preset changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
