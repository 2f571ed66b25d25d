package tags

import "github.com/yohamta/donburi"

var (
	Background = donburi.NewTag().SetName("Background")
	Foreground = donburi.NewTag().SetName("Foreground")
	Tintable   = donburi.NewTag().SetName("Tintable")
	Shutter    = donburi.NewTag().SetName("Shutter")
)

// Resolv tags for pointer hit-testing
const (
	ResolvPointer    = "pointer"
	ResolvForeground = "foreground"
	ResolvTint       = "tint"
	ResolvShutter    = "shutter"
)
