package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical camera action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFlash
	ActionPreview
	ActionFlashIn
	ActionFlashOut
	ActionWarmer
	ActionCooler
	ActionBrighter
	ActionDimmer
	ActionPresetWhite
	ActionPresetWarm
	ActionPresetCold
	ActionSave
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFlash: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPreview: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Held: left shoulder
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionFlashIn: {
				Keys: []ebiten.Key{ebiten.KeyI},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionFlashOut: {
				Keys: []ebiten.Key{ebiten.KeyO},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionWarmer: {
				Keys: []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionCooler: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionBrighter: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionDimmer: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionPresetWhite: {
				Keys: []ebiten.Key{ebiten.Key1},
			},
			ActionPresetWarm: {
				Keys: []ebiten.Key{ebiten.Key2},
			},
			ActionPresetCold: {
				Keys: []ebiten.Key{ebiten.Key3},
			},
			ActionSave: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
