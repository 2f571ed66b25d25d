package systems

import (
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const messagePadding = 8

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// ShowMessage puts text in the status box for a while, replacing whatever
// was shown.
func ShowMessage(ecs *ecs.ECS, text string) {
	state := getOrCreateMessageState(ecs)
	state.Text = text
	state.DisplayTimer = cfg.HUD.MessageFrames
}

// UpdateMessage counts the status box down
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	if messageFontFace == nil {
		messageFontFace = fonts.Title.Get()
	}

	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	boxWidth := float32(textWidth) + messagePadding*2
	boxHeight := float32(textHeight) + messagePadding*2

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(cfg.HUD.Margin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.HUD.MessageBox, false)

	textX := int(boxX + messagePadding)
	textY := int(boxY + messagePadding + float32(textHeight))
	text.Draw(screen, state.Text, messageFontFace, textX, textY, cfg.HUD.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
