package systems

import (
	"image/color"

	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit area in the space when hitboxes are enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	var hover *donburi.Entry
	if e, ok := components.Pointer.First(ecs.World); ok {
		hover = components.Pointer.Get(e).Hover
	}

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvShutter) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvTint) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvPointer) {
			c = color.RGBA{255, 255, 0, 255} // Yellow
		}
		width := float32(1)
		if hover != nil && obj.Data == hover {
			width = 2
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), width, c, false)
	}
}
