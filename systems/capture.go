package systems

import (
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var thumbnailDrawOp = &ebiten.DrawImageOptions{}

// DrawCapture takes the pending picture from what has been drawn so far and
// shows the latest one in the bottom-right corner.
func DrawCapture(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Capture.First(ecs.World)
	if !ok {
		return
	}
	c := components.Capture.Get(entry)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := cfg.HUD.ThumbnailScale
	tw, th := int(float64(sw)*scale), int(float64(sh)*scale)
	if tw <= 0 || th <= 0 {
		return
	}

	if c.Pending && !c.Taken {
		if c.Thumbnail == nil {
			c.Thumbnail = ebiten.NewImage(tw, th)
		}
		c.Thumbnail.Clear()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.Filter = ebiten.FilterLinear
		c.Thumbnail.DrawImage(screen, op)
		c.Taken = true
	}

	if c.Thumbnail == nil {
		return
	}
	x := float64(sw) - float64(tw) - cfg.HUD.Margin
	y := float64(sh) - float64(th) - cfg.HUD.Margin
	thumbnailDrawOp.GeoM.Reset()
	thumbnailDrawOp.GeoM.Translate(x, y)
	screen.DrawImage(c.Thumbnail, thumbnailDrawOp)
	vector.StrokeRect(screen, float32(x), float32(y), float32(tw), float32(th), 2, cfg.HUD.ThumbnailFrame, false)
}
