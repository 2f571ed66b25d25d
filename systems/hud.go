package systems

import (
	"fmt"

	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
	"github.com/automoto/camflash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudLampSize = 10

// DrawHUD renders the overlay status in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	f := getFlash(ecs)
	if f == nil {
		return
	}
	face := fonts.HUD.Get()

	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range hudLines(f, getSettings(ecs)) {
		text.Draw(screen, line, face, int(x)+hudLampSize+6, int(y), cfg.HUD.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
		y += cfg.HUD.LineHeight
	}

	// Illumination lamp, lit while the overlay holds the screen brightness
	lamp := cfg.BlackOverlay
	if f.Illumination != flash.IlluminationAuto {
		lamp = cfg.HUD.IlluminationOn
	}
	vector.FillRect(screen, float32(x), float32(cfg.HUD.Margin+2), hudLampSize, hudLampSize, lamp, false)
}

func hudLines(f *components.FlashData, s *components.SettingsData) []string {
	v := f.Views
	illumination := "auto"
	if f.Illumination != flash.IlluminationAuto {
		illumination = fmt.Sprintf("%.2f", f.Illumination)
	}
	saved := ""
	if s != nil && s.Unsaved {
		saved = " (unsaved)"
	}

	return []string{
		fmt.Sprintf("%s  invert %.2f  alpha %d", v.State(), v.Invert(), v.Alpha()),
		fmt.Sprintf("warmth %.2f  intensity %.2f  %s%s", v.Warmth(), v.Intensity(), cfg.Flash.Preset(v.ColorIndex()).Name, saved),
		fmt.Sprintf("illumination %s  shots %d", illumination, f.Shots),
		fmt.Sprintf("%s color  gradient #%d", v.Gradient().Policy().Name(), v.Gradient().Generation()),
	}
}
