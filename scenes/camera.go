package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/camflash/archetypes"
	"github.com/automoto/camflash/assets"
	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/systems"
	"github.com/automoto/camflash/systems/factory"
	"github.com/automoto/camflash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the resolv cell size, one layout tile
const spaceCell = 20

// CameraScene is the camera screen: the viewfinder under the flash overlay,
// the tinted widgets and the control panel.
type CameraScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedFlash
	once  sync.Once
}

// NewCameraScene creates the camera screen. saved, when non-nil, is applied
// to the overlay once the scene is built.
func NewCameraScene(saved *systems.SavedFlash) *CameraScene {
	return &CameraScene{saved: saved}
}

func (cs *CameraScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CameraScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CameraScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdatePanel)
	ecs.AddSystem(systems.UpdateFlash)
	ecs.AddSystem(systems.UpdateViewfinder)
	ecs.AddSystem(systems.UpdateMessage)

	ecs.AddRenderer(cfg.Default, systems.DrawViewfinder)
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawForeground)
	ecs.AddRenderer(cfg.Default, systems.DrawTintables)
	// Capture before the HUD so the picture only holds the camera screen
	ecs.AddRenderer(cfg.Default, systems.DrawCapture)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawPanel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	layout := assets.NewLayoutLoader().MustLoadLayout(assets.DefaultLayout)
	spaceEntry := factory.CreateSpace(cs.ecs, layout.Width, layout.Height, spaceCell, spaceCell)
	space := components.Space.Get(spaceEntry)

	flashEntry := factory.CreateFlash(cs.ecs, cfg.Flash)
	views := components.Flash.Get(flashEntry).Views

	factory.CreateViewfinder(cs.ecs, layout)
	factory.CreateSurfaces(cs.ecs, views, space, cfg.C.Width, cfg.C.Height, layout.Foreground)
	for _, spawn := range layout.Tintables {
		if _, err := factory.CreateTintable(cs.ecs, views, space, spawn); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	factory.CreatePointer(cs.ecs, space)

	panel := ui.NewFlashPanel(cs.ecs)
	panelEntry := archetypes.Panel.Spawn(cs.ecs)
	components.Panel.SetValue(panelEntry, components.PanelData{
		UI:      panel.UI,
		Refresh: panel.UpdateUI,
	})

	systems.ApplySavedFlash(cs.ecs, cs.saved)
}
