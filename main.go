package main

import (
	"flag"
	"log"

	"github.com/automoto/camflash/config"
	"github.com/automoto/camflash/fonts"
	"github.com/automoto/camflash/scenes"
	"github.com/automoto/camflash/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedFlash) *Game {
	return &Game{scene: scenes.NewCameraScene(saved)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the flash defaults")
	standardColor := flag.Bool("standard-color", false, "use 8-bit premultiplied gradient stops")
	hitboxes := flag.Bool("hitboxes", false, "outline pointer hit areas")
	logFrames := flag.Bool("log-frames", false, "log every overlay animation tick")
	noRestore := flag.Bool("no-restore", false, "ignore saved flash settings")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *standardColor {
		config.Flash.ExtendedColor = false
	}
	if *hitboxes {
		config.Debug.ShowHitboxes = true
	}
	if *logFrames {
		config.Debug.LogFrames = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	var saved *systems.SavedFlash
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if !*noRestore {
		if s, err := systems.LoadFlashSettings(); err == nil {
			saved = s
		}
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
