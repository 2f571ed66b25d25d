package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/camflash/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const flashItem = "flash"

// SavedFlash represents the flash preferences stored on disk
type SavedFlash struct {
	Warmth     float64 `json:"warmth"`
	Intensity  float64 `json:"intensity"`
	ColorIndex int     `json:"colorIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "camflash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadFlashSettings loads the saved preferences, or nil when there are none
func LoadFlashSettings() (*SavedFlash, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(flashItem)
	if err != nil {
		log.Printf("Warning: Could not load flash settings: %v", err)
		return nil, nil
	}
	return decodeFlash(data)
}

// SaveFlashSettings saves the preferences to disk
func SaveFlashSettings(s *SavedFlash) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize flash settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(flashItem, data); err != nil {
		log.Printf("Warning: Could not save flash settings: %v", err)
		return err
	}
	return nil
}

func decodeFlash(data []byte) (*SavedFlash, error) {
	if len(data) == 0 {
		// Nothing saved yet, use defaults
		return nil, nil
	}
	var saved SavedFlash
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved flash settings: %v", err)
		return nil, err
	}
	return &saved, nil
}

// CurrentFlash snapshots the overlay's preferences
func CurrentFlash(ecs *ecs.ECS) *SavedFlash {
	f := getFlash(ecs)
	if f == nil {
		return nil
	}
	return &SavedFlash{
		Warmth:     f.Views.Warmth(),
		Intensity:  f.Views.Intensity(),
		ColorIndex: f.Views.ColorIndex(),
	}
}

// SaveCurrentFlash saves the overlay's preferences and clears the unsaved
// marker on success
func SaveCurrentFlash(ecs *ecs.ECS) {
	saved := CurrentFlash(ecs)
	if saved == nil {
		return
	}
	if err := SaveFlashSettings(saved); err != nil {
		ShowMessage(ecs, "Could not save settings")
		return
	}
	if s := getSettings(ecs); s != nil {
		s.Unsaved = false
	}
	ShowMessage(ecs, "Settings saved")
}

// ApplySavedFlash applies loaded preferences to the overlay
func ApplySavedFlash(ecs *ecs.ECS, saved *SavedFlash) {
	if saved == nil {
		return
	}
	f := getFlash(ecs)
	if f == nil {
		return
	}

	index := saved.ColorIndex
	if index < 0 || index >= len(cfg.Flash.Presets) {
		index = 0
	}
	f.Views.SetColorIndex(index)
	f.Views.SetWarmth(saved.Warmth)
	f.Views.SetIntensity(saved.Intensity)

	if s := getSettings(ecs); s != nil {
		s.Restored = true
		s.Unsaved = false
	}
}
