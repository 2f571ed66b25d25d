package systems

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/camflash/components"
	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/flash"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlash advances the overlay clock by one tick and applies the
// camera actions pressed this frame.
func UpdateFlash(ecs *ecs.ECS) {
	entry, ok := components.Flash.First(ecs.World)
	if !ok {
		return
	}
	f := components.Flash.Get(entry)

	finishCapture(entry)

	input := getOrCreateInput(ecs)
	handleFlashInput(ecs, input)

	before := f.Views.Invert()
	f.Loop.Advance(time.Second / time.Duration(ebiten.TPS()))
	if cfg.Debug.LogFrames && f.Views.Invert() != before {
		log.Printf("[flash] %s invert %.3f alpha %d", f.Views.State(), f.Views.Invert(), f.Views.Alpha())
	}
}

func handleFlashInput(ecs *ecs.ECS, input *components.InputData) {
	if GetAction(input, cfg.ActionFlash).JustPressed {
		TriggerFlash(ecs)
	}

	preview := GetAction(input, cfg.ActionPreview)
	if preview.JustPressed {
		StartPreview(ecs)
	}
	if preview.JustReleased {
		EndPreview(ecs)
	}

	if GetAction(input, cfg.ActionFlashIn).JustPressed {
		FlashIn(ecs)
	}
	if GetAction(input, cfg.ActionFlashOut).JustPressed {
		FlashOut(ecs)
	}

	if GetAction(input, cfg.ActionWarmer).JustPressed {
		AdjustWarmth(ecs, cfg.Panel.WarmthStep)
	}
	if GetAction(input, cfg.ActionCooler).JustPressed {
		AdjustWarmth(ecs, -cfg.Panel.WarmthStep)
	}
	if GetAction(input, cfg.ActionBrighter).JustPressed {
		AdjustIntensity(ecs, cfg.Panel.IntensityStep)
	}
	if GetAction(input, cfg.ActionDimmer).JustPressed {
		AdjustIntensity(ecs, -cfg.Panel.IntensityStep)
	}

	presets := []cfg.ActionID{cfg.ActionPresetWhite, cfg.ActionPresetWarm, cfg.ActionPresetCold}
	for i, action := range presets {
		if GetAction(input, action).JustPressed {
			SelectPreset(ecs, i)
		}
	}

	if GetAction(input, cfg.ActionSave).JustPressed {
		SaveCurrentFlash(ecs)
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		if s := getSettings(ecs); s != nil && s.Unsaved {
			log.Printf("Warning: quitting with unsaved flash settings")
		}
		os.Exit(0)
	}
}

// TriggerFlash starts a capture sequence. The picture is taken by
// DrawCapture once the overlay is fully up.
func TriggerFlash(ecs *ecs.ECS) {
	entry, ok := components.Flash.First(ecs.World)
	if !ok {
		return
	}
	f := components.Flash.Get(entry)
	err := f.Views.Flash(func(finish func(onFinished func())) {
		c := components.Capture.Get(entry)
		c.Pending = true
		c.Taken = false
		c.Finish = finish
	})
	if errors.Is(err, flash.ErrFlashInProgress) {
		ShowMessage(ecs, "Flash busy")
	}
}

func StartPreview(ecs *ecs.ECS) {
	if f := getFlash(ecs); f != nil {
		f.Views.PreviewStart()
	}
}

func EndPreview(ecs *ecs.ECS) {
	if f := getFlash(ecs); f != nil {
		f.Views.PreviewEnd()
	}
}

func FlashIn(ecs *ecs.ECS) {
	if f := getFlash(ecs); f != nil {
		f.Views.FlashIn(nil)
	}
}

func FlashOut(ecs *ecs.ECS) {
	if f := getFlash(ecs); f != nil {
		f.Views.FlashOut()
	}
}

// AdjustWarmth nudges the warmth by delta. The overlay clamps it.
func AdjustWarmth(ecs *ecs.ECS, delta float64) {
	f := getFlash(ecs)
	if f == nil {
		return
	}
	f.Views.SetWarmth(f.Views.Warmth() + delta)
	markUnsaved(ecs)
}

func AdjustIntensity(ecs *ecs.ECS, delta float64) {
	f := getFlash(ecs)
	if f == nil {
		return
	}
	f.Views.SetIntensity(f.Views.Intensity() + delta)
	markUnsaved(ecs)
}

// SelectPreset picks one of the configured flash colors and moves the
// warmth to it.
func SelectPreset(ecs *ecs.ECS, i int) {
	f := getFlash(ecs)
	if f == nil || i < 0 || i >= len(cfg.Flash.Presets) {
		return
	}
	p := cfg.Flash.Presets[i]
	f.Views.SetColorIndex(i)
	f.Views.SetWarmth(p.Warmth)
	markUnsaved(ecs)
	ShowMessage(ecs, fmt.Sprintf("%s flash", p.Name))
}

// CyclePreset moves to the next preset, wrapping around.
func CyclePreset(ecs *ecs.ECS) {
	f := getFlash(ecs)
	if f == nil || len(cfg.Flash.Presets) == 0 {
		return
	}
	SelectPreset(ecs, (f.Views.ColorIndex()+1)%len(cfg.Flash.Presets))
}

// finishCapture hands a taken snapshot back to the sequence.
func finishCapture(entry *donburi.Entry) {
	c := components.Capture.Get(entry)
	if !c.Taken || c.Finish == nil {
		return
	}
	finish := c.Finish
	c.Pending = false
	c.Taken = false
	c.Finish = nil

	finish(func() {
		f := components.Flash.Get(entry)
		f.Shots++
		log.Printf("[flash] capture %d done", f.Shots)
	})
}

func getFlash(ecs *ecs.ECS) *components.FlashData {
	entry, ok := components.Flash.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Flash.Get(entry)
}

func getSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}

func markUnsaved(ecs *ecs.ECS) {
	if s := getSettings(ecs); s != nil {
		s.Unsaved = true
	}
}

// FlashStateName is the sequencer state for display.
func FlashStateName(ecs *ecs.ECS) string {
	f := getFlash(ecs)
	if f == nil {
		return ""
	}
	return f.Views.State().String()
}

// FlashBusy reports whether a capture sequence is still running.
func FlashBusy(ecs *ecs.ECS) bool {
	f := getFlash(ecs)
	return f != nil && f.Views.Busy()
}

// HasUnsavedFlash reports whether the preferences changed since the last
// save or restore.
func HasUnsavedFlash(ecs *ecs.ECS) bool {
	s := getSettings(ecs)
	return s != nil && s.Unsaved
}
