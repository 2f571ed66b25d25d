package systems

import (
	"testing"

	"github.com/automoto/camflash/components"
)

func TestDecodeFlash(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *SavedFlash
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"saved", `{"warmth":0.25,"intensity":0.5,"colorIndex":2}`, &SavedFlash{Warmth: 0.25, Intensity: 0.5, ColorIndex: 2}, false},
		{"corrupt", `{"warmth":`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFlash([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("decodeFlash = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplySavedFlash(t *testing.T) {
	s := newScene(t)
	AdjustWarmth(s.ecs, -0.1)

	ApplySavedFlash(s.ecs, &SavedFlash{Warmth: 0.2, Intensity: 0.4, ColorIndex: 1})

	got := CurrentFlash(s.ecs)
	if *got != (SavedFlash{Warmth: 0.2, Intensity: 0.4, ColorIndex: 1}) {
		t.Errorf("CurrentFlash = %+v", got)
	}
	settings := components.Settings.Get(s.flash)
	if !settings.Restored || settings.Unsaved {
		t.Errorf("settings = %+v, want restored and saved", settings)
	}
}

func TestApplySavedFlash_Sanitizes(t *testing.T) {
	s := newScene(t)
	ApplySavedFlash(s.ecs, &SavedFlash{Warmth: 4, Intensity: -1, ColorIndex: 9})

	got := CurrentFlash(s.ecs)
	if *got != (SavedFlash{Warmth: 1, Intensity: 0, ColorIndex: 0}) {
		t.Errorf("CurrentFlash = %+v", got)
	}
	ApplySavedFlash(s.ecs, nil)
	if *CurrentFlash(s.ecs) != *got {
		t.Error("nil saved settings should change nothing")
	}
}

func TestSaveCurrentFlash_WithoutStorage(t *testing.T) {
	s := newScene(t)
	AdjustIntensity(s.ecs, -0.5)
	SaveCurrentFlash(s.ecs)
	if HasUnsavedFlash(s.ecs) {
		t.Error("a save without storage configured is a no-op success")
	}
}
