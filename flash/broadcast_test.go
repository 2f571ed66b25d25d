package flash

import (
	"fmt"
	"slices"
	"testing"
)

// recorder is a tint widget that logs what it receives into a shared trail.
type recorder struct {
	name   string
	trail  *[]string
	invert float64
}

func (r *recorder) SetInvert(v float64) {
	r.invert = v
	*r.trail = append(*r.trail, fmt.Sprintf("%s=%.2f", r.name, v))
}

func (r *recorder) Invalidate() {
	*r.trail = append(*r.trail, r.name+" redraw")
}

// counter counts redraw requests.
type counter struct{ n int }

func (c *counter) Invalidate() { c.n++ }

func TestBroadcaster_ValuesBeforeRedraws(t *testing.T) {
	var trail []string
	b := NewBroadcaster(1)
	b.Register(&recorder{name: "a", trail: &trail})
	b.Register(&recorder{name: "b", trail: &trail})
	trail = trail[:0]

	b.Broadcast(0.5)

	want := []string{"a=0.50", "b=0.50", "a redraw", "b redraw"}
	if !slices.Equal(trail, want) {
		t.Errorf("trail = %v, want %v", trail, want)
	}
}

func TestBroadcaster_RegisterSyncsCurrentValue(t *testing.T) {
	var trail []string
	b := NewBroadcaster(1)
	b.Broadcast(0.3)

	r := &recorder{name: "late", trail: &trail}
	b.Register(r)

	if r.invert != 0.3 {
		t.Errorf("late widget invert = %v, want 0.3", r.invert)
	}
	if want := []string{"late=0.30"}; !slices.Equal(trail, want) {
		t.Errorf("trail = %v, want %v", trail, want)
	}

	b.Register(nil)
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestBroadcaster_Alpha(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		invert    float64
		want      uint8
	}{
		{"off", 1, 0, 0},
		{"full", 1, 1, 255},
		{"half intensity", 0.5, 1, 127},
		{"half invert", 1, 0.5, 127},
		{"clamped", 2, 3, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBroadcaster(tt.intensity)
			b.Broadcast(tt.invert)
			if got := b.Alpha(); got != tt.want {
				t.Errorf("Alpha = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBroadcaster_SetIntensityUpdatesAlpha(t *testing.T) {
	b := NewBroadcaster(1)
	b.Broadcast(1)
	b.SetIntensity(0.5)
	if b.Alpha() != 127 {
		t.Errorf("Alpha = %d, want 127", b.Alpha())
	}
	if b.Intensity() != 0.5 || b.Invert() != 1 {
		t.Errorf("intensity=%v invert=%v", b.Intensity(), b.Invert())
	}
}
