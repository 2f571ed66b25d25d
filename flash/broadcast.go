package flash

// Invalidator is anything that can be asked to redraw.
type Invalidator interface {
	Invalidate()
}

// Invertable is a widget tinted by the flash. Implementations are owned by
// the caller; the broadcaster only keeps a reference.
type Invertable interface {
	Invalidator
	SetInvert(invert float64)
}

// Broadcaster pushes the invert value to registered widgets and derives the
// gradient paint alpha from it.
type Broadcaster struct {
	observers []Invertable
	invert    float64
	intensity float64
	alpha     uint8
}

func NewBroadcaster(intensity float64) *Broadcaster {
	b := &Broadcaster{intensity: clamp01(intensity)}
	b.updateAlpha()
	return b
}

// Register syncs o with the current invert value and appends it. There is
// no way to unregister.
func (b *Broadcaster) Register(o Invertable) {
	if o == nil {
		return
	}
	o.SetInvert(b.invert)
	b.observers = append(b.observers, o)
}

// Broadcast hands v to every observer in registration order, and only then
// asks each of them to redraw.
func (b *Broadcaster) Broadcast(v float64) {
	b.invert = clamp01(v)
	b.updateAlpha()
	for _, o := range b.observers {
		o.SetInvert(b.invert)
	}
	for _, o := range b.observers {
		o.Invalidate()
	}
}

func (b *Broadcaster) SetIntensity(intensity float64) {
	b.intensity = clamp01(intensity)
	b.updateAlpha()
}

func (b *Broadcaster) Invert() float64    { return b.invert }
func (b *Broadcaster) Intensity() float64 { return b.intensity }
func (b *Broadcaster) Len() int           { return len(b.observers) }

// Alpha is the gradient paint opacity, 255 × intensity × invert.
func (b *Broadcaster) Alpha() uint8 {
	return b.alpha
}

func (b *Broadcaster) updateAlpha() {
	b.alpha = uint8(255 * b.intensity * b.invert)
}
