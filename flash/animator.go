package flash

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationState is a snapshot of the animator. Transition increments with
// every AnimateTo call and identifies the transition in flight.
type AnimationState struct {
	Current    float64
	Target     float64
	Running    bool
	Transition uint64
}

// Animator drives the invert value between 0 and 1 on a Loop. Only one
// transition is ever in flight; starting another cancels it first.
type Animator struct {
	loop     *Loop
	easing   ease.TweenFunc
	onUpdate func(value float64)

	state      AnimationState
	tween      *gween.Tween
	hook       *FrameHook
	onComplete func()
}

// NewAnimator creates an animator at value 0. onUpdate receives every value
// the animator settles on, intermediate ticks included.
func NewAnimator(loop *Loop, onUpdate func(value float64)) *Animator {
	return &Animator{
		loop:     loop,
		easing:   EaseIn,
		onUpdate: onUpdate,
	}
}

// AnimateTo moves the value to target over d. A non-positive duration
// applies the target and calls onComplete before returning.
func (a *Animator) AnimateTo(target float64, d time.Duration, onComplete func()) {
	a.Cancel()

	target = clamp01(target)
	a.state.Transition++
	a.state.Target = target

	if d <= 0 {
		a.set(target)
		if onComplete != nil {
			onComplete()
		}
		return
	}

	id := a.state.Transition
	a.tween = gween.New(float32(a.state.Current), float32(target), float32(d.Seconds()), a.easing)
	a.onComplete = onComplete
	a.state.Running = true
	a.hook = a.loop.OnFrame(func(dt time.Duration) {
		a.step(id, dt)
	})
}

// Cancel stops the running transition where it is. Its completion callback
// is dropped.
func (a *Animator) Cancel() {
	if !a.state.Running {
		return
	}
	a.stop()
}

func (a *Animator) Value() float64 {
	return a.state.Current
}

func (a *Animator) Running() bool {
	return a.state.Running
}

func (a *Animator) State() AnimationState {
	return a.state
}

func (a *Animator) step(id uint64, dt time.Duration) {
	if id != a.state.Transition || a.tween == nil {
		return
	}

	v, finished := a.tween.Update(float32(dt.Seconds()))
	if !finished {
		a.set(float64(v))
		return
	}

	// Snap to the exact target to drop float32 interpolation error.
	done := a.onComplete
	a.stop()
	a.set(a.state.Target)
	if done != nil {
		done()
	}
}

func (a *Animator) stop() {
	a.hook.Stop()
	a.hook = nil
	a.tween = nil
	a.onComplete = nil
	a.state.Running = false
}

func (a *Animator) set(v float64) {
	a.state.Current = clamp01(v)
	if a.onUpdate != nil {
		a.onUpdate(a.state.Current)
	}
}
