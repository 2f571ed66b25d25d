package flash

import (
	"errors"
	"fmt"

	"github.com/automoto/camflash/config"
)

// ErrFlashInProgress is returned by Flash while an earlier capture sequence
// has not finished ramping down.
var ErrFlashInProgress = errors.New("flash: capture sequence already in progress")

// IlluminationAuto hands illumination back to the host's automatic level.
const IlluminationAuto = -1.0

// Host is the windowing side of the flash: it owns the real illumination
// (screen brightness) and applies whatever level the sequencer requests.
type Host interface {
	SetIllumination(level float64)
}

// HostFunc adapts a plain function to Host.
type HostFunc func(level float64)

func (f HostFunc) SetIllumination(level float64) { f(level) }

// CaptureFunc is invoked once the flash is fully up. The host takes its
// picture and then calls finish; onFinished runs after the flash has faded
// out again.
type CaptureFunc func(finish func(onFinished func()))

type State int

const (
	StateIdle State = iota
	StatePreviewOn
	StatePreviewOff
	StateRampingUp
	StateHolding
	StateAwaitingCapture
	StateSettling
	StateRampingDown
	StateLit
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreviewOn:
		return "preview-on"
	case StatePreviewOff:
		return "preview-off"
	case StateRampingUp:
		return "ramping-up"
	case StateHolding:
		return "holding"
	case StateAwaitingCapture:
		return "awaiting-capture"
	case StateSettling:
		return "settling"
	case StateRampingDown:
		return "ramping-down"
	case StateLit:
		return "lit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sequencer runs the flash protocol on top of an Animator: illuminate, ramp
// up, hold, capture, release illumination, settle, ramp down.
type Sequencer struct {
	loop     *Loop
	animator *Animator
	host     Host
	timing   config.FlashTiming
	level    func() float64

	state State
	run   *flashRun
}

// flashRun is one Flash call. It outlives the sequence when the host holds on
// to its finish delegate after an abort.
type flashRun struct {
	timer      *Timer
	lit        bool
	finished   bool
	aborted    bool
	onFinished func()
}

// NewSequencer wires a sequencer. level supplies the illumination requested
// when the flash turns on.
func NewSequencer(loop *Loop, animator *Animator, host Host, timing config.FlashTiming, level func() float64) *Sequencer {
	if host == nil {
		host = HostFunc(func(float64) {})
	}
	if level == nil {
		level = func() float64 { return 1 }
	}
	return &Sequencer{
		loop:     loop,
		animator: animator,
		host:     host,
		timing:   timing,
		level:    level,
	}
}

// Flash runs a full capture sequence. It fails with ErrFlashInProgress if the
// previous one is still running; nothing changes in that case.
func (s *Sequencer) Flash(capture CaptureFunc) error {
	if s.run != nil {
		return ErrFlashInProgress
	}

	run := &flashRun{}
	s.run = run
	s.illuminate(run, s.level())
	s.state = StateRampingUp
	s.animator.AnimateTo(1, s.timing.RampUp, func() {
		s.state = StateHolding
		run.timer = s.loop.AfterFunc(s.timing.CaptureHold, func() {
			run.timer = nil
			s.state = StateAwaitingCapture
			finish := func(onFinished func()) {
				s.finish(run, onFinished)
			}
			if capture == nil {
				finish(nil)
				return
			}
			capture(finish)
		})
	})
	return nil
}

func (s *Sequencer) finish(run *flashRun, onFinished func()) {
	if run.finished {
		return
	}
	run.finished = true

	if run.aborted || s.run != run {
		if onFinished != nil {
			onFinished()
		}
		return
	}

	run.onFinished = onFinished
	s.release(run)
	s.state = StateSettling
	run.timer = s.loop.AfterFunc(s.timing.Settle, func() {
		run.timer = nil
		s.state = StateRampingDown
		s.animator.AnimateTo(0, s.timing.RampDown, func() {
			s.run = nil
			s.state = StateIdle
			run.onFinished = nil
			if onFinished != nil {
				onFinished()
			}
		})
	})
}

// PreviewStart raises the overlay to the preview level without touching
// illumination.
func (s *Sequencer) PreviewStart() {
	s.abort()
	s.state = StatePreviewOn
	s.animator.AnimateTo(s.timing.PreviewLevel, s.timing.Preview, nil)
}

func (s *Sequencer) PreviewEnd() {
	s.abort()
	s.state = StatePreviewOff
	s.animator.AnimateTo(0, s.timing.Preview, func() {
		s.state = StateIdle
	})
}

// FlashIn illuminates and ramps up, then calls done. The flash stays lit
// until FlashOut.
func (s *Sequencer) FlashIn(done func()) {
	s.abort()
	s.host.SetIllumination(s.level())
	s.state = StateRampingUp
	s.animator.AnimateTo(1, s.timing.RampUp, func() {
		s.state = StateLit
		if done != nil {
			done()
		}
	})
}

func (s *Sequencer) FlashOut() {
	s.abort()
	s.host.SetIllumination(IlluminationAuto)
	s.state = StateRampingDown
	s.animator.AnimateTo(0, s.timing.RampDown, func() {
		s.state = StateIdle
	})
}

func (s *Sequencer) State() State {
	return s.state
}

// Busy reports whether a Flash sequence is in flight.
func (s *Sequencer) Busy() bool {
	return s.run != nil
}

// abort drops the running Flash sequence in favor of a manual operation. A
// host callback already handed over through finish still runs, so the host
// is never left waiting.
func (s *Sequencer) abort() {
	run := s.run
	if run == nil {
		return
	}
	s.run = nil
	run.aborted = true
	run.timer.Stop()
	run.timer = nil
	if run.lit {
		s.release(run)
	}
	if done := run.onFinished; done != nil {
		run.onFinished = nil
		done()
	}
}

func (s *Sequencer) illuminate(run *flashRun, level float64) {
	run.lit = true
	s.host.SetIllumination(level)
}

func (s *Sequencer) release(run *flashRun) {
	run.lit = false
	s.host.SetIllumination(IlluminationAuto)
}
