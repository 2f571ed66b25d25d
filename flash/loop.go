package flash

import (
	"slices"
	"time"
)

// Loop is the single-threaded clock every flash transition runs on. The host
// advances it once per frame; frame hooks run first, then every timer that
// has come due, in due order.
type Loop struct {
	now    time.Duration
	seq    uint64
	hooks  []*FrameHook
	timers []*Timer
}

// FrameHook receives the frame delta on every Advance until stopped.
type FrameHook struct {
	loop    *Loop
	fn      func(dt time.Duration)
	stopped bool
}

// Timer runs a callback once the loop clock reaches its due time.
type Timer struct {
	loop *Loop
	due  time.Duration
	seq  uint64
	fn   func()
	done bool
}

func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the virtual time elapsed since the loop was created.
func (l *Loop) Now() time.Duration {
	return l.now
}

// OnFrame registers fn to run on each Advance.
func (l *Loop) OnFrame(fn func(dt time.Duration)) *FrameHook {
	h := &FrameHook{loop: l, fn: fn}
	l.hooks = append(l.hooks, h)
	return h
}

// AfterFunc schedules fn to run d after the current loop time.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &Timer{loop: l, due: l.now + d, seq: l.seq, fn: fn}
	l.timers = append(l.timers, t)
	return t
}

// Advance moves the clock forward by dt and runs whatever became due.
func (l *Loop) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	l.now += dt

	// Hooks added by callbacks during this pass start on the next one.
	for _, h := range slices.Clone(l.hooks) {
		if !h.stopped {
			h.fn(dt)
		}
	}

	for {
		t := l.nextDue()
		if t == nil {
			return
		}
		l.removeTimer(t)
		t.done = true
		t.fn()
	}
}

// Idle reports whether nothing is scheduled.
func (l *Loop) Idle() bool {
	return len(l.hooks) == 0 && len(l.timers) == 0
}

func (l *Loop) nextDue() *Timer {
	var next *Timer
	for _, t := range l.timers {
		if t.due > l.now {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (l *Loop) removeTimer(t *Timer) {
	if i := slices.Index(l.timers, t); i >= 0 {
		l.timers = slices.Delete(l.timers, i, i+1)
	}
}

// Stop detaches the hook. Safe to call more than once.
func (h *FrameHook) Stop() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	if i := slices.Index(h.loop.hooks, h); i >= 0 {
		h.loop.hooks = slices.Delete(h.loop.hooks, i, i+1)
	}
}

// Stop cancels the timer. It returns false if the timer already fired or
// was stopped before.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.loop.removeTimer(t)
	return true
}
