package flash

import (
	"slices"
	"testing"
	"time"
)

const frame = time.Second / 60

// drain advances l frame by frame until nothing is scheduled.
func drain(t *testing.T, l *Loop) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if l.Idle() {
			return
		}
		l.Advance(frame)
	}
	t.Fatal("loop never went idle")
}

func TestLoop_HooksBeforeTimers(t *testing.T) {
	l := NewLoop()
	var got []string
	l.AfterFunc(5*time.Millisecond, func() { got = append(got, "timer") })
	l.OnFrame(func(time.Duration) { got = append(got, "hook") })

	l.Advance(10 * time.Millisecond)

	want := []string{"hook", "timer"}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestLoop_TimersFireInDueOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	l.AfterFunc(30*time.Millisecond, func() { got = append(got, 3) })
	l.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	l.AfterFunc(20*time.Millisecond, func() { got = append(got, 2) })
	l.AfterFunc(20*time.Millisecond, func() { got = append(got, 22) })

	l.Advance(15 * time.Millisecond)
	if !slices.Equal(got, []int{1}) {
		t.Fatalf("after 15ms fired %v, want [1]", got)
	}

	l.Advance(time.Second)
	if want := []int{1, 2, 22, 3}; !slices.Equal(got, want) {
		t.Errorf("fired %v, want %v", got, want)
	}
	if !l.Idle() {
		t.Error("loop should be idle once every timer fired")
	}
}

func TestLoop_TimerScheduledFromTimer(t *testing.T) {
	l := NewLoop()
	fired := 0
	l.AfterFunc(10*time.Millisecond, func() {
		l.AfterFunc(0, func() { fired++ })
	})

	l.Advance(10 * time.Millisecond)

	if fired != 1 {
		t.Errorf("zero-delay timer scheduled from a timer fired %d times in the same pass, want 1", fired)
	}
}

func TestTimer_Stop(t *testing.T) {
	l := NewLoop()
	fired := false
	timer := l.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	l.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}

	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("nil timer Stop should report false")
	}
}

func TestFrameHook_StopDuringPass(t *testing.T) {
	l := NewLoop()
	var second *FrameHook
	secondRuns := 0
	l.OnFrame(func(time.Duration) { second.Stop() })
	second = l.OnFrame(func(time.Duration) { secondRuns++ })

	l.Advance(frame)
	l.Advance(frame)

	if secondRuns != 0 {
		t.Errorf("hook stopped earlier in the pass ran %d times", secondRuns)
	}
}

func TestFrameHook_ReceivesDelta(t *testing.T) {
	l := NewLoop()
	var total time.Duration
	h := l.OnFrame(func(dt time.Duration) { total += dt })

	l.Advance(10 * time.Millisecond)
	l.Advance(15 * time.Millisecond)
	h.Stop()
	h.Stop()
	l.Advance(time.Second)

	if total != 25*time.Millisecond {
		t.Errorf("hook saw %v, want 25ms", total)
	}
	if l.Now() != time.Second+25*time.Millisecond {
		t.Errorf("Now = %v", l.Now())
	}
	if !l.Idle() {
		t.Error("loop should be idle after the hook stopped")
	}
}
