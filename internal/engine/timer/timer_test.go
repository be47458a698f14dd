package timer

import (
	"testing"
	"time"
)

func TestStepTimerFiresOnce(t *testing.T) {
	start := time.Unix(1000, 0)
	tm := New(40 * time.Millisecond)

	if tm.Fire(start) {
		t.Fatal("disarmed timer fired")
	}

	tm.Arm(start)
	if tm.Fire(start.Add(39 * time.Millisecond)) {
		t.Error("fired before the interval elapsed")
	}
	if !tm.Fire(start.Add(40 * time.Millisecond)) {
		t.Error("did not fire at the deadline")
	}
	if tm.Armed() {
		t.Error("timer should disarm after firing")
	}
	if tm.Fire(start.Add(80 * time.Millisecond)) {
		t.Error("fired twice without re-arming")
	}
}

func TestStepTimerRearm(t *testing.T) {
	now := time.Unix(0, 0)
	tm := New(40 * time.Millisecond)
	ticks := 0

	tm.Arm(now)
	for i := 0; i < 10; i++ {
		now = now.Add(40 * time.Millisecond)
		if tm.Fire(now) {
			ticks++
			tm.Arm(now)
		}
	}
	if ticks != 10 {
		t.Errorf("ticks = %d, want 10", ticks)
	}
}

func TestStepTimerDisarm(t *testing.T) {
	now := time.Unix(0, 0)
	tm := New(time.Second)
	tm.Arm(now)

	if got := tm.Remaining(now.Add(300 * time.Millisecond)); got != 700*time.Millisecond {
		t.Errorf("Remaining = %v, want 700ms", got)
	}

	tm.Disarm()
	if tm.Fire(now.Add(2 * time.Second)) {
		t.Error("disarmed timer fired")
	}
	if tm.Remaining(now) != 0 {
		t.Error("disarmed timer should have no remaining time")
	}
}
