// Package timer provides a single-shot step timer polled by the main loop.
package timer

import "time"

// StepTimer fires once after Interval has elapsed since it was armed.
// The owner re-arms it after each firing to get a periodic tick, and stops
// the tick by not re-arming.
type StepTimer struct {
	Interval time.Duration

	deadline time.Time
	armed    bool
}

// New creates a disarmed timer.
func New(interval time.Duration) *StepTimer {
	return &StepTimer{Interval: interval}
}

// Arm schedules the timer to fire Interval after now.
func (t *StepTimer) Arm(now time.Time) {
	t.deadline = now.Add(t.Interval)
	t.armed = true
}

// Disarm cancels a pending firing.
func (t *StepTimer) Disarm() {
	t.armed = false
}

// Armed reports whether a firing is pending.
func (t *StepTimer) Armed() bool {
	return t.armed
}

// Fire reports whether the timer is due at now. A due timer disarms itself.
func (t *StepTimer) Fire(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	t.armed = false
	return true
}

// Remaining returns the time left until the timer fires, or 0 when it is
// disarmed or already due.
func (t *StepTimer) Remaining(now time.Time) time.Duration {
	if !t.armed {
		return 0
	}
	return max(t.deadline.Sub(now), 0)
}
