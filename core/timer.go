package core

import "time"

// TimerMode selects what happens when a timer reaches its duration
type TimerMode uint8

const (
	// TimerOnce saturates at Duration and stays finished until Reset
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around and fires JustFinished once per period
	TimerRepeating
)

// Timer is the countdown primitive behind cooldowns, despawn delays and spawn intervals
// Elapsed never exceeds Duration and Remaining never goes negative
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	justFinished bool
}

// NewTimer creates a one-shot timer
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d, Mode: TimerOnce}
}

// NewRepeatingTimer creates a timer that fires every d
func NewRepeatingTimer(d time.Duration) Timer {
	return Timer{Duration: d, Mode: TimerRepeating}
}

// Tick advances the timer by dt and updates the one-tick JustFinished edge
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	if dt < 0 {
		dt = 0
	}

	switch t.Mode {
	case TimerRepeating:
		if t.Duration <= 0 {
			t.justFinished = true
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.justFinished = true
			// Multiple periods in one tick collapse into one firing
			t.Elapsed %= t.Duration
		}

	default:
		if t.Elapsed >= t.Duration {
			// Already finished before this tick, no edge
			t.Elapsed = t.Duration
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.justFinished = true
		}
	}
}

// Finished reports whether a one-shot timer has run out
// For repeating timers it mirrors JustFinished
func (t *Timer) Finished() bool {
	if t.Mode == TimerRepeating {
		return t.justFinished
	}
	return t.Elapsed >= t.Duration
}

// JustFinished is true only on the tick the timer ran out
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Remaining returns time left, saturating at zero
func (t *Timer) Remaining() time.Duration {
	if r := t.Duration - t.Elapsed; r > 0 {
		return r
	}
	return 0
}

// Reset restarts the countdown
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.justFinished = false
}
