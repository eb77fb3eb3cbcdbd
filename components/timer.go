package components

import "time"

// TimerMode selects whether a Timer restarts after it elapses
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed frame time toward a fixed duration.
//
// A TimerOnce timer stays finished until Reset. A TimerRepeating timer wraps
// and reports how many periods elapsed during the last Tick.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	timesFinished int
}

// NewTimer creates a stopped-at-zero timer
func NewTimer(duration time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// Tick advances the timer by dt
func (t *Timer) Tick(dt time.Duration) {
	t.timesFinished = 0

	if t.mode == TimerOnce {
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.timesFinished = 1
		}
		return
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		t.finished = false
		return
	}
	if t.duration <= 0 {
		t.elapsed = 0
		t.timesFinished = 1
	} else {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	}
	t.finished = true
}

// Finished reports whether the timer has reached its duration.
// For repeating timers this is true only on ticks that wrapped.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick crossed the duration
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick is the number of periods completed during the last Tick
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Reset rewinds the timer to zero
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Elapsed returns the time accumulated in the current period
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured period
func (t *Timer) Duration() time.Duration {
	return t.duration
}
