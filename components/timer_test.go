package components

import (
	"testing"
	"time"
)

func TestOnceTimerStaysFinished(t *testing.T) {
	timer := NewTimer(time.Second, TimerOnce)

	timer.Tick(600 * time.Millisecond)
	if timer.Finished() {
		t.Fatal("Expected timer not finished after 600ms")
	}

	timer.Tick(600 * time.Millisecond)
	if !timer.Finished() || !timer.JustFinished() {
		t.Fatal("Expected timer just finished after 1.2s")
	}
	if timer.Elapsed() != time.Second {
		t.Errorf("Expected elapsed clamped to 1s, got %v", timer.Elapsed())
	}

	timer.Tick(time.Second)
	if !timer.Finished() {
		t.Error("Expected once timer to stay finished")
	}
	if timer.JustFinished() {
		t.Error("Expected JustFinished to be false on the following tick")
	}

	timer.Reset()
	if timer.Finished() || timer.Elapsed() != 0 {
		t.Errorf("Expected reset timer at zero, got finished=%v elapsed=%v", timer.Finished(), timer.Elapsed())
	}
}

func TestRepeatingTimerWraps(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, TimerRepeating)

	tests := []struct {
		dt        time.Duration
		times     int
		remaining time.Duration
	}{
		{50 * time.Millisecond, 0, 50 * time.Millisecond},
		{60 * time.Millisecond, 1, 10 * time.Millisecond},
		{250 * time.Millisecond, 2, 60 * time.Millisecond},
		{10 * time.Millisecond, 0, 70 * time.Millisecond},
	}

	for i, tt := range tests {
		timer.Tick(tt.dt)
		if got := timer.TimesFinishedThisTick(); got != tt.times {
			t.Errorf("Tick %d: expected %d completions, got %d", i, tt.times, got)
		}
		if timer.JustFinished() != (tt.times > 0) {
			t.Errorf("Tick %d: JustFinished mismatch", i)
		}
		if timer.Elapsed() != tt.remaining {
			t.Errorf("Tick %d: expected elapsed %v, got %v", i, tt.remaining, timer.Elapsed())
		}
	}
}
