package components

import (
	"fmt"
	"time"
)

// AnimationIndices is an inclusive {First, Last} frame range into a sprite sheet
type AnimationIndices struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Contains reports whether frame lies inside the range
func (a AnimationIndices) Contains(frame int) bool {
	return frame >= a.First && frame <= a.Last
}

// Next returns the frame after current, wrapping to First after Last.
// A frame outside the range snaps to First.
func (a AnimationIndices) Next(current int) int {
	if current < a.First || current >= a.Last {
		return a.First
	}
	return current + 1
}

// Overlaps reports whether two ranges share a frame
func (a AnimationIndices) Overlaps(b AnimationIndices) bool {
	return a.First <= b.Last && b.First <= a.Last
}

// Validate checks that the range is non-empty and non-negative
func (a AnimationIndices) Validate() error {
	if a.First < 0 {
		return fmt.Errorf("first frame %d is negative", a.First)
	}
	if a.First > a.Last {
		return fmt.Errorf("first frame %d is after last frame %d", a.First, a.Last)
	}
	return nil
}

func (a AnimationIndices) String() string {
	return fmt.Sprintf("%d..%d", a.First, a.Last)
}

// Motion is whether an entity stands still or walks
type Motion int

const (
	Idle Motion = iota
	Walking
)

func (m Motion) String() string {
	if m == Walking {
		return "walking"
	}
	return "idle"
}

// AnimationSet holds one frame range per facing and motion
type AnimationSet struct {
	ranges [4][2]AnimationIndices
}

// Set stores the range for a facing and motion
func (s *AnimationSet) Set(d Direction, m Motion, r AnimationIndices) {
	s.ranges[directionSlot(d)][m] = r
}

// For returns the range for a facing and motion.
// It panics on a direction outside North..West.
func (s AnimationSet) For(d Direction, m Motion) AnimationIndices {
	return s.ranges[directionSlot(d)][m]
}

func directionSlot(d Direction) int {
	if d < North || d > West {
		panic(fmt.Sprintf("components: no animation for direction %d", int(d)))
	}
	return int(d)
}

// AnimationTimer drives sprite frame advance
type AnimationTimer struct {
	*Timer
}

// NewAnimationTimer creates a repeating timer firing every interval
func NewAnimationTimer(interval time.Duration) *AnimationTimer {
	return &AnimationTimer{Timer: NewTimer(interval, TimerRepeating)}
}

// SpriteComponent selects the visible frame of a sprite sheet
type SpriteComponent struct {
	Sheet string
	Index int
}
