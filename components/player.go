package components

import "time"

// PlayerComponent holds the state of the player-controlled creature
type PlayerComponent struct {
	Level      int
	Speed      float64
	Facing     Direction
	LifePoints int
	Walking    bool
	Animations AnimationSet
	// MoveCooldown gates repeated steps while a key stays held
	MoveCooldown *Timer
}

// NewPlayerComponent creates a level 1 player facing south
func NewPlayerComponent(animations AnimationSet, cooldown time.Duration) *PlayerComponent {
	return &PlayerComponent{
		Level:        1,
		Speed:        100,
		Facing:       South,
		LifePoints:   100,
		Animations:   animations,
		MoveCooldown: NewTimer(cooldown, TimerOnce),
	}
}

// Motion returns Walking or Idle from the walking flag
func (p *PlayerComponent) Motion() Motion {
	if p.Walking {
		return Walking
	}
	return Idle
}

// CurrentAnimation returns the range matching facing and motion
func (p *PlayerComponent) CurrentAnimation() AnimationIndices {
	return p.Animations.For(p.Facing, p.Motion())
}

// Creature is anything with life points and a place in the world
type Creature interface {
	CurrentLifePoints() int
	CurrentPosition() PositionComponent
}

// PlayerView pairs a player with its position to satisfy Creature
type PlayerView struct {
	Player   *PlayerComponent
	Position *PositionComponent
}

func (v PlayerView) CurrentLifePoints() int {
	return v.Player.LifePoints
}

func (v PlayerView) CurrentPosition() PositionComponent {
	return *v.Position
}
