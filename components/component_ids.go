package components

import (
	"my-game/ecs"
)

// Define component IDs for our game
const (
	Position       ecs.ComponentID = iota
	Player                         // *PlayerComponent
	Sprite                         // *SpriteComponent
	Animation                      // *AnimationIndices, the range currently shown
	AnimationClock                 // *AnimationTimer
	Camera
	MapChunk
	TileColor
	Name
)
