package systems

import (
	"my-game/components"
	"my-game/ecs"
)

// Event type constants
const (
	EventPlayerStep   ecs.EventType = "player_step"
	EventPlayerIdle   ecs.EventType = "player_idle"
	EventMapGenerated ecs.EventType = "map_generated"
)

// PlayerStepEvent is emitted for every unit step the player takes
type PlayerStepEvent struct {
	EntityID ecs.EntityID
	Facing   components.Direction
	FromX    float64
	FromY    float64
	ToX      float64
	ToY      float64
}

// Type returns the event type
func (e PlayerStepEvent) Type() ecs.EventType {
	return EventPlayerStep
}

// PlayerIdleEvent is emitted when a movement key is released
type PlayerIdleEvent struct {
	EntityID ecs.EntityID
	Facing   components.Direction
}

// Type returns the event type
func (e PlayerIdleEvent) Type() ecs.EventType {
	return EventPlayerIdle
}

// MapGeneratedEvent is emitted once the tile grid has been spawned
type MapGeneratedEvent struct {
	MapID     ecs.EntityID
	Tiles     int
	RowLength int
	TileSize  float64
}

// Type returns the event type
func (e MapGeneratedEvent) Type() ecs.EventType {
	return EventMapGenerated
}
