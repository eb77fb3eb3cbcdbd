package ecs

// EntityID is a unique identifier for an entity within a World.
// Zero is never assigned and means "no entity".
type EntityID uint64

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "player", "camera")
	Tags map[string]bool
	// Parent is the owning entity, zero for roots
	Parent EntityID
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}
