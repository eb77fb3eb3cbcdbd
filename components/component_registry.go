package components

import (
	"fmt"
	"strings"

	"my-game/ecs"
)

// componentNames maps component IDs to display names for the debug overlay
var componentNames = map[ecs.ComponentID]string{
	Position:       "Position",
	Player:         "Player",
	Sprite:         "Sprite",
	Animation:      "Animation",
	AnimationClock: "AnimationClock",
	Camera:         "Camera",
	MapChunk:       "MapChunk",
	TileColor:      "TileColor",
	Name:           "Name",
}

// ComponentName returns the display name of a component ID
func ComponentName(id ecs.ComponentID) string {
	if name, ok := componentNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Component(%d)", id)
}

// GetComponentIDByName returns the ComponentID for a given component name string.
// The lookup is case-insensitive.
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	for id, compName := range componentNames {
		if strings.EqualFold(compName, name) {
			return id, true
		}
	}
	return 0, false
}

// ComponentNames lists the names of the components an entity owns, in ID order
func ComponentNames(world *ecs.World, entityID ecs.EntityID) []string {
	var names []string
	for id := Position; id <= Name; id++ {
		if world.HasComponent(entityID, id) {
			names = append(names, componentNames[id])
		}
	}
	return names
}
