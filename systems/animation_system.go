package systems

import (
	"time"

	"my-game/components"
	"my-game/ecs"
)

// AnimationSystem advances sprite frames on each entity's animation timer
type AnimationSystem struct{}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update ticks every animation timer and steps the visible frame once per elapsed interval
func (s *AnimationSystem) Update(world *ecs.World, dt time.Duration) {
	for _, id := range world.Query(components.Animation, components.AnimationClock, components.Sprite) {
		indices := mustComponent[*components.AnimationIndices](world, id, components.Animation)
		timer := mustComponent[*components.AnimationTimer](world, id, components.AnimationClock)
		sprite := mustComponent[*components.SpriteComponent](world, id, components.Sprite)

		timer.Tick(dt)
		for i := 0; i < timer.TimesFinishedThisTick(); i++ {
			sprite.Index = indices.Next(sprite.Index)
		}
	}
}
