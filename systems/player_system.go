package systems

import (
	"time"

	"github.com/charmbracelet/log"

	"my-game/components"
	"my-game/config"
	"my-game/ecs"
	"my-game/input"
)

// PlayerSystem turns keyboard state into facing, steps and animation changes
type PlayerSystem struct {
	keys       input.KeyState
	bindings   input.Bindings
	animations components.AnimationSet
	cooldown   time.Duration
	sheet      string
	frameEvery time.Duration
}

// NewPlayerSystem creates the player system.
// animations is the facing × motion frame table used for the spawned player.
func NewPlayerSystem(keys input.KeyState, bindings input.Bindings, animations components.AnimationSet, sheet string) *PlayerSystem {
	return &PlayerSystem{
		keys:       keys,
		bindings:   bindings,
		animations: animations,
		cooldown:   config.MoveCooldown,
		sheet:      sheet,
		frameEvery: config.AnimationFrameInterval,
	}
}

// SetTiming overrides the step cooldown and sprite frame interval
func (s *PlayerSystem) SetTiming(cooldown, frameEvery time.Duration) {
	s.cooldown = cooldown
	s.frameEvery = frameEvery
}

// Startup spawns the player
func (s *PlayerSystem) Startup(world *ecs.World) error {
	s.SpawnPlayer(world)
	return nil
}

// SpawnPlayer creates the player entity idle at the origin facing south
func (s *PlayerSystem) SpawnPlayer(world *ecs.World) *ecs.Entity {
	player := components.NewPlayerComponent(s.animations, s.cooldown)
	idle := player.CurrentAnimation()

	playerEntity := world.CreateEntity()
	world.TagEntity(playerEntity.ID, "player")
	world.AddComponent(playerEntity.ID, components.Player, player)
	world.AddComponent(playerEntity.ID, components.Position, &components.PositionComponent{})
	world.AddComponent(playerEntity.ID, components.Animation, &idle)
	world.AddComponent(playerEntity.ID, components.AnimationClock, components.NewAnimationTimer(s.frameEvery))
	world.AddComponent(playerEntity.ID, components.Sprite, &components.SpriteComponent{Sheet: s.sheet, Index: idle.First})
	world.AddComponent(playerEntity.ID, components.Name, components.NewNameComponent("Player"))

	log.Debug("Player spawned", "entity", playerEntity.ID, "facing", player.Facing, "animation", idle)
	return playerEntity
}

// Update applies one frame of input to the player
func (s *PlayerSystem) Update(world *ecs.World, dt time.Duration) {
	playerEntity := world.MustSingle("player")
	id := playerEntity.ID

	player := mustComponent[*components.PlayerComponent](world, id, components.Player)
	position := mustComponent[*components.PositionComponent](world, id, components.Position)
	current := mustComponent[*components.AnimationIndices](world, id, components.Animation)
	sprite := mustComponent[*components.SpriteComponent](world, id, components.Sprite)

	player.MoveCooldown.Tick(dt)

	if s.bindings.AnyJustReleased(s.keys) {
		player.Walking = false
		*current = player.CurrentAnimation()
		sprite.Index = current.First
		world.EmitEvent(PlayerIdleEvent{EntityID: id, Facing: player.Facing})
		return
	}

	// Held keys repeat at most once per cooldown.
	if player.Walking && !player.MoveCooldown.Finished() {
		return
	}

	player.MoveCooldown.Reset()
	for _, d := range components.Directions {
		if !s.bindings.Held(s.keys, d) {
			continue
		}

		player.Facing = d
		player.Walking = true

		fromX, fromY := position.X, position.Y
		position.Translate(d.Delta())

		*current = player.CurrentAnimation()
		sprite.Index = current.First

		world.EmitEvent(PlayerStepEvent{
			EntityID: id,
			Facing:   d,
			FromX:    fromX,
			FromY:    fromY,
			ToX:      position.X,
			ToY:      position.Y,
		})
	}
}

// mustComponent fetches a typed component and panics when it is absent
func mustComponent[T any](world *ecs.World, id ecs.EntityID, cid ecs.ComponentID) T {
	comp, ok := world.GetComponent(id, cid)
	if !ok {
		panic("systems: entity is missing " + components.ComponentName(cid))
	}
	return comp.(T)
}
