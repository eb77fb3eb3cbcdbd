package systems

import (
	"time"

	"my-game/components"
	"my-game/config"
	"my-game/ecs"
	"my-game/input"
)

const frame = time.Second / 60

// fakeKeys is a scripted keyboard for one frame at a time
type fakeKeys struct {
	down     map[input.Key]bool
	released map[input.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[input.Key]bool{}, released: map[input.Key]bool{}}
}

func (f *fakeKeys) IsKeyPressed(k input.Key) bool      { return f.down[k] }
func (f *fakeKeys) IsKeyJustPressed(k input.Key) bool  { return false }
func (f *fakeKeys) IsKeyJustReleased(k input.Key) bool { return f.released[k] }

func (f *fakeKeys) hold(keys ...input.Key) {
	f.down = map[input.Key]bool{}
	f.released = map[input.Key]bool{}
	for _, k := range keys {
		f.down[k] = true
	}
}

func (f *fakeKeys) release(keys ...input.Key) {
	f.down = map[input.Key]bool{}
	f.released = map[input.Key]bool{}
	for _, k := range keys {
		f.released[k] = true
	}
}

type playerFixture struct {
	world  *ecs.World
	keys   *fakeKeys
	system *PlayerSystem
	id     ecs.EntityID
	anims  components.AnimationSet
}

func newPlayerFixture() *playerFixture {
	world := ecs.NewWorld()
	keys := newFakeKeys()
	anims := config.DefaultAnimationConfig().Set()
	system := NewPlayerSystem(keys, input.DefaultBindings(), anims, config.PlayerSpriteSheet)
	entity := system.SpawnPlayer(world)
	return &playerFixture{world: world, keys: keys, system: system, id: entity.ID, anims: anims}
}

func (f *playerFixture) step(dt time.Duration) {
	f.system.Update(f.world, dt)
}

func (f *playerFixture) player() *components.PlayerComponent {
	return mustComponent[*components.PlayerComponent](f.world, f.id, components.Player)
}

func (f *playerFixture) position() *components.PositionComponent {
	return mustComponent[*components.PositionComponent](f.world, f.id, components.Position)
}

func (f *playerFixture) animation() *components.AnimationIndices {
	return mustComponent[*components.AnimationIndices](f.world, f.id, components.Animation)
}

func (f *playerFixture) sprite() *components.SpriteComponent {
	return mustComponent[*components.SpriteComponent](f.world, f.id, components.Sprite)
}
