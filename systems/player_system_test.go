package systems

import (
	"testing"
	"time"

	"my-game/components"
	"my-game/ecs"
	"my-game/input"
)

func TestSpawnPlayerDefaults(t *testing.T) {
	f := newPlayerFixture()
	p := f.player()

	if p.Level != 1 || p.Speed != 100 || p.LifePoints != 100 {
		t.Errorf("Unexpected stats: level=%d speed=%v life=%d", p.Level, p.Speed, p.LifePoints)
	}
	if p.Facing != components.South || p.Walking {
		t.Errorf("Expected idle facing south, got walking=%v facing=%v", p.Walking, p.Facing)
	}
	idle := f.anims.For(components.South, components.Idle)
	if *f.animation() != idle || f.sprite().Index != idle.First {
		t.Errorf("Expected idle south animation %v at frame %d, got %v at %d", idle, idle.First, *f.animation(), f.sprite().Index)
	}
	if pos := f.position(); pos.X != 0 || pos.Y != 0 || pos.Z != 0 {
		t.Errorf("Expected player at origin, got %+v", *pos)
	}

	var creature components.Creature = components.PlayerView{Player: p, Position: f.position()}
	if creature.CurrentLifePoints() != 100 {
		t.Errorf("Expected 100 life points through Creature, got %d", creature.CurrentLifePoints())
	}
}

func TestSingleKeyMovesOneUnit(t *testing.T) {
	tests := []struct {
		key    input.Key
		facing components.Direction
		dx, dy float64
	}{
		{input.KeyArrowDown, components.South, 0, -1},
		{input.KeyS, components.South, 0, -1},
		{input.KeyArrowUp, components.North, 0, 1},
		{input.KeyW, components.North, 0, 1},
		{input.KeyArrowRight, components.East, 1, 0},
		{input.KeyD, components.East, 1, 0},
		{input.KeyArrowLeft, components.West, -1, 0},
		{input.KeyA, components.West, -1, 0},
	}

	for _, tt := range tests {
		f := newPlayerFixture()
		f.keys.hold(tt.key)
		f.step(frame)

		pos := f.position()
		if pos.X != tt.dx || pos.Y != tt.dy || pos.Z != 0 {
			t.Errorf("key %d: expected (%v,%v,0), got %+v", tt.key, tt.dx, tt.dy, *pos)
		}
		p := f.player()
		if p.Facing != tt.facing || !p.Walking {
			t.Errorf("key %d: expected walking %v, got walking=%v facing=%v", tt.key, tt.facing, p.Walking, p.Facing)
		}
		walk := f.anims.For(tt.facing, components.Walking)
		if *f.animation() != walk {
			t.Errorf("key %d: expected animation %v, got %v", tt.key, walk, *f.animation())
		}
		if f.sprite().Index != walk.First {
			t.Errorf("key %d: expected frame %d, got %d", tt.key, walk.First, f.sprite().Index)
		}
	}
}

func TestReleaseReturnsToIdle(t *testing.T) {
	for _, d := range components.Directions {
		f := newPlayerFixture()
		key := input.DefaultBindings()[d][0]

		f.keys.hold(key)
		f.step(frame)
		f.sprite().Index++ // pretend the animation advanced

		f.keys.release(key)
		f.step(frame)

		p := f.player()
		if p.Walking {
			t.Errorf("%v: expected idle after release", d)
		}
		if p.Facing != d {
			t.Errorf("%v: expected facing kept, got %v", d, p.Facing)
		}
		idle := f.anims.For(d, components.Idle)
		if *f.animation() != idle || f.sprite().Index != idle.First {
			t.Errorf("%v: expected idle %v at frame %d, got %v at %d", d, idle, idle.First, *f.animation(), f.sprite().Index)
		}
	}
}

func TestReleaseWinsOverHeldKeys(t *testing.T) {
	f := newPlayerFixture()
	f.keys.hold(input.KeyD)
	f.step(frame)

	// D released while W is still down on the same frame
	f.keys.release(input.KeyD)
	f.keys.down[input.KeyW] = true
	f.step(2 * time.Second)

	if f.player().Walking || f.player().Facing != components.East {
		t.Errorf("Expected idle east, got walking=%v facing=%v", f.player().Walking, f.player().Facing)
	}
	if pos := f.position(); pos.X != 1 || pos.Y != 0 {
		t.Errorf("Expected no movement on release frame, got %+v", *pos)
	}
}

func TestMovementDebounce(t *testing.T) {
	f := newPlayerFixture()
	f.keys.hold(input.KeyS)

	f.step(frame)
	if y := f.position().Y; y != -1 {
		t.Fatalf("Expected first press to move to -1, got %v", y)
	}

	f.step(500 * time.Millisecond)
	f.step(400 * time.Millisecond)
	if y := f.position().Y; y != -1 {
		t.Fatalf("Expected no move within cooldown, got %v", y)
	}

	f.step(100 * time.Millisecond)
	if y := f.position().Y; y != -2 {
		t.Fatalf("Expected second step once the cooldown elapsed, got %v", y)
	}

	f.step(frame)
	if y := f.position().Y; y != -2 {
		t.Errorf("Expected cooldown restarted after the second step, got %v", y)
	}
}

func TestHeldKeyStepsOncePerCooldown(t *testing.T) {
	f := newPlayerFixture()
	f.keys.hold(input.KeyArrowRight)

	for i := 0; i < 61; i++ {
		f.step(50 * time.Millisecond)
	}

	// steps on ticks 0, 20, 40 and 60
	if x := f.position().X; x != 4 {
		t.Errorf("Expected 4 steps over 3 seconds, got x=%v", x)
	}
}

func TestMultipleKeysLaterDirectionWins(t *testing.T) {
	f := newPlayerFixture()
	f.keys.hold(input.KeyS, input.KeyD)
	f.step(frame)

	p := f.player()
	if p.Facing != components.East {
		t.Errorf("Expected east to override south, got %v", p.Facing)
	}
	if pos := f.position(); pos.X != 1 || pos.Y != -1 {
		t.Errorf("Expected both displacements, got %+v", *pos)
	}
	walk := f.anims.For(components.East, components.Walking)
	if *f.animation() != walk || f.sprite().Index != walk.First {
		t.Errorf("Expected east walking animation, got %v at %d", *f.animation(), f.sprite().Index)
	}

	f = newPlayerFixture()
	f.keys.hold(input.KeyW, input.KeyA, input.KeyS, input.KeyD)
	f.step(frame)
	if f.player().Facing != components.West {
		t.Errorf("Expected west checked last, got %v", f.player().Facing)
	}
	if pos := f.position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("Expected opposite keys to cancel, got %+v", *pos)
	}
}

func TestNoKeysNoChange(t *testing.T) {
	f := newPlayerFixture()
	for i := 0; i < 10; i++ {
		f.step(frame)
	}
	if f.player().Walking || f.position().X != 0 || f.position().Y != 0 {
		t.Errorf("Expected idle player at origin, got %+v", *f.position())
	}
}

func TestStepEvents(t *testing.T) {
	f := newPlayerFixture()
	var steps []PlayerStepEvent
	var idles []PlayerIdleEvent
	em := f.world.GetEventManager()
	em.Subscribe(EventPlayerStep, func(e ecs.Event) { steps = append(steps, e.(PlayerStepEvent)) })
	em.Subscribe(EventPlayerIdle, func(e ecs.Event) { idles = append(idles, e.(PlayerIdleEvent)) })

	f.keys.hold(input.KeyW)
	f.step(frame)
	f.keys.release(input.KeyW)
	f.step(frame)

	if len(steps) != 1 {
		t.Fatalf("Expected 1 step event, got %d", len(steps))
	}
	if s := steps[0]; s.FromY != 0 || s.ToY != 1 || s.Facing != components.North || s.EntityID != f.id {
		t.Errorf("Unexpected step event %+v", s)
	}
	if len(idles) != 1 || idles[0].Facing != components.North {
		t.Errorf("Expected one idle event facing north, got %+v", idles)
	}
}

func TestUpdatePanicsWithoutSinglePlayer(t *testing.T) {
	f := newPlayerFixture()
	f.system.SpawnPlayer(f.world)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic with two players")
		}
	}()
	f.step(frame)
}

func TestSetTimingShortensCooldown(t *testing.T) {
	world := ecs.NewWorld()
	keys := newFakeKeys()
	anims := components.AnimationSet{}
	system := NewPlayerSystem(keys, input.DefaultBindings(), anims, "")
	system.SetTiming(100*time.Millisecond, 10*time.Millisecond)
	entity := system.SpawnPlayer(world)

	keys.hold(input.KeyD)
	for i := 0; i < 10; i++ {
		system.Update(world, 50*time.Millisecond)
	}

	pos := mustComponent[*components.PositionComponent](world, entity.ID, components.Position)
	if pos.X != 5 {
		t.Errorf("Expected 5 steps with a 100ms cooldown over 500ms, got x=%v", pos.X)
	}
	clock := mustComponent[*components.AnimationTimer](world, entity.ID, components.AnimationClock)
	if clock.Duration() != 10*time.Millisecond {
		t.Errorf("Expected 10ms frame interval, got %v", clock.Duration())
	}
}
