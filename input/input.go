// Package input maps keyboard state to game directions without depending on
// a particular engine. The ebiten subpackage provides the live KeyState.
package input

import "my-game/components"

// Key is an engine-neutral keyboard key
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyF1
	KeyEscape
)

// KeyState answers questions about the keyboard for the current frame
type KeyState interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsKeyJustReleased(key Key) bool
}

// Bindings maps each direction to the keys that move toward it
type Bindings map[components.Direction][]Key

// DefaultBindings are the arrow keys plus WASD
func DefaultBindings() Bindings {
	return Bindings{
		components.South: {KeyArrowDown, KeyS},
		components.North: {KeyArrowUp, KeyW},
		components.East:  {KeyArrowRight, KeyD},
		components.West:  {KeyArrowLeft, KeyA},
	}
}

// Held reports whether any key bound to d is down
func (b Bindings) Held(state KeyState, d components.Direction) bool {
	for _, k := range b[d] {
		if state.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// AnyJustReleased reports whether any movement key was released this frame
func (b Bindings) AnyJustReleased(state KeyState) bool {
	for _, d := range components.Directions {
		for _, k := range b[d] {
			if state.IsKeyJustReleased(k) {
				return true
			}
		}
	}
	return false
}

// Keys returns every bound key
func (b Bindings) Keys() []Key {
	var keys []Key
	for _, d := range components.Directions {
		keys = append(keys, b[d]...)
	}
	return keys
}
