package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"my-game/input"
)

var keyMap = map[input.Key]ebiten.Key{
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyW:          ebiten.KeyW,
	input.KeyA:          ebiten.KeyA,
	input.KeyS:          ebiten.KeyS,
	input.KeyD:          ebiten.KeyD,
	input.KeyF1:         ebiten.KeyF1,
	input.KeyEscape:     ebiten.KeyEscape,
}

// KeyState implements input.KeyState with live Ebitengine keyboard state
type KeyState struct{}

// NewKeyState creates the Ebitengine-backed key state
func NewKeyState() input.KeyState {
	return KeyState{}
}

func (KeyState) IsKeyPressed(key input.Key) bool {
	k, ok := keyMap[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (KeyState) IsKeyJustPressed(key input.Key) bool {
	k, ok := keyMap[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (KeyState) IsKeyJustReleased(key input.Key) bool {
	k, ok := keyMap[key]
	return ok && inpututil.IsKeyJustReleased(k)
}
