package config

import "time"

// Window configuration
const (
	WindowTitle  = "My Game"
	WindowWidth  = 1280
	WindowHeight = 720
)

// Map and sprite layout
const (
	// Tile size in world units (one unit is one pixel at camera scale 1)
	TileSize = 64.0

	// Player sprite sheet frame size in pixels
	SpriteFrameWidth  = 64
	SpriteFrameHeight = 64
)

// Timing
const (
	// MoveCooldown is the minimum time between two steps while a key stays held
	MoveCooldown = time.Second

	// AnimationFrameInterval is how long each sprite frame is shown
	AnimationFrameInterval = 100 * time.Millisecond
)

// Asset paths, relative to the assets directory
const (
	DefaultAssetsDir  = "assets"
	PlayerSpriteSheet = "sprites/player.png"
	StepSound         = "sounds/step.ogg"
)

// GetWindowSize returns the window dimensions in pixels
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
