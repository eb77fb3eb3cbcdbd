package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"my-game/components"
	"my-game/ecs"
	"my-game/systems"
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	playerFallback  = color.RGBA{240, 240, 240, 255}
	facingMarker    = color.RGBA{220, 60, 60, 255}
)

// RenderSystem draws map tiles and sprites through the camera
type RenderSystem struct {
	camera   *systems.CameraSystem
	sheets   map[string]*SpriteSheet
	tileSize float64
	debug    bool
	messages *systems.MessageLog
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(camera *systems.CameraSystem, tileSize float64, messages *systems.MessageLog) *RenderSystem {
	return &RenderSystem{
		camera:   camera,
		sheets:   make(map[string]*SpriteSheet),
		tileSize: tileSize,
		messages: messages,
	}
}

// AddSheet registers a sprite sheet under the name sprites refer to
func (s *RenderSystem) AddSheet(name string, sheet *SpriteSheet) {
	s.sheets[name] = sheet
}

// ToggleDebug shows or hides the debug overlay
func (s *RenderSystem) ToggleDebug() {
	s.debug = !s.debug
}

// SetDebug sets the debug overlay visibility
func (s *RenderSystem) SetDebug(on bool) {
	s.debug = on
}

// IsDebugActive reports whether the debug overlay is visible
func (s *RenderSystem) IsDebugActive() bool {
	return s.debug
}

// Draw renders the whole frame
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.drawTiles(world, screen)
	s.drawSprites(world, screen)

	if s.debug {
		s.drawDebug(world, screen)
	}
}

// drawTiles draws every visible map chunk as a flat colored square
func (s *RenderSystem) drawTiles(world *ecs.World, screen *ebiten.Image) {
	half := s.tileSize / 2
	for _, id := range world.Query(components.MapChunk, components.Position, components.TileColor) {
		pos := component[*components.PositionComponent](world, id, components.Position)
		if !s.camera.IsVisible(world, pos.X, pos.Y, half) {
			continue
		}
		tint := component[*components.TileColorComponent](world, id, components.TileColor)
		chunk := component[*components.MapChunkComponent](world, id, components.MapChunk)

		x, y := s.camera.WorldToScreen(world, pos.X, pos.Y)
		if sheet, ok := s.sheets[chunk.Texture]; ok && chunk.Texture != "" {
			sheet.DrawFrame(screen, 0, x, y, s.tileSize/float64(sheet.Layout.FrameWidth))
			continue
		}
		vector.DrawFilledRect(screen, float32(x-half), float32(y-half), float32(s.tileSize), float32(s.tileSize), tint.Color, false)
	}
}

// drawSprites draws entities with a sprite, falling back to a marker box when
// the sheet is missing
func (s *RenderSystem) drawSprites(world *ecs.World, screen *ebiten.Image) {
	for _, id := range world.Query(components.Sprite, components.Position) {
		pos := component[*components.PositionComponent](world, id, components.Position)
		sprite := component[*components.SpriteComponent](world, id, components.Sprite)
		x, y := s.camera.WorldToScreen(world, pos.X, pos.Y)

		if sheet, ok := s.sheets[sprite.Sheet]; ok && sheet.DrawFrame(screen, sprite.Index, x, y, 1) {
			continue
		}

		size := float32(s.tileSize / 2)
		vector.DrawFilledRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, playerFallback, false)
		if comp, ok := world.GetComponent(id, components.Player); ok {
			dx, dy := comp.(*components.PlayerComponent).Facing.Delta()
			mx := float32(x + dx*float64(size)/2)
			my := float32(y - dy*float64(size)/2)
			vector.DrawFilledRect(screen, mx-3, my-3, 6, 6, facingMarker, false)
		}
	}
}

// drawDebug prints the player state and the most recent messages
func (s *RenderSystem) drawDebug(world *ecs.World, screen *ebiten.Image) {
	lines := []string{fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())}

	if players := world.GetEntitiesWithTag("player"); len(players) == 1 {
		id := players[0].ID
		p := component[*components.PlayerComponent](world, id, components.Player)
		pos := component[*components.PositionComponent](world, id, components.Position)
		anim := component[*components.AnimationIndices](world, id, components.Animation)
		sprite := component[*components.SpriteComponent](world, id, components.Sprite)
		lines = append(lines,
			fmt.Sprintf("player #%d %v", id, components.ComponentNames(world, id)),
			fmt.Sprintf("pos %.0f,%.0f  facing %s  %s", pos.X, pos.Y, p.Facing, p.Motion()),
			fmt.Sprintf("animation %v frame %d  level %d  life %d", *anim, sprite.Index, p.Level, p.LifePoints),
		)
	}
	lines = append(lines, fmt.Sprintf("entities %d", world.EntityCount()))

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}

	if s.messages == nil {
		return
	}
	bottom := screen.Bounds().Dy()
	for i, msg := range s.messages.RecentMessages(8) {
		y := bottom - 24 - i*16
		vector.DrawFilledRect(screen, 8, float32(y+5), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 20, y)
	}
}

func component[T any](world *ecs.World, id ecs.EntityID, cid ecs.ComponentID) T {
	comp, _ := world.GetComponent(id, cid)
	return comp.(T)
}
