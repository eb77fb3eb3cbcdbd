package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"my-game/audio"
	"my-game/config"
	"my-game/ecs"
	"my-game/input"
	ebiteninput "my-game/input/ebiten"
	"my-game/render"
	"my-game/systems"
)

// Options are the command-line settings a Game is built from
type Options struct {
	AssetsDir      string
	AnimationsFile string
	Debug          bool
	Mute           bool
	Volume         float64
}

// Game implements ebiten.Game interface.
type Game struct {
	world        *ecs.World
	keys         input.KeyState
	renderSystem *render.RenderSystem
	audioSystem  *audio.AudioSystem
	messageLog   *systems.MessageLog
}

// NewGame creates a new game instance and runs the startup systems
func NewGame(opts Options) (*Game, error) {
	animations, err := config.LoadAnimationConfig(opts.AnimationsFile)
	if err != nil {
		return nil, err
	}
	for _, overlap := range animations.Overlaps() {
		log.Warn("Animation ranges overlap", "detail", overlap)
	}

	world := ecs.NewWorld()
	keys := ebiteninput.NewKeyState()
	messageLog := systems.GetMessageLog()
	messageLog.Listen(world)

	width, height := config.GetWindowSize()
	cameraSystem := systems.NewCameraSystem(width, height)
	playerSystem := systems.NewPlayerSystem(keys, input.DefaultBindings(), animations.Set(), config.PlayerSpriteSheet)
	mapSystem := systems.NewMapSystem(width, height, config.TileSize)

	// Startup order: camera, player, map
	world.AddStartupSystem(cameraSystem)
	world.AddStartupSystem(playerSystem)
	world.AddStartupSystem(mapSystem)

	// Movement runs before the frame advance so a reset frame is shown for a full interval
	world.AddSystem(playerSystem)
	world.AddSystem(systems.NewAnimationSystem())

	renderSystem := render.NewRenderSystem(cameraSystem, config.TileSize, messageLog)
	renderSystem.SetDebug(opts.Debug)

	game := &Game{
		world:        world,
		keys:         keys,
		renderSystem: renderSystem,
		messageLog:   messageLog,
	}

	game.loadSprites(opts.AssetsDir, animations)
	if !opts.Mute {
		game.loadSounds(opts.AssetsDir, opts.Volume)
	}

	if err := world.Startup(); err != nil {
		return nil, fmt.Errorf("failed to start world: %w", err)
	}
	log.Info("World ready", "entities", world.EntityCount(), "map", mapSystem.MapID())
	messageLog.Add("Use arrow keys or WASD to move. F1 toggles this overlay.")

	return game, nil
}

// loadSprites registers the player sheet; a missing sheet leaves the fallback box
func (g *Game) loadSprites(assetsDir string, animations *config.AnimationConfig) {
	path := filepath.Join(assetsDir, config.PlayerSpriteSheet)
	sheet, err := render.LoadSpriteSheet(path, animations.FrameWidth, animations.FrameHeight)
	if err != nil {
		log.Warn("Player sprite sheet unavailable", "path", path, "error", err)
		g.messageLog.AddTyped("Sprite sheet missing, drawing placeholder", systems.MessageTypeAlert)
		return
	}
	if frames := sheet.Layout.FrameCount(); frames <= animations.MaxFrame() {
		log.Warn("Sprite sheet is smaller than the animation table", "frames", frames, "needed", animations.MaxFrame()+1)
	}
	g.renderSystem.AddSheet(config.PlayerSpriteSheet, sheet)
	log.Debug("Sprite sheet loaded", "path", path, "frames", sheet.Layout.FrameCount())
}

// loadSounds wires the footstep effect when a step sound exists
func (g *Game) loadSounds(assetsDir string, volume float64) {
	candidates := []string{
		filepath.Join(assetsDir, config.StepSound),
		filepath.Join(assetsDir, "sounds", "step.mp3"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if g.audioSystem == nil {
			g.audioSystem = audio.NewAudioSystem()
			g.audioSystem.SetVolume(volume)
		}
		if err := g.audioSystem.LoadEffect("step", path); err != nil {
			log.Warn("Step sound unusable", "path", path, "error", err)
			continue
		}
		break
	}

	if g.audioSystem == nil || !g.audioSystem.HasEffect("step") {
		log.Debug("No step sound found", "dir", filepath.Join(assetsDir, "sounds"))
		return
	}
	g.audioSystem.Listen(g.world, "step")
	log.Debug("Step sound loaded")
}

// Update updates the game state.
func (g *Game) Update() error {
	if g.keys.IsKeyJustPressed(input.KeyEscape) {
		return ebiten.Termination
	}
	if g.keys.IsKeyJustPressed(input.KeyF1) {
		g.renderSystem.ToggleDebug()
		log.Debug("Debug overlay toggled", "visible", g.renderSystem.IsDebugActive())
	}

	g.world.Update(frameDuration())
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetWindowSize()
}

// Close releases audio resources
func (g *Game) Close() {
	if g.audioSystem != nil {
		g.audioSystem.Close()
	}
}

func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// isTermination reports whether err is the normal quit signal
func isTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
