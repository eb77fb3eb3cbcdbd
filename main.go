package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"my-game/config"
)

func main() {
	assetsDir := flag.String("assets", config.DefaultAssetsDir, "directory holding sprites/ and sounds/")
	animationsFile := flag.String("animations", "", "JSON file overriding the player animation ranges")
	debug := flag.Bool("debug", false, "show the debug overlay and log at debug level")
	mute := flag.Bool("mute", false, "do not load sound effects")
	volume := flag.Float64("volume", 0.5, "sound effect volume from 0 to 1")
	viewSheet := flag.Bool("view-sheet", false, "browse the player sprite sheet frames instead of playing")
	flag.Parse()

	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.Kitchen)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *viewSheet {
		runSheetViewer(*assetsDir, *animationsFile)
		return
	}

	game, err := NewGame(Options{
		AssetsDir:      *assetsDir,
		AnimationsFile: *animationsFile,
		Debug:          *debug,
		Mute:           *mute,
		Volume:         *volume,
	})
	if err != nil {
		log.Fatal("Failed to create game", "error", err)
	}
	defer game.Close()

	width, height := config.GetWindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	log.Info("Starting game", "title", config.WindowTitle, "width", width, "height", height)
	if err := ebiten.RunGame(game); err != nil && !isTermination(err) {
		game.Close()
		log.Error("Game stopped", "error", err)
		os.Exit(1)
	}
	log.Info("Game closed")
}

func runSheetViewer(assetsDir, animationsFile string) {
	cfg, err := config.LoadAnimationConfig(animationsFile)
	if err != nil {
		log.Fatal("Failed to load animation config", "error", err)
	}

	path := filepath.Join(assetsDir, config.PlayerSpriteSheet)
	viewer, err := NewSheetViewer(path, cfg)
	if err != nil {
		log.Fatal("Failed to open sprite sheet", "path", path, "error", err)
	}

	width, height := config.GetWindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Sheet Viewer - " + path)
	if err := ebiten.RunGame(viewer); err != nil && !isTermination(err) {
		log.Fatal("Sheet viewer stopped", "error", err)
	}
}
