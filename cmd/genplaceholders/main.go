package main

import (
	"flag"
	"path/filepath"

	"github.com/charmbracelet/log"

	"my-game/config"
	"my-game/placeholders"
)

func main() {
	assetsDir := flag.String("assets", config.DefaultAssetsDir, "directory to write sprites/ into")
	animationsFile := flag.String("animations", "", "JSON file with the animation ranges to cover")
	columns := flag.Int("columns", 10, "frames per sheet row")
	flag.Parse()

	if *columns < 1 {
		log.Fatal("Columns must be at least 1", "columns", *columns)
	}

	cfg, err := config.LoadAnimationConfig(*animationsFile)
	if err != nil {
		log.Fatal("Failed to load animation config", "error", err)
	}

	path := filepath.Join(*assetsDir, config.PlayerSpriteSheet)
	sheet := placeholders.PlayerSheet(cfg, *columns)
	if err := placeholders.SavePNG(sheet, path); err != nil {
		log.Fatal("Failed to write sprite sheet", "path", path, "error", err)
	}
	log.Info("Placeholder sprite sheet written", "path", path, "size", sheet.Bounds().Size())
}
