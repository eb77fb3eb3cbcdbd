package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"my-game/components"
	"my-game/config"
	"my-game/input"
	ebiteninput "my-game/input/ebiten"
	"my-game/render"
)

// SheetViewer shows every frame of a sprite sheet with its index and the
// animation ranges that use it, for checking the range table against the art.
type SheetViewer struct {
	sheet        *render.SpriteSheet
	cfg          *config.AnimationConfig
	keys         input.KeyState
	filename     string
	cellSize     int
	columns      int
	visibleRows  int
	offsetRow    int
	screenWidth  int
	screenHeight int
}

// NewSheetViewer loads the sheet at filename
func NewSheetViewer(filename string, cfg *config.AnimationConfig) (*SheetViewer, error) {
	sheet, err := render.LoadSpriteSheet(filename, cfg.FrameWidth, cfg.FrameHeight)
	if err != nil {
		return nil, err
	}

	width, height := config.GetWindowSize()
	cellSize := cfg.FrameWidth + 24
	return &SheetViewer{
		sheet:        sheet,
		cfg:          cfg,
		keys:         ebiteninput.NewKeyState(),
		filename:     filename,
		cellSize:     cellSize,
		columns:      max(1, sheet.Layout.Columns),
		visibleRows:  max(1, (height-120)/cellSize),
		screenWidth:  width,
		screenHeight: height,
	}, nil
}

// Update scrolls one row per arrow press
func (v *SheetViewer) Update() error {
	if v.keys.IsKeyJustPressed(input.KeyEscape) {
		return ebiten.Termination
	}
	if v.keys.IsKeyJustPressed(input.KeyArrowDown) && v.offsetRow < v.sheet.Layout.Rows-v.visibleRows {
		v.offsetRow++
	}
	if v.keys.IsKeyJustPressed(input.KeyArrowUp) && v.offsetRow > 0 {
		v.offsetRow--
	}
	return nil
}

// Draw displays the frames with their indices
func (v *SheetViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Sheet: %s", v.filename), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d (%dx%d)", v.sheet.Layout.FrameCount(), v.sheet.Layout.Columns, v.sheet.Layout.Rows), 10, 30)
	ebitenutil.DebugPrintAt(screen, "Red frames belong to more than one animation range", 10, 50)

	set := v.cfg.Set()
	for row := 0; row < v.visibleRows; row++ {
		for col := 0; col < v.columns; col++ {
			index := (row+v.offsetRow)*v.columns + col
			if index >= v.sheet.Layout.FrameCount() {
				return
			}

			x := 10 + col*v.cellSize
			y := 80 + row*v.cellSize
			owners := rangesContaining(set, index)

			bg := color.RGBA{60, 60, 60, 255}
			if len(owners) > 1 {
				bg = color.RGBA{140, 40, 40, 255}
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(v.cellSize-4), float32(v.cellSize-4), bg, false)

			v.sheet.DrawFrame(screen, index, float64(x+v.cellSize/2-2), float64(y+v.cfg.FrameHeight/2+2), 1)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d", index), x+2, y+v.cellSize-20)
			if len(owners) > 0 {
				ebitenutil.DebugPrintAt(screen, strings.Join(owners, "+"), x+24, y+v.cellSize-20)
			}
		}
	}
}

// Layout implements ebiten.Game's Layout.
func (v *SheetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenWidth, v.screenHeight
}

// rangesContaining returns short labels like "Wi" (west idle) for each range holding frame
func rangesContaining(set components.AnimationSet, frame int) []string {
	var owners []string
	for _, d := range components.Directions {
		for _, m := range []components.Motion{components.Idle, components.Walking} {
			if set.For(d, m).Contains(frame) {
				owners = append(owners, strings.ToUpper(d.String()[:1])+m.String()[:1])
			}
		}
	}
	return owners
}
