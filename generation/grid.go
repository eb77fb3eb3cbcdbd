package generation

import (
	"image/color"
	"math"

	"my-game/components"
)

// TilePlacement is one tile of a generated grid
type TilePlacement struct {
	X, Y  float64 // world position of the tile center
	Coord components.ChunkCoord
	Color color.RGBA
}

// GridLayout is the result of laying tiles over a window
type GridLayout struct {
	Width, Height   float64
	TileSize        float64
	TilesCount      int
	WidthTilesCount int
	Tiles           []TilePlacement
}

// Rows returns the number of rows started, counting a partial last row
func (g GridLayout) Rows() int {
	if g.WidthTilesCount == 0 {
		return 0
	}
	return (g.TilesCount + g.WidthTilesCount - 1) / g.WidthTilesCount
}

// LayoutGrid covers a width × height window with square tiles.
//
// Tiles are laid left to right starting at (-width/2, -height/2); a new row
// starts each time the index reaches a nonzero multiple of the row length.
func LayoutGrid(width, height, tile float64) GridLayout {
	layout := GridLayout{Width: width, Height: height, TileSize: tile}
	if tile <= 0 || width < 0 || height < 0 {
		return layout
	}

	layout.TilesCount = int(math.Ceil((height+tile)/tile)) * int(math.Ceil((width+tile)/tile))
	layout.WidthTilesCount = int(math.Floor(width/tile)) + 1
	layout.Tiles = make([]TilePlacement, 0, layout.TilesCount)

	startX, startY := -width/2, -height/2
	x, y := startX, startY
	for i := 0; i < layout.TilesCount; i++ {
		if i != 0 && i%layout.WidthTilesCount == 0 {
			x = startX
			y += tile
		}

		layout.Tiles = append(layout.Tiles, TilePlacement{
			X:     x,
			Y:     y,
			Coord: components.ChunkCoordFor(x, y, tile),
			Color: tileColor(x, y, width, height),
		})
		x += tile
	}

	return layout
}

// tileColor shades a tile from its position normalized to [0,1] across the window
func tileColor(x, y, width, height float64) color.RGBA {
	nx := normalize(x, width)
	ny := normalize(y, height)
	return color.RGBA{
		R: uint8(math.Round(nx * 255)),
		G: uint8(math.Round(ny * 255)),
		B: uint8(math.Round((1 - nx) * 128)),
		A: 255,
	}
}

func normalize(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	n := (v + extent/2) / extent
	return math.Max(0, math.Min(1, n))
}
