package components

import (
	"image/color"
	"math"
)

// ChunkCoord is a tile coordinate on the map grid
type ChunkCoord struct {
	X, Y int
}

// ChunkCoordFor converts a world position to its tile coordinate
func ChunkCoordFor(x, y, tileSize float64) ChunkCoord {
	return ChunkCoord{
		X: int(math.Round(x / tileSize)),
		Y: int(math.Round(y / tileSize)),
	}
}

// MapChunkComponent describes one static map tile
type MapChunkComponent struct {
	Coord    ChunkCoord
	Walkable bool
	// Texture names a sprite sheet; empty means the tile is drawn with its TileColor
	Texture string
}

// TileColorComponent is the flat color a tile is drawn with
type TileColorComponent struct {
	Color color.RGBA
}
