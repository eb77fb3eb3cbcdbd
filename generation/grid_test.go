package generation

import (
	"testing"

	"my-game/components"
)

func TestLayoutGridSmallWindow(t *testing.T) {
	layout := LayoutGrid(128, 128, 64)

	if layout.WidthTilesCount != 3 {
		t.Errorf("Expected width_tiles_count 3, got %d", layout.WidthTilesCount)
	}
	if layout.TilesCount != 9 || len(layout.Tiles) != 9 {
		t.Fatalf("Expected 9 tiles, got count=%d len=%d", layout.TilesCount, len(layout.Tiles))
	}

	want := [][2]float64{
		{-64, -64}, {0, -64}, {64, -64},
		{-64, 0}, {0, 0}, {64, 0},
		{-64, 64}, {0, 64}, {64, 64},
	}
	for i, w := range want {
		got := layout.Tiles[i]
		if got.X != w[0] || got.Y != w[1] {
			t.Errorf("Tile %d: expected (%v,%v), got (%v,%v)", i, w[0], w[1], got.X, got.Y)
		}
	}

	center := layout.Tiles[4]
	if center.Coord != (components.ChunkCoord{X: 0, Y: 0}) {
		t.Errorf("Expected center chunk (0,0), got %v", center.Coord)
	}
	if corner := layout.Tiles[8].Coord; corner != (components.ChunkCoord{X: 1, Y: 1}) {
		t.Errorf("Expected top-right chunk (1,1), got %v", corner)
	}
}

func TestLayoutGridProperties(t *testing.T) {
	sizes := [][2]float64{
		{1280, 720},
		{128, 128},
		{100, 100},
		{64, 200},
		{0, 0},
	}

	for _, size := range sizes {
		w, h := size[0], size[1]
		layout := LayoutGrid(w, h, 64)

		if len(layout.Tiles) != layout.TilesCount {
			t.Errorf("%vx%v: expected %d tiles, got %d", w, h, layout.TilesCount, len(layout.Tiles))
		}

		seen := make(map[[2]float64]bool)
		for i, tile := range layout.Tiles {
			key := [2]float64{tile.X, tile.Y}
			if seen[key] {
				t.Errorf("%vx%v: tile %d overlaps at %v", w, h, i, key)
			}
			seen[key] = true

			col := i % layout.WidthTilesCount
			row := i / layout.WidthTilesCount
			if tile.X != -w/2+float64(col)*64 || tile.Y != -h/2+float64(row)*64 {
				t.Errorf("%vx%v: tile %d at (%v,%v) not in row %d col %d", w, h, i, tile.X, tile.Y, row, col)
			}
			if tile.Color.A != 255 {
				t.Errorf("%vx%v: tile %d is not opaque", w, h, i)
			}
		}
	}
}

func TestLayoutGridWindowSize(t *testing.T) {
	layout := LayoutGrid(1280, 720, 64)
	if layout.WidthTilesCount != 21 {
		t.Errorf("Expected 21 tiles per row, got %d", layout.WidthTilesCount)
	}
	if layout.TilesCount != 273 {
		t.Errorf("Expected 273 tiles, got %d", layout.TilesCount)
	}
	if layout.Rows() != 13 {
		t.Errorf("Expected 13 rows, got %d", layout.Rows())
	}
}

func TestLayoutGridRejectsBadTile(t *testing.T) {
	if got := LayoutGrid(100, 100, 0); len(got.Tiles) != 0 {
		t.Errorf("Expected no tiles for zero tile size, got %d", len(got.Tiles))
	}
}

func TestTileColorGradient(t *testing.T) {
	left := tileColor(-64, 0, 128, 128)
	right := tileColor(64, 0, 128, 128)
	if left.R >= right.R {
		t.Errorf("Expected red to grow left to right, got %d then %d", left.R, right.R)
	}
	if tileColor(-64, -64, 128, 128).G != 0 {
		t.Error("Expected bottom row green channel at 0")
	}
}
