package systems

import (
	"github.com/charmbracelet/log"

	"my-game/components"
	"my-game/ecs"
	"my-game/generation"
)

// MapSystem builds the static tile grid at startup.
// Chunks are never streamed or evicted after that.
type MapSystem struct {
	width, height int
	tileSize      float64
	mapID         ecs.EntityID
}

// NewMapSystem creates a map system covering a window of the given pixel size
func NewMapSystem(width, height int, tileSize float64) *MapSystem {
	return &MapSystem{width: width, height: height, tileSize: tileSize}
}

// Startup lays out and spawns the grid
func (s *MapSystem) Startup(world *ecs.World) error {
	layout := generation.LayoutGrid(float64(s.width), float64(s.height), s.tileSize)
	s.mapID = SpawnMap(world, layout).ID
	return nil
}

// MapID returns the container entity created by Startup
func (s *MapSystem) MapID() ecs.EntityID {
	return s.mapID
}

// SpawnMap creates one entity per tile, all parented under a single map entity
func SpawnMap(world *ecs.World, layout generation.GridLayout) *ecs.Entity {
	mapEntity := world.CreateEntity()
	world.TagEntity(mapEntity.ID, "map")
	world.AddComponent(mapEntity.ID, components.Position, &components.PositionComponent{})
	world.AddComponent(mapEntity.ID, components.Name, components.NewNameComponent("Map"))

	for _, tile := range layout.Tiles {
		tileEntity := world.CreateEntity()
		world.TagEntity(tileEntity.ID, "tile")
		world.AddComponent(tileEntity.ID, components.Position, &components.PositionComponent{X: tile.X, Y: tile.Y})
		world.AddComponent(tileEntity.ID, components.TileColor, &components.TileColorComponent{Color: tile.Color})
		world.AddComponent(tileEntity.ID, components.MapChunk, &components.MapChunkComponent{
			Coord:    tile.Coord,
			Walkable: true,
		})
		world.SetParent(tileEntity.ID, mapEntity.ID)
	}

	log.Info("Map generated",
		"tiles", layout.TilesCount,
		"row", layout.WidthTilesCount,
		"rows", layout.Rows(),
		"tile_size", layout.TileSize,
	)
	world.EmitEvent(MapGeneratedEvent{
		MapID:     mapEntity.ID,
		Tiles:     len(layout.Tiles),
		RowLength: layout.WidthTilesCount,
		TileSize:  layout.TileSize,
	})

	return mapEntity
}

// ChunkAt returns the tile entity at a chunk coordinate, or zero if none
func ChunkAt(world *ecs.World, coord components.ChunkCoord) ecs.EntityID {
	for _, id := range world.Query(components.MapChunk) {
		chunk := mustComponent[*components.MapChunkComponent](world, id, components.MapChunk)
		if chunk.Coord == coord {
			return id
		}
	}
	return 0
}
