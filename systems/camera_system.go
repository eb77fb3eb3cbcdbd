package systems

import (
	"my-game/components"
	"my-game/ecs"
)

// CameraSystem spawns the 2D camera and converts between world and screen space.
// World space is y-up with the origin at the center of the screen.
type CameraSystem struct {
	screenWidth  float64
	screenHeight float64
}

// NewCameraSystem creates a camera system for a screen of the given pixel size
func NewCameraSystem(screenWidth, screenHeight int) *CameraSystem {
	return &CameraSystem{
		screenWidth:  float64(screenWidth),
		screenHeight: float64(screenHeight),
	}
}

// Startup spawns the single camera entity
func (s *CameraSystem) Startup(world *ecs.World) error {
	SpawnCamera(world)
	return nil
}

// SpawnCamera creates a camera entity at the origin
func SpawnCamera(world *ecs.World) *ecs.Entity {
	cameraEntity := world.CreateEntity()
	world.TagEntity(cameraEntity.ID, "camera")
	world.AddComponent(cameraEntity.ID, components.Camera, components.NewCameraComponent())
	world.AddComponent(cameraEntity.ID, components.Name, components.NewNameComponent("Camera"))
	return cameraEntity
}

func (s *CameraSystem) camera(world *ecs.World) *components.CameraComponent {
	cameraEntities := world.GetEntitiesWithTag("camera")
	if len(cameraEntities) == 0 {
		return nil
	}
	if comp, exists := world.GetComponent(cameraEntities[0].ID, components.Camera); exists {
		return comp.(*components.CameraComponent)
	}
	return nil
}

// WorldToScreen converts world coordinates to screen pixel coordinates
func (s *CameraSystem) WorldToScreen(world *ecs.World, worldX, worldY float64) (screenX, screenY float64) {
	camX, camY, scale := 0.0, 0.0, 1.0
	if camera := s.camera(world); camera != nil {
		camX, camY, scale = camera.X, camera.Y, camera.Scale
	}

	screenX = s.screenWidth/2 + (worldX-camX)*scale
	screenY = s.screenHeight/2 - (worldY-camY)*scale
	return screenX, screenY
}

// ScreenToWorld converts screen pixel coordinates to world coordinates
func (s *CameraSystem) ScreenToWorld(world *ecs.World, screenX, screenY float64) (worldX, worldY float64) {
	camX, camY, scale := 0.0, 0.0, 1.0
	if camera := s.camera(world); camera != nil {
		camX, camY, scale = camera.X, camera.Y, camera.Scale
	}

	worldX = (screenX-s.screenWidth/2)/scale + camX
	worldY = (s.screenHeight/2-screenY)/scale + camY
	return worldX, worldY
}

// IsVisible reports whether a box of half-extent half centered on a world
// position intersects the screen
func (s *CameraSystem) IsVisible(world *ecs.World, worldX, worldY, half float64) bool {
	x, y := s.WorldToScreen(world, worldX, worldY)
	scale := 1.0
	if camera := s.camera(world); camera != nil {
		scale = camera.Scale
	}
	h := half * scale
	return x+h >= 0 && x-h <= s.screenWidth && y+h >= 0 && y-h <= s.screenHeight
}
