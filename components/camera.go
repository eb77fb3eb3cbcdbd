package components

// CameraComponent is a 2D camera centered on (X, Y) in world units
type CameraComponent struct {
	X, Y  float64
	Scale float64
}

// NewCameraComponent creates a camera at the origin with unit scale
func NewCameraComponent() *CameraComponent {
	return &CameraComponent{Scale: 1}
}
