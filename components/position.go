package components

// PositionComponent stores a world position. Z stays 0 for 2D entities.
type PositionComponent struct {
	X, Y, Z float64
}

// Translate moves the position by (dx, dy)
func (p *PositionComponent) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}
