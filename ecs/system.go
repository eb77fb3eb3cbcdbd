package ecs

import "time"

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called each frame to process entities
	Update(world *World, dt time.Duration)
}

// StartupSystem runs once before the first frame.
type StartupSystem interface {
	Startup(world *World) error
}

// StartupFunc adapts a plain function to StartupSystem.
type StartupFunc func(world *World) error

// Startup calls f(world).
func (f StartupFunc) Startup(world *World) error {
	return f(world)
}
