package integrator

import (
	"github.com/passaro/ray-tracer/pkg/core"
	"github.com/passaro/ray-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray with at most depth
	// bounces. It must be safe to call concurrently with distinct samplers.
	RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Color
}

// Background is a vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Color // Color straight up (direction y = +1)
	Bottom core.Color // Color straight down (direction y = -1)
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for the ray's direction
func (b Background) Color(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
