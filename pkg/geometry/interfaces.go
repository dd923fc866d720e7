package geometry

import (
	"github.com/passaro/ray-tracer/pkg/core"
	"github.com/passaro/ray-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with t in [tMin, tMax].
// Implementations must be safe for concurrent reads.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
