package geometry

import (
	"github.com/passaro/ray-tracer/pkg/core"
	"github.com/passaro/ray-tracer/pkg/material"
)

// World is an ordered collection of shapes intersected by linear scan.
// It is built once and only read while rendering.
type World struct {
	shapes []Shape
}

// NewWorld creates a world containing the given shapes
func NewWorld(shapes ...Shape) *World {
	w := &World{}
	for _, shape := range shapes {
		w.Add(shape)
	}
	return w
}

// Add appends a shape to the world
func (w *World) Add(shape Shape) {
	w.shapes = append(w.shapes, shape)
}

// Len returns the number of top-level shapes
func (w *World) Len() int {
	return len(w.shapes)
}

// Shapes returns the shapes in insertion order
func (w *World) Shapes() []Shape {
	return w.shapes
}

// Hit returns the closest intersection across all shapes.
// The upper bound shrinks to the nearest hit found so far; at equal t the
// first shape found is kept.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.shapes {
		hit, isHit := shape.Hit(ray, tMin, closestSoFar)
		if isHit && (closestHit == nil || hit.T < closestSoFar) {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
