// Package world holds the ordered scene container and its closest-hit
// search.
package world

import (
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/shape"
)

// World is an ordered, insertion-stable collection of shapes.
type World struct {
	shapes []shape.Shape
}

// New returns an empty World.
func New() *World {
	return &World{}
}

// Add appends a shape to the world.
func (w *World) Add(s shape.Shape) {
	w.shapes = append(w.shapes, s)
}

// RayIntersection returns the closest hit across all shapes, scanning in
// insertion order and keeping the first-inserted shape on an exact tie.
func (w *World) RayIntersection(ray geometry.Ray) (*shape.HitRecord, bool) {
	var closest *shape.HitRecord

	for _, s := range w.shapes {
		hit, ok := s.RayIntersection(ray)
		if !ok {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}

	return closest, closest != nil
}
