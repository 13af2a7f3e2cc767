// Package shape provides the ray/shape intersection protocol and the two
// supported primitives, Sphere and Plane.
package shape

import (
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
)

// HitRecord describes where a ray struck a shape.
type HitRecord struct {
	WorldPoint   geometry.Point
	Normal       geometry.Normal
	SurfacePoint geometry.Vec2
	T            float32
	Ray          geometry.Ray
	Material     *material.Material
}

// Shape is anything a World can hold and intersect against.
type Shape interface {
	RayIntersection(ray geometry.Ray) (*HitRecord, bool)
}
