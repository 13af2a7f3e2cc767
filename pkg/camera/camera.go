// Package camera maps normalized screen coordinates to rays.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/geometry"
)

// Camera fires a ray through a normalized screen coordinate
// (u,v) in [0,1]^2, with (0,0) the bottom-left and (1,1) the top-right.
type Camera interface {
	FireRay(u, v float32) geometry.Ray
}

// Orthographic projects all rays parallel to the x axis.
type Orthographic struct {
	AspectRatio float32
	Transform   geometry.Transform
}

// FireRay implements Camera.
func (c Orthographic) FireRay(u, v float32) geometry.Ray {
	ray := geometry.Ray{
		Origin: geometry.NewPoint(-1, (1-2*u)*c.AspectRatio, 2*v-1),
		Dir:    geometry.NewVec3(1, 0, 0),
		TMin:   1e-5,
		TMax:   math32.Inf(1),
	}
	return c.Transform.ApplyRay(ray)
}

// Perspective projects all rays through a single eye point.
type Perspective struct {
	Distance    float32
	AspectRatio float32
	Transform   geometry.Transform
}

// FireRay implements Camera.
func (c Perspective) FireRay(u, v float32) geometry.Ray {
	ray := geometry.Ray{
		Origin: geometry.NewPoint(-c.Distance, 0, 0),
		Dir:    geometry.NewVec3(c.Distance, (1-2*u)*c.AspectRatio, 2*v-1),
		TMin:   1e-5,
		TMax:   math32.Inf(1),
	}
	return c.Transform.ApplyRay(ray)
}
