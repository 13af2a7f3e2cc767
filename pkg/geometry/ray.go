package geometry

import "github.com/chewxy/math32"

// Ray is a parametric line origin + dir*t, bounded to t in (tmin, tmax).
type Ray struct {
	Origin Point
	Dir    Vec3
	TMin   float32
	TMax   float32
	Depth  uint32
}

// NewRay builds the default ray: origin at the world's zero, pointing down
// +X, with the standard tmin/tmax bounds and depth zero.
func NewRay() Ray {
	return Ray{
		Origin: Point{},
		Dir:    Vec3{X: 1},
		TMin:   1e-5,
		TMax:   math32.Inf(1),
		Depth:  0,
	}
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float32) Point { return r.Origin.Add(r.Dir.Mul(t)) }

// IsClose compares origin and direction only, matching the reference
// implementation (tmin/tmax/depth are bookkeeping, not geometry).
func (r Ray) IsClose(other Ray) bool {
	return r.Origin.IsClose(other.Origin) && r.Dir.IsClose(other.Dir)
}
