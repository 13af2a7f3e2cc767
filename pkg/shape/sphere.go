package shape

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
)

// Sphere is a unit sphere in local space, positioned by Transform.
type Sphere struct {
	Transform geometry.Transform
	Material  material.Material
}

// RayIntersection implements Shape.
func (s Sphere) RayIntersection(ray geometry.Ray) (*HitRecord, bool) {
	inv := s.Transform.Inverse()
	localRay := inv.ApplyRay(ray)

	o := localRay.Origin.ToVec3()
	d := localRay.Dir

	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - 1

	disc := b*b - 4*a*c
	if disc <= 0 {
		return nil, false
	}

	sqrtDisc := math32.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	var t float32
	switch {
	case t1 > localRay.TMin && t1 < localRay.TMax:
		t = t1
	case t2 > localRay.TMin && t2 < localRay.TMax:
		t = t2
	default:
		return nil, false
	}

	localPoint := localRay.At(t)
	localNormal := geometry.NewNormal(localPoint.X, localPoint.Y, localPoint.Z)
	if localNormal.ToVec3().Dot(d) >= 0 {
		localNormal = localNormal.Neg()
	}

	u := math32.Atan2(localPoint.Y, localPoint.X) / (2 * math32.Pi)
	if u < 0 {
		u += 1
	}
	v := math32.Acos(localPoint.Z) / math32.Pi

	hit := &HitRecord{
		WorldPoint:   s.Transform.ApplyPoint(localPoint),
		Normal:       s.Transform.ApplyNormal(localNormal),
		SurfacePoint: geometry.NewVec2(u, v),
		T:            t,
		Ray:          ray,
		Material:     &s.Material,
	}
	return hit, true
}
