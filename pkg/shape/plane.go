package shape

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
)

// Plane is the local z=0 plane, positioned by Transform.
type Plane struct {
	Transform geometry.Transform
	Material  material.Material
}

// RayIntersection implements Shape.
func (s Plane) RayIntersection(ray geometry.Ray) (*HitRecord, bool) {
	inv := s.Transform.Inverse()
	localRay := inv.ApplyRay(ray)

	if math32.Abs(localRay.Dir.Z) < 1e-5 {
		return nil, false
	}

	t := -localRay.Origin.Z / localRay.Dir.Z
	if t <= localRay.TMin || t >= localRay.TMax {
		return nil, false
	}

	localPoint := localRay.At(t)
	localNormal := geometry.NewNormal(0, 0, 1)
	if localNormal.ToVec3().Dot(localRay.Dir) >= 0 {
		localNormal = localNormal.Neg()
	}

	u := localPoint.X - math32.Floor(localPoint.X)
	v := localPoint.Y - math32.Floor(localPoint.Y)

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
