package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrely/gorustracer/pkg/geometry"
)

func TestPlaneHit(t *testing.T) {
	p := Plane{Transform: geometry.NewTransform(), Material: unitMaterial()}
	ray := geometry.Ray{
		Origin: geometry.NewPoint(0, 0, 1),
		Dir:    geometry.NewVec3(0, 0, -1),
		TMin:   1e-5,
		TMax:   1e10,
	}

	hit, ok := p.RayIntersection(ray)
	require.True(t, ok)
	assert.InDelta(t, float32(1), hit.T, 1e-5)
	assert.True(t, hit.WorldPoint.IsClose(geometry.NewPoint(0, 0, 0)))
	assert.True(t, hit.Normal.IsClose(geometry.NewNormal(0, 0, 1)))
}

func TestPlaneParallelMiss(t *testing.T) {
	p := Plane{Transform: geometry.NewTransform(), Material: unitMaterial()}
	ray := geometry.Ray{
		Origin: geometry.NewPoint(0, 0, 1),
		Dir:    geometry.NewVec3(1, 0, 0),
		TMin:   1e-5,
		TMax:   1e10,
	}

	_, ok := p.RayIntersection(ray)
	assert.False(t, ok)
}

func TestPlaneUVIsPeriodic(t *testing.T) {
	p := Plane{Transform: geometry.NewTransform(), Material: unitMaterial()}
	ray := geometry.Ray{
		Origin: geometry.NewPoint(1.25, 2.75, 1),
		Dir:    geometry.NewVec3(0, 0, -1),
		TMin:   1e-5,
		TMax:   1e10,
	}

	hit, ok := p.RayIntersection(ray)
	require.True(t, ok)
	assert.InDelta(t, float32(0.25), hit.SurfacePoint.U, 1e-5)
	assert.InDelta(t, float32(0.75), hit.SurfacePoint.V, 1e-5)
}

func TestPlaneBehindRayMisses(t *testing.T) {
	p := Plane{Transform: geometry.NewTransform(), Material: unitMaterial()}
	ray := geometry.Ray{
		Origin: geometry.NewPoint(0, 0, -1),
		Dir:    geometry.NewVec3(0, 0, -1),
		TMin:   1e-5,
		TMax:   1e10,
	}

	_, ok := p.RayIntersection(ray)
	assert.False(t, ok)
}
