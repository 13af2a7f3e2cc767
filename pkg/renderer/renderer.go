// Package renderer implements the radiance estimators: on/off visibility,
// flat shading, and the Monte Carlo path tracer.
package renderer

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/random"
	"github.com/andrely/gorustracer/pkg/world"
)

// Renderer estimates the radiance returned along a ray.
type Renderer interface {
	Solve(ray geometry.Ray, pcg *random.Pcg) color.Color
}

// Dummy always returns a fixed color. Test fixture only.
type Dummy struct {
	Color color.Color
}

// Solve implements Renderer.
func (r Dummy) Solve(ray geometry.Ray, pcg *random.Pcg) color.Color { return r.Color }

// OnOff returns Fg on any hit, Bg otherwise. No shading.
type OnOff struct {
	World *world.World
	Bg    color.Color
	Fg    color.Color
}

// Solve implements Renderer.
func (r OnOff) Solve(ray geometry.Ray, pcg *random.Pcg) color.Color {
	if _, ok := r.World.RayIntersection(ray); ok {
		return r.Fg
	}
	return r.Bg
}

// Flat returns emitted radiance plus raw pigment color on hit, with no
// shading and no recursion.
type Flat struct {
	World *world.World
	Bg    color.Color
}

// Solve implements Renderer.
func (r Flat) Solve(ray geometry.Ray, pcg *random.Pcg) color.Color {
	hit, ok := r.World.RayIntersection(ray)
	if !ok {
		return r.Bg
	}
	m := hit.Material
	return m.EmittedColor(hit.SurfacePoint).Add(m.BRDF.Pigment(hit.SurfacePoint))
}

// PathTracer is the core unbiased Monte Carlo integrator, with Russian
// roulette path termination past rr_limit and a hard depth cap.
type PathTracer struct {
	World    *world.World
	Bg       color.Color
	NumRays  int
	MaxDepth uint32
	RrLimit  uint32
}

// Solve implements Renderer.
func (r PathTracer) Solve(ray geometry.Ray, pcg *random.Pcg) color.Color {
	if ray.Depth > r.MaxDepth {
		return color.Black
	}

	hit, ok := r.World.RayIntersection(ray)
	if !ok {
		return r.Bg
	}

	m := hit.Material
	brdfColor := m.BRDF.Pigment(hit.SurfacePoint)
	emitted := m.EmittedColor(hit.SurfacePoint)
	lum := math32.Max(brdfColor.R, math32.Max(brdfColor.G, brdfColor.B))

	if ray.Depth >= r.RrLimit {
		x := pcg.NextFloat32()
		q := math32.Max(1-lum, 0.05)
		if x > q {
			brdfColor = brdfColor.Scale(1 / (1 - q))
		} else {
			return emitted
		}
	}

	cum := color.Black
	if lum > 0 {
		numRays := r.NumRays
		if numRays < 1 {
			numRays = 1
		}
		for i := 0; i < numRays; i++ {
			newRay := m.BRDF.Scatter(pcg, ray.Dir, hit.WorldPoint, hit.Normal, ray.Depth+1)
			newRad := r.Solve(newRay, pcg)
			cum = cum.Add(brdfColor.Mul(newRad))
		}
		cum = cum.Scale(1 / float32(numRays))
	}

	return emitted.Add(cum)
}
