package renderer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
	"github.com/andrely/gorustracer/pkg/random"
	"github.com/andrely/gorustracer/pkg/shape"
	"github.com/andrely/gorustracer/pkg/world"
)

func furnaceWorld(rho, e float32) *world.World {
	w := world.New()
	w.Add(shape.Sphere{
		Transform: geometry.NewTransform(),
		Material: material.Material{
			BRDF:            material.DiffuseBRDF{Pig: color.Uniform{Color: color.White.Scale(rho)}},
			EmittedRadiance: color.Uniform{Color: color.White.Scale(e)},
		},
	})
	return w
}

func TestFurnaceTest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 10; trial++ {
		rho := float32(rng.Float64()) * 0.9
		e := float32(rng.Float64())

		w := furnaceWorld(rho, e)
		tracer := PathTracer{World: w, Bg: color.Black, NumRays: 1, MaxDepth: 100, RrLimit: 101}

		pcg := random.NewPcg(uint64(trial+1), 1)
		ray := geometry.NewRay()

		got := tracer.Solve(ray, pcg)
		want := e / (1 - rho)

		assert.InDelta(t, want, got.R, 1e-2)
		assert.InDelta(t, want, got.G, 1e-2)
		assert.InDelta(t, want, got.B, 1e-2)
	}
}

func TestOnOffRenderer(t *testing.T) {
	w := world.New()
	w.Add(shape.Sphere{
		Transform: geometry.NewTransform(),
		Material:  material.Material{BRDF: material.DiffuseBRDF{Pig: color.Uniform{Color: color.White}}},
	})
	r := OnOff{World: w, Bg: color.Black, Fg: color.White}

	rayA := geometry.Ray{Origin: geometry.NewPoint(-2, 3, 0), Dir: geometry.NewVec3(1, 0, 0), TMin: 1e-5, TMax: 1e10}
	rayB := geometry.Ray{Origin: geometry.NewPoint(-2, 0, 0), Dir: geometry.NewVec3(1, 0, 0), TMin: 1e-5, TMax: 1e10}

	assert.True(t, r.Solve(rayA, nil).IsClose(color.Black))
	assert.True(t, r.Solve(rayB, nil).IsClose(color.White))
}

func TestFlatRenderer(t *testing.T) {
	red := color.New(1, 0, 0)
	blue := color.New(0, 0, 1)
	green := color.New(0, 1, 0)

	w := world.New()
	w.Add(shape.Sphere{
		Transform: geometry.NewTransform(),
		Material: material.Material{
			BRDF:            material.DiffuseBRDF{Pig: color.Checkered{Color1: red, Color2: blue, Steps: 2}},
			EmittedRadiance: color.Uniform{Color: green},
		},
	})
	r := Flat{World: w, Bg: color.Black}

	hitRay1 := geometry.Ray{Origin: geometry.NewPoint(-2, 0.5, 0.5), Dir: geometry.NewVec3(1, 0, 0), TMin: 1e-5, TMax: 1e10}
	hitRay2 := geometry.Ray{Origin: geometry.NewPoint(-2, -0.5, 0.5), Dir: geometry.NewVec3(1, 0, 0), TMin: 1e-5, TMax: 1e10}
	missRay := geometry.Ray{Origin: geometry.NewPoint(-2, 3, 0), Dir: geometry.NewVec3(1, 0, 0), TMin: 1e-5, TMax: 1e10}

	c1 := r.Solve(hitRay1, nil)
	c2 := r.Solve(hitRay2, nil)
	c3 := r.Solve(missRay, nil)

	assert.True(t, c1.IsClose(red.Add(green)))
	assert.True(t, c2.IsClose(blue.Add(green)))
	assert.True(t, c3.IsClose(color.Black))
}

func TestPathTracerMaxDepthReturnsBlack(t *testing.T) {
	w := furnaceWorld(0.5, 0.5)
	tracer := PathTracer{World: w, Bg: color.Black, NumRays: 1, MaxDepth: 2, RrLimit: 100}
	pcg := random.NewDefaultPcg()
	ray := geometry.NewRay()
	ray.Depth = 3

	assert.True(t, tracer.Solve(ray, pcg).IsClose(color.Black))
}

func TestPathTracerMissReturnsBg(t *testing.T) {
	w := world.New()
	bg := color.New(0.1, 0.2, 0.3)
	tracer := PathTracer{World: w, Bg: bg, NumRays: 1, MaxDepth: 10, RrLimit: 5}
	pcg := random.NewDefaultPcg()

	assert.True(t, tracer.Solve(geometry.NewRay(), pcg).IsClose(bg))
}
