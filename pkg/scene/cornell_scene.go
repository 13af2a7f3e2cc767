package scene

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/camera"
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
	"github.com/andrely/gorustracer/pkg/shape"
	"github.com/andrely/gorustracer/pkg/world"
)

// NewCornellDiffuseScene builds a small box-like cavity out of planes
// (the Shape set has no dedicated box/quad primitive, so each wall is a
// translated, rotated Plane) with colored diffuse walls, a mirror sphere
// and a small emissive sphere standing in for an area light.
func NewCornellDiffuseScene(aspectRatio float32) *Scene {
	w := world.New()

	white := material.Material{BRDF: material.DiffuseBRDF{Pig: color.Uniform{Color: color.New(0.73, 0.73, 0.73)}}}
	red := material.Material{BRDF: material.DiffuseBRDF{Pig: color.Uniform{Color: color.New(0.65, 0.05, 0.05)}}}
	green := material.Material{BRDF: material.DiffuseBRDF{Pig: color.Uniform{Color: color.New(0.12, 0.45, 0.15)}}}
	mirror := material.Material{BRDF: material.SpecularBRDF{Pig: color.Uniform{Color: color.New(0.95, 0.95, 0.95)}}}
	light := material.Material{
		BRDF:            material.DiffuseBRDF{Pig: color.Uniform{Color: color.Black}},
		EmittedRadiance: color.Uniform{Color: color.White.Scale(8)},
	}

	// Floor and ceiling.
	w.Add(shape.Plane{Transform: geometry.Translation(geometry.NewVec3(0, 0, -1.5)), Material: white})
	w.Add(shape.Plane{
		Transform: geometry.Translation(geometry.NewVec3(0, 0, 1.5)).Compose(geometry.RotationX(math32.Pi)),
		Material:  white,
	})

	// Back wall.
	w.Add(shape.Plane{
		Transform: geometry.Translation(geometry.NewVec3(3, 0, 0)).Compose(geometry.RotationY(math32.Pi / 2)),
		Material:  white,
	})

	// Left (red) and right (green) walls.
	w.Add(shape.Plane{
		Transform: geometry.Translation(geometry.NewVec3(0, 1.5, 0)).Compose(geometry.RotationX(math32.Pi / 2)),
		Material:  red,
	})
	w.Add(shape.Plane{
		Transform: geometry.Translation(geometry.NewVec3(0, -1.5, 0)).Compose(geometry.RotationX(-math32.Pi / 2)),
		Material:  green,
	})

	// Mirror sphere and area-light stand-in.
	w.Add(shape.Sphere{Transform: geometry.Translation(geometry.NewVec3(1.5, 0.6, -0.9)), Material: mirror})
	w.Add(shape.Sphere{
		Transform: geometry.Translation(geometry.NewVec3(1.5, 0, 1.3)).Compose(geometry.Scaling(geometry.NewVec3(0.4, 0.4, 0.4))),
		Material:  light,
	})

	cam := camera.Perspective{
		Distance:    1,
		AspectRatio: aspectRatio,
		Transform:   geometry.NewTransform(),
	}
	return &Scene{Camera: cam, World: w}
}
