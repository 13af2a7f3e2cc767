package scene

import (
	"github.com/andrely/gorustracer/pkg/camera"
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
	"github.com/andrely/gorustracer/pkg/shape"
	"github.com/andrely/gorustracer/pkg/world"
)

// NewCheckeredPlaneScene builds a ground plane with a checkered pigment
// under a sphere, lit only by the sphere's own weak emission. Useful for
// exercising Pigment.Checkered and the Plane (u,v) parametrization end to
// end with the path tracer.
func NewCheckeredPlaneScene(aspectRatio float32) *Scene {
	w := world.New()

	w.Add(shape.Plane{
		Transform: geometry.Translation(geometry.NewVec3(0, 0, -1)),
		Material: material.Material{
			BRDF: material.DiffuseBRDF{Pig: color.Checkered{
				Color1: color.New(0.2, 0.2, 0.2),
				Color2: color.New(0.8, 0.8, 0.8),
				Steps:  8,
			}},
		},
	})

	w.Add(shape.Sphere{
		Transform: geometry.Translation(geometry.NewVec3(6, 0, 0)),
		Material: material.Material{
			BRDF:            material.DiffuseBRDF{Pig: color.Uniform{Color: color.White.Scale(0.1)}},
			EmittedRadiance: color.Uniform{Color: color.White.Scale(2)},
		},
	})

	cam := camera.Perspective{
		Distance:    1,
		AspectRatio: aspectRatio,
		Transform:   geometry.RotationZ(0.3).Compose(geometry.Translation(geometry.NewVec3(0, 0, 1))),
	}
	return &Scene{Camera: cam, World: w}
}
