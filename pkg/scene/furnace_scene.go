package scene

import (
	"github.com/andrely/gorustracer/pkg/camera"
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
	"github.com/andrely/gorustracer/pkg/shape"
	"github.com/andrely/gorustracer/pkg/world"
)

// NewFurnaceScene builds the closed-cavity scene used to validate
// PathTracer's energy balance: a single sphere whose reflectance rho and
// emission e should return E/(1-rho) from any direction.
func NewFurnaceScene(rho, e float32, aspectRatio float32) *Scene {
	w := world.New()
	w.Add(shape.Sphere{
		Transform: geometry.NewTransform(),
		Material: material.Material{
			BRDF:            material.DiffuseBRDF{Pig: color.Uniform{Color: color.White.Scale(rho)}},
			EmittedRadiance: color.Uniform{Color: color.White.Scale(e)},
		},
	})

	cam := camera.Orthographic{AspectRatio: aspectRatio, Transform: geometry.NewTransform()}
	return &Scene{Camera: cam, World: w}
}
