package scene

import (
	"github.com/andrely/gorustracer/pkg/camera"
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/material"
	"github.com/andrely/gorustracer/pkg/shape"
	"github.com/andrely/gorustracer/pkg/world"
)

// NewOnOffDemoScene builds the minimal silhouette scene used to exercise
// the OnOff renderer: a single unit sphere at the origin, viewed with a
// perspective camera pulled back along -x.
func NewOnOffDemoScene(aspectRatio float32) *Scene {
	w := world.New()
	w.Add(shape.Sphere{
		Transform: geometry.NewTransform(),
		Material:  material.Material{BRDF: material.DiffuseBRDF{Pig: color.Uniform{Color: color.White}}},
	})

	cam := camera.Perspective{
		Distance:    2,
		AspectRatio: aspectRatio,
		Transform:   geometry.NewTransform(),
	}
	return &Scene{Camera: cam, World: w}
}
