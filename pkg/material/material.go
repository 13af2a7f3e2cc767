package material

import (
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
)

// Material bundles a surface's BRDF with its emissive pigment. A
// non-emissive surface uses a Uniform{Black} pigment.
type Material struct {
	BRDF            BRDF
	EmittedRadiance color.Pigment
}

// EmittedColor returns the material's emitted radiance at uv.
func (m Material) EmittedColor(uv geometry.Vec2) color.Color {
	if m.EmittedRadiance == nil {
		return color.Black
	}
	return m.EmittedRadiance.GetColor(uv)
}
