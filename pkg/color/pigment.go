package color

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/geometry"
)

// Pigment maps a surface parametric coordinate to a Color.
type Pigment interface {
	GetColor(uv geometry.Vec2) Color
}

// Uniform is a constant-color pigment.
type Uniform struct {
	Color Color
}

// GetColor implements Pigment.
func (p Uniform) GetColor(geometry.Vec2) Color { return p.Color }

// Checkered alternates between two colors by the parity of
// floor(u*steps)+floor(v*steps).
type Checkered struct {
	Color1, Color2 Color
	Steps          int
}

// GetColor implements Pigment.
func (p Checkered) GetColor(uv geometry.Vec2) Color {
	intU := int(math32.Floor(uv.U * float32(p.Steps)))
	intV := int(math32.Floor(uv.V * float32(p.Steps)))
	if (intU%2+2)%2 == (intV%2+2)%2 {
		return p.Color1
	}
	return p.Color2
}

// PixelSource is the minimal read surface Image requires of an HDR image so
// this package never imports the hdrimage package back.
type PixelSource interface {
	Shape() (width, height int)
	At(col, row int) Color
}

// Image samples an HDR image with nearest-neighbour lookup. Bilinear
// filtering would reduce pixelization artifacts but is not implemented.
type Image struct {
	Source PixelSource
}

// GetColor implements Pigment.
func (p Image) GetColor(uv geometry.Vec2) Color {
	w, h := p.Source.Shape()
	col := clampInt(int(uv.U*float32(w)), 0, w-1)
	row := clampInt(int(uv.V*float32(h)), 0, h-1)
	return p.Source.At(col, row)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
