// Package color provides the unbounded HDR Color triple and the pigments
// that map a surface parametric coordinate to one.
package color

import (
	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/geometry"
)

// Color is an unbounded linear RGB triple.
type Color struct {
	R, G, B float32
}

// Black is the additive identity.
var Black = Color{0, 0, 0}

// White is unit reflectance/emission.
var White = Color{1, 1, 1}

// New builds a Color from components.
func New(r, g, b float32) Color { return Color{r, g, b} }

// Add returns c+other.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the component-wise product of c and other.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns c scaled by a scalar.
func (c Color) Scale(factor float32) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

// Luminosity returns (max+min)/2 over the channels.
func (c Color) Luminosity() float32 {
	max := math32.Max(c.R, math32.Max(c.G, c.B))
	min := math32.Min(c.R, math32.Min(c.G, c.B))
	return (max + min) / 2
}

// IsClose reports whether c and other are equal within geometry.Epsilon.
func (c Color) IsClose(other Color) bool {
	return math32.Abs(c.R-other.R) < geometry.Epsilon &&
		math32.Abs(c.G-other.G) < geometry.Epsilon &&
		math32.Abs(c.B-other.B) < geometry.Epsilon
}
