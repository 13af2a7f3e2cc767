// Package hdrimage holds the float-RGB pixel grid and its tone-mapping
// operations: average luminosity, normalization and soft clamping.
package hdrimage

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/color"
)

// OutOfBoundsError is returned by GetPixel/SetPixel on an invalid
// coordinate.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (%d,%d) out of bounds for %dx%d image", e.X, e.Y, e.Width, e.Height)
}

// InvalidPixelsSizeError is returned by SetPixels when the replacement
// slice's length does not match Width*Height.
type InvalidPixelsSizeError struct {
	Got, Expected int
}

func (e *InvalidPixelsSizeError) Error() string {
	return fmt.Sprintf("invalid pixels size: got %d, expected %d", e.Got, e.Expected)
}

// Image is a row-major 2D float-RGB grid.
type Image struct {
	Width, Height int
	Pixels        []color.Color
}

// New allocates a Width x Height image with every pixel set to Black.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]color.Color, width*height),
	}
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

// GetPixel returns the pixel at (x,y).
func (img *Image) GetPixel(x, y int) (color.Color, error) {
	if !img.inBounds(x, y) {
		return color.Black, &OutOfBoundsError{X: x, Y: y, Width: img.Width, Height: img.Height}
	}
	return img.Pixels[y*img.Width+x], nil
}

// SetPixel sets the pixel at (x,y).
func (img *Image) SetPixel(x, y int, c color.Color) error {
	if !img.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Width: img.Width, Height: img.Height}
	}
	img.Pixels[y*img.Width+x] = c
	return nil
}

// SetPixels bulk-replaces the pixel buffer. It fails if the new slice's
// length doesn't match Width*Height.
func (img *Image) SetPixels(pixels []color.Color) error {
	expected := img.Width * img.Height
	if len(pixels) != expected {
		return &InvalidPixelsSizeError{Got: len(pixels), Expected: expected}
	}
	img.Pixels = pixels
	return nil
}

// Shape implements color.PixelSource.
func (img *Image) Shape() (int, int) { return img.Width, img.Height }

// At implements color.PixelSource.
func (img *Image) At(col, row int) color.Color {
	return img.Pixels[row*img.Width+col]
}

// AverageLuminosity computes 10^(mean(log10(delta + luminosity(p)))).
func (img *Image) AverageLuminosity() float32 {
	const delta = 1e-10
	var sum float32
	for _, p := range img.Pixels {
		sum += math32.Log10(delta + p.Luminosity())
	}
	n := float32(len(img.Pixels))
	return math32.Pow(10, sum/n)
}

// NormalizeStrategy selects how normalize derives its reference
// luminosity.
type NormalizeStrategy struct {
	fixed    bool
	override float32
}

// AverageStrategy normalizes against the image's own average luminosity.
func AverageStrategy() NormalizeStrategy { return NormalizeStrategy{} }

// FixedStrategy normalizes against an externally supplied luminosity.
func FixedStrategy(value float32) NormalizeStrategy {
	return NormalizeStrategy{fixed: true, override: value}
}

// Normalize scales every pixel by factor/referenceLuminosity.
func (img *Image) Normalize(factor float32, strategy NormalizeStrategy) {
	lum := strategy.override
	if !strategy.fixed {
		lum = img.AverageLuminosity()
	}
	scale := factor / lum
	for i, p := range img.Pixels {
		img.Pixels[i] = p.Scale(scale)
	}
}

// Clamp applies the Reinhard-style soft clamp c/(1+c) to every channel.
func (img *Image) Clamp() {
	clampChannel := func(c float32) float32 { return c / (1 + c) }
	for i, p := range img.Pixels {
		img.Pixels[i] = color.New(clampChannel(p.R), clampChannel(p.G), clampChannel(p.B))
	}
}
