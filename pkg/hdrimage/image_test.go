package hdrimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrely/gorustracer/pkg/color"
)

func TestNewImageIsBlack(t *testing.T) {
	img := New(3, 2)
	assert.Len(t, img.Pixels, 6)
	for _, p := range img.Pixels {
		assert.True(t, p.IsClose(color.Black))
	}
}

func TestGetSetPixel(t *testing.T) {
	img := New(2, 2)
	require.NoError(t, img.SetPixel(1, 0, color.New(1, 2, 3)))

	got, err := img.GetPixel(1, 0)
	require.NoError(t, err)
	assert.True(t, got.IsClose(color.New(1, 2, 3)))
}

func TestGetPixelOutOfBounds(t *testing.T) {
	img := New(2, 2)
	_, err := img.GetPixel(5, 0)
	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
}

func TestSetPixelsWrongLength(t *testing.T) {
	img := New(2, 2)
	err := img.SetPixels([]color.Color{color.White})
	var sizeErr *InvalidPixelsSizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestNormalizeThenClamp(t *testing.T) {
	img := New(2, 1)
	require.NoError(t, img.SetPixel(0, 0, color.New(5, 10, 15)))
	require.NoError(t, img.SetPixel(1, 0, color.New(500, 1000, 1500)))

	img.Normalize(1000, FixedStrategy(100))

	p0, _ := img.GetPixel(0, 0)
	p1, _ := img.GetPixel(1, 0)
	assert.True(t, p0.IsClose(color.New(50, 100, 150)))
	assert.True(t, p1.IsClose(color.New(5000, 10000, 15000)))

	img.Clamp()
	for _, p := range img.Pixels {
		assert.True(t, p.R >= 0 && p.R < 1)
		assert.True(t, p.G >= 0 && p.G < 1)
		assert.True(t, p.B >= 0 && p.B < 1)
	}
}

func TestAverageLuminosity(t *testing.T) {
	img := New(2, 1)
	require.NoError(t, img.SetPixel(0, 0, color.New(1, 1, 1)))
	require.NoError(t, img.SetPixel(1, 0, color.New(1, 1, 1)))
	assert.InDelta(t, float32(1), img.AverageLuminosity(), 1e-4)
}

func TestImageSatisfiesPixelSource(t *testing.T) {
	img := New(2, 2)
	require.NoError(t, img.SetPixel(1, 1, color.New(9, 9, 9)))
	var src color.PixelSource = img
	w, h := src.Shape()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.True(t, src.At(1, 1).IsClose(color.New(9, 9, 9)))
}
