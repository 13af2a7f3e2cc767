package codec

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/hdrimage"
)

func TestWriteFarbfeldHeader(t *testing.T) {
	img := hdrimage.New(2, 1)
	require.NoError(t, img.SetPixel(0, 0, color.New(1, 1, 1)))
	require.NoError(t, img.SetPixel(1, 0, color.Black))

	var buf bytes.Buffer
	require.NoError(t, WriteFarbfeld(&buf, img, 1.0))

	data := buf.Bytes()
	require.Len(t, data, 16+2*4*2)
	assert.Equal(t, "farbfeld", string(data[:8]))
}

func TestGammaEncodeClamps(t *testing.T) {
	assert.Equal(t, uint16(0), gammaEncode(-1, 1))
	assert.Equal(t, uint16(65535), gammaEncode(2, 1))
	assert.Equal(t, uint16(65535), gammaEncode(1, 2.2))
}

func TestWritePNGProducesValidImage(t *testing.T) {
	img := hdrimage.New(4, 4)
	for i := range img.Pixels {
		img.Pixels[i] = color.New(0.5, 0.5, 0.5)
	}

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img, 2.2))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 4, decoded.Bounds().Dy())
}

func TestToneMapBringsValuesIntoUnitRange(t *testing.T) {
	img := hdrimage.New(2, 1)
	require.NoError(t, img.SetPixel(0, 0, color.New(5, 10, 15)))
	require.NoError(t, img.SetPixel(1, 0, color.New(500, 1000, 1500)))

	ToneMap(img, 1000)

	for _, p := range img.Pixels {
		assert.True(t, p.R >= 0 && p.R < 1)
		assert.True(t, p.G >= 0 && p.G < 1)
		assert.True(t, p.B >= 0 && p.B < 1)
	}
}
