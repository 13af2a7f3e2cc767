package codec

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/andrely/gorustracer/pkg/hdrimage"
)

var farbfeldMagic = [8]byte{'f', 'a', 'r', 'b', 'f', 'e', 'l', 'd'}

// gammaEncode maps a clamped [0,1) linear channel to a display-referred
// 16-bit sample via the given gamma exponent.
func gammaEncode(c, gamma float32) uint16 {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return uint16(math32.Pow(c, 1/gamma) * 65535)
}

// WriteFarbfeld writes img (already normalized and clamped to [0,1)) as a
// Farbfeld raster, encoding each channel with the given gamma. Farbfeld has
// no ecosystem Go encoder, unlike PNG, so this is written directly against
// the format's 16-byte header plus row-major RGBA16 layout.
func WriteFarbfeld(w io.Writer, img *hdrimage.Image, gamma float32) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(farbfeldMagic[:]); err != nil {
		return errors.Wrap(err, "write farbfeld magic")
	}

	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(img.Width))
	binary.BigEndian.PutUint32(dims[4:8], uint32(img.Height))
	if _, err := bw.Write(dims[:]); err != nil {
		return errors.Wrap(err, "write farbfeld dimensions")
	}

	var pixel [8]byte
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			p, err := img.GetPixel(col, row)
			if err != nil {
				return errors.Wrap(err, "write farbfeld pixel")
			}
			binary.BigEndian.PutUint16(pixel[0:2], gammaEncode(p.R, gamma))
			binary.BigEndian.PutUint16(pixel[2:4], gammaEncode(p.G, gamma))
			binary.BigEndian.PutUint16(pixel[4:6], gammaEncode(p.B, gamma))
			binary.BigEndian.PutUint16(pixel[6:8], 0xffff)
			if _, err := bw.Write(pixel[:]); err != nil {
				return errors.Wrap(err, "write farbfeld sample")
			}
		}
	}

	return errors.Wrap(bw.Flush(), "flush farbfeld")
}

// WritePNG writes img (already normalized and clamped to [0,1)) as an
// 8-bit PNG, encoding each channel with the given gamma, via the standard
// library's image/png encoder.
func WritePNG(w io.Writer, img *hdrimage.Image, gamma float32) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			p, err := img.GetPixel(col, row)
			if err != nil {
				return errors.Wrap(err, "read pixel for png")
			}
			out.Set(col, row, color.RGBA{
				R: uint8(gammaEncode(p.R, gamma) >> 8),
				G: uint8(gammaEncode(p.G, gamma) >> 8),
				B: uint8(gammaEncode(p.B, gamma) >> 8),
				A: 0xff,
			})
		}
	}

	return errors.Wrap(png.Encode(w, out), "encode png")
}

// ToneMap normalizes img in place against factor and the image's own
// average luminosity, then applies the Reinhard-style soft clamp, readying
// it for LDR encoding.
func ToneMap(img *hdrimage.Image, factor float32) {
	img.Normalize(factor, hdrimage.AverageStrategy())
	img.Clamp()
}
