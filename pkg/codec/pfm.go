// Package codec implements the HDR and LDR raster formats the renderer's
// host reads and writes: PFM for HDR round-tripping, and Farbfeld and PNG
// for tone-mapped LDR output.
package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/hdrimage"
)

// nativeEndian is little-endian on every platform this renderer targets.
var nativeEndian = binary.LittleEndian

// WritePFM writes img as a color PFM (magic "PF"), bottom row first, each
// scanline stored as W float32 RGB triples. The endianness line encodes
// little-endian as a negative scale factor.
func WritePFM(w io.Writer, img *hdrimage.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", img.Width, img.Height); err != nil {
		return errors.Wrap(err, "write pfm header")
	}

	buf := make([]byte, 4)
	for row := img.Height - 1; row >= 0; row-- {
		for col := 0; col < img.Width; col++ {
			p, err := img.GetPixel(col, row)
			if err != nil {
				return errors.Wrap(err, "write pfm pixel")
			}
			for _, c := range [3]float32{p.R, p.G, p.B} {
				nativeEndian.PutUint32(buf, math.Float32bits(c))
				if _, err := bw.Write(buf); err != nil {
					return errors.Wrap(err, "write pfm sample")
				}
			}
		}
	}

	return errors.Wrap(bw.Flush(), "flush pfm")
}

// ReadPFM reads a color PFM image written by WritePFM (or any PFM with the
// "PF" magic).
func ReadPFM(r io.Reader) (*hdrimage.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readLine(br)
	if err != nil {
		return nil, errors.Wrap(err, "read pfm magic")
	}
	if magic != "PF" {
		return nil, errors.Errorf("not a color pfm file: magic %q", magic)
	}

	dims, err := readLine(br)
	if err != nil {
		return nil, errors.Wrap(err, "read pfm dimensions")
	}
	var width, height int
	if _, err := fmt.Sscanf(dims, "%d %d", &width, &height); err != nil {
		return nil, errors.Wrapf(err, "parse pfm dimensions %q", dims)
	}

	scaleLine, err := readLine(br)
	if err != nil {
		return nil, errors.Wrap(err, "read pfm scale")
	}
	var scale float64
	if _, err := fmt.Sscanf(scaleLine, "%g", &scale); err != nil {
		return nil, errors.Wrapf(err, "parse pfm scale %q", scaleLine)
	}

	endian := binary.ByteOrder(binary.BigEndian)
	if scale < 0 {
		endian = binary.LittleEndian
	}

	img := hdrimage.New(width, height)
	buf := make([]byte, 4)

	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			var rgb [3]float32
			for i := range rgb {
				if _, err := io.ReadFull(br, buf); err != nil {
					return nil, errors.Wrap(err, "read pfm sample")
				}
				rgb[i] = math.Float32frombits(endian.Uint32(buf))
			}
			if err := img.SetPixel(col, row, color.New(rgb[0], rgb[1], rgb[2])); err != nil {
				return nil, errors.Wrap(err, "set pfm pixel")
			}
		}
	}

	return img, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
