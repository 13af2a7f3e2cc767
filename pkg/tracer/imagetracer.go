// Package tracer drives a Camera and Renderer through an image, firing
// antialiased sub-sample rays per pixel and dispatching pixels in parallel.
package tracer

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/andrely/gorustracer/pkg/camera"
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/hdrimage"
	"github.com/andrely/gorustracer/pkg/random"
	"github.com/andrely/gorustracer/pkg/renderer"
)

// ImageTracer owns the HDR image being filled and the camera that produces
// the rays for it.
type ImageTracer struct {
	Image  *hdrimage.Image
	Camera camera.Camera
}

// New returns an ImageTracer over img using cam.
func New(img *hdrimage.Image, cam camera.Camera) *ImageTracer {
	return &ImageTracer{Image: img, Camera: cam}
}

// FireRay maps pixel (col,row) and a sub-pixel offset (uPixel,vPixel) in
// [0,1) to a camera ray. Row 0 is the image top; v is flipped to match.
func (it *ImageTracer) FireRay(col, row int, uPixel, vPixel float32) geometry.Ray {
	u := (float32(col) + uPixel) / float32(it.Image.Width)
	v := 1 - (float32(row)+vPixel)/float32(it.Image.Height)
	return it.Camera.FireRay(u, v)
}

type subSample struct {
	col, row       int
	uPixel, vPixel float32
}

// FireAllRays renders every pixel using r at the given antialiasing level
// (aaLevel x aaLevel sub-samples per pixel), dispatching pixels across a
// work-stealing pool. initState/initSeq seed the driver PCG that assigns
// every sub-sample jitter and every pixel's RNG stream id, so the final
// image is identical regardless of worker scheduling.
func (it *ImageTracer) FireAllRays(r renderer.Renderer, initState, initSeq uint64, aaLevel int) {
	if aaLevel < 1 {
		aaLevel = 1
	}

	driver := random.NewPcg(initState, initSeq)

	width, height := it.Image.Width, it.Image.Height
	samples := make([][]subSample, width*height)
	streamIDs := make([]uint32, width*height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			idx := row*width + col
			subs := make([]subSample, 0, aaLevel*aaLevel)
			for subRow := 0; subRow < aaLevel; subRow++ {
				for subCol := 0; subCol < aaLevel; subCol++ {
					xi := driver.NextFloat32()
					eta := driver.NextFloat32()
					subs = append(subs, subSample{
						col:    col,
						row:    row,
						uPixel: (float32(subCol) + eta) / float32(aaLevel),
						vPixel: (float32(subRow) + xi) / float32(aaLevel),
					})
				}
			}
			samples[idx] = subs
			streamIDs[idx] = driver.NextU32()
		}
	}

	pool := pond.NewPool(runtime.NumCPU())
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	wg.Add(width * height)

	for idx := 0; idx < width*height; idx++ {
		idx := idx
		pool.Submit(func() {
			defer wg.Done()

			pcg := random.NewPcg(initState, uint64(streamIDs[idx]))
			subs := samples[idx]

			sum := color.Black
			for _, s := range subs {
				ray := it.FireRay(s.col, s.row, s.uPixel, s.vPixel)
				sum = sum.Add(r.Solve(ray, pcg))
			}
			avg := sum.Scale(1 / float32(len(subs)))

			row := idx / width
			col := idx % width
			_ = it.Image.SetPixel(col, row, avg)
		})
	}

	wg.Wait()
}
