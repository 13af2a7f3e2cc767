package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrely/gorustracer/pkg/codec"
	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/hdrimage"
	"github.com/andrely/gorustracer/pkg/renderer"
	"github.com/andrely/gorustracer/pkg/scene"
	"github.com/andrely/gorustracer/pkg/tracer"
)

var renderFlags struct {
	scene        string
	output       string
	width        int
	height       int
	angleDeg     float32
	factor       float32
	gamma        float32
	algorithm    string
	numOfRays    int
	maxDepth     uint32
	rrLimit      uint32
	initState    uint64
	initSeq      uint64
	antiAliasing int
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "render a built-in scene to an LDR image",
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.scene, "scene", "onoff", "scene to render: furnace, onoff, flat, checkered, cornell")
	f.StringVar(&renderFlags.output, "output", "out.png", "output file path (.png or .ff for farbfeld)")
	f.IntVar(&renderFlags.width, "width", 640, "image width in pixels")
	f.IntVar(&renderFlags.height, "height", 480, "image height in pixels")
	f.Float32Var(&renderFlags.angleDeg, "angle_deg", 0, "additional camera roll around the view axis, in degrees")
	f.Float32Var(&renderFlags.factor, "factor", 1.0, "tone-mapping scale factor")
	f.Float32Var(&renderFlags.gamma, "gamma", 1.0, "gamma exponent for LDR encoding")
	f.StringVar(&renderFlags.algorithm, "algorithm", "pathtracer", "onoff, flat, or pathtracer")
	f.IntVar(&renderFlags.numOfRays, "num_of_rays", 1, "scatter rays per bounce")
	f.Uint32Var(&renderFlags.maxDepth, "max_depth", 5, "hard path-depth cap")
	f.Uint32Var(&renderFlags.rrLimit, "rr_limit", 3, "depth at which Russian roulette starts")
	f.Uint64Var(&renderFlags.initState, "init_state", 42, "PCG driver init_state")
	f.Uint64Var(&renderFlags.initSeq, "init_seq", 54, "PCG driver init_seq")
	f.IntVar(&renderFlags.antiAliasing, "anti_aliasing", 1, "antialiasing grid size per pixel (NxN sub-samples)")
}

func runRender(cmd *cobra.Command, args []string) error {
	aspectRatio := float32(renderFlags.width) / float32(renderFlags.height)

	sc, err := buildScene(renderFlags.scene, aspectRatio)
	if err != nil {
		return err
	}

	if renderFlags.angleDeg != 0 {
		logger.Info("camera roll is a host responsibility", zap.Float32("angle_deg", renderFlags.angleDeg))
	}

	r, err := buildRenderer(renderFlags.algorithm, sc)
	if err != nil {
		return err
	}

	img := hdrimage.New(renderFlags.width, renderFlags.height)
	it := tracer.New(img, sc.Camera)

	logger.Info("rendering",
		zap.String("scene", renderFlags.scene),
		zap.String("algorithm", renderFlags.algorithm),
		zap.Int("width", renderFlags.width),
		zap.Int("height", renderFlags.height),
		zap.Int("anti_aliasing", renderFlags.antiAliasing),
	)

	it.FireAllRays(r, renderFlags.initState, renderFlags.initSeq, renderFlags.antiAliasing)

	codec.ToneMap(img, renderFlags.factor)

	out, err := os.Create(renderFlags.output)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer out.Close()

	if strings.HasSuffix(renderFlags.output, ".ff") {
		err = codec.WriteFarbfeld(out, img, renderFlags.gamma)
	} else {
		err = codec.WritePNG(out, img, renderFlags.gamma)
	}
	if err != nil {
		return errors.Wrap(err, "write ldr image")
	}

	logger.Info("wrote image", zap.String("path", renderFlags.output))
	return nil
}

func buildScene(name string, aspectRatio float32) (*scene.Scene, error) {
	switch name {
	case "furnace":
		return scene.NewFurnaceScene(0.7, 0.3, aspectRatio), nil
	case "onoff":
		return scene.NewOnOffDemoScene(aspectRatio), nil
	case "flat":
		return scene.NewOnOffDemoScene(aspectRatio), nil
	case "checkered":
		return scene.NewCheckeredPlaneScene(aspectRatio), nil
	case "cornell":
		return scene.NewCornellDiffuseScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func buildRenderer(algorithm string, sc *scene.Scene) (renderer.Renderer, error) {
	bg := color.Black

	switch algorithm {
	case "onoff":
		return renderer.OnOff{World: sc.World, Bg: bg, Fg: color.White}, nil
	case "flat":
		return renderer.Flat{World: sc.World, Bg: bg}, nil
	case "pathtracer":
		return renderer.PathTracer{
			World:    sc.World,
			Bg:       bg,
			NumRays:  renderFlags.numOfRays,
			MaxDepth: renderFlags.maxDepth,
			RrLimit:  renderFlags.rrLimit,
		}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
