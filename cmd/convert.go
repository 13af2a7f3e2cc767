package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrely/gorustracer/pkg/codec"
)

var convertFlags struct {
	factor float32
	gamma  float32
}

var convertCmd = &cobra.Command{
	Use:   "convert HDR LDR",
	Short: "convert an HDR (pfm) image to an LDR (ff|png) image",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.Float32VarP(&convertFlags.factor, "factor", "f", 0.2, "luminosity normalization factor")
	f.Float32VarP(&convertFlags.gamma, "gamma", "g", 1.0, "gamma transfer function parameter")
}

func runConvert(cmd *cobra.Command, args []string) error {
	hdrPath, ldrPath := args[0], args[1]

	in, err := os.Open(hdrPath)
	if err != nil {
		return errors.Wrap(err, "open hdr input")
	}
	defer in.Close()

	img, err := codec.ReadPFM(in)
	if err != nil {
		return errors.Wrap(err, "read pfm")
	}

	codec.ToneMap(img, convertFlags.factor)

	out, err := os.Create(ldrPath)
	if err != nil {
		return errors.Wrap(err, "create ldr output")
	}
	defer out.Close()

	if strings.HasSuffix(ldrPath, ".ff") {
		err = codec.WriteFarbfeld(out, img, convertFlags.gamma)
	} else {
		err = codec.WritePNG(out, img, convertFlags.gamma)
	}
	if err != nil {
		return errors.Wrap(err, "write ldr image")
	}

	logger.Info("converted image",
		zap.String("hdr", hdrPath),
		zap.String("ldr", ldrPath),
		zap.Float32("factor", convertFlags.factor),
		zap.Float32("gamma", convertFlags.gamma),
	)
	return nil
}
