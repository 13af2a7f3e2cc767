// Package cmd wires the cobra CLI surface: the render and convert
// subcommands that front the core renderer and HDR/LDR codecs.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "gorustracer",
	Short: "gorustracer is an offline physically-based path-tracing renderer",
	Long:  "gorustracer renders scenes with a Monte Carlo path tracer and converts the resulting HDR images to LDR rasters.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
		}

		l, err := cfg.Build()
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose development logging")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
}

// Execute runs the root command, exiting with status 1 on error.
func Execute() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
