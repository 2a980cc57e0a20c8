// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/pkg/types"
)

var imagesCmd = &cobra.Command{
	Use:   "images [file]",
	Short: "Rasterize PDF pages to PNG or JPEG images",
	Long: `Images renders every page of one PDF to an image file. Rendering
requires a rasterization backend; the first available one is detected at
startup. Documents above the configured page limit are rejected before
any page renders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		quality, _ := cmd.Flags().GetFloat64("quality")
		scale, _ := cmd.Flags().GetFloat64("scale")

		return runTool(cmd, args, types.ToolPDFToImages, types.ProcessingOptions{
			ImageFormat:  types.ImageFormat(format),
			ImageQuality: quality,
			ImageScale:   scale,
		})
	},
}

func init() {
	imagesCmd.Flags().String("format", "png", "image format: png or jpeg")
	imagesCmd.Flags().Float64("quality", 0.9, "jpeg quality in (0,1]")
	imagesCmd.Flags().Float64("scale", 1.5, "rasterization scale factor")

	rootCmd.AddCommand(imagesCmd)
}
