// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/pkg/types"
)

var compressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Reduce a PDF's file size",
	Long: `Compress rewrites a PDF with structural optimization. Compression is
best effort: if the rewrite is not smaller, the original bytes are kept
and the result notes that no reduction was possible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")

		return runTool(cmd, args, types.ToolCompressPDF, types.ProcessingOptions{
			CompressionLevel: level,
		})
	},
}

func init() {
	compressCmd.Flags().Int("level", 2, "compression aggressiveness: 1 (light) to 3 (maximum)")

	rootCmd.AddCommand(compressCmd)
}
