// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a PDF into pages or extract a page range",
	Long: `Split partitions one PDF. In pages mode (the default) every page
becomes its own document. In range mode the inclusive --from/--to range
becomes a single document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")

		return runTool(cmd, args, types.ToolSplitPDF, types.ProcessingOptions{
			SplitType: types.SplitType(mode),
			FromPage:  from,
			ToPage:    to,
		})
	},
}

func init() {
	splitCmd.Flags().String("mode", "pages", "split mode: pages or range")
	splitCmd.Flags().Int("from", 0, "first page of the range (1-based, range mode)")
	splitCmd.Flags().Int("to", 0, "last page of the range (inclusive, range mode)")

	rootCmd.AddCommand(splitCmd)
}
