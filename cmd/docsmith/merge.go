// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge multiple PDF files into one",
	Long: `Merge concatenates the given PDF files into a single document in
argument order. A single input is passed through unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, types.ToolMergePDF, types.ProcessingOptions{})
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
