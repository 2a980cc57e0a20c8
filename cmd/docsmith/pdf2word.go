// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/pkg/types"
)

var pdf2wordCmd = &cobra.Command{
	Use:   "pdf2word [file]",
	Short: "Reconstruct a PDF's text as a Word document",
	Long: `Pdf2word extracts positioned text from one PDF, groups it into
headings and paragraphs by font size and position, and writes the result
as a .docx. Scanned pages without a text layer come out empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, types.ToolPDFToWord, types.ProcessingOptions{})
	},
}

func init() {
	rootCmd.AddCommand(pdf2wordCmd)
}
