// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/pkg/types"
)

var word2pdfCmd = &cobra.Command{
	Use:   "word2pdf [file]",
	Short: "Render a Word document to PDF",
	Long: `Word2pdf parses one .docx and paints its paragraphs, headings, lists,
and tables onto synthesized pages with page numbers. Characters outside
the built-in font encoding degrade to placeholder glyphs with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pageSize, _ := cmd.Flags().GetString("page-size")
		margin, _ := cmd.Flags().GetString("margin")

		return runTool(cmd, args, types.ToolWordToPDF, types.ProcessingOptions{
			PageSize: types.PageSize(pageSize),
			Margin:   types.Margin(margin),
		})
	},
}

func init() {
	word2pdfCmd.Flags().String("page-size", "A4", "page size: A4 or Letter")
	word2pdfCmd.Flags().String("margin", "normal", "page margin: normal, narrow, or wide")

	rootCmd.AddCommand(word2pdfCmd)
}
