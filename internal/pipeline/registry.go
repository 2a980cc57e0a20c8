// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"sort"

	"github.com/pdiddy/docsmith/pkg/types"
)

// runFunc executes one tool's stage sequence against a validated run state.
type runFunc func(r *Runner, st *runState) ([]types.ProcessingResult, error)

// toolSpec is one named configuration of the pipeline state machine: the
// accepted inputs plus the stage implementation plugged in. Every tool is an
// entry in the registry, not a branch in the orchestrator.
type toolSpec struct {
	id          types.ToolID
	description string

	// extensions lists accepted filename extensions, lowercase with dot.
	extensions []string

	// minFiles and maxFiles bound the input file count; maxFiles 0 means
	// unbounded.
	minFiles int
	maxFiles int

	run runFunc
}

// registry maps tool identifiers to their pipeline configuration. Adding a
// tool means adding an entry here; the orchestrator does not change.
var registry = map[types.ToolID]toolSpec{
	types.ToolMergePDF: {
		id:          types.ToolMergePDF,
		description: "Merge PDF files into one document, in input order",
		extensions:  []string{".pdf"},
		minFiles:    1,
		run:         runMerge,
	},
	types.ToolSplitPDF: {
		id:          types.ToolSplitPDF,
		description: "Split a PDF into single pages or extract a page range",
		extensions:  []string{".pdf"},
		minFiles:    1,
		maxFiles:    1,
		run:         runSplit,
	},
	types.ToolCompressPDF: {
		id:          types.ToolCompressPDF,
		description: "Rewrite a PDF through the optimizer to shrink it (best effort)",
		extensions:  []string{".pdf"},
		minFiles:    1,
		maxFiles:    1,
		run:         runCompress,
	},
	types.ToolPDFToImages: {
		id:          types.ToolPDFToImages,
		description: "Rasterize PDF pages to PNG or JPEG images",
		extensions:  []string{".pdf"},
		minFiles:    1,
		maxFiles:    1,
		run:         runImages,
	},
	types.ToolPDFToWord: {
		id:          types.ToolPDFToWord,
		description: "Reconstruct a PDF's text as a Word document",
		extensions:  []string{".pdf"},
		minFiles:    1,
		maxFiles:    1,
		run:         runPDFToWord,
	},
	types.ToolWordToPDF: {
		id:          types.ToolWordToPDF,
		description: "Render a Word document (.docx) to PDF",
		extensions:  []string{".docx"},
		minFiles:    1,
		maxFiles:    1,
		run:         runWordToPDF,
	},
}

// ToolInfo describes one registered tool for discovery surfaces.
type ToolInfo struct {
	ID          types.ToolID `json:"id" yaml:"id"`
	Description string       `json:"description" yaml:"description"`
	Extensions  []string     `json:"extensions" yaml:"extensions"`
}

// Tools lists the registered tools in identifier order.
func Tools() []ToolInfo {
	infos := make([]ToolInfo, 0, len(registry))
	for _, spec := range registry {
		infos = append(infos, ToolInfo{
			ID:          spec.id,
			Description: spec.description,
			Extensions:  spec.extensions,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
