// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the docsmith conversion
// pipeline: input files, per-tool options, results, progress reporting, and
// stage configuration.
package types

// ToolID identifies one conversion tool. Every tool is a named configuration
// of the same pipeline state machine.
type ToolID string

const (
	ToolPDFToWord   ToolID = "pdf-to-word"
	ToolMergePDF    ToolID = "merge-pdf"
	ToolSplitPDF    ToolID = "split-pdf"
	ToolCompressPDF ToolID = "compress-pdf"
	ToolPDFToImages ToolID = "pdf-to-images"
	ToolWordToPDF   ToolID = "word-to-pdf"
)

// SourceFile is one input file supplied by the caller. The pipeline borrows
// Data for the duration of a single run and never mutates it.
type SourceFile struct {
	// Name is the original filename, including extension.
	Name string `json:"name" yaml:"name"`

	// Data is the raw file content.
	Data []byte `json:"-" yaml:"-"`
}

// Size returns the byte length of the file content.
func (f SourceFile) Size() int {
	return len(f.Data)
}

// ProcessingResult is one output artifact of a pipeline run. Ownership
// transfers to the caller; the pipeline performs no further mutation.
type ProcessingResult struct {
	// Name is the suggested output filename, including extension.
	Name string `json:"name" yaml:"name"`

	// Data is the output content.
	Data []byte `json:"-" yaml:"-"`

	// Size is the byte length of Data.
	Size int `json:"size" yaml:"size"`

	// Info is an optional human-readable note about the result
	// (e.g. "reduced 1.2 MB -> 840 KB").
	Info string `json:"info,omitempty" yaml:"info,omitempty"`
}

// ProgressFunc receives progress events during a run. Percent is 0-100 and
// non-decreasing within a run; status is a short human-readable phrase.
// A nil ProgressFunc is always permitted.
type ProgressFunc func(percent int, status string)
