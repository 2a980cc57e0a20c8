// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"

	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/internal/raster"
)

// Validation errors, raised before any byte processing begins.
var (
	// ErrUnknownTool reports a tool identifier with no registered pipeline.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrEmptyInput reports a run dispatched with no input files.
	ErrEmptyInput = errors.New("no input files")

	// ErrUnsupportedFormat reports an input file outside the tool's
	// accepted set.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// Mid-pipeline errors surfaced from the stages that own them.
var (
	ErrInvalidPageRange  = pdfdoc.ErrInvalidPageRange
	ErrCorruptDocument   = pdfdoc.ErrCorruptDocument
	ErrPageLimitExceeded = raster.ErrPageLimitExceeded
)
