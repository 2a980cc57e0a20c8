// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout provides text wrapping against a font metric function and
// the page geometry tables used by page-synthesis stages.
package layout

import "github.com/pdiddy/docsmith/pkg/types"

// Dim is a page width and height in points.
type Dim struct {
	Width  float64
	Height float64
}

// pageSizes maps page size names to dimensions in points.
var pageSizes = map[types.PageSize]Dim{
	types.PageA4:     {Width: 595.28, Height: 841.89},
	types.PageLetter: {Width: 612, Height: 792},
}

// margins maps margin names to widths in points.
var margins = map[types.Margin]float64{
	types.MarginNormal: 72,
	types.MarginNarrow: 36,
	types.MarginWide:   108,
}

// PageDim returns the dimensions for a page size name, falling back to A4
// for unrecognized names.
func PageDim(size types.PageSize) Dim {
	if d, ok := pageSizes[size]; ok {
		return d
	}
	return pageSizes[types.PageA4]
}

// MarginWidth returns the margin width for a margin name, falling back to
// normal for unrecognized names.
func MarginWidth(m types.Margin) float64 {
	if w, ok := margins[m]; ok {
		return w
	}
	return margins[types.MarginNormal]
}
