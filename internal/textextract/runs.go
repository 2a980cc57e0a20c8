// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textextract reads positioned text runs from PDF pages and groups
// them into logical blocks (headings, paragraphs) by spatial proximity.
package textextract

import (
	"bytes"
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"
)

// TextRun is one positioned fragment of page text. Y is the baseline with
// origin at the bottom-left of the page. Runs are ephemeral; they are
// discarded after block grouping.
type TextRun struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	FontSize float64
	FontName string
}

// Reader extracts text runs from a parsed PDF.
type Reader struct {
	r *rpdf.Reader
}

// Open parses data and returns a run reader.
func Open(data []byte) (*Reader, error) {
	r, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF for text extraction: %w", err)
	}
	return &Reader{r: r}, nil
}

// NumPages returns the page count.
func (r *Reader) NumPages() int {
	return r.r.NumPage()
}

// PageRuns returns the text runs of the 0-based page, in content order.
// Zero-length and whitespace-only runs are dropped. Pages the underlying
// parser cannot decode yield an error rather than a panic.
func (r *Reader) PageRuns(pageIndex int) (runs []TextRun, err error) {
	if pageIndex < 0 || pageIndex >= r.r.NumPage() {
		return nil, fmt.Errorf("page index %d outside document", pageIndex)
	}

	// The parser panics on some malformed content streams; surface that
	// as a per-page error so one bad page does not kill the whole run.
	defer func() {
		if rec := recover(); rec != nil {
			runs = nil
			err = fmt.Errorf("decoding page %d content: %v", pageIndex+1, rec)
		}
	}()

	page := r.r.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	runs = make([]TextRun, 0, len(content.Text))
	for _, txt := range content.Text {
		if strings.TrimSpace(txt.S) == "" {
			continue
		}
		runs = append(runs, TextRun{
			Text:     txt.S,
			X:        txt.X,
			Y:        txt.Y,
			Width:    txt.W,
			FontSize: txt.FontSize,
			FontName: txt.Font,
		})
	}
	return runs, nil
}

// PageHeight returns the 0-based page's media box height in points, or a
// default A4 height when the page does not declare one.
func (r *Reader) PageHeight(pageIndex int) float64 {
	const a4Height = 841.89
	if pageIndex < 0 || pageIndex >= r.r.NumPage() {
		return a4Height
	}
	page := r.r.Page(pageIndex + 1)
	box := page.V.Key("MediaBox")
	if box.Len() != 4 {
		return a4Height
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return a4Height
	}
	return h
}
