// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc adapts the pdfcpu codec into the page-structured document
// model the pipeline stages build on: load, page subset copy, merge, blank
// page synthesis, and serialization.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/docsmith/internal/layout"
)

var (
	// ErrCorruptDocument reports input bytes that do not parse as a PDF.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrInvalidPageRange reports a page index or range outside the document.
	ErrInvalidPageRange = errors.New("invalid page range")
)

// Document is an in-memory page-structured PDF. Instances are created and
// discarded within a single pipeline run; operations never mutate the
// receiver, they return new documents.
type Document struct {
	data      []byte
	pageCount int
}

// newConfiguration returns the pdfcpu configuration shared by all
// operations. Relaxed validation accepts the mildly out-of-spec files real
// users upload.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Load parses data as a PDF and returns its document model. Bytes that do
// not validate fail with ErrCorruptDocument.
func Load(data []byte) (*Document, error) {
	rs := bytes.NewReader(data)
	if err := api.Validate(rs, newConfiguration()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	n, err := api.PageCount(rs, newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return &Document{data: data, pageCount: n}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.pageCount
}

// Bytes returns the current serialized form.
func (d *Document) Bytes() []byte {
	return d.data
}

// PageDims returns each page's media box dimensions in points, in page
// order.
func (d *Document) PageDims() ([]layout.Dim, error) {
	dims, err := api.PageDims(bytes.NewReader(d.data), newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions: %w", err)
	}
	out := make([]layout.Dim, len(dims))
	for i, dim := range dims {
		out[i] = layout.Dim{Width: dim.Width, Height: dim.Height}
	}
	return out, nil
}

// CopyPages returns a new document holding copies of the pages at the given
// 0-based indices, in the order given. Every index must satisfy
// 0 <= index < PageCount; any other index fails with ErrInvalidPageRange
// before any page is copied.
func (d *Document) CopyPages(indices []int) (*Document, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: empty page selection", ErrInvalidPageRange)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= d.pageCount {
			return nil, fmt.Errorf("%w: page index %d outside [0,%d)",
				ErrInvalidPageRange, idx, d.pageCount)
		}
	}

	if sel, ok := contiguousSelection(indices); ok {
		return d.trim(sel)
	}

	// Arbitrary order: copy each page separately, then stitch in order.
	parts := make([]*Document, 0, len(indices))
	for _, idx := range indices {
		part, err := d.trim(fmt.Sprintf("%d", idx+1))
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return Merge(parts...)
}

// contiguousSelection reports whether indices form an ascending run of
// consecutive pages and, if so, returns the 1-based pdfcpu selection string.
func contiguousSelection(indices []int) (string, bool) {
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[i-1]+1 {
			return "", false
		}
	}
	if len(indices) == 1 {
		return fmt.Sprintf("%d", indices[0]+1), true
	}
	return fmt.Sprintf("%d-%d", indices[0]+1, indices[len(indices)-1]+1), true
}

// trim returns a new document holding the pages named by the 1-based pdfcpu
// page selection.
func (d *Document) trim(selection string) (*Document, error) {
	var buf bytes.Buffer
	if err := api.Trim(bytes.NewReader(d.data), &buf, []string{selection}, newConfiguration()); err != nil {
		return nil, fmt.Errorf("copying pages %s: %w", selection, err)
	}
	return Load(buf.Bytes())
}

// Merge concatenates the given documents into a new one. Page order is the
// documents' order with each document's pages unmodified.
func Merge(docs ...*Document) (*Document, error) {
	if len(docs) == 0 {
		return nil, errors.New("merge requires at least one document")
	}
	if len(docs) == 1 {
		return Load(docs[0].data)
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, doc := range docs {
		readers[i] = bytes.NewReader(doc.data)
	}
	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, newConfiguration()); err != nil {
		return nil, fmt.Errorf("merging %d documents: %w", len(docs), err)
	}
	return Load(buf.Bytes())
}

// NewBlank returns a document of n empty pages, each width x height points.
func NewBlank(width, height float64, n int) (*Document, error) {
	if n < 1 {
		return nil, errors.New("blank document needs at least one page")
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	for i := 0; i < n; i++ {
		pdf.AddPage()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("synthesizing blank pages: %w", err)
	}
	return Load(buf.Bytes())
}

// AppendBlank returns a new document with one empty width x height page
// added after the receiver's pages.
func (d *Document) AppendBlank(width, height float64) (*Document, error) {
	blank, err := NewBlank(width, height, 1)
	if err != nil {
		return nil, err
	}
	return Merge(d, blank)
}

// SaveOptions controls serialization.
type SaveOptions struct {
	// ObjectStreams enables object and cross-reference streams, the
	// compact serialized form.
	ObjectStreams bool

	// DedupContent additionally collapses duplicate content streams.
	DedupContent bool
}

// Save serializes the document through the codec's optimizer. Output is
// deterministic for identical input and options, modulo the producer
// timestamp metadata the codec stamps.
func (d *Document) Save(opts SaveOptions) ([]byte, error) {
	conf := newConfiguration()
	conf.WriteObjectStream = opts.ObjectStreams
	conf.WriteXRefStream = opts.ObjectStreams
	conf.OptimizeDuplicateContentStreams = opts.DedupContent

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(d.data), &buf, conf); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return buf.Bytes(), nil
}
