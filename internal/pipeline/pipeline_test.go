// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/internal/raster"
	"github.com/pdiddy/docsmith/internal/testutil"
	"github.com/pdiddy/docsmith/pkg/types"
)

// fakeRaster renders flat gray pages without any native dependency.
type fakeRaster struct{}

func (fakeRaster) Name() string     { return "fake" }
func (fakeRaster) Available() bool  { return true }
func (fakeRaster) Open(data []byte) (raster.Pages, error) {
	doc, err := pdfdoc.Load(data)
	if err != nil {
		return nil, err
	}
	return &fakePages{count: doc.PageCount()}, nil
}

type fakePages struct {
	count    int
	rendered int
}

func (p *fakePages) Count() int { return p.count }

func (p *fakePages) Render(pageIndex int, scale float64) (image.Image, error) {
	p.rendered++
	side := int(100 * scale)
	return image.NewRGBA(image.Rect(0, 0, side, side)), nil
}

func (p *fakePages) Close() error { return nil }

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	return NewRunner(types.DefaultPipelineConfig(), WithRasterBackend(&fakeRaster{}))
}

func pdfFile(t *testing.T, name string, pages int) types.SourceFile {
	t.Helper()
	return types.SourceFile{Name: name, Data: testutil.NPagePDF(t, pages)}
}

func TestRunUnknownTool(t *testing.T) {
	r := newTestRunner(t)
	_, err := r.Run(context.Background(), "rotate-pdf", []types.SourceFile{pdfFile(t, "a.pdf", 1)},
		types.ProcessingOptions{}, nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestRunEmptyInput(t *testing.T) {
	r := newTestRunner(t)
	_, err := r.Run(context.Background(), types.ToolMergePDF, nil, types.ProcessingOptions{}, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRunRejectsMismatchedInput(t *testing.T) {
	r := newTestRunner(t)

	tests := []struct {
		name string
		tool types.ToolID
		file types.SourceFile
	}{
		{"non-pdf member fails merge", types.ToolMergePDF,
			types.SourceFile{Name: "notes.txt", Data: []byte("hello")}},
		{"renamed text fails split", types.ToolSplitPDF,
			types.SourceFile{Name: "fake.pdf", Data: []byte("not a pdf at all")}},
		{"legacy doc fails word-to-pdf", types.ToolWordToPDF,
			types.SourceFile{Name: "old.docx", Data: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1}}},
		{"pdf fails word-to-pdf", types.ToolWordToPDF,
			types.SourceFile{Name: "doc.pdf", Data: testutil.NPagePDF(t, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Run(context.Background(), tt.tool,
				[]types.SourceFile{tt.file}, types.ProcessingOptions{}, nil)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

// TestMergeEndToEnd: two PDFs of 2 and 3 pages merge into one 5-page
// document preserving input order.
func TestMergeEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	results, err := r.Run(context.Background(), types.ToolMergePDF,
		[]types.SourceFile{pdfFile(t, "first.pdf", 2), pdfFile(t, "second.pdf", 3)},
		types.ProcessingOptions{}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "merged.pdf", results[0].Name)

	doc, err := pdfdoc.Load(results[0].Data)
	require.NoError(t, err)
	assert.Equal(t, 5, doc.PageCount())
}

// TestSplitPagesEndToEnd: a 3-page PDF splits into three named single-page
// documents.
func TestSplitPagesEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	results, err := r.Run(context.Background(), types.ToolSplitPDF,
		[]types.SourceFile{pdfFile(t, "report.pdf", 3)},
		types.ProcessingOptions{SplitType: types.SplitPages}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("report_page_%d.pdf", i+1), res.Name)
		doc, err := pdfdoc.Load(res.Data)
		require.NoError(t, err)
		assert.Equal(t, 1, doc.PageCount())
	}
}

func TestSplitRangeEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	results, err := r.Run(context.Background(), types.ToolSplitPDF,
		[]types.SourceFile{pdfFile(t, "report.pdf", 10)},
		types.ProcessingOptions{SplitType: types.SplitRange, FromPage: 2, ToPage: 5}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "report_pages_2-5.pdf", results[0].Name)

	doc, err := pdfdoc.Load(results[0].Data)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.PageCount())
}

// TestSplitRangeInverted: from=5, to=2 fails with the range error and
// produces no output.
func TestSplitRangeInverted(t *testing.T) {
	r := newTestRunner(t)

	results, err := r.Run(context.Background(), types.ToolSplitPDF,
		[]types.SourceFile{pdfFile(t, "report.pdf", 10)},
		types.ProcessingOptions{SplitType: types.SplitRange, FromPage: 5, ToPage: 2}, nil)
	assert.ErrorIs(t, err, ErrInvalidPageRange)
	assert.Nil(t, results)
}

func TestSplitRangePastEnd(t *testing.T) {
	r := newTestRunner(t)

	_, err := r.Run(context.Background(), types.ToolSplitPDF,
		[]types.SourceFile{pdfFile(t, "report.pdf", 3)},
		types.ProcessingOptions{SplitType: types.SplitRange, FromPage: 2, ToPage: 7}, nil)
	assert.ErrorIs(t, err, ErrInvalidPageRange)
}

func TestCompressEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	input := pdfFile(t, "big.pdf", 6)
	results, err := r.Run(context.Background(), types.ToolCompressPDF,
		[]types.SourceFile{input}, types.ProcessingOptions{CompressionLevel: 2}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "big_compressed.pdf", results[0].Name)
	assert.NotEmpty(t, results[0].Info)
	// Best effort, but never larger than the input.
	assert.LessOrEqual(t, results[0].Size, input.Size())

	doc, err := pdfdoc.Load(results[0].Data)
	require.NoError(t, err)
	assert.Equal(t, 6, doc.PageCount())
}

func TestImagesEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	results, err := r.Run(context.Background(), types.ToolPDFToImages,
		[]types.SourceFile{pdfFile(t, "deck.pdf", 3)},
		types.ProcessingOptions{ImageFormat: types.FormatPNG, ImageScale: 1.0}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("deck_page_%d.png", i+1), res.Name)
		assert.True(t, bytes.HasPrefix(res.Data, []byte("\x89PNG")))
	}
}

// TestImagesPageLimit: exceeding the page limit fails before any page is
// rendered.
func TestImagesPageLimit(t *testing.T) {
	cfg := types.DefaultPipelineConfig()
	cfg.Raster.MaxPages = 2

	backend := &fakeRaster{}
	r := NewRunner(cfg, WithRasterBackend(backend))

	results, err := r.Run(context.Background(), types.ToolPDFToImages,
		[]types.SourceFile{pdfFile(t, "deck.pdf", 3)},
		types.ProcessingOptions{ImageScale: 1.0}, nil)
	assert.ErrorIs(t, err, ErrPageLimitExceeded)
	assert.Nil(t, results)
}

func TestImagesScaleOutOfRange(t *testing.T) {
	r := newTestRunner(t)

	_, err := r.Run(context.Background(), types.ToolPDFToImages,
		[]types.SourceFile{pdfFile(t, "deck.pdf", 1)},
		types.ProcessingOptions{ImageScale: 9.0}, nil)
	assert.ErrorIs(t, err, raster.ErrScaleOutOfRange)
}

func TestPDFToWordEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	file := types.SourceFile{Name: "paper.pdf", Data: testutil.PDF(t, "alpha beta gamma", "second page text")}
	results, err := r.Run(context.Background(), types.ToolPDFToWord,
		[]types.SourceFile{file}, types.ProcessingOptions{}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "paper.docx", results[0].Name)
	// Output is a zip-based docx.
	assert.True(t, bytes.HasPrefix(results[0].Data, []byte("PK\x03\x04")))
}

// TestWordToPDFEndToEnd: a docx with one Heading 1 and one normal paragraph
// renders to a valid PDF.
func TestWordToPDFEndToEnd(t *testing.T) {
	r := newTestRunner(t)

	file := types.SourceFile{Name: "memo.docx", Data: testutil.DOCX(t,
		"Heading1", "Quarterly Review",
		"Normal", "Numbers were up and to the right.",
	)}
	results, err := r.Run(context.Background(), types.ToolWordToPDF,
		[]types.SourceFile{file},
		types.ProcessingOptions{PageSize: types.PageA4, Margin: types.MarginNormal}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "memo.pdf", results[0].Name)
	doc, err := pdfdoc.Load(results[0].Data)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, doc.PageCount(), 1)
}

// TestProgressMonotonic verifies percentages never decrease and finish at
// exactly 100.
func TestProgressMonotonic(t *testing.T) {
	r := newTestRunner(t)

	var percents []int
	results, err := r.Run(context.Background(), types.ToolSplitPDF,
		[]types.SourceFile{pdfFile(t, "report.pdf", 4)},
		types.ProcessingOptions{SplitType: types.SplitPages},
		func(pct int, status string) { percents = append(percents, pct) })
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.NotEmpty(t, percents)
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
	assert.Equal(t, 100, percents[len(percents)-1])
	// 100 appears only once, on the terminal transition.
	assert.NotContains(t, percents[:len(percents)-1], 100)
}

func TestRunCancellation(t *testing.T) {
	r := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, types.ToolSplitPDF,
		[]types.SourceFile{pdfFile(t, "report.pdf", 3)},
		types.ProcessingOptions{SplitType: types.SplitPages}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArchive(t *testing.T) {
	results := []types.ProcessingResult{
		{Name: "a.pdf", Data: []byte("aaa")},
		{Name: "b.pdf", Data: []byte("bbb")},
	}

	bundle, err := Archive("results.zip", results)
	require.NoError(t, err)
	assert.Equal(t, "results.zip", bundle.Name)

	zr, err := zip.NewReader(bytes.NewReader(bundle.Data), int64(len(bundle.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "a.pdf", zr.File[0].Name)
	assert.Equal(t, "b.pdf", zr.File[1].Name)
}

func TestTools(t *testing.T) {
	tools := Tools()
	require.Len(t, tools, 6)

	seen := map[types.ToolID]bool{}
	for _, info := range tools {
		seen[info.ID] = true
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Extensions)
	}
	for _, id := range []types.ToolID{
		types.ToolMergePDF, types.ToolSplitPDF, types.ToolCompressPDF,
		types.ToolPDFToImages, types.ToolPDFToWord, types.ToolWordToPDF,
	} {
		assert.True(t, seen[id], "missing tool %s", id)
	}
}
