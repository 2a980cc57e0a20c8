// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docsmith/internal/testutil"
)

func TestLoad(t *testing.T) {
	doc, err := Load(testutil.NPagePDF(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.PageCount())
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a pdf", []byte("this is plain text, not a PDF")},
		{"truncated header", []byte("%PDF-1.7\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.data)
			assert.ErrorIs(t, err, ErrCorruptDocument)
		})
	}
}

func TestPageDims(t *testing.T) {
	doc, err := Load(testutil.NPagePDF(t, 2))
	require.NoError(t, err)

	dims, err := doc.PageDims()
	require.NoError(t, err)
	require.Len(t, dims, 2)
	for _, d := range dims {
		assert.InDelta(t, 595.28, d.Width, 1.0)
		assert.InDelta(t, 841.89, d.Height, 1.0)
	}
}

func TestCopyPages(t *testing.T) {
	doc, err := Load(testutil.NPagePDF(t, 5))
	require.NoError(t, err)

	tests := []struct {
		name      string
		indices   []int
		wantPages int
		wantErr   error
	}{
		{"single page", []int{2}, 1, nil},
		{"contiguous range", []int{1, 2, 3}, 3, nil},
		{"non-contiguous", []int{0, 4}, 2, nil},
		{"reordered", []int{3, 0}, 2, nil},
		{"negative index", []int{-1}, 0, ErrInvalidPageRange},
		{"index past end", []int{5}, 0, ErrInvalidPageRange},
		{"empty selection", nil, 0, ErrInvalidPageRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.CopyPages(tt.indices)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, got.PageCount())
			// The source is never mutated by a copy.
			assert.Equal(t, 5, doc.PageCount())
		})
	}
}

func TestMergeOrderAndCount(t *testing.T) {
	a, err := Load(testutil.NPagePDF(t, 2))
	require.NoError(t, err)
	b, err := Load(testutil.NPagePDF(t, 3))
	require.NoError(t, err)
	c, err := Load(testutil.NPagePDF(t, 1))
	require.NoError(t, err)

	merged, err := Merge(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, 6, merged.PageCount())
}

// TestSplitMergeRoundTrip splits a document into single pages and re-merges
// them in order; the structure round-trips even if the bytes do not.
func TestSplitMergeRoundTrip(t *testing.T) {
	doc, err := Load(testutil.NPagePDF(t, 4))
	require.NoError(t, err)

	pages := make([]*Document, doc.PageCount())
	for i := range pages {
		pages[i], err = doc.CopyPages([]int{i})
		require.NoError(t, err)
		require.Equal(t, 1, pages[i].PageCount())
	}

	rejoined, err := Merge(pages...)
	require.NoError(t, err)
	assert.Equal(t, doc.PageCount(), rejoined.PageCount())
}

func TestNewBlank(t *testing.T) {
	doc, err := NewBlank(595.28, 841.89, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.PageCount())

	_, err = NewBlank(595.28, 841.89, 0)
	assert.Error(t, err)
}

func TestAppendBlank(t *testing.T) {
	doc, err := Load(testutil.NPagePDF(t, 1))
	require.NoError(t, err)

	grown, err := doc.AppendBlank(595.28, 841.89)
	require.NoError(t, err)
	assert.Equal(t, 2, grown.PageCount())
	assert.Equal(t, 1, doc.PageCount())
}

// TestSaveObjectStreams verifies the compression policy: enabling object
// streams must not enlarge output beyond a small tolerance.
func TestSaveObjectStreams(t *testing.T) {
	doc, err := Load(testutil.NPagePDF(t, 6))
	require.NoError(t, err)

	plain, err := doc.Save(SaveOptions{})
	require.NoError(t, err)
	packed, err := doc.Save(SaveOptions{ObjectStreams: true})
	require.NoError(t, err)

	require.NotEmpty(t, plain)
	require.NotEmpty(t, packed)

	const tolerance = 512 // bytes of stream framing overhead
	assert.LessOrEqual(t, len(packed), len(plain)+tolerance,
		"object streams must not enlarge output")

	// Both serializations remain loadable with the original page count.
	for _, data := range [][]byte{plain, packed} {
		reloaded, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, 6, reloaded.PageCount())
	}
}
