// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docsmith/internal/markup"
	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/pkg/types"
)

func testOptions() Options {
	return Options{
		PageSize:    types.PageA4,
		Margin:      types.MarginNormal,
		PageNumbers: true,
	}
}

func TestRenderSinglePage(t *testing.T) {
	root := markup.NewNode(markup.TagParagraph,
		markup.NewNode(markup.TagHeading1, markup.NewText("A Heading")),
		markup.NewNode(markup.TagParagraph, markup.NewText("Body text underneath the heading.")),
	)

	r := New(testOptions())
	data, err := r.Render(root)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Pages())

	doc, err := pdfdoc.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount())
}

// TestRenderOverflowBreaksPages verifies that enough content forces new
// pages and that page count is minimal for a one-pass layout.
func TestRenderOverflowBreaksPages(t *testing.T) {
	var children []*markup.Element
	for i := 0; i < 120; i++ {
		children = append(children, markup.NewNode(markup.TagParagraph,
			markup.NewText("A reasonably long paragraph of filler text that wraps across the content width of an A4 page.")))
	}
	root := &markup.Element{Tag: markup.TagParagraph, Children: children}

	r := New(testOptions())
	data, err := r.Render(root)
	require.NoError(t, err)
	assert.Greater(t, r.Pages(), 1)

	doc, err := pdfdoc.Load(data)
	require.NoError(t, err)
	assert.Equal(t, r.Pages(), doc.PageCount())
}

func TestRenderExplicitPageBreak(t *testing.T) {
	root := markup.NewNode(markup.TagParagraph,
		markup.NewNode(markup.TagParagraph, markup.NewText("first page")),
		markup.NewNode(markup.TagPageBreak),
		markup.NewNode(markup.TagParagraph, markup.NewText("second page")),
	)

	r := New(testOptions())
	data, err := r.Render(root)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Pages())

	doc, err := pdfdoc.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.PageCount())
}

// TestRenderEncodingFallback verifies that unencodable text degrades to the
// placeholder glyph with a warning instead of aborting the render.
func TestRenderEncodingFallback(t *testing.T) {
	root := markup.NewNode(markup.TagParagraph,
		markup.NewNode(markup.TagParagraph, markup.NewText("cjk: 漢字 emoji: \U0001F600")),
	)

	r := New(testOptions())
	data, err := r.Render(root)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.NotEmpty(t, r.Warnings())
}

// TestLineXRespectsIndent verifies that every alignment keeps a line inside
// the indented content box.
func TestLineXRespectsIndent(t *testing.T) {
	r := New(testOptions())
	st := style{size: 12, indent: 24}
	fixed := func(s string, size float64) (float64, error) { return 100, nil }

	boxLeft := r.margin + st.indent
	boxRight := r.dim.Width - r.margin - st.indent

	left := r.lineX("line", renderContext{style: st, align: markup.AlignLeft}, st, fixed)
	assert.Equal(t, boxLeft, left)

	right := r.lineX("line", renderContext{style: st, align: markup.AlignRight}, st, fixed)
	assert.Equal(t, boxRight-100, right)

	center := r.lineX("line", renderContext{style: st, align: markup.AlignCenter}, st, fixed)
	assert.InDelta(t, (boxLeft+boxRight)/2-50, center, 0.01)
	assert.GreaterOrEqual(t, center, boxLeft)
	assert.LessOrEqual(t, center+100, boxRight)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		fallback bool
	}{
		{"plain ascii", "plain ascii", false},
		{"“smart quotes”", `"smart quotes"`, false},
		{"en–dash em—dash", "en-dash em--dash", false},
		{"ellipsis…", "ellipsis...", false},
		{"café déjà vu", "café déjà vu", false},
		{"漢字", "??", true},
	}
	for _, tt := range tests {
		got, fb := sanitizeText(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.fallback, fb, "input %q", tt.in)
	}
}

func TestMergeFontStyle(t *testing.T) {
	assert.Equal(t, "B", mergeFontStyle("", "B"))
	assert.Equal(t, "BI", mergeFontStyle("B", "I"))
	assert.Equal(t, "BI", mergeFontStyle("I", "B"))
	assert.Equal(t, "B", mergeFontStyle("B", "B"))
	assert.Equal(t, "BI", mergeFontStyle("BI", "I"))
}

// TestContextIsolation verifies that emphasis inside one branch does not
// leak into the following sibling.
func TestContextIsolation(t *testing.T) {
	root := markup.NewNode(markup.TagParagraph,
		markup.NewNode(markup.TagParagraph,
			markup.NewNode(markup.TagBold, markup.NewText("bold bit")),
		),
		markup.NewNode(markup.TagParagraph, markup.NewText("plain again")),
	)

	rc := renderContext{style: resolve(markup.TagParagraph, nil), align: markup.AlignLeft}
	boldCtx := rc.derive(root.Children[0], nil).derive(root.Children[0].Children[0], nil)
	plainCtx := rc.derive(root.Children[1], nil)

	assert.Equal(t, "B", boldCtx.style.fontStyle)
	assert.Equal(t, "", plainCtx.style.fontStyle)
	assert.False(t, strings.Contains(plainCtx.style.fontStyle, "B"))
}
