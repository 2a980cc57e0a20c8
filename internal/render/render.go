// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/docsmith/internal/layout"
	"github.com/pdiddy/docsmith/internal/markup"
	"github.com/pdiddy/docsmith/pkg/types"
)

// footerReserve keeps the bottom of the content area clear of the
// page-number footer.
const footerReserve = 24

// Options configures a render pass.
type Options struct {
	PageSize types.PageSize
	Margin   types.Margin

	// PageNumbers stamps a centered page-number footer on each page.
	PageNumbers bool

	// StyleOverrides adjusts entries of the built-in style table.
	StyleOverrides map[markup.Tag]Style
}

// Renderer paints one element tree onto synthesized pages in a single
// top-down pass; once a page is closed it is never reopened.
type Renderer struct {
	pdf      *gofpdf.Fpdf
	dim      layout.Dim
	margin   float64
	opts     Options
	cursorY  float64
	pages    int
	warnings []string
}

// New returns a renderer for the given options.
func New(opts Options) *Renderer {
	dim := layout.PageDim(opts.PageSize)
	margin := layout.MarginWidth(opts.Margin)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: dim.Width, Ht: dim.Height},
	})
	pdf.SetAutoPageBreak(false, 0)

	r := &Renderer{pdf: pdf, dim: dim, margin: margin, opts: opts}
	if opts.PageNumbers {
		pdf.SetFooterFunc(func() {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(120, 120, 120)
			pdf.Text(dim.Width/2-4, dim.Height-margin/2, fmt.Sprintf("%d", pdf.PageNo()))
		})
	}
	return r
}

// Pages returns the number of pages produced so far.
func (r *Renderer) Pages() int {
	return r.pages
}

// Warnings returns non-fatal notes accumulated while drawing, such as
// placeholder substitutions for unencodable characters.
func (r *Renderer) Warnings() []string {
	return r.warnings
}

// Render walks the element tree, paints it, and returns the serialized PDF.
func (r *Renderer) Render(root *markup.Element) ([]byte, error) {
	r.newPage()

	base := renderContext{
		style: resolve(markup.TagParagraph, r.opts.StyleOverrides),
		align: markup.AlignLeft,
	}
	r.walk(root, base)

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing rendered pages: %w", err)
	}
	return buf.Bytes(), nil
}

// walk visits el and its children in document order. The context is derived
// per child and never mutated, so styles cannot leak across branches.
func (r *Renderer) walk(el *markup.Element, rc renderContext) {
	if el == nil {
		return
	}

	if el.Tag == markup.TagPageBreak {
		r.newPage()
		return
	}

	next := rc.derive(el, r.opts.StyleOverrides)

	if el.Tag == markup.TagText {
		r.drawText(el.Text, next)
		return
	}

	for _, child := range el.Children {
		r.walk(child, next)
	}

	if next.style.spaceAfter > 0 && el.Tag != markup.TagBold && el.Tag != markup.TagItalic {
		r.cursorY += next.style.spaceAfter
	}
}

// drawText sanitizes, wraps, and paints one text leaf with the given
// context, breaking pages as the cursor passes the bottom margin.
func (r *Renderer) drawText(text string, rc renderContext) {
	clean, substituted := sanitizeText(text)
	if substituted {
		r.warnings = append(r.warnings,
			fmt.Sprintf("replaced unencodable characters in %q", truncate(text, 40)))
	}
	if rc.style.bullet != "" {
		clean = rc.style.bullet + clean
	}
	if clean == "" {
		return
	}

	st := rc.style
	r.pdf.SetFont(st.family, st.fontStyle, st.size)
	r.pdf.SetTextColor(st.color.r, st.color.g, st.color.b)

	widthOf := func(s string, size float64) (float64, error) {
		w := r.pdf.GetStringWidth(s)
		if err := r.pdf.Error(); err != nil {
			return 0, err
		}
		return w, nil
	}

	lines := layout.Wrap(clean, r.contentWidth(st), widthOf, st.size)
	lineHeight := st.size * st.lineSpacing

	for _, line := range lines {
		if r.cursorY+lineHeight > r.dim.Height-r.margin-footerReserve {
			r.newPage()
		}
		r.cursorY += lineHeight
		r.pdf.Text(r.lineX(line, rc, st, widthOf), r.cursorY, line)
	}
}

// contentWidth returns the drawable line width for a style: the page width
// minus the margins and the style's indent on both sides.
func (r *Renderer) contentWidth(st style) float64 {
	return r.dim.Width - 2*r.margin - 2*st.indent
}

// lineX returns the alignment-adjusted x position for one line. All three
// alignments stay inside the indented content box.
func (r *Renderer) lineX(line string, rc renderContext, st style, widthOf layout.WidthFunc) float64 {
	left := r.margin + st.indent
	w, err := widthOf(line, st.size)
	if err != nil {
		return left
	}
	switch rc.align {
	case markup.AlignCenter:
		return left + (r.contentWidth(st)-w)/2
	case markup.AlignRight:
		return r.dim.Width - r.margin - st.indent - w
	default:
		return left
	}
}

// newPage closes the current page (stamping the footer via the footer hook)
// and resets the cursor to the top margin of a fresh page.
func (r *Renderer) newPage() {
	r.pdf.AddPage()
	r.pages++
	r.cursorY = r.margin
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
