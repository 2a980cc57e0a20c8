// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render paints a style-tagged element tree onto PDF pages: font and
// alignment resolution, word wrap, cursor descent, and page breaks.
package render

import "github.com/pdiddy/docsmith/internal/markup"

// color is an RGB text color.
type color struct {
	r, g, b int
}

// style is the resolved drawing state for one element kind.
type style struct {
	family      string
	fontStyle   string // "", "B", "I", "BI"
	size        float64
	color       color
	lineSpacing float64 // baseline advance as a multiple of size
	spaceAfter  float64 // points of descent after the element
	indent      float64 // inset from both margins in points
	bullet      string  // prefix drawn before the first line
}

// styleTable maps the tag vocabulary to drawing state. The table is explicit
// and overridable through Options.StyleOverrides; nothing is inferred from
// external stylesheets.
var styleTable = map[markup.Tag]style{
	markup.TagTitle:     {family: "Helvetica", fontStyle: "B", size: 24, lineSpacing: 1.25, spaceAfter: 18},
	markup.TagHeading1:  {family: "Helvetica", fontStyle: "B", size: 20, lineSpacing: 1.25, spaceAfter: 14},
	markup.TagHeading2:  {family: "Helvetica", fontStyle: "B", size: 16, lineSpacing: 1.25, spaceAfter: 12},
	markup.TagHeading3:  {family: "Helvetica", fontStyle: "B", size: 13, lineSpacing: 1.25, spaceAfter: 10},
	markup.TagHeading4:  {family: "Helvetica", fontStyle: "BI", size: 12, lineSpacing: 1.25, spaceAfter: 10},
	markup.TagParagraph: {family: "Helvetica", size: 11, lineSpacing: 1.25, spaceAfter: 8},
	markup.TagQuote:     {family: "Times", fontStyle: "I", size: 11, color: color{90, 90, 90}, lineSpacing: 1.25, spaceAfter: 8, indent: 24},
	markup.TagListItem:  {family: "Helvetica", size: 11, lineSpacing: 1.25, spaceAfter: 4, indent: 14, bullet: "- "},
	markup.TagTableCell: {family: "Helvetica", size: 10, lineSpacing: 1.25, spaceAfter: 4},
	markup.TagLink:      {family: "Helvetica", size: 11, color: color{0, 0, 200}, lineSpacing: 1.25},
}

// resolve returns the style for a tag, defaulting to paragraph.
func resolve(tag markup.Tag, overrides map[markup.Tag]Style) style {
	base, ok := styleTable[tag]
	if !ok {
		base = styleTable[markup.TagParagraph]
	}
	if o, ok := overrides[tag]; ok {
		if o.Size > 0 {
			base.size = o.Size
		}
		if o.Family != "" {
			base.family = o.Family
		}
		if o.FontStyle != nil {
			base.fontStyle = *o.FontStyle
		}
	}
	return base
}

// Style is the caller-visible override for one tag.
type Style struct {
	Family    string
	FontStyle *string
	Size      float64
}

// renderContext is the immutable drawing state threaded through the tree
// walk. Derivations copy it; nothing is mutated in place, so sibling
// branches cannot leak state into each other.
type renderContext struct {
	style style
	align markup.Alignment
}

// derive returns the context for a child element. Block tags replace the
// typography wholesale; inline emphasis tags adjust only the font style.
func (rc renderContext) derive(el *markup.Element, overrides map[markup.Tag]Style) renderContext {
	next := rc
	switch el.Tag {
	case markup.TagBold:
		next.style.fontStyle = mergeFontStyle(rc.style.fontStyle, "B")
	case markup.TagItalic:
		next.style.fontStyle = mergeFontStyle(rc.style.fontStyle, "I")
	case markup.TagText, markup.TagImage:
		// Leaves draw with the inherited context.
	default:
		next.style = resolve(el.Tag, overrides)
	}
	if el.Align != "" {
		next.align = el.Align
	}
	return next
}

func mergeFontStyle(base, add string) string {
	switch {
	case base == "" || base == add:
		return add
	case base == "BI":
		return "BI"
	case (base == "B" && add == "I") || (base == "I" && add == "B"):
		return "BI"
	default:
		return base + add
	}
}
