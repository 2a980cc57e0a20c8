// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup defines the normalized style-tagged element tree shared by
// the Word reader and the page-synthesis renderer, and the normalization
// table that maps heterogeneous source style names onto it.
package markup

// Tag is the fixed vocabulary of element kinds the renderer understands.
type Tag string

const (
	TagTitle     Tag = "title"
	TagHeading1  Tag = "heading1"
	TagHeading2  Tag = "heading2"
	TagHeading3  Tag = "heading3"
	TagHeading4  Tag = "heading4"
	TagParagraph Tag = "paragraph"
	TagQuote     Tag = "quote"
	TagListItem  Tag = "listItem"
	TagTable     Tag = "table"
	TagTableCell Tag = "tableCell"
	TagBold      Tag = "bold"
	TagItalic    Tag = "italic"
	TagLink      Tag = "link"
	TagImage     Tag = "image"
	TagText      Tag = "text"
	TagPageBreak Tag = "pageBreak"
)

// Alignment is a horizontal alignment hint on block elements.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Element is one node of the intermediate document tree. A node carries
// either literal Text (Tag == TagText) or ordered Children.
type Element struct {
	Tag      Tag
	Text     string
	Align    Alignment
	Children []*Element
}

// NewText returns a literal text leaf.
func NewText(s string) *Element {
	return &Element{Tag: TagText, Text: s}
}

// NewNode returns a container element with the given children.
func NewNode(tag Tag, children ...*Element) *Element {
	return &Element{Tag: tag, Children: children}
}

// PlainText concatenates the literal text of the subtree in document order.
func (e *Element) PlainText() string {
	if e == nil {
		return ""
	}
	if e.Tag == TagText {
		return e.Text
	}
	var out string
	for _, c := range e.Children {
		out += c.PlainText()
	}
	return out
}
