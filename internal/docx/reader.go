// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads and writes the zip-based Office Open XML word
// processing format. Only .docx is supported; the legacy binary .doc
// container is rejected up front.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/docsmith/internal/markup"
)

// ErrNotDocx reports input that is not a zip-based Word document.
var ErrNotDocx = errors.New("not a .docx document")

const documentPart = "word/document.xml"

// xmlDocument mirrors the subset of the WordprocessingML schema the reader
// consumes: paragraphs with style and alignment, runs with bold/italic
// flags, and tables of cells of paragraphs.
type xmlDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    xmlBody  `xml:"body"`
}

// xmlBody holds the body's paragraphs and tables as one ordered sequence.
// Decoding them into separate slices would lose their interleaving, so the
// body decodes itself token by token.
type xmlBody struct {
	Items []xmlBodyItem
}

// xmlBodyItem is one body-level element: exactly one field is set.
type xmlBodyItem struct {
	Paragraph *xmlParagraph
	Table     *xmlTable
}

// UnmarshalXML walks the body's child elements in document order.
func (b *xmlBody) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p xmlParagraph
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Items = append(b.Items, xmlBodyItem{Paragraph: &p})
			case "tbl":
				var tbl xmlTable
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Items = append(b.Items, xmlBodyItem{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			// The only end element seen at this depth is </body>.
			return nil
		}
	}
}

type xmlParagraph struct {
	Props xmlParaProps `xml:"pPr"`
	Runs  []xmlRun     `xml:"r"`
}

type xmlParaProps struct {
	Style xmlValAttr `xml:"pStyle"`
	Jc    xmlValAttr `xml:"jc"`
}

type xmlValAttr struct {
	Val string `xml:"val,attr"`
}

type xmlRun struct {
	Props xmlRunProps `xml:"rPr"`
	Texts []string    `xml:"t"`
}

type xmlRunProps struct {
	Bold   *struct{} `xml:"b"`
	Italic *struct{} `xml:"i"`
}

type xmlTable struct {
	Rows []xmlTableRow `xml:"tr"`
}

type xmlTableRow struct {
	Cells []xmlTableCell `xml:"tc"`
}

type xmlTableCell struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

// Parse reads a .docx byte stream and returns its content as a normalized
// style-tagged element tree. Non-zip input (including legacy .doc) fails
// with ErrNotDocx.
func Parse(data []byte) (*markup.Element, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", documentPart, err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", documentPart, err)
		}
		break
	}
	if docXML == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrNotDocx, documentPart)
	}

	var doc xmlDocument
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
	}

	root := &markup.Element{Tag: markup.TagParagraph}
	for _, item := range doc.Body.Items {
		switch {
		case item.Paragraph != nil:
			if el := paragraphElement(*item.Paragraph); el != nil {
				root.Children = append(root.Children, el)
			}
		case item.Table != nil:
			root.Children = append(root.Children, tableElement(*item.Table))
		}
	}
	return markup.Normalize(root), nil
}

// paragraphElement converts one paragraph into a styled element, or nil for
// a paragraph with no text.
func paragraphElement(p xmlParagraph) *markup.Element {
	el := &markup.Element{
		Tag:   markup.NormalizeStyle(p.Props.Style.Val),
		Align: alignment(p.Props.Jc.Val),
	}
	for _, r := range p.Runs {
		text := strings.Join(r.Texts, "")
		if text == "" {
			continue
		}
		leaf := markup.NewText(text)
		switch {
		case r.Props.Bold != nil:
			el.Children = append(el.Children, markup.NewNode(markup.TagBold, leaf))
		case r.Props.Italic != nil:
			el.Children = append(el.Children, markup.NewNode(markup.TagItalic, leaf))
		default:
			el.Children = append(el.Children, leaf)
		}
	}
	if len(el.Children) == 0 {
		return nil
	}
	return el
}

func tableElement(tbl xmlTable) *markup.Element {
	table := &markup.Element{Tag: markup.TagTable}
	for _, row := range tbl.Rows {
		for _, cell := range row.Cells {
			cellEl := &markup.Element{Tag: markup.TagTableCell}
			for _, p := range cell.Paragraphs {
				if el := paragraphElement(p); el != nil {
					cellEl.Children = append(cellEl.Children, el)
				}
			}
			table.Children = append(table.Children, cellEl)
		}
	}
	return table
}

func alignment(jc string) markup.Alignment {
	switch jc {
	case "center":
		return markup.AlignCenter
	case "right", "end":
		return markup.AlignRight
	default:
		return markup.AlignLeft
	}
}
