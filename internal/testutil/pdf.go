// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testutil synthesizes small fixture documents for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// PDF returns a PDF with the given page texts, one page per entry. Each page
// carries its text as a single Helvetica line so text-extraction tests have
// known content at known positions.
func PDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, text := range pageTexts {
		pdf.AddPage()
		pdf.Text(72, 100, text)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("synthesizing fixture PDF: %v", err)
	}
	return buf.Bytes()
}

// NPagePDF returns a PDF of n pages labeled "page 1" .. "page n".
func NPagePDF(t *testing.T, n int) []byte {
	t.Helper()
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("page %d", i+1)
	}
	return PDF(t, texts...)
}

// docxParagraph is one styled paragraph for the DOCX fixture.
type docxParagraph struct {
	Style string
	Text  string
}

// DOCX returns a minimal Office Open XML document with the given paragraphs.
// Each pair of arguments is a style name ("Heading1", "Normal", ...) and the
// paragraph text.
func DOCX(t *testing.T, styleTextPairs ...string) []byte {
	t.Helper()
	if len(styleTextPairs)%2 != 0 {
		t.Fatal("DOCX wants style/text pairs")
	}
	var paras []docxParagraph
	for i := 0; i < len(styleTextPairs); i += 2 {
		paras = append(paras, docxParagraph{Style: styleTextPairs[i], Text: styleTextPairs[i+1]})
	}

	var body bytes.Buffer
	for _, p := range paras {
		fmt.Fprintf(&body,
			`<w:p><w:pPr><w:pStyle w:val="%s"/></w:pPr><w:r><w:t>%s</w:t></w:r></w:p>`,
			p.Style, p.Text)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rels,
		"word/document.xml":   document,
	} {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing fixture docx: %v", err)
	}
	return buf.Bytes()
}
