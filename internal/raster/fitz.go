// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"
	"image"
	"sync"

	"github.com/gen2brain/go-fitz"
)

// baseDPI is the rendering resolution at scale 1.0.
const baseDPI = 72

// probePDF is a minimal one-page document used to verify the MuPDF runtime
// actually loads in this process.
var probePDF = []byte("%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 72 72]>>endobj\n" +
	"xref\n0 4\n0000000000 65535 f \n0000000009 00000 n \n0000000052 00000 n \n0000000101 00000 n \n" +
	"trailer<</Size 4/Root 1 0 R>>\nstartxref\n163\n%%EOF\n")

// fitzBackend renders through MuPDF.
type fitzBackend struct {
	probeOnce sync.Once
	probeOK   bool
}

func (b *fitzBackend) Name() string {
	return "mupdf"
}

// Available probes the native library once per process by opening a tiny
// in-memory document.
func (b *fitzBackend) Available() bool {
	b.probeOnce.Do(func() {
		doc, err := fitz.NewFromMemory(probePDF)
		if err != nil {
			return
		}
		doc.Close()
		b.probeOK = true
	})
	return b.probeOK
}

func (b *fitzBackend) Open(data []byte) (Pages, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening document with mupdf: %w", err)
	}
	return &fitzPages{doc: doc}, nil
}

// fitzPages renders pages of one open MuPDF document. Each Render returns a
// fresh pixel buffer owned by the caller; nothing is retained, so peak
// memory stays at one page.
type fitzPages struct {
	doc *fitz.Document
}

func (p *fitzPages) Count() int {
	return p.doc.NumPage()
}

func (p *fitzPages) Render(pageIndex int, scale float64) (image.Image, error) {
	img, err := p.doc.ImageDPI(pageIndex, baseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", pageIndex+1, err)
	}
	return img, nil
}

func (p *fitzPages) Close() error {
	if p.doc == nil {
		return nil
	}
	err := p.doc.Close()
	p.doc = nil
	return err
}
