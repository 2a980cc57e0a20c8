// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster renders PDF pages to pixel buffers and encodes them as
// image blobs. The rendering backend is capability-checked once per run and
// injected, not branched per page.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

var (
	// ErrPageLimitExceeded reports an input whose page count exceeds the
	// configured maximum. It is raised before any page is rendered.
	ErrPageLimitExceeded = errors.New("page limit exceeded")

	// ErrScaleOutOfRange reports a rasterization scale outside the
	// configured bounds.
	ErrScaleOutOfRange = errors.New("scale out of range")

	// ErrNoBackend reports that no rendering backend is operational.
	ErrNoBackend = errors.New("no raster backend available")
)

// Pages renders individual pages of one opened document. Close releases the
// underlying document resources and must run on all paths.
type Pages interface {
	Count() int
	Render(pageIndex int, scale float64) (image.Image, error)
	Close() error
}

// Backend opens documents for rendering. Implementations are selected once
// per pipeline run via Detect.
type Backend interface {
	// Name identifies the backend (e.g. "mupdf").
	Name() string

	// Available reports whether the backend's native machinery is
	// operational in this process.
	Available() bool

	// Open parses document bytes for page rendering.
	Open(data []byte) (Pages, error)
}

// Detect returns the first operational backend. Today the chain is MuPDF
// only; the chain shape keeps a software fallback pluggable.
func Detect() (Backend, error) {
	return detect(&fitzBackend{})
}

func detect(candidates ...Backend) (Backend, error) {
	for _, b := range candidates {
		if b.Available() {
			return b, nil
		}
	}
	return nil, ErrNoBackend
}

// CheckPageLimit fails fast when pageCount exceeds maxPages, before any
// rendering work begins.
func CheckPageLimit(pageCount, maxPages int) error {
	if maxPages > 0 && pageCount > maxPages {
		return fmt.Errorf("%w: document has %d pages, limit is %d",
			ErrPageLimitExceeded, pageCount, maxPages)
	}
	return nil
}

// CheckScale validates the rasterization scale against configured bounds.
func CheckScale(scale, min, max float64) error {
	if scale <= 0 || scale < min || scale > max {
		return fmt.Errorf("%w: %.2f not in [%.2f, %.2f]", ErrScaleOutOfRange, scale, min, max)
	}
	return nil
}

// Encode writes img in the given format. Quality is the lossy quality in
// [0,1]; it applies to jpeg and is ignored for png.
func Encode(w io.Writer, img image.Image, format string, quality float64) error {
	switch format {
	case "jpeg", "jpg":
		q := int(quality * 100)
		if q < 1 {
			q = 1
		}
		if q > 100 {
			q = 100
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: q}); err != nil {
			return fmt.Errorf("encoding jpeg: %w", err)
		}
		return nil
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
