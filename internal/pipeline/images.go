// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"fmt"

	"github.com/pdiddy/docsmith/internal/raster"
	"github.com/pdiddy/docsmith/pkg/types"
)

// runImages rasterizes every page of one PDF to an image blob. The page
// limit is enforced before any page renders, and each page's pixel buffer
// is dropped as soon as its bytes are encoded.
func runImages(r *Runner, st *runState) ([]types.ProcessingResult, error) {
	f := st.files[0]
	base := baseName(f.Name)

	backend, err := r.rasterBackend()
	if err != nil {
		return nil, fmt.Errorf("render stage: %w", err)
	}

	st.progress.emit(10, fmt.Sprintf("opening %s with %s", f.Name, backend.Name()))
	pages, err := backend.Open(f.Data)
	if err != nil {
		return nil, fmt.Errorf("load stage: %w", err)
	}
	defer pages.Close()

	n := pages.Count()
	if err := raster.CheckPageLimit(n, r.cfg.Raster.MaxPages); err != nil {
		return nil, err
	}

	ext := "png"
	if st.opts.ImageFormat == types.FormatJPEG {
		ext = "jpg"
	}

	results := make([]types.ProcessingResult, 0, n)
	for i := 0; i < n; i++ {
		if err := st.checkpoint(15, 90, i, n, fmt.Sprintf("rendering page %d/%d", i+1, n)); err != nil {
			return nil, err
		}

		img, err := pages.Render(i, st.opts.ImageScale)
		if err != nil {
			return nil, fmt.Errorf("render stage (page %d): %w", i+1, err)
		}

		var buf bytes.Buffer
		if err := raster.Encode(&buf, img, string(st.opts.ImageFormat), st.opts.ImageQuality); err != nil {
			return nil, fmt.Errorf("encode stage (page %d): %w", i+1, err)
		}

		results = append(results, types.ProcessingResult{
			Name: fmt.Sprintf("%s_page_%d.%s", base, i+1, ext),
			Data: buf.Bytes(),
			Size: buf.Len(),
		})
	}

	st.progress.emit(95, "packaging")
	return results, nil
}
