// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"fmt"

	"github.com/pdiddy/docsmith/internal/docx"
	"github.com/pdiddy/docsmith/internal/render"
	"github.com/pdiddy/docsmith/pkg/types"
)

// runWordToPDF parses a .docx into the normalized element tree and paints
// it onto synthesized pages.
func runWordToPDF(r *Runner, st *runState) ([]types.ProcessingResult, error) {
	f := st.files[0]

	st.progress.emit(10, fmt.Sprintf("parsing %s", f.Name))
	tree, err := docx.Parse(f.Data)
	if err != nil {
		if errors.Is(err, docx.ErrNotDocx) {
			return nil, fmt.Errorf("parse stage: %w: %v", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("parse stage: %w", err)
	}

	if err := st.checkpoint(40, 85, 0, 1, "rendering pages"); err != nil {
		return nil, err
	}

	renderer := render.New(render.Options{
		PageSize:    st.opts.PageSize,
		Margin:      st.opts.Margin,
		PageNumbers: true,
	})
	data, err := renderer.Render(tree)
	if err != nil {
		return nil, fmt.Errorf("render stage: %w", err)
	}
	for _, warning := range renderer.Warnings() {
		r.logf("word-to-pdf: %s", warning)
	}

	st.progress.emit(95, "packaging")
	return []types.ProcessingResult{{
		Name: baseName(f.Name) + ".pdf",
		Data: data,
		Size: len(data),
		Info: fmt.Sprintf("%d pages rendered", renderer.Pages()),
	}}, nil
}
