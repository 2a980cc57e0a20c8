// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"

	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/pkg/types"
)

// runMerge concatenates the input PDFs in order into one document.
func runMerge(r *Runner, st *runState) ([]types.ProcessingResult, error) {
	docs := make([]*pdfdoc.Document, len(st.files))
	totalPages := 0

	for i, f := range st.files {
		if err := st.checkpoint(5, 60, i, len(st.files), fmt.Sprintf("loading %s", f.Name)); err != nil {
			return nil, err
		}
		doc, err := pdfdoc.Load(f.Data)
		if err != nil {
			return nil, fmt.Errorf("load stage (%s): %w", f.Name, err)
		}
		docs[i] = doc
		totalPages += doc.PageCount()
		r.logf("loaded %s (%d pages)", f.Name, doc.PageCount())
	}

	if err := st.checkpoint(60, 90, 0, 1, "merging"); err != nil {
		return nil, err
	}

	merged, err := pdfdoc.Merge(docs...)
	if err != nil {
		return nil, fmt.Errorf("merge stage: %w", err)
	}

	info := fmt.Sprintf("%d pages from %d files", merged.PageCount(), len(st.files))
	if len(st.files) == 1 {
		info = "single input, passed through unchanged"
	}

	st.progress.emit(95, "packaging")
	return []types.ProcessingResult{{
		Name: "merged.pdf",
		Data: merged.Bytes(),
		Size: len(merged.Bytes()),
		Info: info,
	}}, nil
}
