// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"

	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/pkg/types"
)

// runSplit partitions one PDF: pages mode yields a single-page document per
// page, range mode yields one document holding the inclusive 1-based range.
func runSplit(r *Runner, st *runState) ([]types.ProcessingResult, error) {
	f := st.files[0]
	base := baseName(f.Name)

	st.progress.emit(10, fmt.Sprintf("loading %s", f.Name))
	doc, err := pdfdoc.Load(f.Data)
	if err != nil {
		return nil, fmt.Errorf("load stage: %w", err)
	}

	if st.opts.SplitType == types.SplitRange {
		return splitRange(st, doc, base)
	}
	return splitPages(st, doc, base)
}

func splitRange(st *runState, doc *pdfdoc.Document, base string) ([]types.ProcessingResult, error) {
	from, to := st.opts.FromPage, st.opts.ToPage
	if to > doc.PageCount() {
		return nil, fmt.Errorf("split stage: %w: to=%d exceeds %d pages",
			pdfdoc.ErrInvalidPageRange, to, doc.PageCount())
	}

	indices := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		indices = append(indices, p-1)
	}

	st.progress.emit(50, fmt.Sprintf("extracting pages %d-%d", from, to))
	part, err := doc.CopyPages(indices)
	if err != nil {
		return nil, fmt.Errorf("split stage: %w", err)
	}

	st.progress.emit(95, "packaging")
	return []types.ProcessingResult{{
		Name: fmt.Sprintf("%s_pages_%d-%d.pdf", base, from, to),
		Data: part.Bytes(),
		Size: len(part.Bytes()),
		Info: fmt.Sprintf("%d of %d pages", part.PageCount(), doc.PageCount()),
	}}, nil
}

func splitPages(st *runState, doc *pdfdoc.Document, base string) ([]types.ProcessingResult, error) {
	n := doc.PageCount()
	results := make([]types.ProcessingResult, 0, n)

	for i := 0; i < n; i++ {
		if err := st.checkpoint(15, 90, i, n, fmt.Sprintf("extracting page %d/%d", i+1, n)); err != nil {
			return nil, err
		}
		page, err := doc.CopyPages([]int{i})
		if err != nil {
			return nil, fmt.Errorf("split stage (page %d): %w", i+1, err)
		}
		results = append(results, types.ProcessingResult{
			Name: fmt.Sprintf("%s_page_%d.pdf", base, i+1),
			Data: page.Bytes(),
			Size: len(page.Bytes()),
		})
	}

	st.progress.emit(95, "packaging")
	return results, nil
}
