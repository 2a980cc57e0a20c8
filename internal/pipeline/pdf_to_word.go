// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"

	"github.com/pdiddy/docsmith/internal/docx"
	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/internal/textextract"
	"github.com/pdiddy/docsmith/pkg/types"
)

// runPDFToWord reconstructs a PDF's text as a .docx: per-page positioned
// runs are grouped into heading and paragraph blocks, page boundaries are
// kept as explicit breaks, and the blocks are written as a Word document.
func runPDFToWord(r *Runner, st *runState) ([]types.ProcessingResult, error) {
	f := st.files[0]

	st.progress.emit(10, fmt.Sprintf("loading %s", f.Name))
	reader, err := textextract.Open(f.Data)
	if err != nil {
		return nil, fmt.Errorf("load stage: %w: %v", pdfdoc.ErrCorruptDocument, err)
	}

	grouper := textextract.NewGrouper(r.cfg.Extract)
	n := reader.NumPages()

	var blocks []textextract.TextBlock
	for i := 0; i < n; i++ {
		if err := st.checkpoint(15, 80, i, n, fmt.Sprintf("extracting page %d/%d", i+1, n)); err != nil {
			return nil, err
		}

		runs, err := reader.PageRuns(i)
		if err != nil {
			// One undecodable page degrades to a gap, not a dead run.
			r.logf("pdf-to-word: skipping page %d: %v", i+1, err)
			continue
		}

		if i > 0 {
			blocks = append(blocks, textextract.PageBreak())
		}
		blocks = append(blocks, grouper.Group(runs)...)
	}

	st.progress.emit(85, "assembling document")
	data, err := docx.Write(blocks)
	if err != nil {
		return nil, fmt.Errorf("synthesize stage: %w", err)
	}

	st.progress.emit(95, "packaging")
	return []types.ProcessingResult{{
		Name: baseName(f.Name) + ".docx",
		Data: data,
		Size: len(data),
		Info: fmt.Sprintf("%d pages of text reconstructed", n),
	}}, nil
}
