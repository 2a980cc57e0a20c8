// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"

	"github.com/pdiddy/docsmith/internal/pdfdoc"
	"github.com/pdiddy/docsmith/pkg/types"
)

// compressionSaveOptions maps the 1-3 compression level to serialization
// options of increasing aggressiveness.
func compressionSaveOptions(level int) pdfdoc.SaveOptions {
	switch level {
	case 1:
		return pdfdoc.SaveOptions{}
	case 3:
		return pdfdoc.SaveOptions{ObjectStreams: true, DedupContent: true}
	default:
		return pdfdoc.SaveOptions{ObjectStreams: true}
	}
}

// runCompress rewrites one PDF through the optimizer. Size reduction is best
// effort: already-optimized input may come back the same size, and the
// result reports the delta either way.
func runCompress(r *Runner, st *runState) ([]types.ProcessingResult, error) {
	f := st.files[0]

	st.progress.emit(10, fmt.Sprintf("loading %s", f.Name))
	doc, err := pdfdoc.Load(f.Data)
	if err != nil {
		return nil, fmt.Errorf("load stage: %w", err)
	}

	if err := st.checkpoint(30, 90, 0, 1, "rewriting document"); err != nil {
		return nil, err
	}
	data, err := doc.Save(compressionSaveOptions(st.opts.CompressionLevel))
	if err != nil {
		return nil, fmt.Errorf("compress stage: %w", err)
	}

	before, after := len(f.Data), len(data)
	info := fmt.Sprintf("reduced %s to %s", formatSize(before), formatSize(after))
	if after >= before {
		// Keep the smaller original rather than shipping a larger rewrite.
		data = f.Data
		after = before
		info = "already optimized, no reduction"
		r.logf("compress: %s gained nothing, keeping original", f.Name)
	}

	st.progress.emit(95, "packaging")
	return []types.ProcessingResult{{
		Name: baseName(f.Name) + "_compressed.pdf",
		Data: data,
		Size: after,
		Info: info,
	}}, nil
}

// formatSize renders a byte count in a human-readable unit.
func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
