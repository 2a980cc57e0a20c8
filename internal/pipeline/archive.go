// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/pdiddy/docsmith/pkg/types"
)

// Archive bundles multiple results into one zip blob. It is a convenience
// for "download all" surfaces; the tool runs themselves never call it.
func Archive(name string, results []types.ProcessingResult) (types.ProcessingResult, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, res := range results {
		f, err := zw.Create(res.Name)
		if err != nil {
			return types.ProcessingResult{}, fmt.Errorf("adding %s to archive: %w", res.Name, err)
		}
		if _, err := f.Write(res.Data); err != nil {
			return types.ProcessingResult{}, fmt.Errorf("writing %s to archive: %w", res.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return types.ProcessingResult{}, fmt.Errorf("finalizing archive: %w", err)
	}

	return types.ProcessingResult{
		Name: name,
		Data: buf.Bytes(),
		Size: buf.Len(),
		Info: fmt.Sprintf("%d files", len(results)),
	}, nil
}
