// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline dispatches tool identifiers to stage sequences over
// input files: validation, per-stage progress, and result packaging. It is
// the single entry point consumed by callers.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdiddy/docsmith/internal/raster"
	"github.com/pdiddy/docsmith/pkg/types"
)

// File signatures checked during validation, before any parsing.
var (
	sigPDF = []byte("%PDF")
	sigZip = []byte{0x50, 0x4B, 0x03, 0x04}
	sigOLE = []byte{0xD0, 0xCF, 0x11, 0xE0} // legacy binary Office container
)

// Runner executes pipeline runs against one configuration. A Runner is
// stateless across runs; concurrent runs share nothing mutable.
type Runner struct {
	cfg types.PipelineConfig

	// backend renders pages for pdf-to-images. Nil means detect once on
	// first use.
	backend raster.Backend

	detectOnce sync.Once
	detectErr  error

	// log receives per-file status lines and non-fatal warnings.
	log io.Writer
}

// Option customizes a Runner.
type Option func(*Runner)

// WithRasterBackend injects a rendering backend, bypassing detection.
func WithRasterBackend(b raster.Backend) Option {
	return func(r *Runner) { r.backend = b }
}

// WithLog directs status lines and warnings to w.
func WithLog(w io.Writer) Option {
	return func(r *Runner) { r.log = w }
}

// NewRunner returns a Runner over the given configuration. Zero-valued
// config fields take their documented defaults.
func NewRunner(cfg types.PipelineConfig, opts ...Option) *Runner {
	r := &Runner{cfg: cfg.Normalize(), log: io.Discard}
	for _, o := range opts {
		o(r)
	}
	return r
}

// runState carries one run's validated inputs through the stages.
type runState struct {
	ctx      context.Context
	tool     toolSpec
	files    []types.SourceFile
	opts     types.ProcessingOptions
	progress *progressTracker
}

// checkpoint is the per-unit suspension point: it reports progress and
// honors cancellation before the next page or file is processed.
func (st *runState) checkpoint(start, end, i, n int, status string) error {
	if err := st.ctx.Err(); err != nil {
		return err
	}
	st.progress.span(start, end, i, n, status)
	return nil
}

// Run executes the tool identified by toolID over files. Validation errors
// surface before any byte processing; any stage failure aborts the run with
// a stage-qualified cause and no partial results. onProgress may be nil.
func (r *Runner) Run(ctx context.Context, toolID types.ToolID, files []types.SourceFile,
	opts types.ProcessingOptions, onProgress types.ProgressFunc,
) ([]types.ProcessingResult, error) {
	progress := newProgress(onProgress)

	spec, ok := registry[toolID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, toolID)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrEmptyInput, toolID)
	}

	progress.emit(0, "validating input")
	if err := validateFiles(spec, files); err != nil {
		return nil, fmt.Errorf("%s: %w", toolID, err)
	}
	if err := r.validateOptions(spec, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", toolID, err)
	}

	st := &runState{
		ctx:      ctx,
		tool:     spec,
		files:    files,
		opts:     opts.Normalize(),
		progress: progress,
	}

	results, err := spec.run(r, st)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", toolID, err)
	}

	progress.done("done")
	return results, nil
}

// validateFiles checks file count, extension, and byte signature against the
// tool's accepted set. Merge and split require homogeneous PDF input, so any
// mismatched member fails the whole run.
func validateFiles(spec toolSpec, files []types.SourceFile) error {
	if len(files) < spec.minFiles {
		return fmt.Errorf("%w: %s needs at least %d file(s)", ErrEmptyInput, spec.id, spec.minFiles)
	}
	if spec.maxFiles > 0 && len(files) > spec.maxFiles {
		return fmt.Errorf("%w: %s accepts at most %d file(s), got %d",
			ErrUnsupportedFormat, spec.id, spec.maxFiles, len(files))
	}

	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if !contains(spec.extensions, ext) {
			return fmt.Errorf("%w: %s does not accept %q", ErrUnsupportedFormat, spec.id, f.Name)
		}
		if err := checkSignature(ext, f); err != nil {
			return err
		}
	}
	return nil
}

// checkSignature verifies the file content matches its extension's magic
// bytes, catching renamed files before a parser sees them.
func checkSignature(ext string, f types.SourceFile) error {
	switch ext {
	case ".pdf":
		if !bytes.HasPrefix(f.Data, sigPDF) {
			return fmt.Errorf("%w: %s is not a PDF", ErrUnsupportedFormat, f.Name)
		}
	case ".docx":
		if bytes.HasPrefix(f.Data, sigOLE) {
			return fmt.Errorf("%w: %s is a legacy binary .doc, only .docx is supported",
				ErrUnsupportedFormat, f.Name)
		}
		if !bytes.HasPrefix(f.Data, sigZip) {
			return fmt.Errorf("%w: %s is not a .docx archive", ErrUnsupportedFormat, f.Name)
		}
	}
	return nil
}

// validateOptions applies the cheap pre-load option checks for the tool.
func (r *Runner) validateOptions(spec toolSpec, opts types.ProcessingOptions) error {
	opts = opts.Normalize()
	switch spec.id {
	case types.ToolSplitPDF:
		if opts.SplitType == types.SplitRange {
			if opts.FromPage < 1 || opts.ToPage < opts.FromPage {
				return fmt.Errorf("%w: from=%d to=%d", ErrInvalidPageRange, opts.FromPage, opts.ToPage)
			}
		}
	case types.ToolPDFToImages:
		scale := opts.ImageScale
		if err := raster.CheckScale(scale, r.cfg.Raster.MinScale, r.cfg.Raster.MaxScale); err != nil {
			return err
		}
	}
	return nil
}

// rasterBackend returns the injected backend or detects one, once per
// Runner lifetime.
func (r *Runner) rasterBackend() (raster.Backend, error) {
	if r.backend != nil {
		return r.backend, nil
	}
	r.detectOnce.Do(func() {
		r.backend, r.detectErr = raster.Detect()
	})
	return r.backend, r.detectErr
}

// logf writes one status or warning line to the runner's log.
func (r *Runner) logf(format string, args ...any) {
	fmt.Fprintf(r.log, format+"\n", args...)
}

// baseName strips the extension from a source filename.
func baseName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
