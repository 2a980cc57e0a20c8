// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docsmith/internal/pipeline"
	"github.com/pdiddy/docsmith/pkg/types"
)

// readInputs loads the named files into memory.
func readInputs(paths []string) ([]types.SourceFile, error) {
	files := make([]types.SourceFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, types.SourceFile{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

// runTool executes one pipeline run for a subcommand: read inputs, run with
// progress on stderr, write results to the output directory. Ctrl-C cancels
// the run between pages.
func runTool(cmd *cobra.Command, args []string, toolID types.ToolID, opts types.ProcessingOptions) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more input files")
	}

	files, err := readInputs(args)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	outDir, _ := cmd.Flags().GetString("out")
	archive, _ := cmd.Flags().GetBool("archive")

	var onProgress types.ProgressFunc
	if !quiet {
		onProgress = func(pct int, status string) {
			fmt.Fprintf(os.Stderr, "\r%3d%% %-40s", pct, status)
			if pct == 100 {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := pipeline.NewRunner(pipelineConfig(), pipeline.WithLog(os.Stderr))
	results, err := runner.Run(ctx, toolID, files, opts, onProgress)
	if err != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr)
		}
		return err
	}

	if archive && len(results) > 1 {
		bundle, err := pipeline.Archive(string(toolID)+"_results.zip", results)
		if err != nil {
			return err
		}
		results = []types.ProcessingResult{bundle}
	}

	return writeResults(outDir, results)
}

// writeResults persists each result and prints one line per file.
func writeResults(outDir string, results []types.ProcessingResult) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, res := range results {
		path := filepath.Join(outDir, res.Name)
		if err := os.WriteFile(path, res.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if res.Info != "" {
			fmt.Printf("%s (%s)\n", path, res.Info)
		} else {
			fmt.Println(path)
		}
	}
	return nil
}
