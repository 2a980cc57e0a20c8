// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textextract

import (
	"sort"
	"strings"

	"github.com/pdiddy/docsmith/pkg/types"
)

// BlockKind classifies a grouped text block. Heading levels are inferred
// from average font size against the configured thresholds.
type BlockKind string

const (
	KindHeading1  BlockKind = "heading1"
	KindHeading2  BlockKind = "heading2"
	KindHeading3  BlockKind = "heading3"
	KindParagraph BlockKind = "paragraph"

	// KindPageBreak marks a page boundary between blocks so downstream
	// rendering can reinsert the break.
	KindPageBreak BlockKind = "pageBreak"
)

// TextBlock is an ordered group of spatially adjacent runs inferred to form
// one heading or paragraph.
type TextBlock struct {
	Kind        BlockKind
	Runs        []TextRun
	AvgFontSize float64
}

// wordGapFactor scales font size to the horizontal gap between runs that
// implies a missing space.
const wordGapFactor = 0.2

// Text reassembles the block's text, inserting spaces where the horizontal
// gap between adjacent runs is wide enough to have been a word break.
func (b TextBlock) Text() string {
	var sb strings.Builder
	for i, run := range b.Runs {
		if i > 0 {
			prev := b.Runs[i-1]
			gap := run.X - (prev.X + prev.Width)
			sameBand := absf(run.Y-prev.Y) <= prev.FontSize*0.5
			if !sameBand || gap > prev.FontSize*wordGapFactor {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(run.Text)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Grouper groups runs into blocks using the configured proximity and
// heading thresholds.
type Grouper struct {
	cfg types.ExtractConfig
}

// NewGrouper returns a Grouper for the given tunables (zero values are
// replaced by defaults).
func NewGrouper(cfg types.ExtractConfig) *Grouper {
	full := types.PipelineConfig{Extract: cfg}.Normalize()
	return &Grouper{cfg: full.Extract}
}

// Group builds ordered text blocks for one page. Runs are visited top of
// page first; a run starts a new block when its vertical distance from the
// previous run exceeds BandFactor x the previous run's font size. Within a
// block, runs on the same line band are ordered left to right. An empty run
// slice yields no blocks.
func (g *Grouper) Group(runs []TextRun) []TextBlock {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var blocks []TextBlock
	current := []TextRun{sorted[0]}

	for _, run := range sorted[1:] {
		prev := current[len(current)-1]
		band := prev.FontSize * g.cfg.BandFactor
		if band <= 0 {
			band = 6
		}
		if prev.Y-run.Y <= band {
			current = append(current, run)
			continue
		}
		blocks = append(blocks, g.finish(current))
		current = []TextRun{run}
	}
	blocks = append(blocks, g.finish(current))
	return blocks
}

// finish orders a block's runs left to right within each line band, computes
// the average font size, and classifies the block. Bands are anchored at
// their topmost run: a run joins the band while it is within tolerance of
// the anchor, so dense pages bucket deterministically.
func (g *Grouper) finish(runs []TextRun) TextBlock {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Y > runs[j].Y
	})
	for start := 0; start < len(runs); {
		anchor := runs[start]
		end := start + 1
		for end < len(runs) &&
			absf(anchor.Y-runs[end].Y) <= maxf(anchor.FontSize, runs[end].FontSize)*g.cfg.BandFactor {
			end++
		}
		band := runs[start:end]
		sort.SliceStable(band, func(i, j int) bool {
			return band[i].X < band[j].X
		})
		start = end
	}

	var total float64
	for _, r := range runs {
		total += r.FontSize
	}
	avg := total / float64(len(runs))

	return TextBlock{
		Kind:        g.classify(avg),
		Runs:        runs,
		AvgFontSize: avg,
	}
}

// classify maps an average font size onto a heading level or paragraph.
func (g *Grouper) classify(avgSize float64) BlockKind {
	switch {
	case avgSize > g.cfg.TitleSize:
		return KindHeading1
	case avgSize > g.cfg.H2Size:
		return KindHeading2
	case avgSize > g.cfg.H3Size:
		return KindHeading3
	default:
		return KindParagraph
	}
}

// PageBreak returns the explicit page-boundary marker block.
func PageBreak() TextBlock {
	return TextBlock{Kind: KindPageBreak}
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
