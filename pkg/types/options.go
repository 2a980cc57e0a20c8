// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SplitType selects how split-pdf partitions its input.
type SplitType string

const (
	// SplitPages produces one single-page document per input page.
	SplitPages SplitType = "pages"

	// SplitRange produces one document holding the inclusive page range.
	SplitRange SplitType = "range"
)

// ImageFormat selects the encoding for rasterized pages.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// PageSize names a synthesized page geometry. Dimensions live in the
// layout package's geometry tables.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
)

// Margin names a synthesized page margin width. Widths live in the
// layout package's geometry tables.
type Margin string

const (
	MarginNormal Margin = "normal"
	MarginNarrow Margin = "narrow"
	MarginWide   Margin = "wide"
)

// ProcessingOptions carries per-tool settings as selected by the caller.
// Values arrive unvalidated; Normalize applies defaults and the pipeline
// validates ranges before any byte work begins.
type ProcessingOptions struct {
	// SplitType selects pages or range mode for split-pdf (default pages).
	SplitType SplitType `json:"split_type" yaml:"split_type"`

	// FromPage and ToPage bound a 1-based inclusive page range for
	// range-mode splitting.
	FromPage int `json:"from_page" yaml:"from_page"`
	ToPage   int `json:"to_page" yaml:"to_page"`

	// ImageFormat selects png or jpeg output for pdf-to-images (default png).
	ImageFormat ImageFormat `json:"image_format" yaml:"image_format"`

	// ImageQuality is the lossy encoding quality in [0,1] (default 0.9).
	// Ignored for lossless formats.
	ImageQuality float64 `json:"image_quality" yaml:"image_quality"`

	// ImageScale is the rasterization scale factor, > 0 (default 1.5).
	ImageScale float64 `json:"image_scale" yaml:"image_scale"`

	// CompressionLevel selects compression aggressiveness 1-3 (default 2).
	CompressionLevel int `json:"compression_level" yaml:"compression_level"`

	// PageSize selects the synthesized page geometry (default A4).
	PageSize PageSize `json:"page_size" yaml:"page_size"`

	// Margin selects the synthesized page margin (default normal).
	Margin Margin `json:"margin" yaml:"margin"`
}

// Normalize returns a copy of o with absent or unrecognized fields replaced
// by their documented defaults. Range validation is the pipeline's job;
// Normalize only fills gaps.
func (o ProcessingOptions) Normalize() ProcessingOptions {
	if o.SplitType != SplitPages && o.SplitType != SplitRange {
		o.SplitType = SplitPages
	}
	if o.ImageFormat != FormatPNG && o.ImageFormat != FormatJPEG {
		o.ImageFormat = FormatPNG
	}
	if o.ImageQuality <= 0 || o.ImageQuality > 1 {
		o.ImageQuality = 0.9
	}
	if o.ImageScale <= 0 {
		o.ImageScale = 1.5
	}
	if o.CompressionLevel < 1 || o.CompressionLevel > 3 {
		o.CompressionLevel = 2
	}
	if o.PageSize != PageA4 && o.PageSize != PageLetter {
		o.PageSize = PageA4
	}
	if o.Margin != MarginNormal && o.Margin != MarginNarrow && o.Margin != MarginWide {
		o.Margin = MarginNormal
	}
	return o
}
