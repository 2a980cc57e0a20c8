// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RasterConfig holds settings for the rasterization stage.
type RasterConfig struct {
	// MaxPages is the largest page count pdf-to-images will accept
	// (default 80). Exceeding it fails before any page is rendered.
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// MinScale and MaxScale bound the accepted rasterization scale
	// (defaults 0.5 and 5.0).
	MinScale float64 `json:"min_scale" yaml:"min_scale"`
	MaxScale float64 `json:"max_scale" yaml:"max_scale"`
}

// ExtractConfig holds tunables for structured text extraction.
type ExtractConfig struct {
	// TitleSize, H2Size, and H3Size are the average-font-size thresholds
	// (in points, exclusive) above which a text block is classified as a
	// level 1, 2, or 3 heading (defaults 14, 12, 11).
	TitleSize float64 `json:"title_size" yaml:"title_size"`
	H2Size    float64 `json:"h2_size" yaml:"h2_size"`
	H3Size    float64 `json:"h3_size" yaml:"h3_size"`

	// BandFactor scales the current run's font size to obtain the largest
	// vertical gap still treated as the same text block (default 0.5).
	BandFactor float64 `json:"band_factor" yaml:"band_factor"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Raster  RasterConfig  `json:"raster" yaml:"raster"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
}

// DefaultPipelineConfig returns the documented defaults for every stage.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Raster: RasterConfig{
			MaxPages: 80,
			MinScale: 0.5,
			MaxScale: 5.0,
		},
		Extract: ExtractConfig{
			TitleSize:  14,
			H2Size:     12,
			H3Size:     11,
			BandFactor: 0.5,
		},
	}
}

// Normalize returns a copy of c with zero-valued fields replaced by defaults.
func (c PipelineConfig) Normalize() PipelineConfig {
	def := DefaultPipelineConfig()
	if c.Raster.MaxPages <= 0 {
		c.Raster.MaxPages = def.Raster.MaxPages
	}
	if c.Raster.MinScale <= 0 {
		c.Raster.MinScale = def.Raster.MinScale
	}
	if c.Raster.MaxScale <= 0 {
		c.Raster.MaxScale = def.Raster.MaxScale
	}
	if c.Extract.TitleSize <= 0 {
		c.Extract.TitleSize = def.Extract.TitleSize
	}
	if c.Extract.H2Size <= 0 {
		c.Extract.H2Size = def.Extract.H2Size
	}
	if c.Extract.H3Size <= 0 {
		c.Extract.H3Size = def.Extract.H3Size
	}
	if c.Extract.BandFactor <= 0 {
		c.Extract.BandFactor = def.Extract.BandFactor
	}
	return c
}
