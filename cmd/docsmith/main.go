// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docsmith CLI. Each conversion
// tool is a subcommand over the same pipeline: merge, split, compress,
// images, pdf2word, and word2pdf.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docsmith/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docsmith CLI.
var rootCmd = &cobra.Command{
	Use:   "docsmith",
	Short: "Document conversion pipeline for PDF and Word files",
	Long: `docsmith converts and reshapes documents: merge, split, and compress
PDFs, rasterize PDF pages to images, reconstruct a PDF's text as a Word
document, and render a Word document to PDF.

Each tool is a subcommand. Inputs are file paths; results are written to
the output directory (current directory by default).`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docsmith.yaml or ~/.config/docsmith/config.yaml)")
	rootCmd.PersistentFlags().String("out", ".", "directory for output files")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("archive", false, "bundle all results into a single zip")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docsmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docsmith"))
		}
	}

	viper.SetEnvPrefix("DOCSMITH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from the config file.
// Absent keys fall back to the documented defaults via Normalize.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		Raster: types.RasterConfig{
			MaxPages: viper.GetInt("raster.max_pages"),
			MinScale: viper.GetFloat64("raster.min_scale"),
			MaxScale: viper.GetFloat64("raster.max_scale"),
		},
		Extract: types.ExtractConfig{
			TitleSize:  viper.GetFloat64("extract.title_size"),
			H2Size:     viper.GetFloat64("extract.h2_size"),
			H3Size:     viper.GetFloat64("extract.h3_size"),
			BandFactor: viper.GetFloat64("extract.band_factor"),
		},
	}
	return cfg.Normalize()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
