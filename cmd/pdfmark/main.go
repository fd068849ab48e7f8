// Copyright Colosal Media S.L., 2026. All rights reserved.

// Package main is the entry point for the pdfmark CLI, which stamps a logo
// watermark onto every page of a PDF by rasterizing, compositing, and
// rebuilding the document.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfmark CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmark",
	Short: "Stamp a logo watermark onto the pages of a PDF",
	Long: `pdfmark extracts the pages of a PDF as raster images, overlays a resized
logo at a corner anchor, and reassembles the stamped pages into a new PDF.

The heavy lifting per stage is a subcommand concern: stamp runs the full
pipeline, pages prints a document's page count. Page rasterization relies on
poppler's pdftoppm being installed.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfmark.yaml or ~/.config/pdfmark/config.yaml)")
}

func initConfig() {
	viper.SetDefault("input", filepath.Join("sources", "example1.pdf"))
	viper.SetDefault("output", "output_watermarked.pdf")
	viper.SetDefault("staging-dir", "")
	viper.SetDefault("keep-staging", false)
	viper.SetDefault("dpi", 72)
	viper.SetDefault("watermark.logo", filepath.Join("sources", "logo_colosal.png"))
	viper.SetDefault("watermark.max-width", 120)
	viper.SetDefault("watermark.min-width", 107)
	viper.SetDefault("watermark.min-height", 21)
	viper.SetDefault("watermark.opacity", 1.0)
	viper.SetDefault("watermark.margin", 0)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfmark"))
		}
	}

	viper.SetEnvPrefix("PDFMARK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
