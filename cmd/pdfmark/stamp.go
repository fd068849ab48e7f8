// Copyright Colosal Media S.L., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colosal/pdfmark/internal/pipeline"
	"github.com/colosal/pdfmark/internal/raster"
	"github.com/colosal/pdfmark/internal/watermark"
	"github.com/colosal/pdfmark/pkg/types"
)

var stampCmd = &cobra.Command{
	Use:   "stamp [input.pdf]",
	Short: "Watermark every page of a PDF and rebuild it",
	Long: `Stamp rasterizes the input PDF page by page, overlays the logo at the
chosen anchor position, and rebuilds a single output PDF. Quality is either
"lossless" (PNG pages) or 1-100 (JPEG pages at that level).

When the input argument is omitted, the configured input path is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStamp,
}

func init() {
	stampCmd.Flags().String("logo", "", "watermark image (default: configured watermark.logo)")
	stampCmd.Flags().String("quality", types.QualityLossless, "output quality: 'lossless' or 1-100 (JPEG)")
	stampCmd.Flags().StringP("output", "o", "", "output PDF path (default: configured output)")
	stampCmd.Flags().String("position", string(types.BottomRight), "watermark anchor: tl,tc,tr,ml,mc,mr,bl,bc,br")
	stampCmd.Flags().String("pages", "", "1-based page selection, e.g. '1,3-5' (default: all)")
	stampCmd.Flags().Int("min-width", 0, "watermark minimum width in px (default 107)")
	stampCmd.Flags().Int("min-height", 0, "watermark minimum height in px (default 21)")
	stampCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(stampCmd)
}

// runStamp validates all arguments before any processing starts, then hands
// off to the pipeline.
func runStamp(cmd *cobra.Command, args []string) error {
	input := viper.GetString("input")
	if len(args) == 1 {
		input = args[0]
	}

	logo, _ := cmd.Flags().GetString("logo")
	if logo == "" {
		logo = viper.GetString("watermark.logo")
	}
	if _, err := os.Stat(logo); err != nil {
		return fmt.Errorf("logo not found: %s", logo)
	}

	qualityArg, _ := cmd.Flags().GetString("quality")
	quality, err := types.ParseQuality(qualityArg)
	if err != nil {
		return err
	}

	positionArg, _ := cmd.Flags().GetString("position")
	position, err := types.ParseAnchor(positionArg)
	if err != nil {
		return err
	}

	pagesArg, _ := cmd.Flags().GetString("pages")
	pages, err := pipeline.ParsePages(pagesArg)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("output")
	}

	bounds := watermark.Bounds{
		MaxWidth:  viper.GetInt("watermark.max-width"),
		MinWidth:  viper.GetInt("watermark.min-width"),
		MinHeight: viper.GetInt("watermark.min-height"),
	}
	if v, _ := cmd.Flags().GetInt("min-width"); v > 0 {
		bounds.MinWidth = v
	}
	if v, _ := cmd.Flags().GetInt("min-height"); v > 0 {
		bounds.MinHeight = v
	}

	reportPath, _ := cmd.Flags().GetString("report")

	opts := pipeline.Options{
		InputPDF:    input,
		LogoPath:    logo,
		OutputPath:  output,
		Quality:     quality,
		Position:    position,
		Opacity:     viper.GetFloat64("watermark.opacity"),
		Margin:      viper.GetInt("watermark.margin"),
		DPI:         viper.GetInt("dpi"),
		Bounds:      bounds,
		StagingDir:  viper.GetString("staging-dir"),
		KeepStaging: viper.GetBool("keep-staging"),
		Pages:       pages,
		ReportPath:  reportPath,
	}

	fmt.Printf("  Input:    %s\n", input)
	fmt.Printf("  Logo:     %s\n", logo)
	fmt.Printf("  Quality:  %s\n", quality)
	fmt.Printf("  Output:   %s\n", output)
	fmt.Println()

	_, err = pipeline.Run(raster.NewPoppler(), opts, os.Stdout)
	return err
}
