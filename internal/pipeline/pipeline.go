// Copyright Colosal Media S.L., 2026. All rights reserved.

// Package pipeline orchestrates a watermarking run: rasterize pages, prepare
// the watermark once, composite it onto every page, and rebuild the PDF.
// Control flows strictly forward through those four stages.
package pipeline

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	"github.com/colosal/pdfmark/internal/assemble"
	"github.com/colosal/pdfmark/internal/raster"
	"github.com/colosal/pdfmark/internal/watermark"
	"github.com/colosal/pdfmark/pkg/types"
)

// Options configures a single run. All fields are resolved by the CLI before
// Run is called; Run does no flag or config lookups of its own.
type Options struct {
	InputPDF   string
	LogoPath   string
	OutputPath string
	Quality    types.Quality
	Position   types.Anchor
	Opacity    float64
	Margin     int
	DPI        int
	Bounds     watermark.Bounds

	// StagingDir holds intermediate page files. Empty means a fresh
	// temporary directory per run.
	StagingDir string
	// KeepStaging preserves the staging directory after the run for
	// debugging; by default it is removed on every exit path.
	KeepStaging bool

	// Pages selects 1-based page numbers; nil means all pages.
	Pages []int

	// ReportPath, when set, receives a YAML run report.
	ReportPath string
}

// Run executes the four pipeline stages, writing progress to w. The
// watermark raster is prepared once and shared read-only across all page
// compositions.
func Run(rz raster.Rasterizer, opts Options, w io.Writer) (*Report, error) {
	staging, release, err := acquireStaging(opts)
	if err != nil {
		return nil, err
	}
	defer release()

	fmt.Fprintln(w, "[1/4] Extracting pages...")
	if !rz.Available() {
		return nil, fmt.Errorf("rasterizer %s not found on PATH", rz.Name())
	}
	pagePaths, err := rz.Rasterize(opts.InputPDF, staging, opts.DPI)
	if err != nil {
		return nil, err
	}
	pagePaths, err = selectPages(pagePaths, opts.Pages)
	if err != nil {
		return nil, err
	}
	if len(pagePaths) == 0 {
		return nil, fmt.Errorf("no pages extracted from %s", opts.InputPDF)
	}
	fmt.Fprintf(w, "  %d page(s)\n", len(pagePaths))

	fmt.Fprintln(w, "[2/4] Preparing watermark...")
	wm, err := watermark.Prepare(opts.LogoPath, opts.Opacity, opts.Bounds)
	if err != nil {
		return nil, err
	}
	wmW, wmH := wm.Bounds().Dx(), wm.Bounds().Dy()
	fmt.Fprintf(w, "  logo: %s -> %dx%d\n", opts.LogoPath, wmW, wmH)

	fmt.Fprintln(w, "[3/4] Applying watermark...")
	stamped := make([]*image.NRGBA, 0, len(pagePaths))
	for i, p := range pagePaths {
		page, err := imaging.Open(p)
		if err != nil {
			return nil, fmt.Errorf("reading page image %s: %w", p, err)
		}
		stamped = append(stamped, watermark.Overlay(page, wm, opts.Position, opts.Margin))
		fmt.Fprintf(w, "  page %d/%d\n", i+1, len(pagePaths))
	}

	fmt.Fprintln(w, "[4/4] Rebuilding PDF...")
	encoded, err := assemble.EncodePages(stamped, staging, opts.Quality)
	if err != nil {
		return nil, err
	}
	if err := assemble.Build(encoded, opts.OutputPath, opts.DPI); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", opts.OutputPath, err)
	}
	fmt.Fprintf(w, "  wrote %s (%.1f MB, %s)\n",
		opts.OutputPath, float64(info.Size())/(1<<20), modeLabel(opts.Quality))

	report := &Report{
		Input:           opts.InputPDF,
		Output:          opts.OutputPath,
		Pages:           len(pagePaths),
		Quality:         opts.Quality.String(),
		Position:        string(opts.Position),
		WatermarkWidth:  wmW,
		WatermarkHeight: wmH,
		Opacity:         opts.Opacity,
		OutputBytes:     info.Size(),
	}
	if opts.ReportPath != "" {
		if err := report.WriteYAML(opts.ReportPath); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "  report: %s\n", opts.ReportPath)
	}
	return report, nil
}

func modeLabel(q types.Quality) string {
	if q.Lossless() {
		return "PNG lossless"
	}
	return fmt.Sprintf("JPEG q=%d", q.JPEG())
}

// acquireStaging creates the staging directory and returns it together with
// a release func. Release runs on every exit path, so intermediate files do
// not outlive a failed run either.
func acquireStaging(opts Options) (string, func(), error) {
	dir := opts.StagingDir
	var err error
	if dir == "" {
		dir, err = os.MkdirTemp("", "pdfmark-pages-")
	} else {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		return "", nil, fmt.Errorf("creating staging directory: %w", err)
	}

	release := func() {
		if opts.KeepStaging {
			return
		}
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not remove staging directory %s: %v\n", dir, err)
		}
	}
	return dir, release, nil
}
