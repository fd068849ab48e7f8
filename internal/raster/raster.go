// Copyright Colosal Media S.L., 2026. All rights reserved.

// Package raster turns PDF pages into per-page raster image files.
//
// The production backend shells out to poppler's pdftoppm, the one external
// process the tool depends on. The Rasterizer interface keeps that dependency
// behind a single seam so an in-process renderer could replace it without
// touching the rest of the pipeline.
package raster

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
)

const (
	binPdftoppm = "pdftoppm"
	pagePrefix  = "page"
)

// Rasterizer converts a PDF into one image file per page.
type Rasterizer interface {
	// Name returns the backend name, e.g. "pdftoppm".
	Name() string

	// Available reports whether the backend binary exists on PATH.
	Available() bool

	// Rasterize renders every page of the PDF at pdfPath into dir as PNG
	// files at the given DPI and returns their paths sorted in page order.
	// A non-zero exit of the backend is returned as an error; there is no
	// retry.
	Rasterize(pdfPath, dir string, dpi int) ([]string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w\noutput: %s", name, err, out)
	}
	return nil
}

var defaultExec = &osExecutor{}

// poppler implements Rasterizer with pdftoppm from poppler-utils.
type poppler struct {
	exec executor
}

// NewPoppler returns the pdftoppm-backed rasterizer.
func NewPoppler() Rasterizer {
	return &poppler{exec: defaultExec}
}

func (p *poppler) Name() string { return binPdftoppm }

func (p *poppler) Available() bool {
	_, err := p.exec.LookPath(binPdftoppm)
	return err == nil
}

func (p *poppler) Rasterize(pdfPath, dir string, dpi int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating staging directory %s: %w", dir, err)
	}

	prefix := filepath.Join(dir, pagePrefix)
	err := p.exec.Run(binPdftoppm, "-png", "-r", strconv.Itoa(dpi), pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("rasterizing %s: %w", pdfPath, err)
	}

	// pdftoppm zero-pads page numbers to a uniform width, so the
	// lexicographic order matches page order.
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("listing page images in %s: %w", dir, err)
	}
	sort.Strings(pages)
	return pages, nil
}
