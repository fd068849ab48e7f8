// Copyright Colosal Media S.L., 2026. All rights reserved.

// Package assemble encodes composited page rasters and concatenates them
// into the output PDF. Lossless runs embed PNG pages; numeric qualities
// embed JPEG pages at that level. Assembly happens in-process via pdfcpu,
// with every page sized to its image's pixel dimensions at the run's DPI.
package assemble

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/colosal/pdfmark/pkg/types"
)

// EncodePages writes one image file per composited page into dir, named
// wm_000.png and so on, and returns the paths in page order.
func EncodePages(images []*image.NRGBA, dir string, q types.Quality) ([]string, error) {
	paths := make([]string, 0, len(images))
	for i, img := range images {
		path := filepath.Join(dir, fmt.Sprintf("wm_%03d.%s", i, q.Ext()))
		if err := encode(img, path, q); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func encode(img image.Image, path string, q types.Quality) error {
	if q.Lossless() {
		return imaging.Save(img, path)
	}
	return imaging.Save(img, path, imaging.JPEGQuality(q.JPEG()))
}

// Build concatenates the encoded page images into a single PDF at output.
// Page dimensions derive from each image's pixel size at the given DPI, so
// at 72 DPI one pixel maps to one PDF point. An empty input is an error:
// there is nothing to build.
func Build(imgFiles []string, output string, dpi int) error {
	if len(imgFiles) == 0 {
		return errors.New("no page images to build a PDF from")
	}

	imp, err := api.Import(fmt.Sprintf("dpi:%d", dpi), pdftypes.POINTS)
	if err != nil {
		return fmt.Errorf("configuring PDF import: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ImportImagesFile(imgFiles, output, imp, conf); err != nil {
		return fmt.Errorf("assembling %s: %w", output, err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}
