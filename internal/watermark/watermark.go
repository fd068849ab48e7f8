// Copyright Colosal Media S.L., 2026. All rights reserved.

// Package watermark prepares the overlay logo and composites it onto page
// rasters. The logo is loaded and sized once; the prepared raster is
// read-only and shared across all page compositions.
package watermark

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math"

	"github.com/disintegration/imaging"

	"github.com/colosal/pdfmark/pkg/types"
)

// Bounds constrains the watermark's output dimensions.
type Bounds struct {
	MaxWidth  int
	MinWidth  int
	MinHeight int
}

// DefaultBounds returns the stock logo constraints.
func DefaultBounds() Bounds {
	return Bounds{MaxWidth: 120, MinWidth: 107, MinHeight: 21}
}

// Fit computes the watermark output size for a source of srcW x srcH,
// preserving aspect ratio. Width is pinned to MaxWidth first, then the
// height floor and width floor are each applied once, in that order. The
// corrections do not loop to a fixed point: a width-floor correction may
// leave the width above MaxWidth, and that is intended.
func (b Bounds) Fit(srcW, srcH int) (w, h int) {
	ratio := float64(srcH) / float64(srcW)

	w = b.MaxWidth
	h = int(math.Round(float64(w) * ratio))

	if h < b.MinHeight {
		h = b.MinHeight
		w = int(math.Round(float64(h) / ratio))
	}

	if w < b.MinWidth {
		w = b.MinWidth
		h = int(math.Round(float64(w) * ratio))
	}

	return w, h
}

// Prepare loads the logo, resizes it to fit bounds using Lanczos
// interpolation, and scales its alpha channel by opacity. Opacity must be in
// [0,1]; the scaling is multiplicative, so transparency already present in
// the source survives.
func Prepare(logoPath string, opacity float64, b Bounds) (*image.NRGBA, error) {
	if opacity < 0 || opacity > 1 {
		return nil, fmt.Errorf("opacity must be between 0.0 and 1.0, got %g", opacity)
	}

	src, err := imaging.Open(logoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("logo not found: %s", logoPath)
		}
		return nil, fmt.Errorf("decoding logo %s: %w", logoPath, err)
	}

	sb := src.Bounds()
	w, h := b.Fit(sb.Dx(), sb.Dy())
	wm := imaging.Resize(src, w, h, imaging.Lanczos)

	if opacity < 1.0 {
		fade(wm, opacity)
	}
	return wm, nil
}

// fade multiplies every pixel's alpha by opacity. NRGBA stores
// non-premultiplied color, so the color channels stay untouched.
func fade(img *image.NRGBA, opacity float64) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(float64(img.Pix[i]) * opacity)
	}
}

// Overlay alpha-blends the watermark onto the page at the anchor position
// and returns a new raster; the page is not mutated. When the watermark is
// larger than the page the offset is clamped to the page origin and the
// overhang is clipped.
func Overlay(page image.Image, wm image.Image, anchor types.Anchor, margin int) *image.NRGBA {
	pb := page.Bounds()
	wb := wm.Bounds()

	x, y := anchor.Offset(pb.Dx(), pb.Dy(), wb.Dx(), wb.Dy(), margin)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return imaging.Overlay(page, wm, image.Pt(x, y), 1.0)
}
