// Copyright Colosal Media S.L., 2026. All rights reserved.

// Package types holds the shared value types consumed by the pipeline
// packages and the CLI: output quality and watermark anchor positions.
package types

import (
	"fmt"
	"strconv"
)

// QualityLossless is the CLI token selecting lossless PNG page encoding.
const QualityLossless = "lossless"

// Quality selects how rebuilt pages are encoded: lossless PNG, or JPEG
// at a quality level between 1 and 100. The zero value is lossless.
type Quality struct {
	jpeg int // 0 means lossless
}

// ParseQuality parses a --quality argument: the literal "lossless" or an
// integer string in [1,100].
func ParseQuality(s string) (Quality, error) {
	if s == QualityLossless {
		return Quality{}, nil
	}
	q, err := strconv.Atoi(s)
	if err != nil {
		return Quality{}, fmt.Errorf("quality must be %q or a number 1-100, got %q", QualityLossless, s)
	}
	if q < 1 || q > 100 {
		return Quality{}, fmt.Errorf("quality must be between 1 and 100, got %d", q)
	}
	return Quality{jpeg: q}, nil
}

// Lossless reports whether pages are encoded as PNG.
func (q Quality) Lossless() bool { return q.jpeg == 0 }

// JPEG returns the JPEG quality level. Only meaningful when Lossless is false.
func (q Quality) JPEG() int { return q.jpeg }

// Ext returns the file extension for intermediate page files.
func (q Quality) Ext() string {
	if q.Lossless() {
		return "png"
	}
	return "jpg"
}

func (q Quality) String() string {
	if q.Lossless() {
		return QualityLossless
	}
	return strconv.Itoa(q.jpeg)
}
