// Copyright Colosal Media S.L., 2026. All rights reserved.

package types

import "fmt"

// Anchor names one of nine page positions for the watermark: a vertical
// component (t/m/b) followed by a horizontal one (l/c/r).
type Anchor string

const (
	TopLeft      Anchor = "tl"
	TopCenter    Anchor = "tc"
	TopRight     Anchor = "tr"
	MiddleLeft   Anchor = "ml"
	MiddleCenter Anchor = "mc"
	MiddleRight  Anchor = "mr"
	BottomLeft   Anchor = "bl"
	BottomCenter Anchor = "bc"
	BottomRight  Anchor = "br"
)

var anchors = map[Anchor]bool{
	TopLeft: true, TopCenter: true, TopRight: true,
	MiddleLeft: true, MiddleCenter: true, MiddleRight: true,
	BottomLeft: true, BottomCenter: true, BottomRight: true,
}

// ParseAnchor validates a --position argument.
func ParseAnchor(s string) (Anchor, error) {
	a := Anchor(s)
	if !anchors[a] {
		return "", fmt.Errorf("position must be one of tl,tc,tr,ml,mc,mr,bl,bc,br, got %q", s)
	}
	return a, nil
}

// Offset returns the top-left coordinate at which a watermark of wmW x wmH
// should be placed on a page of pageW x pageH, honoring the margin on the
// anchored edges. The result can be negative when the watermark exceeds the
// page; callers decide how to clamp.
func (a Anchor) Offset(pageW, pageH, wmW, wmH, margin int) (x, y int) {
	switch a[1] {
	case 'l':
		x = margin
	case 'c':
		x = (pageW - wmW) / 2
	case 'r':
		x = pageW - wmW - margin
	}
	switch a[0] {
	case 't':
		y = margin
	case 'm':
		y = (pageH - wmH) / 2
	case 'b':
		y = pageH - wmH - margin
	}
	return x, y
}
