// Copyright Colosal Media S.L., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		lossless bool
		jpeg     int
		errMsg   string
	}{
		{name: "lossless token", in: "lossless", lossless: true},
		{name: "minimum jpeg quality", in: "1", jpeg: 1},
		{name: "typical jpeg quality", in: "85", jpeg: 85},
		{name: "maximum jpeg quality", in: "100", jpeg: 100},
		{name: "zero rejected", in: "0", errMsg: "between 1 and 100"},
		{name: "above range rejected", in: "101", errMsg: "between 1 and 100"},
		{name: "negative rejected", in: "-5", errMsg: "between 1 and 100"},
		{name: "junk rejected", in: "abc", errMsg: "lossless"},
		{name: "empty rejected", in: "", errMsg: "lossless"},
		{name: "float rejected", in: "85.5", errMsg: "lossless"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuality(tt.in)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lossless, q.Lossless())
			assert.Equal(t, tt.jpeg, q.JPEG())
			assert.Equal(t, tt.in, q.String())
		})
	}
}

func TestQualityExt(t *testing.T) {
	q, err := ParseQuality("lossless")
	require.NoError(t, err)
	assert.Equal(t, "png", q.Ext())

	q, err = ParseQuality("75")
	require.NoError(t, err)
	assert.Equal(t, "jpg", q.Ext())
}

func TestQualityZeroValue(t *testing.T) {
	var q Quality
	assert.True(t, q.Lossless())
	assert.Equal(t, "lossless", q.String())
}

func TestParseAnchor(t *testing.T) {
	for _, valid := range []string{"tl", "tc", "tr", "ml", "mc", "mr", "bl", "bc", "br"} {
		a, err := ParseAnchor(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, Anchor(valid), a)
	}
	for _, invalid := range []string{"", "xx", "BR", "bottom-right", "b"} {
		_, err := ParseAnchor(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestAnchorOffset(t *testing.T) {
	// 1000x800 page, 120x21 watermark, margin 10.
	tests := []struct {
		anchor Anchor
		x, y   int
	}{
		{TopLeft, 10, 10},
		{TopCenter, 440, 10},
		{TopRight, 870, 10},
		{MiddleLeft, 10, 389},
		{MiddleCenter, 440, 389},
		{MiddleRight, 870, 389},
		{BottomLeft, 10, 769},
		{BottomCenter, 440, 769},
		{BottomRight, 870, 769},
	}
	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			x, y := tt.anchor.Offset(1000, 800, 120, 21, 10)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestAnchorOffsetFlushCorner(t *testing.T) {
	x, y := BottomRight.Offset(1376, 768, 120, 21, 0)
	assert.Equal(t, 1256, x)
	assert.Equal(t, 747, y)
}

func TestAnchorOffsetOversized(t *testing.T) {
	// Watermark wider and taller than the page: offsets go negative.
	x, y := BottomRight.Offset(100, 50, 120, 80, 0)
	assert.Equal(t, -20, x)
	assert.Equal(t, -30, y)
}
