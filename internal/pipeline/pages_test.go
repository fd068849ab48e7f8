// Copyright Colosal Media S.L., 2026. All rights reserved.

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePages(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		want   []int
		errMsg string
	}{
		{name: "empty means all", expr: "", want: nil},
		{name: "whitespace means all", expr: "  ", want: nil},
		{name: "single page", expr: "3", want: []int{3}},
		{name: "list", expr: "1,4,2", want: []int{1, 2, 4}},
		{name: "range", expr: "3-5", want: []int{3, 4, 5}},
		{name: "mixed with duplicates", expr: "1,3-5,4,9", want: []int{1, 3, 4, 5, 9}},
		{name: "spaces tolerated", expr: " 1 , 3 - 4 ", want: []int{1, 3, 4}},
		{name: "reversed range", expr: "5-3", errMsg: "reversed"},
		{name: "zero page", expr: "0", errMsg: "invalid page number"},
		{name: "junk", expr: "a-b", errMsg: "invalid page number"},
		{name: "trailing comma", expr: "1,", errMsg: "empty page range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePages(tt.expr)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectPages(t *testing.T) {
	paths := []string{"page-1.png", "page-2.png", "page-3.png"}

	got, err := selectPages(paths, nil)
	require.NoError(t, err)
	assert.Equal(t, paths, got)

	got, err = selectPages(paths, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"page-1.png", "page-3.png"}, got)

	_, err = selectPages(paths, []int{4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document has 3 page(s)")
}
