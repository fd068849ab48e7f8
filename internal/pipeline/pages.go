// Copyright Colosal Media S.L., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePages parses a 1-based page selection like "1,3-5,9" into a sorted,
// deduplicated list. An empty expression means all pages and returns nil.
func ParsePages(expr string) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		for p := lo; p <= hi; p++ {
			seen[p] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}

func parseRange(part string) (lo, hi int, err error) {
	if part == "" {
		return 0, 0, fmt.Errorf("empty page range")
	}

	bounds := strings.SplitN(part, "-", 2)
	lo, err = parsePageNum(bounds[0])
	if err != nil {
		return 0, 0, err
	}
	hi = lo
	if len(bounds) == 2 {
		hi, err = parsePageNum(bounds[1])
		if err != nil {
			return 0, 0, err
		}
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("page range %q is reversed", part)
	}
	return lo, hi, nil
}

func parsePageNum(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid page number %q", s)
	}
	return n, nil
}

// selectPages filters the rasterized page paths down to the selected
// 1-based page numbers. A selected page beyond the document is an error.
func selectPages(paths []string, pages []int) ([]string, error) {
	if len(pages) == 0 {
		return paths, nil
	}

	selected := make([]string, 0, len(pages))
	for _, p := range pages {
		if p > len(paths) {
			return nil, fmt.Errorf("page %d selected but document has %d page(s)", p, len(paths))
		}
		selected = append(selected, paths[p-1])
	}
	return selected, nil
}
