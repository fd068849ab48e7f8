// Copyright Colosal Media S.L., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Report summarizes a completed run.
type Report struct {
	Input           string  `yaml:"input"`
	Output          string  `yaml:"output"`
	Pages           int     `yaml:"pages"`
	Quality         string  `yaml:"quality"`
	Position        string  `yaml:"position"`
	WatermarkWidth  int     `yaml:"watermark_width"`
	WatermarkHeight int     `yaml:"watermark_height"`
	Opacity         float64 `yaml:"opacity"`
	OutputBytes     int64   `yaml:"output_bytes"`
}

// WriteYAML writes the report to path.
func (r *Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}
