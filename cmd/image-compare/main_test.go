package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtom7/image-compare/internal/comparator"
)

func TestValidateConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	valid := func() *comparator.Config {
		return &comparator.Config{
			ExpectedPath:      file,
			ActualPath:        file,
			OutputPath:        filepath.Join(dir, "result.png"),
			CPUCores:          1,
			JumpThreshold:     5,
			MinimumRegionArea: 1,
			OutlineColor:      "#ff0000",
		}
	}

	for _, tc := range []struct {
		name    string
		mutate  func(*comparator.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*comparator.Config) {}},
		{name: "bmp_output", mutate: func(c *comparator.Config) { c.OutputPath = filepath.Join(dir, "r.bmp") }},
		{name: "missing_expected", mutate: func(c *comparator.Config) { c.ExpectedPath = "" }, wantErr: true},
		{name: "missing_actual", mutate: func(c *comparator.Config) { c.ActualPath = "" }, wantErr: true},
		{name: "nonexistent", mutate: func(c *comparator.Config) { c.ActualPath = filepath.Join(dir, "nope.png") }, wantErr: true},
		{name: "directory_without_batch", mutate: func(c *comparator.Config) { c.ActualPath = dir }, wantErr: true},
		{name: "file_with_batch", mutate: func(c *comparator.Config) { c.Batch = true }, wantErr: true},
		{name: "batch_dirs", mutate: func(c *comparator.Config) { c.Batch = true; c.ExpectedPath = dir; c.ActualPath = dir }},
		{name: "negative_jump", mutate: func(c *comparator.Config) { c.JumpThreshold = -1 }, wantErr: true},
		{name: "percent_too_large", mutate: func(c *comparator.Config) { c.AllowedDifferencePercent = 101 }, wantErr: true},
		{name: "negative_area", mutate: func(c *comparator.Config) { c.MinimumRegionArea = -1 }, wantErr: true},
		{name: "zero_cores", mutate: func(c *comparator.Config) { c.CPUCores = 0 }, wantErr: true},
		{name: "bad_color", mutate: func(c *comparator.Config) { c.OutlineColor = "nope" }, wantErr: true},
		{name: "bad_output_format", mutate: func(c *comparator.Config) { c.OutputPath = "result.gif" }, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.wantErr && err == nil {
				t.Error("validateConfig succeeded, want error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("validateConfig: %v", err)
			}
		})
	}
}
