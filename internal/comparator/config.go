package comparator

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dtom7/image-compare/internal/regions"
)

// Config holds all the configuration parameters for the application,
// parsed from command-line flags.
type Config struct {
	ExpectedPath string
	ActualPath   string
	// OutputPath is the result image in single mode and the directory that
	// receives result images in batch mode.
	OutputPath string
	Batch      bool
	CPUCores   int

	JumpThreshold            int
	AllowedDifferencePercent float64
	MinimumRegionArea        int
	OutlineColor             string
}

// RegionsConfig translates the command-line settings into the parameters of
// a single comparison.
func (c *Config) RegionsConfig() (regions.Config, error) {
	outline, err := ParseColor(c.OutlineColor)
	if err != nil {
		return regions.Config{}, err
	}
	return regions.Config{
		JumpThreshold:            c.JumpThreshold,
		AllowedDifferencePercent: c.AllowedDifferencePercent,
		MinimumRegionArea:        c.MinimumRegionArea,
		OutlineColor:             outline,
	}, nil
}

// ParseColor parses a hex color such as "#ff0000" into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
