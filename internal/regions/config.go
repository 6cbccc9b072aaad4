package regions

import "image/color"

// Config holds the tuning parameters of a single comparison.
type Config struct {
	// JumpThreshold is the largest gap, in cells, bridged between two
	// differing pixels when grouping them into a region.
	JumpThreshold int
	// AllowedDifferencePercent is the share of differing pixels, in percent,
	// at or below which the images are still reported as matching.
	AllowedDifferencePercent float64
	// MinimumRegionArea drops regions whose bounding rectangle covers fewer
	// pixels.
	MinimumRegionArea int
	OutlineColor      color.NRGBA
}

// Defaults used by DefaultConfig.
const (
	DefaultJumpThreshold     = 5
	DefaultMinimumRegionArea = 1
)

// DefaultOutlineColor is opaque red.
var DefaultOutlineColor = color.NRGBA{R: 255, A: 255}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		JumpThreshold:            DefaultJumpThreshold,
		AllowedDifferencePercent: 0,
		MinimumRegionArea:        DefaultMinimumRegionArea,
		OutlineColor:             DefaultOutlineColor,
	}
}
