// Package regions finds where two equally sized images differ, groups the
// differing pixels into regions, reduces those regions to a set of
// non-overlapping rectangles and outlines them on a copy of the actual
// image.
package regions

import (
	"image"
	"log"
)

// Outcome is the result of Compare. Image and Regions are only set when
// Match is false.
type Outcome struct {
	Match bool
	// DifferentPixels is the number of pixels whose channels differ,
	// including those tolerated by AllowedDifferencePercent.
	DifferentPixels int
	Regions         []Rectangle
	Image           *image.NRGBA
}

// Compare compares expected against actual. Both images must have the same
// dimensions; callers are expected to have checked this.
//
// When the images differ by more than cfg allows, the differing pixels are
// grouped into regions, their bounding rectangles merged and the result
// drawn onto a copy of actual.
func Compare(expected, actual *image.NRGBA, cfg Config) Outcome {
	bounds := expected.Bounds()
	m := NewMatrix(bounds.Dx(), bounds.Dy())

	count := m.Populate(expected, actual)
	log.Printf("Found %d different pixels out of %d.", count, m.Len())
	if withinTolerance(count, m.Len(), cfg.AllowedDifferencePercent) {
		return Outcome{Match: true, DifferentPixels: count}
	}

	next := Label(m, cfg.JumpThreshold)
	rects := Bounds(m, next, cfg.MinimumRegionArea)
	merged := Merge(rects)
	log.Printf("Grouped differences into %d regions, %d rectangles after merging.", next-firstLabel, len(merged))

	// Every region fell below the minimum area.
	if len(merged) == 0 {
		return Outcome{Match: true, DifferentPixels: count}
	}

	return Outcome{
		DifferentPixels: count,
		Regions:         merged,
		Image:           Render(actual, merged, cfg.OutlineColor),
	}
}
