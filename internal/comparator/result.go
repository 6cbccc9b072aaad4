package comparator

import (
	"image"

	"github.com/dtom7/image-compare/internal/regions"
)

// State is the verdict of comparing two image files.
type State int

const (
	StateMatch State = iota
	StateMismatch
	StateFormatNotSupported
	StateColorTypeNotSupported
	StateSizeMismatch
)

func (s State) String() string {
	switch s {
	case StateMatch:
		return "match"
	case StateMismatch:
		return "mismatch"
	case StateFormatNotSupported:
		return "format not supported"
	case StateColorTypeNotSupported:
		return "color type not supported"
	case StateSizeMismatch:
		return "size mismatch"
	default:
		return "unknown"
	}
}

// Result describes the outcome of CompareFiles. Image is only set for
// StateMismatch.
type Result struct {
	State           State
	DifferentPixels int
	Regions         []regions.Rectangle
	Image           *image.NRGBA
}
