package comparator

import (
	"fmt"
	"image"
	"log"

	"github.com/dtom7/image-compare/internal/regions"
)

// CompareFiles loads two PNG files and compares them. Inputs that are not
// PNG files, not 8-bit RGBA or not the same size are reported through
// Result.State without an error; errors are reserved for files that cannot
// be read or decoded.
func CompareFiles(expectedPath, actualPath string, cfg regions.Config) (*Result, error) {
	if !isPNG(expectedPath) || !isPNG(actualPath) {
		log.Printf("Image formats %q and %q are not supported.", OutputFormat(expectedPath), OutputFormat(actualPath))
		return &Result{State: StateFormatNotSupported}, nil
	}

	expectedImg, expectedHeader, err := loadImage(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	actualImg, actualHeader, err := loadImage(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}

	if !expectedHeader.rgba8() || !actualHeader.rgba8() {
		log.Printf("Expected image color type %d/%d-bit and actual image color type %d/%d-bit are not supported.",
			expectedHeader.ColorType, expectedHeader.BitDepth, actualHeader.ColorType, actualHeader.BitDepth)
		return &Result{State: StateColorTypeNotSupported}, nil
	}
	expected, actual := toNRGBA(expectedImg), toNRGBA(actualImg)

	eb, ab := expected.Bounds(), actual.Bounds()
	if eb.Dx() != ab.Dx() || eb.Dy() != ab.Dy() {
		log.Printf("Expected image dimensions %dx%d and actual image dimensions %dx%d are not equal.", eb.Dx(), eb.Dy(), ab.Dx(), ab.Dy())
		return &Result{State: StateSizeMismatch}, nil
	}

	return compareImages(expected, actual, cfg), nil
}

func compareImages(expected, actual *image.NRGBA, cfg regions.Config) *Result {
	out := regions.Compare(expected, actual, cfg)
	if out.Match {
		return &Result{State: StateMatch, DifferentPixels: out.DifferentPixels}
	}
	return &Result{
		State:           StateMismatch,
		DifferentPixels: out.DifferentPixels,
		Regions:         out.Regions,
		Image:           out.Image,
	}
}
