package comparator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ImageEncoder writes a result image in one file format.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error { return png.Encode(w, img) }

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }

// NewImageEncoder returns an encoder for the given format name.
func NewImageEncoder(format string) (ImageEncoder, error) {
	switch strings.ToLower(format) {
	case "png":
		return pngEncoder{}, nil
	case "bmp":
		return bmpEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// OutputFormat infers an image format from a file extension, defaulting
// to png when there is none.
func OutputFormat(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "png"
	}
	return strings.ToLower(ext)
}
