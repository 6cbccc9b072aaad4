package comparator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ErrDecode is wrapped by every error caused by an input file that could not
// be decoded.
var ErrDecode = errors.New("could not decode image")

// isPNG reports whether path names a PNG file, judged by its extension.
func isPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// PNG color types as stored in the IHDR chunk.
const (
	pngTruecolor      = 2
	pngIndexed        = 3
	pngTruecolorAlpha = 6
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngHeader is what the IHDR and tRNS chunks say about a PNG file's pixel
// layout, before any decoder expands it.
type pngHeader struct {
	BitDepth     uint8
	ColorType    uint8
	Transparency bool
}

// readPNGHeader walks the chunks of a PNG file up to the first IDAT.
func readPNGHeader(data []byte) (pngHeader, error) {
	var h pngHeader
	if !bytes.HasPrefix(data, pngSignature) {
		return h, errors.New("missing PNG signature")
	}
	data = data[len(pngSignature):]
	for first := true; len(data) >= 12; first = false {
		length := int(binary.BigEndian.Uint32(data[:4]))
		kind := string(data[4:8])
		if length < 0 || len(data) < 12+length {
			return h, fmt.Errorf("truncated %s chunk", kind)
		}
		body := data[8 : 8+length]
		switch {
		case first && kind != "IHDR":
			return h, errors.New("first chunk is not IHDR")
		case kind == "IHDR":
			if length != 13 {
				return h, errors.New("bad IHDR length")
			}
			h.BitDepth, h.ColorType = body[8], body[9]
		case kind == "tRNS":
			h.Transparency = true
		case kind == "IDAT":
			return h, nil
		}
		data = data[12+length:]
	}
	return h, errors.New("no IDAT chunk")
}

// rgba8 reports whether the file decodes to four 8-bit channels once
// palettes and tRNS transparency are expanded.
func (h pngHeader) rgba8() bool {
	switch h.ColorType {
	case pngTruecolorAlpha:
		return h.BitDepth == 8
	case pngTruecolor:
		return h.BitDepth == 8 && h.Transparency
	case pngIndexed:
		return h.Transparency
	}
	return false
}

// loadImage reads and decodes a PNG image from the given file path. The
// header is returned alongside so callers can check the stored color type;
// the decoded image alone cannot tell gray+alpha from RGBA.
func loadImage(path string) (image.Image, pngHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pngHeader{}, fmt.Errorf("could not open file: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, pngHeader{}, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	header, err := readPNGHeader(data)
	if err != nil {
		return nil, pngHeader{}, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return img, header, nil
}

// toNRGBA returns img as an *image.NRGBA, expanding other layouts pixel by
// pixel. Paletted colors are already non-premultiplied, so the copy is exact.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// saveImage encodes img to path, picking the format from the extension and
// creating missing parent directories.
func saveImage(img image.Image, path string) error {
	encoder, err := NewImageEncoder(OutputFormat(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer outFile.Close()

	if err := encoder.Encode(outFile, img); err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return outFile.Close()
}
