package regions

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// outlines is the number of concentric borders drawn around each rectangle.
const outlines = 3

// Render returns a copy of actual with every rectangle outlined in c. Each
// rectangle gets three one-pixel borders, each one pixel further out than
// the last. A border that would not fit inside the image is skipped
// entirely; the inner borders already drawn are kept.
func Render(actual *image.NRGBA, rects []Rectangle, c color.NRGBA) *image.NRGBA {
	bounds := actual.Bounds()
	result := image.NewNRGBA(bounds)
	draw.Draw(result, bounds, actual, bounds.Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()
	for _, r := range rects {
		for i := 0; i < outlines; i++ {
			if i > 0 {
				r.grow()
			}
			if r.outOfBounds(width, height) {
				continue
			}
			drawOutline(result, r, c)
		}
	}
	return result
}

// drawOutline paints the four edges of r, given in coordinates relative to
// the image origin.
func drawOutline(img *image.NRGBA, r Rectangle, c color.NRGBA) {
	b := r.Bounds().Add(img.Bounds().Min)
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetNRGBA(x, b.Min.Y, c)
		img.SetNRGBA(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.SetNRGBA(b.Min.X, y, c)
		img.SetNRGBA(b.Max.X-1, y, c)
	}
}
