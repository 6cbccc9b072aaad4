package regions

import (
	"fmt"
	"image"
	"math"
)

// Rectangle is an axis-aligned box whose Min and Max corners are both
// inclusive. Unlike image.Rectangle, a Rectangle covering a single pixel has
// Min == Max.
type Rectangle struct {
	Min, Max image.Point
}

// Rect returns the rectangle spanning (minX,minY) to (maxX,maxY) inclusive.
func Rect(minX, minY, maxX, maxY int) Rectangle {
	return Rectangle{
		Min: image.Point{X: minX, Y: minY},
		Max: image.Point{X: maxX, Y: maxY},
	}
}

// EmptyRectangle returns the fold identity used while collecting a region's
// bounds. No pixel ever leaves it unchanged, so a rectangle still equal to it
// after a scan covers nothing.
func EmptyRectangle() Rectangle {
	return Rect(math.MaxInt, math.MaxInt, math.MinInt, math.MinInt)
}

// Empty reports whether r contains no pixels.
func (r Rectangle) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// include grows r so that it covers (x,y).
func (r *Rectangle) include(x, y int) {
	if x < r.Min.X {
		r.Min.X = x
	}
	if x > r.Max.X {
		r.Max.X = x
	}
	if y < r.Min.Y {
		r.Min.Y = y
	}
	if y > r.Max.Y {
		r.Max.Y = y
	}
}

// Width returns the number of columns covered by r.
func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows covered by r.
func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// Size returns the pixel area of r, or 0 when r is empty.
func (r Rectangle) Size() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Overlaps reports whether r and s share at least one pixel. Rectangles that
// touch along an edge or at a corner overlap.
func (r Rectangle) Overlaps(s Rectangle) bool {
	if r.Max.Y < s.Min.Y || s.Max.Y < r.Min.Y {
		return false
	}
	return r.Max.X >= s.Min.X && s.Max.X >= r.Min.X
}

// Union returns the smallest rectangle enclosing both r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	return Rect(
		min(r.Min.X, s.Min.X),
		min(r.Min.Y, s.Min.Y),
		max(r.Max.X, s.Max.X),
		max(r.Max.Y, s.Max.Y),
	)
}

// grow pushes r one pixel outwards on every side. The min corner only moves
// when both of its coordinates can move without going negative, so a
// rectangle resting on the top or left edge keeps its min corner in place.
func (r *Rectangle) grow() {
	if r.Min.X >= 1 && r.Min.Y >= 1 {
		r.Min.X--
		r.Min.Y--
	}
	r.Max.X++
	r.Max.Y++
}

// outOfBounds reports whether any corner of r falls outside a width×height
// image anchored at the origin.
func (r Rectangle) outOfBounds(width, height int) bool {
	return r.Min.X < 0 || r.Min.Y < 0 ||
		r.Min.X >= width || r.Max.X >= width ||
		r.Min.Y >= height || r.Max.Y >= height
}

// Bounds converts r into the half-open image.Rectangle covering the same
// pixels.
func (r Rectangle) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
