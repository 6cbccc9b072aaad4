package regions

import (
	"bytes"
	"image"
)

const (
	cellEqual   uint32 = 0
	cellDiffers uint32 = 1
	firstLabel  uint32 = 2
)

// Matrix records, for every pixel of a comparison, whether the two images
// differ there and which region the pixel was assigned to. A cell holds 0
// for equal pixels, 1 for a differing pixel not yet labeled and a label
// n >= 2 once the pixel belongs to region n.
type Matrix struct {
	Width, Height int
	cells         []uint32
}

// NewMatrix returns a zero-filled matrix of the given size.
func NewMatrix(width, height int) *Matrix {
	return &Matrix{
		Width:  width,
		Height: height,
		cells:  make([]uint32, width*height),
	}
}

// At returns the cell value at (x,y).
func (m *Matrix) At(x, y int) uint32 {
	return m.cells[y*m.Width+x]
}

// Set stores v at (x,y).
func (m *Matrix) Set(x, y int, v uint32) {
	m.cells[y*m.Width+x] = v
}

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Len returns the number of cells, which is also the pixel count of the
// compared images.
func (m *Matrix) Len() int {
	return len(m.cells)
}

// Populate compares expected and actual pixel by pixel, marks every pixel
// whose four channels are not all equal and returns how many were marked.
// Every pixel is visited: region labeling needs the complete mask.
//
// Both images must have the matrix's dimensions.
func (m *Matrix) Populate(expected, actual *image.NRGBA) int {
	eb, ab := expected.Bounds(), actual.Bounds()
	rowBytes := m.Width * 4

	count := 0
	for y := 0; y < m.Height; y++ {
		eo := expected.PixOffset(eb.Min.X, eb.Min.Y+y)
		ao := actual.PixOffset(ab.Min.X, ab.Min.Y+y)
		eRow := expected.Pix[eo : eo+rowBytes]
		aRow := actual.Pix[ao : ao+rowBytes]
		if bytes.Equal(eRow, aRow) {
			continue
		}
		for x := 0; x < m.Width; x++ {
			i := x * 4
			if eRow[i] != aRow[i] || eRow[i+1] != aRow[i+1] ||
				eRow[i+2] != aRow[i+2] || eRow[i+3] != aRow[i+3] {
				m.Set(x, y, cellDiffers)
				count++
			}
		}
	}
	return count
}

// withinTolerance reports whether count differing pixels out of total are
// few enough for the images to be considered matching.
func withinTolerance(count, total int, allowedPercent float64) bool {
	if count == 0 {
		return true
	}
	percent := 100 * float64(count) / float64(total)
	return percent <= allowedPercent
}
