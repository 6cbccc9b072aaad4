package regions

import "image"

// Label assigns every unlabeled differing cell of m to a region. Regions are
// grown by a flood fill that may jump up to jumpThreshold cells rightwards,
// downwards and along the three forward diagonals, so pixels separated by a
// small gap still end up in the same region.
//
// Labels start at 2 and are handed out in row-major scan order. Label returns
// one past the last label handed out; the labels in use are [2, next).
func Label(m *Matrix, jumpThreshold int) (next uint32) {
	next = firstLabel
	var stack []image.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) != cellDiffers {
				continue
			}
			stack = join(m, x, y, next, jumpThreshold, stack[:0])
			next++
		}
	}
	return next
}

// join labels the region reachable from (x,y). It keeps its pending cells on
// an explicit stack so large regions cannot exhaust the goroutine stack; the
// stack is returned for reuse by the next seed.
func join(m *Matrix, x, y int, label uint32, jumpThreshold int, stack []image.Point) []image.Point {
	stack = append(stack, image.Point{X: x, Y: y})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.inBounds(p.X, p.Y) || m.At(p.X, p.Y) != cellDiffers {
			continue
		}
		m.Set(p.X, p.Y, label)

		for i := 0; i < jumpThreshold; i++ {
			step := 1 + i
			stack = append(stack,
				image.Point{X: p.X + step, Y: p.Y},
				image.Point{X: p.X, Y: p.Y + step},
				image.Point{X: p.X + step, Y: p.Y + step},
			)
			// Jumps that would leave the grid through the top or left edge
			// are dropped here rather than left to the bounds check.
			if p.Y-step >= 0 {
				stack = append(stack, image.Point{X: p.X + step, Y: p.Y - step})
			}
			if p.X-step >= 0 {
				stack = append(stack, image.Point{X: p.X - step, Y: p.Y + step})
			}
		}
	}
	return stack
}
