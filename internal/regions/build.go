package regions

// Bounds returns the bounding rectangle of every region labeled in m, in
// ascending label order. next is the value returned by Label. Labels that
// own no cell are skipped, as are rectangles smaller than minArea.
func Bounds(m *Matrix, next uint32, minArea int) []Rectangle {
	if next <= firstLabel {
		return nil
	}

	boxes := make([]Rectangle, next-firstLabel)
	for i := range boxes {
		boxes[i] = EmptyRectangle()
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := m.At(x, y)
			if v < firstLabel || v >= next {
				continue
			}
			boxes[v-firstLabel].include(x, y)
		}
	}

	rects := make([]Rectangle, 0, len(boxes))
	for _, r := range boxes {
		if r.Empty() || r.Size() < minArea {
			continue
		}
		rects = append(rects, r)
	}
	return rects
}
