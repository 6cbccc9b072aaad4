package regions

// Merge fuses overlapping rectangles until no two of the returned rectangles
// overlap. A single pass can grow a rectangle into one it already scanned
// past, so at least two passes always run and further passes follow for as
// long as the previous one still merged something.
func Merge(rects []Rectangle) []Rectangle {
	out, _ := mergePass(rects)
	out, merged := mergePass(out)
	for merged {
		out, merged = mergePass(out)
	}
	return out
}

// mergePass walks rects once, folding every later rectangle that overlaps
// the one at the current position into it. After a slot absorbed anything
// the walk steps back one slot so the grown rectangle is compared against
// its predecessor again. It reports whether any merge happened.
func mergePass(rects []Rectangle) ([]Rectangle, bool) {
	work := make([]Rectangle, len(rects))
	copy(work, rects)
	consumed := make([]bool, len(work))

	merged := false
	pos := 0
	for pos < len(work) {
		if consumed[pos] {
			pos++
			continue
		}
		grew := false
		for i := pos + 1; i < len(work); i++ {
			if consumed[i] || !work[pos].Overlaps(work[i]) {
				continue
			}
			work[pos] = work[pos].Union(work[i])
			consumed[i] = true
			grew = true
		}
		if grew {
			merged = true
			if pos > 0 {
				pos--
				continue
			}
		}
		pos++
	}

	out := make([]Rectangle, 0, len(work))
	for i, r := range work {
		if !consumed[i] {
			out = append(out, r)
		}
	}
	return out, merged
}
