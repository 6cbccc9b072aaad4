package regions

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []Rectangle
		want []Rectangle
	}{
		{
			name: "same_coordinates",
			in:   []Rectangle{Rect(1, 1, 3, 3), Rect(1, 1, 3, 3), Rect(1, 1, 3, 3), Rect(1, 1, 3, 3)},
			want: []Rectangle{Rect(1, 1, 3, 3)},
		},
		{
			name: "same_x",
			in:   []Rectangle{Rect(1, 1, 3, 3), Rect(1, 2, 3, 4), Rect(1, 3, 3, 5)},
			want: []Rectangle{Rect(1, 1, 3, 5)},
		},
		{
			name: "same_y",
			in:   []Rectangle{Rect(1, 1, 3, 2), Rect(2, 1, 4, 2), Rect(3, 1, 5, 2)},
			want: []Rectangle{Rect(1, 1, 5, 2)},
		},
		{
			name: "diagonal_overlap",
			in:   []Rectangle{Rect(1, 1, 3, 3), Rect(3, 3, 5, 5), Rect(5, 5, 7, 7)},
			want: []Rectangle{Rect(1, 1, 7, 7)},
		},
		{
			name: "diagonal_no_overlap",
			in:   []Rectangle{Rect(1, 1, 2, 2), Rect(3, 3, 4, 4), Rect(5, 5, 6, 6)},
			want: []Rectangle{Rect(1, 1, 2, 2), Rect(3, 3, 4, 4), Rect(5, 5, 6, 6)},
		},
		{
			// The last rectangle bridges the first two only after it has
			// been merged with the second.
			name: "late_bridge",
			in:   []Rectangle{Rect(0, 0, 1, 1), Rect(10, 0, 11, 1), Rect(5, 5, 6, 6), Rect(6, 0, 10, 6), Rect(1, 1, 5, 5)},
			want: []Rectangle{Rect(0, 0, 11, 6)},
		},
		{
			name: "origin_pixel_survives",
			in:   []Rectangle{Rect(0, 0, 0, 0), Rect(5, 5, 6, 6)},
			want: []Rectangle{Rect(0, 0, 0, 0), Rect(5, 5, 6, 6)},
		},
		{
			name: "empty",
			in:   nil,
			want: []Rectangle{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Merge(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	in := []Rectangle{Rect(1, 1, 3, 3), Rect(3, 3, 5, 5)}
	Merge(in)
	if in[0] != Rect(1, 1, 3, 3) || in[1] != Rect(3, 3, 5, 5) {
		t.Errorf("input was modified: %v", in)
	}
}

func TestMergeIsFixedPoint(t *testing.T) {
	in := []Rectangle{
		Rect(30, 30, 31, 31), Rect(0, 0, 2, 2), Rect(20, 0, 22, 2),
		Rect(2, 2, 4, 4), Rect(40, 40, 40, 40), Rect(18, 2, 20, 10),
		Rect(4, 4, 18, 5), Rect(31, 31, 39, 39), Rect(50, 0, 52, 1),
	}
	once := Merge(in)
	twice := Merge(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Merge is not a fixed point: %v then %v", once, twice)
	}
	for i := range once {
		for j := i + 1; j < len(once); j++ {
			if once[i].Overlaps(once[j]) {
				t.Errorf("%v and %v still overlap", once[i], once[j])
			}
		}
	}
}

func TestMergePassStepsBack(t *testing.T) {
	// Neither of the last two overlaps the first, but their union does.
	in := []Rectangle{Rect(3, 0, 4, 1), Rect(0, 0, 1, 5), Rect(1, 5, 6, 6)}
	out, merged := mergePass(in)
	if !merged {
		t.Fatal("mergePass reported no merge")
	}
	if want := []Rectangle{Rect(0, 0, 6, 6)}; !reflect.DeepEqual(out, want) {
		t.Errorf("mergePass = %v, want %v", out, want)
	}

	if _, merged := mergePass(out); merged {
		t.Error("second pass over merged output should not merge")
	}
}
