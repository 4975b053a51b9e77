package svgbob

import (
	"testing"
)

func TestLineEqualSymmetric(t *testing.T) {
	a := &Line{Start: Point{0, 0}, End: Point{1, 1}}
	b := &Line{Start: Point{1, 1}, End: Point{0, 0}}
	if !a.Equal(b) {
		t.Error("lines with swapped endpoints should be equal")
	}
}

func TestSortThenDedupIsPure(t *testing.T) {
	frags := []Fragment{
		&Line{Start: Point{1, 0}, End: Point{2, 0}},
		&Line{Start: Point{0, 0}, End: Point{1, 0}},
		&Line{Start: Point{0, 0}, End: Point{1, 0}},
	}
	Sort(frags)
	deduped := Dedup(frags)
	if len(deduped) != 2 {
		t.Fatalf("expected 2 fragments after dedup, got %d", len(deduped))
	}

	// Running the same pipeline again on the same (unsorted) input set must
	// produce the same result.
	frags2 := []Fragment{
		&Line{Start: Point{0, 0}, End: Point{1, 0}},
		&Line{Start: Point{1, 0}, End: Point{2, 0}},
		&Line{Start: Point{0, 0}, End: Point{1, 0}},
	}
	Sort(frags2)
	deduped2 := Dedup(frags2)
	if len(deduped2) != len(deduped) {
		t.Fatalf("non-deterministic dedup result: %d vs %d", len(deduped2), len(deduped))
	}
	for i := range deduped {
		if !deduped[i].Equal(deduped2[i]) {
			t.Errorf("fragment %d differs between runs: %+v vs %+v", i, deduped[i], deduped2[i])
		}
	}
}

func TestFragmentBoundsWithinScaledSpan(t *testing.T) {
	l := &Line{Start: Point{0, 0}, End: Point{1, 2}}
	scaled := l.Scaled(8).(*Line)
	min, max := scaled.Bounds()
	if min.X != 0 || min.Y != 0 || max.X != 8 || max.Y != 16 {
		t.Errorf("unexpected scaled bounds: min=%v max=%v", min, max)
	}
}
