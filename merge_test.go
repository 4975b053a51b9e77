package svgbob

import "testing"

func TestMergeColinearTouchingLines(t *testing.T) {
	a := &Line{Start: Point{0, 0}, End: Point{1, 0}}
	b := &Line{Start: Point{1, 0}, End: Point{2, 0}}
	merged := Merge([]Fragment{a, b})
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged line, got %d: %+v", len(merged), merged)
	}
	line, ok := merged[0].(*Line)
	if !ok {
		t.Fatalf("expected *Line, got %T", merged[0])
	}
	if line.Start != (Point{0, 0}) || line.End != (Point{2, 0}) {
		t.Errorf("merged line = %+v, want Start=(0,0) End=(2,0)", line)
	}
}

func TestMergeDoesNotJoinDisjointLines(t *testing.T) {
	a := &Line{Start: Point{0, 0}, End: Point{1, 0}}
	b := &Line{Start: Point{5, 0}, End: Point{6, 0}}
	merged := Merge([]Fragment{a, b})
	if len(merged) != 2 {
		t.Fatalf("expected 2 separate lines, got %d", len(merged))
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	frags := []Fragment{
		&Line{Start: Point{0, 0}, End: Point{1, 0}},
		&Line{Start: Point{1, 0}, End: Point{2, 0}},
		&Line{Start: Point{2, 0}, End: Point{3, 0}},
	}
	once := Merge(frags)
	twice := Merge(once)
	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %d fragments then %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Equal(twice[i]) {
			t.Errorf("fragment %d changed on second merge: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestMergeLineIntoArrowProducesMarkerLine(t *testing.T) {
	line := &Line{Start: Point{0, 0}, End: Point{0, 2}}
	arrow := &Polygon{
		Points: []Point{{-0.25, 2}, {0.25, 2}, {0, 2.5}},
		Filled: true,
		Tag:    ArrowBottom,
	}
	merged := Merge([]Fragment{line, arrow})
	if len(merged) != 1 {
		t.Fatalf("expected a single MarkerLine, got %d fragments: %+v", len(merged), merged)
	}
	ml, ok := merged[0].(*MarkerLine)
	if !ok {
		t.Fatalf("expected *MarkerLine, got %T", merged[0])
	}
	if ml.EndMarker != ArrowMarker {
		t.Errorf("expected EndMarker=ArrowMarker, got %v", ml.EndMarker)
	}
}

func TestGroupContactsSeparatesUnrelatedFragments(t *testing.T) {
	a := &Line{Start: Point{0, 0}, End: Point{1, 0}}
	b := &Line{Start: Point{10, 10}, End: Point{11, 10}}
	groups := GroupContacts([]Fragment{a, b})
	if len(groups) != 2 {
		t.Fatalf("expected 2 contact groups, got %d", len(groups))
	}
}

func TestGroupContactsJoinsTouchingLines(t *testing.T) {
	a := &Line{Start: Point{0, 0}, End: Point{1, 0}}
	b := &Line{Start: Point{1, 0}, End: Point{1, 1}}
	groups := GroupContacts([]Fragment{a, b})
	if len(groups) != 1 {
		t.Fatalf("expected 1 contact group, got %d", len(groups))
	}
	if len(groups[0]) != 2 {
		t.Fatalf("expected 2 fragments in the group, got %d", len(groups[0]))
	}
}
