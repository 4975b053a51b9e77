package svgbob

import "testing"

func TestGroupSpansSeparatesDisconnectedCells(t *testing.T) {
	grid, _ := BuildGrid("a   b")
	spans := GroupSpans(grid)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
}

func TestGroupSpansMergesEightAdjacency(t *testing.T) {
	// "a" at (0,0) and "b" at (1,1) are diagonally adjacent and must join
	// the same span.
	grid, _ := BuildGrid("a \n b")
	spans := GroupSpans(grid)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Len() != 2 {
		t.Fatalf("expected span to contain 2 cells, got %d", spans[0].Len())
	}
}

func TestGroupSpansEveryCellInExactlyOneSpan(t *testing.T) {
	grid, _ := BuildGrid("+-+\n| |\n+-+")
	spans := GroupSpans(grid)

	seen := make(map[Cell]int)
	for _, s := range spans {
		for c := range s.Cells {
			seen[c]++
		}
	}
	for c, text := range grid.Cells {
		_ = text
		if seen[c] != 1 {
			t.Errorf("cell %v appeared in %d spans, want exactly 1", c, seen[c])
		}
	}
}

func TestSpanLocalizedOffset(t *testing.T) {
	s := &Span{Cells: map[Cell]string{{X: 3, Y: 5}: "a", {X: 4, Y: 5}: "b"}}
	localized, offset := s.Localized()
	if offset != (Cell{X: 3, Y: 5}) {
		t.Fatalf("offset = %v, want (3,5)", offset)
	}
	if _, ok := localized.Cells[Cell{X: 0, Y: 0}]; !ok {
		t.Error("expected localized span to contain (0,0)")
	}
	if _, ok := localized.Cells[Cell{X: 1, Y: 0}]; !ok {
		t.Error("expected localized span to contain (1,0)")
	}
}
