package svgbob

import "testing"

func TestLookupUnicodeBoxDrawing(t *testing.T) {
	templates, ok := LookupUnicode('┌')
	if !ok {
		t.Fatal("expected a template list for '┌'")
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates (down+right), got %d", len(templates))
	}
}

func TestLookupUnicodeUnknownRune(t *testing.T) {
	if _, ok := LookupUnicode('a'); ok {
		t.Error("'a' should not be in the Unicode Fragment Map")
	}
}

func TestBoxDrawingCharacterBypassesNeighborLookup(t *testing.T) {
	// A box-drawing character's meaning never depends on its neighbors
	//: it must resolve to fragments even with a blank
	// surrounding span.
	grid, _ := BuildGrid("┌")
	spans := GroupSpans(grid)
	localized, _ := spans[0].Localized()
	frags := Emit(localized).All()
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments from a lone '┌', got %d", len(frags))
	}
}
