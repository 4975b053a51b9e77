package svgbob

import "testing"

func TestPlusAloneEmitsNoFragments(t *testing.T) {
	grid, _ := BuildGrid("   \n + \n   ")
	spans := GroupSpans(grid)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	localized, _ := spans[0].Localized()
	buffer := Emit(localized)
	frags := buffer.All()
	if len(frags) != 0 {
		t.Errorf("a lone '+' should emit no fragments, got %d: %+v", len(frags), frags)
	}
}

func TestPlusConnectsToStrongNeighbor(t *testing.T) {
	grid, _ := BuildGrid("-+")
	spans := GroupSpans(grid)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	localized, _ := spans[0].Localized()
	buffer := Emit(localized)
	frags := buffer.All()
	if len(frags) == 0 {
		t.Fatal("expected '+' to draw a half-line toward its strong '-' neighbor")
	}
}

func TestEqualsRequiresAdjacentEquals(t *testing.T) {
	prop, ok := Lookup('=')
	if !ok {
		t.Fatal("expected a Property registered for '='")
	}

	lonely := Neighbors{}
	frags := prop.Emit(Cell{}, lonely)
	if len(frags) != 1 {
		t.Fatalf("lone '=' should fall back to a single text glyph, got %d fragments", len(frags))
	}
	if _, ok := frags[0].(*CellText); !ok {
		t.Errorf("expected *CellText fallback, got %T", frags[0])
	}

	var withEastNeighbor Neighbors
	withEastNeighbor.cell[East] = '='
	frags = prop.Emit(Cell{}, withEastNeighbor)
	if len(frags) != 1 {
		t.Fatalf("expected a single line fragment, got %d", len(frags))
	}
	if _, ok := frags[0].(*Line); !ok {
		t.Errorf("expected *Line, got %T", frags[0])
	}
}

func TestLookupUnknownCharacter(t *testing.T) {
	if _, ok := Lookup('?'); ok {
		t.Error("'?' should have no Property Table entry")
	}
}
