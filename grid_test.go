package svgbob

import "testing"

func TestBuildGridPlacesNonBlankCells(t *testing.T) {
	grid, legend := BuildGrid("a-b\n | ")
	if legend != "" {
		t.Fatalf("expected no legend source, got %q", legend)
	}
	want := map[Cell]string{
		{X: 0, Y: 0}: "a",
		{X: 1, Y: 0}: "-",
		{X: 2, Y: 0}: "b",
		{X: 1, Y: 1}: "|",
	}
	if len(grid.Cells) != len(want) {
		t.Fatalf("got %d cells, want %d: %v", len(grid.Cells), len(want), grid.Cells)
	}
	for c, ch := range want {
		if grid.Cells[c] != ch {
			t.Errorf("cell %v = %q, want %q", c, grid.Cells[c], ch)
		}
	}
}

func TestBuildGridExtractsQuotedText(t *testing.T) {
	grid, _ := BuildGrid(`  "hi there"`)
	if len(grid.Texts) != 1 {
		t.Fatalf("expected 1 extracted text, got %d", len(grid.Texts))
	}
	got := grid.Texts[0]
	if got.Content != "hi there" || got.Cell != (Cell{X: 2, Y: 0}) {
		t.Errorf("got %+v, want Content=%q Cell=(2,0)", got, "hi there")
	}
}

func TestBuildGridSplitsOffLegend(t *testing.T) {
	input := "a-b\n# Legend:\nfoo = { fill: red }"
	grid, legend := BuildGrid(input)
	if len(grid.Cells) == 0 {
		t.Fatal("expected diagram cells before the legend marker")
	}
	for c := range grid.Cells {
		if c.Y != 0 {
			t.Errorf("legend text leaked into diagram grid at %v", c)
		}
	}
	if legend == "" {
		t.Fatal("expected a non-empty legend source")
	}
}

func TestFirstRune(t *testing.T) {
	if FirstRune("") != 0 {
		t.Error("FirstRune(\"\") should be 0")
	}
	if FirstRune("é") != 'é' {
		t.Errorf("FirstRune(\"é\") = %q, want 'é'", FirstRune("é"))
	}
}
