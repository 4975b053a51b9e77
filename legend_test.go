package svgbob

import "testing"

func TestParseLegendValidBlock(t *testing.T) {
	source := "# Legend:\nhighlight = { fill: red; stroke: none }\nfaded = { opacity: 0.5 }"
	legend, err := ParseLegend(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legend.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(legend.Rules))
	}
	if legend.Rules[0].Name != "highlight" || legend.Rules[0].Body != "fill: red; stroke: none" {
		t.Errorf("unexpected rule: %+v", legend.Rules[0])
	}
}

func TestParseLegendRejectsMalformedLine(t *testing.T) {
	_, err := ParseLegend("# Legend:\nnot-valid-at-all")
	if err == nil {
		t.Fatal("expected an error for a line with no '='")
	}
	var parseErr *LegendParseError
	if !asLegendParseError(err, &parseErr) {
		t.Fatalf("expected *LegendParseError, got %T", err)
	}
}

func asLegendParseError(err error, target **LegendParseError) bool {
	le, ok := err.(*LegendParseError)
	if ok {
		*target = le
	}
	return ok
}

func TestCellClasses(t *testing.T) {
	classes, ok := cellClasses("{highlight,faded}")
	if !ok {
		t.Fatal("expected {highlight,faded} to be recognized as class syntax")
	}
	if len(classes) != 2 || classes[0] != "highlight" || classes[1] != "faded" {
		t.Errorf("got %v, want [highlight faded]", classes)
	}

	if _, ok := cellClasses("plain text"); ok {
		t.Error("plain text should not be recognized as class syntax")
	}
}
