package svgbob

import (
	"strings"
	"testing"
)

func TestToSVGWithSettingsRendersBasicBox(t *testing.T) {
	input := "+-+\n| |\n+-+"
	out, err := ToSVGWithSettings(input, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a well-formed SVG document, got: %s", out)
	}
}

func TestToSVGWithSettingsUnknownCharacterBecomesText(t *testing.T) {
	// '?' has no Property Table entry and no Unicode Fragment Map entry, so
	// it must surface as plain text rather than an error.
	out, err := ToSVGWithSettings("?", DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "?") {
		t.Errorf("expected literal '?' text in output, got: %s", out)
	}
}

func TestToSVGWithSettingsLegendErrorStillRenders(t *testing.T) {
	input := "a-b\n# Legend:\nnot-a-valid-rule"
	out, err := ToSVGWithSettings(input, DefaultSettings())
	if err == nil {
		t.Fatal("expected a legend parse error")
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("diagram should still render despite legend error, got: %s", out)
	}
}

func TestToSVGWithSettingsRejectsMalformedColor(t *testing.T) {
	settings := DefaultSettings()
	settings.StrokeColor = "#zzz"
	if _, err := ToSVGWithSettings("a", settings); err == nil {
		t.Fatal("expected an error for a malformed stroke color")
	}
}

func TestToSVGWithSettingsEmptyInput(t *testing.T) {
	out, err := ToSVGWithSettings("", DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error on empty input: %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("expected a (possibly empty) well-formed SVG, got: %s", out)
	}
}
