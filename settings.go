package svgbob

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Settings is the configuration bundle accepted by ToSVGWithSettings.
type Settings struct {
	FontSize     float64
	FontFamily   string
	FillColor    string
	Background   string
	StrokeColor  string
	StrokeWidth  float64
	Scale        float64
	IncludeStyles   bool
	IncludeDefs     bool
	IncludeBackdrop bool
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		FontSize:        14,
		FontFamily:      "arial",
		FillColor:       "black",
		Background:      "white",
		StrokeColor:     "black",
		StrokeWidth:     2,
		Scale:           8,
		IncludeStyles:   true,
		IncludeDefs:     true,
		IncludeBackdrop: true,
	}
}

// Normalize validates and canonicalizes the settings' color fields. A
// `#`-prefixed value is parsed and re-serialized through go-colorful so a
// malformed hex color is rejected up front rather than emitted into broken
// SVG; any other value (a CSS named color) passes through unchanged.
func (s Settings) Normalize() (Settings, error) {
	var err error
	if s.FillColor, err = normalizeColor(s.FillColor); err != nil {
		return s, fmt.Errorf("fill_color: %w", err)
	}
	if s.Background, err = normalizeColor(s.Background); err != nil {
		return s, fmt.Errorf("background: %w", err)
	}
	if s.StrokeColor, err = normalizeColor(s.StrokeColor); err != nil {
		return s, fmt.Errorf("stroke_color: %w", err)
	}
	return s, nil
}

func normalizeColor(value string) (string, error) {
	if !strings.HasPrefix(value, "#") {
		return value, nil
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", value, err)
	}
	return c.Hex(), nil
}
