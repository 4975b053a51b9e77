package svgbob

// ToSVGWithSettings is the engine's single entry point: it
// runs the full pipeline -- grid, span grouping, local emission, merging,
// contact grouping, shape endorsement, positioning, and rendering -- over
// input and returns the resulting SVG document.
//
// The returned error is non-nil in two cases. A malformed color in settings
// returns an empty document and the error. A legend parse failure still
// renders the diagram, with legend styles dropped, and returns the error
// alongside it, so callers that don't care about the legend may discard it.
func ToSVGWithSettings(input string, settings Settings) (string, error) {
	settings, colorErr := settings.Normalize()
	if colorErr != nil {
		// A malformed color is a caller configuration error, not a
		// diagram-parse error; surfaced directly rather than silently
		// falling back, since diagram parsing's "no error surface"
		// guarantee is scoped to character recognition, not to Settings
		// validation.
		return "", colorErr
	}

	grid, legendSource := BuildGrid(input)

	var legend *Legend
	var legendErr error
	if legendSource != "" {
		legend, legendErr = ParseLegend(legendSource)
	}

	var allFragments []Fragment
	for _, span := range GroupSpans(grid) {
		allFragments = append(allFragments, processSpan(span, settings.Scale)...)
	}

	Sort(allFragments)
	allFragments = Dedup(allFragments)

	return RenderSVG(allFragments, settings, legend), legendErr
}

// processSpan runs one span through local emission, merging, contact
// grouping, shape endorsement, and positioning, returning its absolute,
// scaled fragments.
func processSpan(span *Span, scale float64) []Fragment {
	localized, offset := span.Localized()

	buffer := Emit(localized)
	merged := Merge(buffer.All())
	contacts := GroupContacts(merged)

	result := Endorse(localized, contacts)

	var fragments []Fragment
	for _, shape := range result.Accepted {
		fragments = append(fragments, shape.Fragment)
	}
	for _, reject := range result.Rejects {
		rejectBuffer := Emit(reject)
		fragments = append(fragments, Merge(rejectBuffer.All())...)
	}

	return Position(fragments, offset, scale)
}
