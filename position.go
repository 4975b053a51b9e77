package svgbob

// Position translates every fragment by the span's original top-left cell
// and scales every coordinate by factor. CellText fragments
// are converted to point-anchored Text first, since cell-anchored text has
// no meaning once translated out of its local frame.
func Position(fragments []Fragment, offset Cell, factor float64) []Fragment {
	out := make([]Fragment, len(fragments))
	dx, dy := float64(offset.X)*CellWidth, float64(offset.Y)*CellHeight
	for i, f := range fragments {
		if ct, ok := f.(*CellText); ok {
			f = ct.ToText()
		}
		out[i] = f.Translated(dx, dy).Scaled(factor)
	}
	return out
}
