package svgbob

// CellFragments pairs a cell's original text with the fragments the Local
// Fragment Emitter produced for it.
type CellFragments struct {
	Char      string
	Fragments []Fragment
}

// FragmentBuffer is the emitter's output: one entry per cell in the span's
// local coordinate frame.
type FragmentBuffer map[Cell]*CellFragments

// neighborsOf builds the 8-neighbor view of a cell using only the span's
// own cells. This is sufficient: any non-blank neighbor of a span's cell is
// itself 8-adjacent and so must already belong to the same span (the
// grouper would have merged it otherwise).
func neighborsOf(span *Span, c Cell) Neighbors {
	var n Neighbors
	for _, d := range AllDirections {
		dx, dy := d.Delta()
		if text, ok := span.Cells[c.Add(dx, dy)]; ok {
			n.cell[d] = FirstRune(text)
		}
	}
	return n
}

// Emit runs the Local Fragment Emitter over a localized span: every cell
// consults the Property Table with its neighbors, falling back to the
// Unicode Fragment Map and finally to plain text.
func Emit(span *Span) FragmentBuffer {
	buffer := make(FragmentBuffer, span.Len())
	for _, c := range span.SortedCells() {
		text := span.Cells[c]
		r := FirstRune(text)

		if _, isClassTag := cellClasses(text); isClassTag {
			// A `{ident,ident2}` cell is legend class-application syntax,
			// not visible diagram text; it produces no fragment of its own.
			buffer[c] = &CellFragments{Char: text}
			continue
		}

		var fragments []Fragment
		if prop, ok := Lookup(r); ok {
			fragments = prop.Emit(c, neighborsOf(span, c))
		} else if templates, ok := LookupUnicode(r); ok {
			fragments = resolveAll(templates, c)
		} else {
			fragments = []Fragment{&CellText{Cell: c, Content: text}}
		}

		buffer[c] = &CellFragments{Char: text, Fragments: fragments}
	}
	return buffer
}

// All flattens a FragmentBuffer into a single fragment slice, in cell
// (Y, X) order, for the merger to consume.
func (b FragmentBuffer) All() []Fragment {
	cells := make([]Cell, 0, len(b))
	for c := range b {
		cells = append(cells, c)
	}
	sortCells(cells)

	var out []Fragment
	for _, c := range cells {
		out = append(out, b[c].Fragments...)
	}
	return out
}
