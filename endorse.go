package svgbob

// EndorsedShape pairs a promoted higher-order fragment with the span cells
// it consumed, so the caller can track which cells remain unclaimed.
type EndorsedShape struct {
	Fragment Fragment
	Cells    map[Cell]bool
}

// EndorseResult is Shape Endorsement's output.
type EndorseResult struct {
	Accepted []EndorsedShape
	Rejects  []*Span
}

// Endorse runs Shape Endorsement over one localized span, given the
// contact groups its merged fragments were already partitioned into.
// Circle and arc endorsement consult the span's own cells directly, since
// the template library is an ascii-art cell-pattern match; rectangle
// endorsement consults each contact group's line fragments.
func Endorse(span *Span, contacts [][]Fragment) EndorseResult {
	var result EndorseResult
	claimed := make(map[Cell]bool)

	remaining := span
	for remaining.Len() > 0 {
		shape, rest, ok := matchCircleOrArc(remaining)
		if !ok {
			break
		}
		result.Accepted = append(result.Accepted, shape)
		for c := range shape.Cells {
			claimed[c] = true
		}
		remaining = rest
	}

	for _, group := range contacts {
		if shape, ok := matchRectangle(group); ok {
			result.Accepted = append(result.Accepted, shape)
			for c := range shape.Cells {
				claimed[c] = true
			}
			continue
		}
		// Step 4, "re-endorse": a contact group that failed rectangle
		// endorsement is reassembled into a span and reattempted against
		// the arc library, catching arcs whose corners locally resemble
		// rectangle corners.
		rejectCells := cellsOfFragments(group)
		if len(rejectCells) == 0 {
			continue
		}
		rejectSpan := &Span{Cells: rejectCells}
		if shape, rest, ok := matchArcOnly(rejectSpan); ok {
			result.Accepted = append(result.Accepted, shape)
			for c := range shape.Cells {
				claimed[c] = true
			}
			if rest.Len() > 0 {
				result.Rejects = append(result.Rejects, rest)
			}
			continue
		}
		result.Rejects = append(result.Rejects, rejectSpan)
	}

	// Only the cells no endorsement (circle/arc or rectangle) claimed are
	// left over; everything else already has a home in result.Accepted.
	if leftover := span.Without(claimed); leftover.Len() > 0 {
		result.Rejects = append(result.Rejects, leftover)
	}

	return result
}

// matchCircleOrArc tries the full-circle library, then the arc library
// (half and quarter arcs, largest radius first), against the span's cells.
// Both libraries are pre-sorted largest first at init. The arc library
// holds no three-quarter arcs.
func matchCircleOrArc(span *Span) (EndorsedShape, *Span, bool) {
	localized, offset := span.Localized()

	for _, ct := range circleTemplates {
		if !cellSetSubsetOfSpan(ct.Cells, localized) {
			continue
		}
		matched := translateCellSet(ct.Cells, offset)
		remainder := span.Without(matched)
		circle := &Circle{Center: ct.Center.Add(float64(offset.X)*CellWidth, float64(offset.Y)*CellHeight), Radius: ct.Radius}
		return EndorsedShape{Fragment: circle, Cells: matched}, remainder, true
	}

	if shape, rest, ok := matchArcOnly(span); ok {
		return shape, rest, true
	}
	return EndorsedShape{}, span, false
}

// matchArcOnly tries only the arc library, used both by matchCircleOrArc
// and by the rectangle re-endorse pass.
func matchArcOnly(span *Span) (EndorsedShape, *Span, bool) {
	localized, offset := span.Localized()
	for _, at := range arcTemplates {
		if len(at.Cells) == 0 || !cellSetSubsetOfSpan(at.Cells, localized) {
			continue
		}
		matched := translateCellSet(at.Cells, offset)
		remainder := span.Without(matched)
		dx, dy := float64(offset.X)*CellWidth, float64(offset.Y)*CellHeight
		arc := &Arc{
			Start: at.Start.Add(dx, dy), End: at.End.Add(dx, dy),
			Radius: at.Radius, Sweep: at.Sweep,
		}
		return EndorsedShape{Fragment: arc, Cells: matched}, remainder, true
	}
	return EndorsedShape{}, span, false
}

// cellSetSubsetOfSpan reports whether every cell in template is present
// (non-blank) in the localized span.
func cellSetSubsetOfSpan(template map[Cell]bool, span *Span) bool {
	for c := range template {
		if _, ok := span.Cells[c]; !ok {
			return false
		}
	}
	return true
}

func translateCellSet(cells map[Cell]bool, offset Cell) map[Cell]bool {
	out := make(map[Cell]bool, len(cells))
	for c := range cells {
		out[c.Translate(offset)] = true
	}
	return out
}

// cellsOfFragments reconstructs an approximate cell set from a contact
// group's fragment geometry, for the re-endorse pass where only fragments
// (not the original span) are at hand.
func cellsOfFragments(fragments []Fragment) map[Cell]string {
	out := make(map[Cell]string)
	mark := func(p Point) {
		c := Cell{X: int(p.X / CellWidth), Y: int(p.Y / CellHeight)}
		if _, ok := out[c]; !ok {
			out[c] = "+"
		}
	}
	for _, f := range fragments {
		min, max := f.Bounds()
		mark(min)
		mark(max)
	}
	return out
}

// matchRectangle: a contact group endorses
// as a rectangle iff it contains exactly four axis-aligned lines forming a
// closed quadrilateral. Rounded corners (Arc fragments at the corners) mark
// the rectangle rounded; a broken side marks it broken.
func matchRectangle(fragments []Fragment) (EndorsedShape, bool) {
	var lines []*Line
	var arcs []*Arc
	for _, f := range fragments {
		switch v := f.(type) {
		case *Line:
			lines = append(lines, v)
		case *Arc:
			arcs = append(arcs, v)
		default:
			return EndorsedShape{}, false
		}
	}
	if len(lines) != 4 {
		return EndorsedShape{}, false
	}

	var horiz, vert []*Line
	for _, l := range lines {
		switch {
		case l.Start.Y == l.End.Y:
			horiz = append(horiz, l)
		case l.Start.X == l.End.X:
			vert = append(vert, l)
		default:
			return EndorsedShape{}, false
		}
	}
	if len(horiz) != 2 || len(vert) != 2 {
		return EndorsedShape{}, false
	}

	top, bottom := horiz[0], horiz[1]
	if top.Start.Y > bottom.Start.Y {
		top, bottom = bottom, top
	}
	left, right := vert[0], vert[1]
	if left.Start.X > right.Start.X {
		left, right = right, left
	}

	minX := left.Start.X
	maxX := right.Start.X
	minY := top.Start.Y
	maxY := bottom.Start.Y
	if !closesRectangle(top, minX, maxX, minY) || !closesRectangle(bottom, minX, maxX, maxY) ||
		!closesRectangleV(left, minY, maxY, minX) || !closesRectangleV(right, minY, maxY, maxX) {
		return EndorsedShape{}, false
	}

	broken := top.Broken || bottom.Broken || left.Broken || right.Broken
	rect := &Rect{Start: Point{X: minX, Y: minY}, End: Point{X: maxX, Y: maxY}, Broken: broken}

	if len(arcs) > 0 {
		rect.HasCornerRadius = true
		rect.CornerRadius = arcs[0].Radius
	}

	cells := make(map[Cell]bool)
	for _, l := range lines {
		markLineCells(cells, l)
	}
	for _, a := range arcs {
		c := Cell{X: int(a.Start.X / CellWidth), Y: int(a.Start.Y / CellHeight)}
		cells[c] = true
	}
	return EndorsedShape{Fragment: rect, Cells: cells}, true
}

func closesRectangle(l *Line, minX, maxX, y float64) bool {
	return l.Start.Y == y && l.End.Y == y &&
		floatEqual(minFloat(l.Start.X, l.End.X), minX) && floatEqual(maxFloat(l.Start.X, l.End.X), maxX)
}

func closesRectangleV(l *Line, minY, maxY, x float64) bool {
	return l.Start.X == x && l.End.X == x &&
		floatEqual(minFloat(l.Start.Y, l.End.Y), minY) && floatEqual(maxFloat(l.Start.Y, l.End.Y), maxY)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// markLineCells marks every cell an axis-aligned line crosses, not just its
// two endpoints, so a merged run of many cells' worth of '-' or '|' segments
// claims all of them rather than just the corner cells it touches.
func markLineCells(cells map[Cell]bool, l *Line) {
	switch {
	case l.Start.Y == l.End.Y:
		y := int(l.Start.Y / CellHeight)
		lo, hi := cellIndexRange(l.Start.X, l.End.X, CellWidth)
		for x := lo; x <= hi; x++ {
			cells[Cell{X: x, Y: y}] = true
		}
	case l.Start.X == l.End.X:
		x := int(l.Start.X / CellWidth)
		lo, hi := cellIndexRange(l.Start.Y, l.End.Y, CellHeight)
		for y := lo; y <= hi; y++ {
			cells[Cell{X: x, Y: y}] = true
		}
	default:
		cells[Cell{X: int(l.Start.X / CellWidth), Y: int(l.Start.Y / CellHeight)}] = true
		cells[Cell{X: int(l.End.X / CellWidth), Y: int(l.End.Y / CellHeight)}] = true
	}
}

// cellIndexRange returns the inclusive range of cell indices spanned between
// two coordinates on the same axis.
func cellIndexRange(a, b, unit float64) (lo, hi int) {
	lo = int(minFloat(a, b) / unit)
	hi = int(maxFloat(a, b) / unit)
	return lo, hi
}
