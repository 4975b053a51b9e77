package svgbob

// Tuning constants for the arrow/circle marker merges.
const (
	arrowMergeRadius     = 0.8
	arrowTipExtension    = 0.25
	arrowAlignmentCosine = 0.7
)

// asLine extracts the endpoints of a Line or MarkerLine, the two fragment
// kinds the merger treats as "line-shaped" for touching/merge tests.
func asLine(f Fragment) (*Line, bool) {
	switch v := f.(type) {
	case *Line:
		return v, true
	case *MarkerLine:
		return &Line{Start: v.Start, End: v.End, Broken: v.Broken}, true
	}
	return nil, false
}

// Merge runs the Fragment Merger to fixpoint: repeated pairwise reduction
// until no further merge succeeds. Idempotent -- a second call on an
// already-merged slice returns an equivalent (if differently capacitied)
// slice since no pair will merge again.
func Merge(fragments []Fragment) []Fragment {
	frags := append([]Fragment(nil), fragments...)
	for {
		merged := false
		for i := 0; i < len(frags) && !merged; i++ {
			for j := i + 1; j < len(frags); j++ {
				if m, ok := tryMerge(frags[i], frags[j]); ok {
					frags[i] = m
					frags = append(frags[:j], frags[j+1:]...)
					merged = true
					break
				}
			}
		}
		if !merged {
			break
		}
	}
	return frags
}

func tryMerge(a, b Fragment) (Fragment, bool) {
	if m, ok := tryMergeOrdered(a, b); ok {
		return m, true
	}
	return tryMergeOrdered(b, a)
}

func tryMergeOrdered(a, b Fragment) (Fragment, bool) {
	switch va := a.(type) {
	case *Line:
		switch vb := b.(type) {
		case *Line:
			return mergeLines(va, vb)
		case *Polygon:
			return mergeLineArrow(va, vb)
		case *Circle:
			return mergeLineCircle(va, vb)
		}
	case *MarkerLine:
		if vb, ok := b.(*Line); ok {
			return extendMarkerLine(va, vb)
		}
	case *CellText:
		if vb, ok := b.(*CellText); ok {
			return mergeCellText(va, vb)
		}
	}
	return nil, false
}

// mergeLines implements the Line+Line rule: colinear (triangle area test,
// tolerance 0.01) and touching endpoints merge into a line spanning the
// union; broken is the disjunction.
func mergeLines(a, b *Line) (*Line, bool) {
	if !colinear(a.Start, a.End, b.Start) || !colinear(a.Start, a.End, b.End) {
		return nil, false
	}
	if !linesTouch(a, b) {
		return nil, false
	}
	candidates := []Point{a.Start, a.End, b.Start, b.End}
	start, end := extremePoints(candidates)
	return &Line{Start: start, End: end, Broken: a.Broken || b.Broken}, true
}

// linesTouch reports whether either endpoint of one line lies on the
// segment of the other.
func linesTouch(a, b *Line) bool {
	return pointOnSegment(a.Start, b.Start, b.End) || pointOnSegment(a.End, b.Start, b.End) ||
		pointOnSegment(b.Start, a.Start, a.End) || pointOnSegment(b.End, a.Start, a.End)
}

// extremePoints picks, among a set of colinear points, the two that are
// farthest apart (the union's new endpoints).
func extremePoints(points []Point) (Point, Point) {
	best0, best1 := points[0], points[1]
	bestDist := dist(best0, best1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := dist(points[i], points[j]); d > bestDist {
				best0, best1, bestDist = points[i], points[j], d
			}
		}
	}
	// Preserve a stable orientation: order by Point.Less so repeated
	// merges converge rather than oscillate.
	if best1.Less(best0) {
		best0, best1 = best1, best0
	}
	return best0, best1
}

// mergeLineArrow implements the Line+Polygon rule: an arrow-tagged polygon
// whose centroid lies within arrowMergeRadius of one end of an aligned line
// folds into that end's marker.
func mergeLineArrow(l *Line, p *Polygon) (*MarkerLine, bool) {
	dir, ok := tagDirection(p.Tag)
	if !ok {
		return nil, false
	}
	heading := l.Heading()
	if heading == (Point{}) {
		return nil, false
	}
	cos := dot(heading, dir)
	if cos > -arrowAlignmentCosine && cos < arrowAlignmentCosine {
		return nil, false
	}
	center := p.Centroid()
	distStart, distEnd := dist(l.Start, center), dist(l.End, center)
	switch {
	case distStart <= arrowMergeRadius && distStart <= distEnd:
		tip := Point{X: center.X - heading.X*arrowTipExtension, Y: center.Y - heading.Y*arrowTipExtension}
		return &MarkerLine{Start: tip, End: l.End, Broken: l.Broken, StartMarker: ArrowMarker}, true
	case distEnd <= arrowMergeRadius:
		tip := Point{X: center.X + heading.X*arrowTipExtension, Y: center.Y + heading.Y*arrowTipExtension}
		return &MarkerLine{Start: l.Start, End: tip, Broken: l.Broken, EndMarker: ArrowMarker}, true
	}
	return nil, false
}

// mergeLineCircle implements the Line+Circle rule: a small circle near one
// end of a line folds into that end's marker.
func mergeLineCircle(l *Line, c *Circle) (*MarkerLine, bool) {
	if c.Radius > 3 {
		return nil, false
	}
	marker := OpenCircleMarker
	switch {
	case c.Filled:
		marker = FilledCircleMarker
	case c.Radius >= 2:
		marker = BigOpenCircleMarker
	}
	distStart, distEnd := dist(l.Start, c.Center), dist(l.End, c.Center)
	switch {
	case distStart <= c.Radius && distStart <= distEnd:
		return &MarkerLine{Start: c.Center, End: l.End, Broken: l.Broken, StartMarker: marker}, true
	case distEnd <= c.Radius:
		return &MarkerLine{Start: l.Start, End: c.Center, Broken: l.Broken, EndMarker: marker}, true
	}
	return nil, false
}

// extendMarkerLine implements the MarkerLine+Line rule: the un-marked end
// extends to absorb a touching, colinear line.
func extendMarkerLine(m *MarkerLine, l *Line) (*MarkerLine, bool) {
	ml := &Line{Start: m.Start, End: m.End}
	if !colinear(ml.Start, ml.End, l.Start) || !colinear(ml.Start, ml.End, l.End) {
		return nil, false
	}
	touchStart := m.StartMarker == NoMarker && pointTouchesLine(m.Start, l)
	touchEnd := m.EndMarker == NoMarker && pointTouchesLine(m.End, l)
	switch {
	case touchStart:
		far := farthestFrom(m.End, []Point{l.Start, l.End})
		return &MarkerLine{Start: far, End: m.End, Broken: m.Broken || l.Broken, StartMarker: m.StartMarker, EndMarker: m.EndMarker}, true
	case touchEnd:
		far := farthestFrom(m.Start, []Point{l.Start, l.End})
		return &MarkerLine{Start: m.Start, End: far, Broken: m.Broken || l.Broken, StartMarker: m.StartMarker, EndMarker: m.EndMarker}, true
	}
	return nil, false
}

func pointTouchesLine(p Point, l *Line) bool {
	return p == l.Start || p == l.End || pointOnSegment(p, l.Start, l.End)
}

// mergeCellText implements the CellText+CellText rule: same row, adjacent
// columns, concatenate.
func mergeCellText(a, b *CellText) (*CellText, bool) {
	if a.Cell.Y != b.Cell.Y {
		return nil, false
	}
	aLen := len([]rune(a.Content))
	bLen := len([]rune(b.Content))
	switch {
	case a.Cell.X+aLen == b.Cell.X:
		return &CellText{Cell: a.Cell, Content: a.Content + b.Content}, true
	case b.Cell.X+bLen == a.Cell.X:
		return &CellText{Cell: b.Cell, Content: b.Content + a.Content}, true
	}
	return nil, false
}

// Touches implements the looser "touching" relation used for contacts
// grouping -- weaker than merge-compatibility, used only to decide which
// fragments feed the same shape-endorsement attempt.
func Touches(a, b Fragment) bool {
	la, aIsLine := asLine(a)
	lb, bIsLine := asLine(b)
	switch {
	case aIsLine && bIsLine:
		return linesTouch(la, lb)
	case aIsLine:
		return lineTouchesOther(la, b)
	case bIsLine:
		return lineTouchesOther(lb, a)
	}
	return false
}

func lineTouchesOther(l *Line, other Fragment) bool {
	switch v := other.(type) {
	case *Arc:
		return sharesEndpoint(l, v)
	case *Circle:
		return pointInCircle(l.Start, v) || pointInCircle(l.End, v)
	case *Polygon:
		return polygonTouchesLine(v, l)
	}
	return false
}

func polygonTouchesLine(p *Polygon, l *Line) bool {
	if _, ok := tagDirection(p.Tag); !ok {
		return false
	}
	center := p.Centroid()
	return dist(l.Start, center) <= arrowMergeRadius || dist(l.End, center) <= arrowMergeRadius
}

// GroupContacts partitions fragments into maximal groups of mutually
// touching fragments, the unit shape endorsement consumes. Each group's
// fragments are returned in the stable total order
// (fragment.go's Sort) and groups are ordered by their first fragment's
// bounds, so endorsement order is deterministic.
func GroupContacts(fragments []Fragment) [][]Fragment {
	n := len(fragments)
	if n == 0 {
		return nil
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if Touches(fragments[i], fragments[j]) {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]Fragment)
	for i, f := range fragments {
		root := find(i)
		groups[root] = append(groups[root], f)
	}

	out := make([][]Fragment, 0, len(groups))
	for _, g := range groups {
		Sort(g)
		out = append(out, g)
	}
	sortGroups(out)
	return out
}

func sortGroups(groups [][]Fragment) {
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groupLess(groups[j], groups[j-1]); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}

func groupLess(a, b []Fragment) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) < len(b)
	}
	return Less(a[0], b[0])
}
