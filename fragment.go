package svgbob

import (
	"math"
	"sort"
)

// Marker names a visual terminator attached to one end of a MarkerLine.
type Marker int

const (
	NoMarker Marker = iota
	ArrowMarker
	DiamondMarker
	FilledCircleMarker
	OpenCircleMarker
	BigOpenCircleMarker
)

// PolygonTag names the visual role of a Polygon fragment, so later merge and
// endorsement stages can route it into a line's marker instead of emitting it
// as a standalone shape.
type PolygonTag int

const (
	NoTag PolygonTag = iota
	ArrowTop
	ArrowBottom
	ArrowLeft
	ArrowRight
	ArrowTopLeft
	ArrowTopRight
	ArrowBottomLeft
	ArrowBottomRight
	DiamondBullet
)

// FragmentKind ranks fragment variants for a deterministic total ordering:
// fragments are first ordered by bounds, then by this rank, so sort+dedup
// is a pure function independent of emission order.
type FragmentKind int

const (
	KindLine FragmentKind = iota
	KindMarkerLine
	KindArc
	KindCircle
	KindRect
	KindPolygon
	KindText
	KindCellText
)

// Fragment is the sum type of every primitive the engine can draw. Concrete
// variants are value types; Fragment is satisfied by a pointer receiver so
// that the zero value is never mistaken for a populated fragment and so the
// merger can replace fragments in place inside a []Fragment slice.
type Fragment interface {
	Kind() FragmentKind
	// Bounds returns the fragment's axis-aligned min and max corner.
	Bounds() (min, max Point)
	// Translated returns a copy of the fragment shifted by (dx, dy).
	Translated(dx, dy float64) Fragment
	// Scaled returns a copy of the fragment with every coordinate (and,
	// where applicable, font size) multiplied by factor.
	Scaled(factor float64) Fragment
	// Equal reports structural equality, treating symmetric endpoints
	// (Line, Arc) as equal under a swap.
	Equal(other Fragment) bool
}

// --- Line ---------------------------------------------------------------

type Line struct {
	Start, End Point
	Broken     bool
}

func (l *Line) Kind() FragmentKind { return KindLine }

func (l *Line) Bounds() (Point, Point) { return boundsOf(l.Start, l.End) }

func (l *Line) Translated(dx, dy float64) Fragment {
	return &Line{Start: l.Start.Add(dx, dy), End: l.End.Add(dx, dy), Broken: l.Broken}
}

func (l *Line) Scaled(factor float64) Fragment {
	return &Line{Start: l.Start.Scale(factor), End: l.End.Scale(factor), Broken: l.Broken}
}

func (l *Line) Equal(other Fragment) bool {
	o, ok := other.(*Line)
	if !ok || o.Broken != l.Broken {
		return false
	}
	return (l.Start == o.Start && l.End == o.End) || (l.Start == o.End && l.End == o.Start)
}

// Heading returns the line's direction of travel from Start to End,
// normalized so horizontal/vertical/diagonal merges can compare headings.
func (l *Line) Heading() Point {
	dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Point{}
	}
	return Point{X: dx / length, Y: dy / length}
}

// Length returns the Euclidean length of the line.
func (l *Line) Length() float64 {
	return math.Hypot(l.End.X-l.Start.X, l.End.Y-l.Start.Y)
}

// --- MarkerLine -----------------------------------------------------------

// MarkerLine is a Line terminated by an arrow/diamond/circle marker at one or
// both ends.
type MarkerLine struct {
	Start, End               Point
	Broken                   bool
	StartMarker, EndMarker   Marker
}

func (m *MarkerLine) Kind() FragmentKind { return KindMarkerLine }

func (m *MarkerLine) Bounds() (Point, Point) { return boundsOf(m.Start, m.End) }

func (m *MarkerLine) Translated(dx, dy float64) Fragment {
	return &MarkerLine{
		Start: m.Start.Add(dx, dy), End: m.End.Add(dx, dy), Broken: m.Broken,
		StartMarker: m.StartMarker, EndMarker: m.EndMarker,
	}
}

func (m *MarkerLine) Scaled(factor float64) Fragment {
	return &MarkerLine{
		Start: m.Start.Scale(factor), End: m.End.Scale(factor), Broken: m.Broken,
		StartMarker: m.StartMarker, EndMarker: m.EndMarker,
	}
}

func (m *MarkerLine) Equal(other Fragment) bool {
	o, ok := other.(*MarkerLine)
	if !ok || o.Broken != m.Broken {
		return false
	}
	if m.Start == o.Start && m.End == o.End {
		return m.StartMarker == o.StartMarker && m.EndMarker == o.EndMarker
	}
	if m.Start == o.End && m.End == o.Start {
		return m.StartMarker == o.EndMarker && m.EndMarker == o.StartMarker
	}
	return false
}

func (m *MarkerLine) Heading() Point {
	l := Line{Start: m.Start, End: m.End}
	return l.Heading()
}

func (m *MarkerLine) Length() float64 {
	l := Line{Start: m.Start, End: m.End}
	return l.Length()
}

// --- Arc ------------------------------------------------------------------

type Arc struct {
	Start, End Point
	Radius     float64
	Sweep      bool // true if the arc sweeps clockwise from Start to End.
}

func (a *Arc) Kind() FragmentKind { return KindArc }

func (a *Arc) Bounds() (Point, Point) {
	min, max := boundsOf(a.Start, a.End)
	min.X -= a.Radius
	min.Y -= a.Radius
	max.X += a.Radius
	max.Y += a.Radius
	return min, max
}

func (a *Arc) Translated(dx, dy float64) Fragment {
	return &Arc{Start: a.Start.Add(dx, dy), End: a.End.Add(dx, dy), Radius: a.Radius, Sweep: a.Sweep}
}

func (a *Arc) Scaled(factor float64) Fragment {
	return &Arc{Start: a.Start.Scale(factor), End: a.End.Scale(factor), Radius: a.Radius * factor, Sweep: a.Sweep}
}

func (a *Arc) Equal(other Fragment) bool {
	o, ok := other.(*Arc)
	if !ok || !floatEqual(a.Radius, o.Radius) || a.Sweep != o.Sweep {
		return false
	}
	return (a.Start == o.Start && a.End == o.End) || (a.Start == o.End && a.End == o.Start)
}

// --- Circle -----------------------------------------------------------------

type Circle struct {
	Center Point
	Radius float64
	Filled bool
}

func (c *Circle) Kind() FragmentKind { return KindCircle }

func (c *Circle) Bounds() (Point, Point) {
	return Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius}
}

func (c *Circle) Translated(dx, dy float64) Fragment {
	return &Circle{Center: c.Center.Add(dx, dy), Radius: c.Radius, Filled: c.Filled}
}

func (c *Circle) Scaled(factor float64) Fragment {
	return &Circle{Center: c.Center.Scale(factor), Radius: c.Radius * factor, Filled: c.Filled}
}

func (c *Circle) Equal(other Fragment) bool {
	o, ok := other.(*Circle)
	return ok && c.Center == o.Center && floatEqual(c.Radius, o.Radius) && c.Filled == o.Filled
}

// --- Rect -------------------------------------------------------------------

// Rect is an axis-aligned rectangle, optionally rounded (HasCornerRadius,
// with the radius in CornerRadius) and/or broken.
type Rect struct {
	Start, End      Point
	Filled, Broken  bool
	HasCornerRadius bool
	CornerRadius    float64
}

func (r *Rect) Kind() FragmentKind { return KindRect }

func (r *Rect) Bounds() (Point, Point) { return boundsOf(r.Start, r.End) }

func (r *Rect) Translated(dx, dy float64) Fragment {
	return &Rect{
		Start: r.Start.Add(dx, dy), End: r.End.Add(dx, dy),
		Filled: r.Filled, Broken: r.Broken,
		HasCornerRadius: r.HasCornerRadius, CornerRadius: r.CornerRadius,
	}
}

func (r *Rect) Scaled(factor float64) Fragment {
	return &Rect{
		Start: r.Start.Scale(factor), End: r.End.Scale(factor),
		Filled: r.Filled, Broken: r.Broken,
		HasCornerRadius: r.HasCornerRadius, CornerRadius: r.CornerRadius * factor,
	}
}

func (r *Rect) Equal(other Fragment) bool {
	o, ok := other.(*Rect)
	if !ok {
		return false
	}
	return r.Start == o.Start && r.End == o.End && r.Filled == o.Filled && r.Broken == o.Broken &&
		r.HasCornerRadius == o.HasCornerRadius && floatEqual(r.CornerRadius, o.CornerRadius)
}

// --- Polygon ----------------------------------------------------------------

type Polygon struct {
	Points []Point
	Filled bool
	Tag    PolygonTag
}

func (p *Polygon) Kind() FragmentKind { return KindPolygon }

func (p *Polygon) Bounds() (Point, Point) {
	if len(p.Points) == 0 {
		return Point{}, Point{}
	}
	min, max := p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

func (p *Polygon) Translated(dx, dy float64) Fragment {
	points := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		points[i] = pt.Add(dx, dy)
	}
	return &Polygon{Points: points, Filled: p.Filled, Tag: p.Tag}
}

func (p *Polygon) Scaled(factor float64) Fragment {
	points := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		points[i] = pt.Scale(factor)
	}
	return &Polygon{Points: points, Filled: p.Filled, Tag: p.Tag}
}

func (p *Polygon) Centroid() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, pt := range p.Points {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p.Points))
	return Point{X: sx / n, Y: sy / n}
}

func (p *Polygon) Equal(other Fragment) bool {
	o, ok := other.(*Polygon)
	if !ok || p.Filled != o.Filled || p.Tag != o.Tag || len(p.Points) != len(o.Points) {
		return false
	}
	for i, pt := range p.Points {
		if pt != o.Points[i] {
			return false
		}
	}
	return true
}

// --- Text / CellText ---------------------------------------------------

// Text is free-positioned text anchored at a continuous point, after
// absolute positioning has run.
type Text struct {
	Point    Point
	Content  string
	FontSize float64 // 0 means "use Settings.FontSize".
}

func (t *Text) Kind() FragmentKind { return KindText }

func (t *Text) Bounds() (Point, Point) {
	width := float64(len([]rune(t.Content)))
	return t.Point, Point{X: t.Point.X + width, Y: t.Point.Y}
}

func (t *Text) Translated(dx, dy float64) Fragment {
	return &Text{Point: t.Point.Add(dx, dy), Content: t.Content, FontSize: t.FontSize}
}

func (t *Text) Scaled(factor float64) Fragment {
	fontSize := t.FontSize
	if fontSize != 0 {
		fontSize *= factor
	}
	return &Text{Point: t.Point.Scale(factor), Content: t.Content, FontSize: fontSize}
}

func (t *Text) Equal(other Fragment) bool {
	o, ok := other.(*Text)
	return ok && t.Point == o.Point && t.Content == o.Content
}

// CellText is text still anchored to a grid cell; the merger concatenates
// adjacent same-row CellText fragments before position.go converts each into
// a Text fragment at the cell's 'a' point.
type CellText struct {
	Cell    Cell
	Content string
}

func (c *CellText) Kind() FragmentKind { return KindCellText }

func (c *CellText) Bounds() (Point, Point) {
	start := A.Point(c.Cell)
	return start, Point{X: start.X + float64(len([]rune(c.Content))), Y: start.Y}
}

func (c *CellText) Translated(dx, dy float64) Fragment {
	return &CellText{Cell: Cell{X: c.Cell.X + int(dx), Y: c.Cell.Y + int(dy)}, Content: c.Content}
}

func (c *CellText) Scaled(factor float64) Fragment {
	// CellText is always converted to Text before scaling (position.go);
	// scaling a cell-anchored fragment directly would be meaningless since
	// the cell grid itself is not subject to Settings.Scale.
	return c
}

func (c *CellText) Equal(other Fragment) bool {
	o, ok := other.(*CellText)
	return ok && c.Cell == o.Cell && c.Content == o.Content
}

// ToText converts a CellText into a point-anchored Text fragment, anchored
// at the cell's top-left ('a') grid point.
func (c *CellText) ToText() *Text {
	return &Text{Point: A.Point(c.Cell), Content: c.Content}
}

// --- shared helpers ----------------------------------------------------

func boundsOf(a, b Point) (Point, Point) {
	min, max := a, b
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return min, max
}

const floatTolerance = 0.01

func floatEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < floatTolerance
}

// Sort orders fragments by (min-corner, max-corner, kind-rank), a total and
// stable order.
func Sort(fragments []Fragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		return Less(fragments[i], fragments[j])
	})
}

// Less implements the fragment total order: by min-corner, then max-corner,
// then kind rank.
func Less(a, b Fragment) bool {
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	if aMin != bMin {
		return aMin.Less(bMin)
	}
	if aMax != bMax {
		return aMax.Less(bMax)
	}
	return a.Kind() < b.Kind()
}

// Dedup removes structurally equal fragments from an already-sorted slice.
// Sort+Dedup together are a pure function of the input set.
func Dedup(fragments []Fragment) []Fragment {
	out := fragments[:0:0]
	for i, f := range fragments {
		if i > 0 && f.Equal(fragments[i-1]) {
			continue
		}
		out = append(out, f)
	}
	return out
}
