package svgbob

import "sort"

// EdgeClass records where a circle template's left-most column sits
// relative to the circle's true edge. It is kept as documentation on the
// template; geometry is derived directly from each art's cell bounding box
// rather than from this flag, a deliberate simplification noted in
// DESIGN.md.
type EdgeClass int

const (
	HalfEdge EdgeClass = iota
	LeftEdge
)

// CircleTemplate is one entry of the circle/arc endorsement library: a
// localized ascii-art cell pattern paired with the circle geometry it
// depicts.
type CircleTemplate struct {
	Name      string
	Cells     map[Cell]bool
	Center    Point
	Radius    float64
	EdgeClass EdgeClass
}

// ArcTemplate is a partial-circle derivative of a CircleTemplate, split at
// its horizontal and/or vertical diameter.
type ArcTemplate struct {
	Name   string
	Cells  map[Cell]bool
	Start  Point
	End    Point
	Radius float64
	Sweep  bool
}

var circleTemplates []*CircleTemplate
var arcTemplates []*ArcTemplate

func init() {
	circleTemplates = buildCircleTemplates()
	for _, ct := range circleTemplates {
		arcTemplates = append(arcTemplates, deriveArcTemplates(ct)...)
	}
	sort.Slice(arcTemplates, func(i, j int) bool { return arcTemplates[i].Radius > arcTemplates[j].Radius })
}

// buildCircleTemplates is a curated library of the canonical
// small/medium/large round-bracket circle arts, enough to endorse the
// common cases while remaining legible as authored data rather than a
// generated table. Callers rely on the returned slice being ordered
// largest radius first, for a consistent tie-break when multiple
// templates match.
func buildCircleTemplates() []*CircleTemplate {
	specs := []struct {
		name string
		art  string
	}{
		{"circle6", "  _  \n.' '.\n(   )\n`._.'"},
		{"circle5", " .--.\n(    )\n `--' "},
		{"circle4", " ,-.\n(   )\n `-' "},
		{"circle3", " __\n(__)"},
		{"circle2", "(_)"},
	}

	out := make([]*CircleTemplate, 0, len(specs))
	for _, s := range specs {
		grid, _ := BuildGrid(s.art)
		rawCells := make(map[Cell]bool, len(grid.Cells))
		for c := range grid.Cells {
			rawCells[c] = true
		}
		cells, _ := localizeCellSet(rawCells)
		center, radius := boundingCircleGeometry(cells)
		out = append(out, &CircleTemplate{
			Name: s.name, Cells: cells, Center: center, Radius: radius, EdgeClass: HalfEdge,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Radius > out[j].Radius })
	return out
}

// localizeCellSet translates a cell set so its bounding box's top-left
// corner sits at (0, 0), returning the offset that was subtracted.
func localizeCellSet(cells map[Cell]bool) (localized map[Cell]bool, offset Cell) {
	first := true
	var minX, minY int
	for c := range cells {
		if first || c.X < minX {
			minX = c.X
		}
		if first || c.Y < minY {
			minY = c.Y
		}
		first = false
	}
	out := make(map[Cell]bool, len(cells))
	for c := range cells {
		out[Cell{X: c.X - minX, Y: c.Y - minY}] = true
	}
	return out, Cell{X: minX, Y: minY}
}

// boundingCircleGeometry derives a template's center point and radius from
// its cell bounding box: the center sits at the box's midpoint and the
// radius is half the span between the outermost cells' centers (not their
// outer edges), which already accounts for CellHeight's 2x compression
// since the ascii art's row count was drawn to look round.
func boundingCircleGeometry(cells map[Cell]bool) (center Point, radius float64) {
	first := true
	var minX, minY, maxX, maxY int
	for c := range cells {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	left := (float64(minX) + 0.5) * CellWidth
	right := (float64(maxX) + 0.5) * CellWidth
	top := (float64(minY) + 0.5) * CellHeight
	bottom := (float64(maxY) + 0.5) * CellHeight
	center = Point{X: (left + right) / 2, Y: (top + bottom) / 2}
	radius = (right - left) / 2
	return center, radius
}

// quadrant reports which half (by X) and half (by Y) of center a cell's
// midpoint falls in, used to split a circle template into arcs.
func quadrant(c Cell, center Point) (right, bottom bool) {
	midX := float64(c.X)*CellWidth + CellWidth/2
	midY := float64(c.Y)*CellHeight + CellHeight/2
	return midX >= center.X, midY >= center.Y
}

// deriveArcTemplates splits a circle template at its horizontal and
// vertical diameters into two halves and four quarters, largest first.
func deriveArcTemplates(ct *CircleTemplate) []*ArcTemplate {
	top := Point{X: ct.Center.X, Y: ct.Center.Y - ct.Radius}
	bottom := Point{X: ct.Center.X, Y: ct.Center.Y + ct.Radius}
	left := Point{X: ct.Center.X - ct.Radius, Y: ct.Center.Y}
	right := Point{X: ct.Center.X + ct.Radius, Y: ct.Center.Y}

	filter := func(keep func(right, bottom bool) bool) map[Cell]bool {
		out := make(map[Cell]bool)
		for c := range ct.Cells {
			r, b := quadrant(c, ct.Center)
			if keep(r, b) {
				out[c] = true
			}
		}
		return out
	}

	return []*ArcTemplate{
		{Name: ct.Name + "-top", Cells: filter(func(_, b bool) bool { return !b }),
			Start: left, End: right, Radius: ct.Radius, Sweep: true},
		{Name: ct.Name + "-bottom", Cells: filter(func(_, b bool) bool { return b }),
			Start: right, End: left, Radius: ct.Radius, Sweep: true},
		{Name: ct.Name + "-ne", Cells: filter(func(r, b bool) bool { return r && !b }),
			Start: top, End: right, Radius: ct.Radius, Sweep: true},
		{Name: ct.Name + "-se", Cells: filter(func(r, b bool) bool { return r && b }),
			Start: right, End: bottom, Radius: ct.Radius, Sweep: true},
		{Name: ct.Name + "-sw", Cells: filter(func(r, b bool) bool { return !r && b }),
			Start: bottom, End: left, Radius: ct.Radius, Sweep: true},
		{Name: ct.Name + "-nw", Cells: filter(func(r, b bool) bool { return !r && !b }),
			Start: left, End: top, Radius: ct.Radius, Sweep: true},
	}
}
