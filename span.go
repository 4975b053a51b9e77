package svgbob

import "sort"

// Span is a maximal 8-connected component of non-blank cells.
// It is a value-typed, unordered collection -- no pointer identity is used
// by later stages, only set operations on its cell keys.
type Span struct {
	Cells map[Cell]string
}

// NewSpan creates a single-cell span, the unit the grouper starts from.
func NewSpan(c Cell, text string) *Span {
	return &Span{Cells: map[Cell]string{c: text}}
}

// Len returns the number of cells in the span.
func (s *Span) Len() int { return len(s.Cells) }

// SortedCells returns the span's cells in (Y, X) order, the deterministic
// iteration order every later stage relies on.
func (s *Span) SortedCells() []Cell {
	cells := make([]Cell, 0, len(s.Cells))
	for c := range s.Cells {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}

// Bounds returns the span's bounding box, in cell coordinates, inclusive.
func (s *Span) Bounds() (min, max Cell) {
	first := true
	for c := range s.Cells {
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max
}

// Localized returns a copy of the span translated so its bounding box's
// top-left corner is (0, 0), and the offset that was subtracted (so
// position.go can translate endorsed shapes back).
func (s *Span) Localized() (localized *Span, offset Cell) {
	min, _ := s.Bounds()
	out := make(map[Cell]string, len(s.Cells))
	for c, text := range s.Cells {
		out[Cell{X: c.X - min.X, Y: c.Y - min.Y}] = text
	}
	return &Span{Cells: out}, min
}

// adjacentTo reports whether any cell of s is 8-adjacent to any cell of
// other. Two spans that merely share a cell are also considered adjacent
// (relevant only defensively; the grouper never produces overlapping
// spans).
func (s *Span) adjacentTo(other *Span) bool {
	for a := range s.Cells {
		for b := range other.Cells {
			if a == b || a.Adjacent(b) {
				return true
			}
		}
	}
	return false
}

// absorb merges other's cells into s.
func (s *Span) absorb(other *Span) {
	for c, text := range other.Cells {
		s.Cells[c] = text
	}
}

// ExtractCells returns a new span containing only those of the given cells
// that are members of s.
func (s *Span) ExtractCells(cells map[Cell]bool) *Span {
	out := make(map[Cell]string)
	for c := range cells {
		if text, ok := s.Cells[c]; ok {
			out[c] = text
		}
	}
	return &Span{Cells: out}
}

// Without returns a new span with the given cells removed.
func (s *Span) Without(cells map[Cell]bool) *Span {
	out := make(map[Cell]string)
	for c, text := range s.Cells {
		if !cells[c] {
			out[c] = text
		}
	}
	return &Span{Cells: out}
}

// GroupSpans is the Span Grouper: it groups a grid's cells
// into maximal 8-connected spans, first by a single discovery pass and then
// by repeating a merge pass to fixpoint, since diagonally-introduced cells
// can be discovered out of order relative to their rightful group.
func GroupSpans(grid *Grid) []*Span {
	cells := make([]Cell, 0, len(grid.Cells))
	for c := range grid.Cells {
		cells = append(cells, c)
	}
	sortCells(cells)

	spans := make([]*Span, 0, len(cells))
	for _, c := range cells {
		spans = append(spans, NewSpan(c, grid.Cells[c]))
	}

	for {
		merged, anyMerge := mergeSpanPass(spans)
		spans = merged
		if !anyMerge {
			break
		}
	}
	return spans
}

// mergeSpanPass performs one merge-to-fixpoint pass:
// each span either joins the most recently accepted span it is adjacent to,
// or becomes a newly accepted span itself.
func mergeSpanPass(spans []*Span) (merged []*Span, anyMerge bool) {
	var accepted []*Span
	for _, s := range spans {
		joined := false
		for i := len(accepted) - 1; i >= 0; i-- {
			if accepted[i].adjacentTo(s) {
				accepted[i].absorb(s)
				joined = true
				anyMerge = true
				break
			}
		}
		if !joined {
			accepted = append(accepted, s)
		}
	}
	return accepted, anyMerge
}
