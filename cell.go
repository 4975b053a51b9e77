package svgbob

// Design constants for one cell's continuous region. A cell's rectangle is
// W units wide and H units tall; every fragment's geometry is expressed in
// multiples of these before the final scale factor (Settings.Scale) is
// applied in position.go.
const (
	CellWidth  = 1.0
	CellHeight = 2.0
)

// Cell is an integer grid coordinate. The origin is top-left; Y grows
// downward, matching the order lines are read from the input.
type Cell struct {
	X, Y int
}

// Adjacent reports whether two cells are 8-adjacent (share an edge or a
// corner) and are not the same cell.
func (c Cell) Adjacent(other Cell) bool {
	if c == other {
		return false
	}
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Translate returns the cell shifted by another cell's coordinates, used to
// re-localize a span's cells or to restore absolute positions after
// endorsement.
func (c Cell) Translate(offset Cell) Cell {
	return Cell{X: c.X + offset.X, Y: c.Y + offset.Y}
}

// Point is a continuous coordinate in the same plane as cells. Equality is
// exact float64 equality; fragment geometry is always derived from the 5x5
// lattice so this never depends on floating-point accumulation.
type Point struct {
	X, Y float64
}

// Less orders points lexicographically by (Y, X), breaking ties
// deterministically for a total fragment ordering.
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Add returns the point translated by (dx, dy) cell units, then the caller
// is expected to apply Scale separately (see position.go).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Scale returns the point with both coordinates multiplied by factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Block names one of the 25 grid points laid out on a cell's 5x5 lattice,
// row-major from the top-left ('a') to the bottom-right ('y'). 'm' is the
// center.
type Block int

const (
	A Block = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
)

// blockNames lets behavior predicates and diagnostics print a block the way
// the property table's authored case list refers to it.
var blockNames = [...]string{
	"a", "b", "c", "d", "e",
	"f", "g", "h", "i", "j",
	"k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t",
	"u", "v", "w", "x", "y",
}

// String implements fmt.Stringer.
func (b Block) String() string {
	if b < A || b > Y {
		return "?"
	}
	return blockNames[b]
}

// row, col returns the block's position in the 5x5 lattice.
func (b Block) row() int { return int(b) / 5 }
func (b Block) col() int { return int(b) % 5 }

// Point returns the absolute continuous coordinate of this block within the
// given cell.
func (b Block) Point(c Cell) Point {
	const (
		dx = CellWidth / 4
		dy = CellHeight / 4
	)
	return Point{
		X: float64(c.X)*CellWidth + dx*float64(b.col()),
		Y: float64(c.Y)*CellHeight + dy*float64(b.row()),
	}
}

// Center is a convenience accessor equivalent to M.Point(c); a cell's point
// 'm' sits at (c.X*CellWidth+0.5, c.Y*CellHeight+1.0).
func Center(c Cell) Point {
	return M.Point(c)
}
