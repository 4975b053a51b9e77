package svgbob

import "testing"

func TestCellAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want bool
	}{
		{"same cell", Cell{0, 0}, Cell{0, 0}, false},
		{"horizontal neighbor", Cell{0, 0}, Cell{1, 0}, true},
		{"diagonal neighbor", Cell{0, 0}, Cell{1, 1}, true},
		{"two away", Cell{0, 0}, Cell{2, 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Adjacent(tc.b); got != tc.want {
				t.Errorf("%v.Adjacent(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestBlockPoint(t *testing.T) {
	c := Cell{X: 0, Y: 0}
	if got := Center(c); got != (Point{X: 0.5, Y: 1.0}) {
		t.Errorf("Center(%v) = %v, want (0.5, 1.0)", c, got)
	}
	if got := A.Point(c); got != (Point{X: 0, Y: 0}) {
		t.Errorf("A.Point(%v) = %v, want (0, 0)", c, got)
	}
	if got := Y.Point(c); got != (Point{X: CellWidth, Y: CellHeight}) {
		t.Errorf("Y.Point(%v) = %v, want (%v, %v)", c, got, CellWidth, CellHeight)
	}
}

func TestPointLess(t *testing.T) {
	if !(Point{X: 0, Y: 0}).Less(Point{X: 0, Y: 1}) {
		t.Error("expected (0,0) < (0,1)")
	}
	if !(Point{X: 0, Y: 1}).Less(Point{X: 1, Y: 1}) {
		t.Error("expected (0,1) < (1,1)")
	}
	if (Point{X: 1, Y: 1}).Less(Point{X: 0, Y: 1}) {
		t.Error("expected (1,1) not < (0,1)")
	}
}
