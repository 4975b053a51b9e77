package svgbob

import "math"

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// triangleArea2 returns twice the signed area of the triangle (p0, p1, p2);
// it is zero iff the three points are colinear.
func triangleArea2(p0, p1, p2 Point) float64 {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}

// colinear reports whether three points are colinear, using a
// triangle-area test with tolerance floatTolerance.
func colinear(p0, p1, p2 Point) bool {
	area := triangleArea2(p0, p1, p2)
	if area < 0 {
		area = -area
	}
	return area < floatTolerance
}

// pointOnSegment reports whether p lies on the closed segment [a, b],
// including its endpoints.
func pointOnSegment(p, a, b Point) bool {
	if !colinear(a, b, p) {
		return false
	}
	const eps = floatTolerance
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// farthestFrom returns whichever of candidates is farther from origin.
func farthestFrom(origin Point, candidates []Point) Point {
	best := candidates[0]
	bestDist := dist(origin, best)
	for _, c := range candidates[1:] {
		if d := dist(origin, c); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// tagDirection returns the unit vector an arrow-tagged polygon points
// toward, used to test alignment against a candidate line's heading.
func tagDirection(tag PolygonTag) (Point, bool) {
	const s = 0.7071067811865476 // 1/sqrt(2)
	switch tag {
	case ArrowTop:
		return Point{X: 0, Y: -1}, true
	case ArrowBottom:
		return Point{X: 0, Y: 1}, true
	case ArrowLeft:
		return Point{X: -1, Y: 0}, true
	case ArrowRight:
		return Point{X: 1, Y: 0}, true
	case ArrowTopLeft:
		return Point{X: -s, Y: -s}, true
	case ArrowTopRight:
		return Point{X: s, Y: -s}, true
	case ArrowBottomLeft:
		return Point{X: -s, Y: s}, true
	case ArrowBottomRight:
		return Point{X: s, Y: s}, true
	}
	return Point{}, false
}

// pointInCircle reports whether p lies within (or on) c's radius.
func pointInCircle(p Point, c *Circle) bool {
	return dist(p, c.Center) <= c.Radius+floatTolerance
}

// sharesEndpoint reports whether the line and arc touch at a shared
// endpoint.
func sharesEndpoint(l *Line, a *Arc) bool {
	return l.Start == a.Start || l.Start == a.End || l.End == a.Start || l.End == a.End
}
