package geometry

import "math"

// circumcircleTolerance is the determinant threshold below which three
// points are treated as collinear (no circumcircle)
const circumcircleTolerance = 1e-10

// Circumcircle solves for the unique circle passing through three points.
// It returns ok=false when the points are collinear; callers must then
// treat the edge as a straight segment
func Circumcircle(p1, p2, p3 Point) (center Point, radius float64, ok bool) {
	// Perpendicular-bisector formulation as a 2x2 linear system:
	//   ax*cx + bx*cy = cx1
	//   ay*cx + by*cy = cy1
	ax := 2 * (p2.X - p1.X)
	bx := 2 * (p2.Y - p1.Y)
	c1 := p2.X*p2.X - p1.X*p1.X + p2.Y*p2.Y - p1.Y*p1.Y

	ay := 2 * (p3.X - p2.X)
	by := 2 * (p3.Y - p2.Y)
	c2 := p3.X*p3.X - p2.X*p2.X + p3.Y*p3.Y - p2.Y*p2.Y

	det := ax*by - ay*bx
	if math.Abs(det) < circumcircleTolerance {
		return Point{}, 0, false
	}

	center = Point{
		X: (c1*by - c2*bx) / det,
		Y: (ax*c2 - ay*c1) / det,
	}
	radius = center.Dist(p1)
	return center, radius, true
}
