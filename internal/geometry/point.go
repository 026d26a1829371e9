package geometry

import "math"

// Point represents a 2D coordinate in the drawing coordinate system
// (Y increases downward, as drawn on a canvas)
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Add returns the vector sum p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rotate rotates p about the origin by the given angle in degrees
func (p Point) Rotate(angleDeg float64) Point {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// ClosestPointOnSegment projects cursor onto the segment p1-p2, clamping
// the projection parameter to [0,1], and returns the projected point
// together with its distance from cursor
func ClosestPointOnSegment(p1, p2, cursor Point) (Point, float64) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	lenSq := dx*dx + dy*dy

	if lenSq == 0 {
		// Degenerate segment
		return p1, p1.Dist(cursor)
	}

	t := ((cursor.X-p1.X)*dx + (cursor.Y-p1.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := Point{X: p1.X + t*dx, Y: p1.Y + t*dy}
	return closest, closest.Dist(cursor)
}
