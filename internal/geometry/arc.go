package geometry

import "math"

// normalizeAngle wraps a into (-π, π]
func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// DiscretizeArc samples the circular arc from p1 to p2 passing through the
// control point, returning segments+1 points including both endpoints.
// The sweep is the sum of the two signed angular deltas (start→control,
// control→end), each normalized to (-π, π], so the path always stays on
// the control point's side even for reflex arcs. Collinear inputs fall
// back to the straight segment [p1, p2]
func DiscretizeArc(p1, control, p2 Point, segments int) []Point {
	center, radius, ok := Circumcircle(p1, control, p2)
	if !ok || segments < 1 {
		return []Point{p1, p2}
	}

	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	ac := math.Atan2(control.Y-center.Y, control.X-center.X)
	a2 := math.Atan2(p2.Y-center.Y, p2.X-center.X)

	sweep := normalizeAngle(ac-a1) + normalizeAngle(a2-ac)

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := a1 + sweep*float64(i)/float64(segments)
		sin, cos := math.Sincos(angle)
		points = append(points, Point{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		})
	}

	// Pin the endpoints exactly
	points[0] = p1
	points[segments] = p2
	return points
}

// DiscretizeCircle approximates a full circle as a regular polygon with
// the given number of segments
func DiscretizeCircle(center Point, radius float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	points := make([]Point, 0, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sincos(angle)
		points = append(points, Point{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		})
	}
	return points
}
