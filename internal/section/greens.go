package section

import "github.com/alexiusacademia/gosection/internal/geometry"

// polygonIntegrals holds the line integrals of a single simple polygon.
// All second-order quantities are about the origin, not the centroid
type polygonIntegrals struct {
	Area float64 // mm²
	Sx   float64 // first moment about the x axis, ∫y dA (mm³)
	Sy   float64 // first moment about the y axis, ∫x dA (mm³)
	Ixx  float64 // ∫y² dA (mm⁴)
	Iyy  float64 // ∫x² dA (mm⁴)
	Ixy  float64 // ∫xy dA (mm⁴)
	Cx   float64 // centroid x (mm)
	Cy   float64 // centroid y (mm)
}

// greensIntegrals computes area, first and second moments of one simple
// closed polygon via Green's theorem (the shoelace family of edge
// integrals). The result is winding-order independent: a clockwise ring
// comes out with a negative signed area and every accumulator is negated.
// Correct only for a single non-self-intersecting polygon; boolean
// composites go through the scan-line integrator instead
func greensIntegrals(vertices []geometry.Point) polygonIntegrals {
	var out polygonIntegrals
	n := len(vertices)
	if n < 3 {
		return out
	}

	var area, sx, sy, ixx, iyy, ixy float64
	for i := 0; i < n; i++ {
		p1 := vertices[i]
		p2 := vertices[(i+1)%n]

		common := p1.X*p2.Y - p2.X*p1.Y
		area += common / 2
		sx += (p1.Y + p2.Y) * common / 6
		sy += (p1.X + p2.X) * common / 6
		ixx += (p1.Y*p1.Y + p1.Y*p2.Y + p2.Y*p2.Y) * common / 12
		iyy += (p1.X*p1.X + p1.X*p2.X + p2.X*p2.X) * common / 12
		ixy += (p1.X*p2.Y + 2*p1.X*p1.Y + 2*p2.X*p2.Y + p2.X*p1.Y) * common / 24
	}

	if area < 0 {
		area, sx, sy, ixx, iyy, ixy = -area, -sx, -sy, -ixx, -iyy, -ixy
	}

	out.Area = area
	out.Sx = sx
	out.Sy = sy
	out.Ixx = ixx
	out.Iyy = iyy
	out.Ixy = ixy
	if area > 0 {
		out.Cx = sy / area
		out.Cy = sx / area
	}
	return out
}
