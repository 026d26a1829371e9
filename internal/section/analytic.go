package section

// rectMoments is one axis-aligned rectangle of a composite assembly, with
// its own centroidal moments and the location of its centroid in the
// shape coordinate system (y up from the bottom fiber, z right from the
// left fiber). A negative-area rectangle subtracts material, which is how
// hollow composites are assembled
type rectMoments struct {
	Area float64
	Iz   float64 // local centroidal b·h³/12
	Iy   float64 // local centroidal h·b³/12
	Cy   float64 // centroid height above the bottom fiber
	Cz   float64 // centroid offset from the left fiber
}

// rectangleMoments returns the area and local centroidal second moments
// of a b×h rectangle whose centroid sits at (cy, cz)
func rectangleMoments(width, height, cy, cz float64) rectMoments {
	return rectMoments{
		Area: width * height,
		Iz:   width * height * height * height / 12,
		Iy:   height * width * width * width / 12,
		Cy:   cy,
		Cz:   cz,
	}
}

// negated flips the sign of the rectangle's area and moments so it
// removes material from a composite
func (r rectMoments) negated() rectMoments {
	r.Area = -r.Area
	r.Iz = -r.Iz
	r.Iy = -r.Iy
	return r
}

// compositeResult is the assembled section: total area, centroid and
// centroidal moments including the product of inertia
type compositeResult struct {
	Area float64
	Cy   float64
	Cz   float64
	Iz   float64
	Iy   float64
	Izy  float64
}

// composite assembles rectangles via the parallel-axis theorem. Each
// rectangle contributes its local moments plus the A·d² transfer terms
// about the composite centroid; the product of inertia is pure transfer
// (A·dz·dy) since an axis-aligned rectangle has zero local Izy
func composite(rects []rectMoments) compositeResult {
	var out compositeResult

	var sumY, sumZ float64
	for _, r := range rects {
		out.Area += r.Area
		sumY += r.Area * r.Cy
		sumZ += r.Area * r.Cz
	}
	if out.Area <= 0 {
		return compositeResult{}
	}
	out.Cy = sumY / out.Area
	out.Cz = sumZ / out.Area

	for _, r := range rects {
		dy := r.Cy - out.Cy
		dz := r.Cz - out.Cz
		out.Iz += r.Iz + r.Area*dy*dy
		out.Iy += r.Iy + r.Area*dz*dz
		out.Izy += r.Area * dy * dz
	}
	return out
}

// safeDiv returns a/b, or 0 when b is 0 (degenerate fiber distances and
// zero areas yield zeros rather than infinities)
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
