package section

import (
	"sort"

	"github.com/alexiusacademia/gosection/internal/geometry"
)

// ring is a discretized part boundary tagged solid or hole
type ring struct {
	points []geometry.Point
	solid  bool
}

// discretizeParts flattens every part to a straight-edged boundary ring.
// Parts that degenerate to fewer than 3 points are dropped
func discretizeParts(parts []Part) []ring {
	rings := make([]ring, 0, len(parts))
	for _, p := range parts {
		pts := p.Discretize()
		if len(pts) < 3 {
			continue
		}
		rings = append(rings, ring{points: pts, solid: p.Solid})
	}
	return rings
}

// span is an open interval of material along a scan line
type span struct {
	lo, hi float64
}

// crossingsAtY returns the sorted x coordinates where the horizontal line
// at y crosses the ring boundary. The half-open test assigns an edge
// touching the line at a vertex to exactly one side, so a scan line
// through a vertex is neither double- nor under-counted
func crossingsAtY(points []geometry.Point, y float64) []float64 {
	var xs []float64
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]

		if (p1.Y <= y && p2.Y > y) || (p2.Y <= y && p1.Y > y) {
			t := (y - p1.Y) / (p2.Y - p1.Y)
			xs = append(xs, p1.X+t*(p2.X-p1.X))
		}
	}
	sort.Float64s(xs)
	return xs
}

// crossingsAtX is crossingsAtY with the axes swapped: sorted y coordinates
// where the vertical line at x crosses the ring boundary
func crossingsAtX(points []geometry.Point, x float64) []float64 {
	var ys []float64
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]

		if (p1.X <= x && p2.X > x) || (p2.X <= x && p1.X > x) {
			t := (x - p1.X) / (p2.X - p1.X)
			ys = append(ys, p1.Y+t*(p2.Y-p1.Y))
		}
	}
	sort.Float64s(ys)
	return ys
}

// pairSpans pairs consecutive sorted crossings into material intervals
func pairSpans(crossings []float64) []span {
	var spans []span
	for i := 0; i+1 < len(crossings); i += 2 {
		if crossings[i+1] > crossings[i] {
			spans = append(spans, span{lo: crossings[i], hi: crossings[i+1]})
		}
	}
	return spans
}

// mergeSpans unions a set of intervals into disjoint sorted intervals
func mergeSpans(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.lo <= last.hi {
			if s.hi > last.hi {
				last.hi = s.hi
			}
		} else {
			merged = append(merged, s)
		}
	}
	return merged
}

// subtractSpans removes the hole intervals from the solid intervals. Both
// inputs must already be merged and sorted. A hole lying outside every
// solid interval simply never overlaps and is a no-op, which is what makes
// disjoint holes harmless
func subtractSpans(solids, holes []span) []span {
	if len(holes) == 0 {
		return solids
	}

	var out []span
	for _, s := range solids {
		lo := s.lo
		for _, h := range holes {
			if h.hi <= lo || h.lo >= s.hi {
				continue
			}
			if h.lo > lo {
				out = append(out, span{lo: lo, hi: h.lo})
			}
			if h.hi > lo {
				lo = h.hi
			}
			if lo >= s.hi {
				break
			}
		}
		if lo < s.hi {
			out = append(out, span{lo: lo, hi: s.hi})
		}
	}
	return out
}

// materialSpansAtY computes the net material intervals at a horizontal
// scan line: union of all solid crossings minus union of all hole
// crossings
func materialSpansAtY(rings []ring, y float64) []span {
	var solids, holes []span
	for _, r := range rings {
		spans := pairSpans(crossingsAtY(r.points, y))
		if r.solid {
			solids = append(solids, spans...)
		} else {
			holes = append(holes, spans...)
		}
	}
	return subtractSpans(mergeSpans(solids), mergeSpans(holes))
}

// materialSpansAtX is materialSpansAtY for a vertical scan line
func materialSpansAtX(rings []ring, x float64) []span {
	var solids, holes []span
	for _, r := range rings {
		spans := pairSpans(crossingsAtX(r.points, x))
		if r.solid {
			solids = append(solids, spans...)
		} else {
			holes = append(holes, spans...)
		}
	}
	return subtractSpans(mergeSpans(solids), mergeSpans(holes))
}

// solidBounds returns the bounding box of the solid rings only; holes
// never extend the section extents
func solidBounds(rings []ring) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, r := range rings {
		if !r.solid {
			continue
		}
		for _, p := range r.points {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, minY, maxX, maxY, !first
}

// scanIntegrals holds the results of the boolean scan-line integration.
// Origin-frame moments use the drawing coordinate system; the centroidal
// values come from the parallel-axis subtraction
type scanIntegrals struct {
	Area float64
	Cx   float64 // absolute centroid, drawing coordinates
	Cy   float64

	Ixx float64 // centroidal ∫y² dA
	Iyy float64 // centroidal ∫x² dA
	Ixy float64 // centroidal ∫xy dA, still y-down sign convention

	MinX, MinY, MaxX, MaxY float64
}

// scanIntegrate computes area, centroid and centroidal second moments of
// an arbitrary solid/hole composite by summing scan-line slices across
// the solid bounding box. Within each material interval the x-dependent
// integrands are integrated analytically ((x2²-x1²)/2 and (x2³-x1³)/3)
// instead of lumping the interval at its midpoint, which keeps the
// cross-axis inertia free of slicing bias
func scanIntegrate(rings []ring) scanIntegrals {
	var out scanIntegrals

	minX, minY, maxX, maxY, ok := solidBounds(rings)
	if !ok || maxY <= minY || maxX <= minX {
		return out
	}
	out.MinX, out.MinY, out.MaxX, out.MaxY = minX, minY, maxX, maxY

	step := (maxY - minY) / float64(scanSteps)

	var area, sx, sy, ixx, iyy, ixy float64
	for i := 0; i < scanSteps; i++ {
		y := minY + (float64(i)+0.5)*step

		for _, s := range materialSpansAtY(rings, y) {
			w := s.hi - s.lo
			dA := w * step

			area += dA
			sx += y * dA
			sy += (s.hi*s.hi - s.lo*s.lo) / 2 * step
			ixx += y * y * dA
			iyy += (s.hi*s.hi*s.hi - s.lo*s.lo*s.lo) / 3 * step
			ixy += (s.lo + s.hi) / 2 * y * dA
		}
	}

	out.Area = area
	if area <= 0 {
		return scanIntegrals{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	}

	out.Cx = sy / area
	out.Cy = sx / area

	// Parallel-axis shift from the drawing origin to the centroid
	out.Ixx = ixx - area*out.Cy*out.Cy
	out.Iyy = iyy - area*out.Cx*out.Cx
	out.Ixy = ixy - area*out.Cx*out.Cy
	return out
}
