package section

import (
	"math"

	"github.com/alexiusacademia/gosection/internal/geometry"
)

// Analysis bundles the property record with the resolved geometry that
// diagram rendering needs: the discretized boundaries after rotation, the
// absolute centroid in drawing coordinates, and the plastic neutral axis
// positions. The Properties field alone is the computational contract;
// everything else is presentation support
type Analysis struct {
	Properties GeometricProperties

	Solids [][]geometry.Point // discretized solid boundaries
	Holes  [][]geometry.Point // discretized hole boundaries

	Centroid geometry.Point // absolute, drawing coordinates
	PNAy     float64        // horizontal plastic neutral axis (drawing y)
	PNAx     float64        // vertical plastic neutral axis (drawing x)

	MinX, MinY, MaxX, MaxY float64 // solid bounding box
}

// Compute is the core contract: a pure function from (shape family,
// dimensions, part list, rotation angle) to the property record. Standard
// families use their closed-form composites; the Custom family, and any
// family under rotation, goes through the scan-line numeric pipeline.
// Malformed geometry yields a zeroed record, never an error
func Compute(kind ShapeKind, dims Dimensions, parts []Part, rotationDeg float64) GeometricProperties {
	if kind == ShapeCustom {
		return AnalyzeParts(parts, rotationDeg).Properties
	}

	fam, ok := FamilyFor(kind)
	if !ok {
		return GeometricProperties{}
	}

	if rotationDeg != 0 {
		// Closed-form composites assume axis-aligned rectangles; a rotated
		// shape is routed through the numeric pipeline on its polygon form
		return AnalyzeParts(fam.ToParts(dims), rotationDeg).Properties
	}

	return fam.Calculate(dims)
}

// AnalyzeParts runs the full numeric pipeline on a part list: rotation
// about the section's own centroid, discretization, scan-line boolean
// integration, plastic equal-area scans, and the principal-axis solve.
// Rotation pivots on the true centroid, not the bounding-box center, so
// an asymmetric section spins in place without its reported centroid
// jumping
func AnalyzeParts(parts []Part, rotationDeg float64) Analysis {
	if rotationDeg != 0 {
		rings := discretizeParts(parts)
		si := scanIntegrate(rings)
		if si.Area > 0 {
			rotated := make([]Part, len(parts))
			for i, p := range parts {
				rotated[i] = p.Translated(-si.Cx, -si.Cy).Rotated(rotationDeg)
			}
			parts = rotated
		}
	}

	rings := discretizeParts(parts)
	out := Analysis{}
	for _, r := range rings {
		if r.solid {
			out.Solids = append(out.Solids, r.points)
		} else {
			out.Holes = append(out.Holes, r.points)
		}
	}

	si := scanIntegrate(rings)
	out.MinX, out.MinY, out.MaxX, out.MaxY = si.MinX, si.MinY, si.MaxX, si.MaxY
	if si.Area <= 0 {
		return out
	}

	out.Centroid = geometry.Point{X: si.Cx, Y: si.Cy}

	// The parallel-axis subtraction can go fractionally negative for a
	// sliver of near-zero extent; clamp so the gyration roots stay real
	iz := math.Max(si.Ixx, 0)
	iy := math.Max(si.Iyy, 0)
	// Drawing coordinates run y-down; flipping to the engineering y-up
	// convention negates the product of inertia exactly once, here
	izy := -si.Ixy

	pnaY, pnaX, zz, zy := plasticModuli(rings)
	out.PNAy = pnaY
	out.PNAx = pnaX

	props := GeometricProperties{
		Area: si.Area,
		Centroid: Centroid{
			Y: si.MaxY - si.Cy, // from the bottom fiber (max drawing y)
			Z: si.Cx - si.MinX, // from the left fiber
		},
		MomentInertia:    MomentInertia{Iz: iz, Iy: iy, Izy: izy},
		PrincipalMoments: principalMoments(iz, iy, izy),
		SectionModulus: SectionModulus{
			Szt: safeDiv(iz, si.Cy-si.MinY),
			Szb: safeDiv(iz, si.MaxY-si.Cy),
			Syt: safeDiv(iy, si.MaxX-si.Cx),
			Syb: safeDiv(iy, si.Cx-si.MinX),
		},
		RadiusGyration: RadiusGyration{
			Rz: math.Sqrt(iz / si.Area),
			Ry: math.Sqrt(iy / si.Area),
		},
		PlasticModulus: PlasticModulus{Zz: zz, Zy: zy},
	}

	out.Properties = props
	return out
}

// AnalyzeDefinition runs the numeric pipeline on a loaded custom section
// definition, applying its rotation
func AnalyzeDefinition(def *Definition) Analysis {
	return AnalyzeParts(def.Parts, def.Rotation)
}
