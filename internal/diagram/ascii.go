package diagram

import (
	"fmt"
	"strings"
)

// Point represents a 2D coordinate for diagram geometry
type Point struct {
	X float64
	Y float64
}

// SectionData holds everything needed to draw a cross-section diagram.
// Geometry is in drawing coordinates (y increases downward)
type SectionData struct {
	Name string

	// Discretized boundaries
	Solids [][]Point
	Holes  [][]Point

	// Analysis results
	Centroid       Point   // absolute drawing coordinates
	PrincipalAngle float64 // degrees from the horizontal axis, y-up convention
	PNAy           float64 // horizontal plastic neutral axis (drawing y)
	PNAx           float64 // vertical plastic neutral axis (drawing x)

	// Solid bounding box
	MinX, MinY, MaxX, MaxY float64
}

// pointInRing reports whether (x, y) lies inside the ring by the even-odd
// crossing rule, with the same half-open edge test the integrator uses
func pointInRing(ring []Point, x, y float64) bool {
	inside := false
	n := len(ring)
	for i := 0; i < n; i++ {
		p1 := ring[i]
		p2 := ring[(i+1)%n]
		if (p1.Y <= y && p2.Y > y) || (p2.Y <= y && p1.Y > y) {
			t := (y - p1.Y) / (p2.Y - p1.Y)
			if p1.X+t*(p2.X-p1.X) > x {
				inside = !inside
			}
		}
	}
	return inside
}

// isMaterial reports whether the sample point is net solid material
func (d SectionData) isMaterial(x, y float64) bool {
	solid := false
	for _, ring := range d.Solids {
		if pointInRing(ring, x, y) {
			solid = true
			break
		}
	}
	if !solid {
		return false
	}
	for _, ring := range d.Holes {
		if pointInRing(ring, x, y) {
			return false
		}
	}
	return true
}

// DrawASCIISection renders the cross-section as a character raster with
// the centroid and plastic neutral axes marked
func DrawASCIISection(data SectionData) string {
	const widthChars = 56
	const heightChars = 24

	w := data.MaxX - data.MinX
	h := data.MaxY - data.MinY
	if w <= 0 || h <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SECTION\n")
	sb.WriteString("  ───────\n")

	// Raster by sampling each cell center; rows run top (min y) to bottom
	cellW := w / float64(widthChars)
	cellH := h / float64(heightChars)

	centroidCol := int((data.Centroid.X - data.MinX) / cellW)
	centroidRow := int((data.Centroid.Y - data.MinY) / cellH)
	pnaRow := int((data.PNAy - data.MinY) / cellH)
	pnaCol := int((data.PNAx - data.MinX) / cellW)

	for row := 0; row < heightChars; row++ {
		y := data.MinY + (float64(row)+0.5)*cellH
		sb.WriteString("  ")
		for col := 0; col < widthChars; col++ {
			x := data.MinX + (float64(col)+0.5)*cellW

			switch {
			case row == centroidRow && col == centroidCol:
				sb.WriteString("C")
			case data.isMaterial(x, y):
				if row == pnaRow || col == pnaCol {
					sb.WriteString("▒")
				} else {
					sb.WriteString("█")
				}
			case row == pnaRow:
				sb.WriteString("─")
			case col == pnaCol:
				sb.WriteString("│")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  C = centroid   ─/│ = plastic neutral axes (▒ inside material)\n")
	sb.WriteString(fmt.Sprintf("  bounding box %.1f × %.1f mm\n", w, h))
	return sb.String()
}
