package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/geometry"
	"github.com/alexiusacademia/gosection/internal/section"
)

// printProperties writes the full property record as tabwriter tables
func printProperties(props section.GeometricProperties) {
	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.2f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid ȳ (from bottom fiber):\t%.2f mm\n", props.Centroid.Y)
	fmt.Fprintf(w, "  Centroid z̄ (from left fiber):\t%.2f mm\n", props.Centroid.Z)
	w.Flush()
	fmt.Println()

	fmt.Println("MOMENTS OF INERTIA (centroidal):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Iz:\t%.4e mm⁴\n", props.MomentInertia.Iz)
	fmt.Fprintf(w, "  Iy:\t%.4e mm⁴\n", props.MomentInertia.Iy)
	fmt.Fprintf(w, "  Izy:\t%.4e mm⁴\n", props.MomentInertia.Izy)
	w.Flush()
	fmt.Println()

	fmt.Println("PRINCIPAL AXES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  I1 (major):\t%.4e mm⁴\n", props.PrincipalMoments.I1)
	fmt.Fprintf(w, "  I2 (minor):\t%.4e mm⁴\n", props.PrincipalMoments.I2)
	fmt.Fprintf(w, "  Angle (z → I1):\t%.2f°\n", props.PrincipalMoments.Angle)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION MODULI:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Szt (elastic, top):\t%.4e mm³\n", props.SectionModulus.Szt)
	fmt.Fprintf(w, "  Szb (elastic, bottom):\t%.4e mm³\n", props.SectionModulus.Szb)
	fmt.Fprintf(w, "  Syt (elastic, right):\t%.4e mm³\n", props.SectionModulus.Syt)
	fmt.Fprintf(w, "  Syb (elastic, left):\t%.4e mm³\n", props.SectionModulus.Syb)
	fmt.Fprintf(w, "  Zz (plastic):\t%.4e mm³\n", props.PlasticModulus.Zz)
	fmt.Fprintf(w, "  Zy (plastic):\t%.4e mm³\n", props.PlasticModulus.Zy)
	w.Flush()
	fmt.Println()

	fmt.Println("RADII OF GYRATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  rz:\t%.2f mm\n", props.RadiusGyration.Rz)
	fmt.Fprintf(w, "  ry:\t%.2f mm\n", props.RadiusGyration.Ry)
	w.Flush()
	fmt.Println()
}

// printPropertiesJSON writes the property record as indented JSON
func printPropertiesJSON(props section.GeometricProperties) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(props)
}

// diagramData converts an analysis into the diagram package's input
func diagramData(name string, ana section.Analysis) diagram.SectionData {
	return diagram.SectionData{
		Name:           name,
		Solids:         toDiagramRings(ana.Solids),
		Holes:          toDiagramRings(ana.Holes),
		Centroid:       diagram.Point{X: ana.Centroid.X, Y: ana.Centroid.Y},
		PrincipalAngle: ana.Properties.PrincipalMoments.Angle,
		PNAy:           ana.PNAy,
		PNAx:           ana.PNAx,
		MinX:           ana.MinX,
		MinY:           ana.MinY,
		MaxX:           ana.MaxX,
		MaxY:           ana.MaxY,
	}
}

func toDiagramRings(rings [][]geometry.Point) [][]diagram.Point {
	out := make([][]diagram.Point, 0, len(rings))
	for _, ring := range rings {
		converted := make([]diagram.Point, len(ring))
		for i, p := range ring {
			converted[i] = diagram.Point{X: p.X, Y: p.Y}
		}
		out = append(out, converted)
	}
	return out
}
