package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var (
	calcShape       string
	calcDepth       float64
	calcWidth       float64
	calcFlangeThick float64
	calcWebThick    float64
	calcThickness   float64
	calcRadius      float64
	calcRotation    float64
	calcShowDiagram bool
	calcExportFile  string
	calcJSONOutput  bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate properties of a standard shape",
	Long: `Calculate the geometric properties of a standard shape family.

Dimensions left at 0 fall back to the family defaults shown by
'gosection shapes'. A nonzero rotation pivots the shape about its own
centroid and routes the calculation through the numeric pipeline.

Examples:
  gosection calc --shape rectangle --depth 200 --width 100
  gosection calc --shape ibeam -d 300 -b 150 --tf 12 --tw 8
  gosection calc --shape angle -d 150 -b 100 -t 10 --rotation 30 --diagram`,
	Run: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcShape, "shape", "s", "", "Shape family (see 'gosection shapes') [required]")
	calcCmd.MarkFlagRequired("shape")

	calcCmd.Flags().Float64VarP(&calcDepth, "depth", "d", 0, "Overall depth (mm)")
	calcCmd.Flags().Float64VarP(&calcWidth, "width", "b", 0, "Overall width (mm)")
	calcCmd.Flags().Float64Var(&calcFlangeThick, "tf", 0, "Flange thickness (mm)")
	calcCmd.Flags().Float64Var(&calcWebThick, "tw", 0, "Web thickness (mm)")
	calcCmd.Flags().Float64VarP(&calcThickness, "thickness", "t", 0, "Wall/leg thickness (mm)")
	calcCmd.Flags().Float64VarP(&calcRadius, "radius", "r", 0, "Radius (mm)")
	calcCmd.Flags().Float64Var(&calcRotation, "rotation", 0, "Rotation about the centroid (degrees)")

	calcCmd.Flags().BoolVar(&calcShowDiagram, "diagram", false, "Show ASCII section diagram")
	calcCmd.Flags().StringVarP(&calcExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	calcCmd.Flags().BoolVar(&calcJSONOutput, "json", false, "Print the property record as JSON")
}

func runCalc(cmd *cobra.Command, args []string) {
	kind := section.ShapeKind(strings.ToLower(calcShape))
	fam, ok := section.FamilyFor(kind)
	if !ok || kind == section.ShapeCustom {
		fmt.Printf("Unknown shape %q. See 'gosection shapes' for the available families.\n", calcShape)
		return
	}

	dims := fam.Defaults
	if calcDepth > 0 {
		dims.Depth = calcDepth
	}
	if calcWidth > 0 {
		dims.Width = calcWidth
	}
	if calcFlangeThick > 0 {
		dims.FlangeThickness = calcFlangeThick
	}
	if calcWebThick > 0 {
		dims.WebThickness = calcWebThick
	}
	if calcThickness > 0 {
		dims.Thickness = calcThickness
	}
	if calcRadius > 0 {
		dims.Radius = calcRadius
	}

	props := section.Compute(kind, dims, nil, calcRotation)

	if calcJSONOutput {
		if err := printPropertiesJSON(props); err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
		}
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SECTION PROPERTIES - %s\n", strings.ToUpper(string(kind)))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if calcRotation != 0 {
		fmt.Printf("  Rotation: %.1f° about the centroid\n", calcRotation)
		fmt.Println()
	}

	printProperties(props)

	if calcShowDiagram || calcExportFile != "" {
		ana := section.AnalyzeParts(fam.ToParts(dims), calcRotation)
		data := diagramData(string(kind), ana)

		if calcShowDiagram {
			fmt.Println(diagram.DrawASCIISection(data))
		}
		if calcExportFile != "" {
			if err := diagram.ExportSectionDiagram(data, calcExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", calcExportFile)
			}
		}
	}
}
