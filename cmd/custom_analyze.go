package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var (
	customAnalyzeFile        string
	customAnalyzeRotation    float64
	customAnalyzeShowDiagram bool
	customAnalyzeExportFile  string
	customAnalyzeJSONOutput  bool
)

var customAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute properties of a custom section",
	Long: `Compute the full property record of a custom section defined in a
JSON file, using scan-line boolean integration over its solid and hole
parts.

Examples:
  gosection custom analyze --file box-girder.json
  gosection custom analyze -f plate.json --rotation 15 --diagram`,
	Run: runCustomAnalyze,
}

func init() {
	customCmd.AddCommand(customAnalyzeCmd)

	customAnalyzeCmd.Flags().StringVarP(&customAnalyzeFile, "file", "f", "", "Path to section JSON file [required]")
	customAnalyzeCmd.MarkFlagRequired("file")

	customAnalyzeCmd.Flags().Float64Var(&customAnalyzeRotation, "rotation", 0, "Extra rotation about the centroid (degrees), added to the file's rotation")
	customAnalyzeCmd.Flags().BoolVar(&customAnalyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	customAnalyzeCmd.Flags().StringVarP(&customAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	customAnalyzeCmd.Flags().BoolVar(&customAnalyzeJSONOutput, "json", false, "Print the property record as JSON")
}

func runCustomAnalyze(cmd *cobra.Command, args []string) {
	def, err := section.LoadFromFile(customAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	ana := section.AnalyzeParts(def.Parts, def.Rotation+customAnalyzeRotation)

	if customAnalyzeJSONOutput {
		if err := printPropertiesJSON(ana.Properties); err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
		}
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CUSTOM SECTION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if def.Name != "" {
		fmt.Printf("  Section: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	fmt.Println()

	fmt.Println("PARTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Part\tType\tRole\tDetail\n")
	fmt.Fprintf(w, "  ────\t────\t────\t──────\n")
	for i, part := range def.Parts {
		role := "hole"
		if part.Solid {
			role = "solid"
		}
		detail := fmt.Sprintf("%d vertices", len(part.Vertices))
		if len(part.Curves) > 0 {
			detail += fmt.Sprintf(", %d curved edges", len(part.Curves))
		}
		if part.Type == section.PartCircle {
			detail = fmt.Sprintf("r=%.1f at (%.1f, %.1f)", part.Radius, part.Center.X, part.Center.Y)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", i+1, part.Type, role, detail)
	}
	w.Flush()
	fmt.Println()

	totalRotation := def.Rotation + customAnalyzeRotation
	if totalRotation != 0 {
		fmt.Printf("  Rotation: %.1f° about the centroid\n", totalRotation)
		fmt.Println()
	}

	printProperties(ana.Properties)

	if customAnalyzeShowDiagram || customAnalyzeExportFile != "" {
		data := diagramData(def.Name, ana)

		if customAnalyzeShowDiagram {
			fmt.Println(diagram.DrawASCIISection(data))
		}
		if customAnalyzeExportFile != "" {
			if err := diagram.ExportSectionDiagram(data, customAnalyzeExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", customAnalyzeExportFile)
			}
		}
	}
}
