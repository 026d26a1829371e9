package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the available shape families",
	Long: `List the available shape families with their recognized dimension
fields and default dimensions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("AVAILABLE SHAPE FAMILIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Shape\tDescription\tFields\tDefaults\n")
		fmt.Fprintf(w, "  ─────\t───────────\t──────\t────────\n")
		for _, fam := range section.Families() {
			fields := strings.Join(fam.Fields, ", ")
			if fields == "" {
				fields = "part list (JSON file)"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", fam.Kind, fam.Description, fields, defaultsString(fam))
		}
		w.Flush()
		fmt.Println()
	},
}

func defaultsString(fam section.Family) string {
	var parts []string
	add := func(name string, v float64) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s=%.0f", name, v))
		}
	}
	add("depth", fam.Defaults.Depth)
	add("width", fam.Defaults.Width)
	add("tf", fam.Defaults.FlangeThickness)
	add("tw", fam.Defaults.WebThickness)
	add("t", fam.Defaults.Thickness)
	add("r", fam.Defaults.Radius)
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}
