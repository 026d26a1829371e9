package cmd

import (
	"github.com/spf13/cobra"
)

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Custom section analysis from a part list",
	Long: `Analyze custom cross-sections assembled from solid and hole parts
defined in a JSON file.

Parts may be polygons (with optionally curved edges) or circles, and may
overlap arbitrarily; holes are subtracted only where they cut solid
material. Polygon edges become circular arcs by mapping the edge index to
a control point the arc must pass through.

Example JSON file structure:
{
  "name": "Plate with hole",
  "rotation": 0,
  "parts": [
    {
      "type": "polygon",
      "solid": true,
      "vertices": [
        {"x": 0, "y": 0},
        {"x": 200, "y": 0},
        {"x": 200, "y": 100},
        {"x": 0, "y": 100}
      ],
      "curves": {
        "1": {"x": 215, "y": 50}
      }
    },
    {
      "type": "circle",
      "solid": false,
      "center": {"x": 100, "y": 50},
      "radius": 30
    }
  ]
}`,
}

func init() {
	rootCmd.AddCommand(customCmd)
}
