package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosection/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosection",
	Short: "Cross-Section Property Calculator",
	Long: `gosection - Go Cross-Section Property Calculator

A CLI tool for computing the structural properties of cross-sections:
area, centroid, second moments of area, product of inertia, principal
moments and orientation, elastic and plastic section moduli, and radii
of gyration.

Standard shape families (rectangle, hollow rectangle, circle, I-beam,
T, channel, angle) use closed-form composite formulas; arbitrary
solid/hole composites, including curved boundaries and overlapping
holes, use scan-line boolean integration.

All dimensions are in millimeters; results are mm², mm³ and mm⁴.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosection v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Cross-Section Property Calculator                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing structural cross-section properties.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Closed-form properties for standard shape families")
		fmt.Println("    • Arbitrary solid/hole composites with curved boundaries")
		fmt.Println("    • Rotation about the section centroid")
		fmt.Println("    • Plastic section moduli by equal-area search")
		fmt.Println("    • Section diagrams (ASCII and png/svg/pdf export)")
		fmt.Println()
		fmt.Println("  Use 'gosection --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
