package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSectionDiagram exports a cross-section diagram to an image file
// (png, svg or pdf by extension). The plot keeps the drawing convention:
// the Y axis is inverted so the section appears as drawn
func ExportSectionDiagram(data SectionData, filename string) error {
	p := plot.New()
	p.Title.Text = "Cross-Section Properties"
	if data.Name != "" {
		p.Title.Text = data.Name
	}
	p.X.Label.Text = "z (mm)"
	p.Y.Label.Text = "y (mm)"

	// Drawing coordinates run y-down
	margin := math.Max(data.MaxX-data.MinX, data.MaxY-data.MinY) * 0.1
	p.Y.Min = data.MaxY + margin
	p.Y.Max = data.MinY - margin

	// Solid outlines
	for _, ring := range data.Solids {
		line, err := plotter.NewLine(closedRing(ring))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Hole outlines, dashed
	for _, ring := range data.Holes {
		line, err := plotter.NewLine(closedRing(ring))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.Gray{Y: 110}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	halfSpan := (data.MaxX - data.MinX + data.MaxY - data.MinY) / 2

	// Major principal axis through the centroid. The angle is reported in
	// the engineering y-up convention, so its drawing-space slope is
	// negated
	sin, cos := math.Sincos(data.PrincipalAngle * math.Pi / 180)
	axisLine, err := plotter.NewLine(plotter.XYs{
		{X: data.Centroid.X - cos*halfSpan, Y: data.Centroid.Y + sin*halfSpan},
		{X: data.Centroid.X + cos*halfSpan, Y: data.Centroid.Y - sin*halfSpan},
	})
	if err != nil {
		return err
	}
	axisLine.LineStyle.Width = vg.Points(1.5)
	axisLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	axisLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(axisLine)

	// Plastic neutral axes
	pnaH, err := plotter.NewLine(plotter.XYs{
		{X: data.MinX - margin/2, Y: data.PNAy},
		{X: data.MaxX + margin/2, Y: data.PNAy},
	})
	if err != nil {
		return err
	}
	pnaH.LineStyle.Width = vg.Points(1.5)
	pnaH.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	pnaH.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(pnaH)

	pnaV, err := plotter.NewLine(plotter.XYs{
		{X: data.PNAx, Y: data.MinY - margin/2},
		{X: data.PNAx, Y: data.MaxY + margin/2},
	})
	if err != nil {
		return err
	}
	pnaV.LineStyle.Width = vg.Points(1.5)
	pnaV.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	pnaV.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(pnaV)

	// Centroid marker
	centroid, err := plotter.NewScatter(plotter.XYs{
		{X: data.Centroid.X, Y: data.Centroid.Y},
	})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(5)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: data.Centroid.X, Y: data.Centroid.Y}},
		Labels: []string{"  C"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// closedRing converts a boundary ring to plot points, repeating the first
// vertex so the outline closes
func closedRing(ring []Point) plotter.XYs {
	pts := make(plotter.XYs, 0, len(ring)+1)
	for _, v := range ring {
		pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
	}
	if len(ring) > 0 {
		pts = append(pts, plotter.XY{X: ring[0].X, Y: ring[0].Y})
	}
	return pts
}
