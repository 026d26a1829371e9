package section

import (
	"math"

	"github.com/alexiusacademia/gosection/internal/geometry"
)

// ShapeKind identifies a standard shape family
type ShapeKind string

const (
	ShapeRectangle       ShapeKind = "rectangle"
	ShapeHollowRectangle ShapeKind = "hollow-rectangle"
	ShapeCircle          ShapeKind = "circle"
	ShapeIBeam           ShapeKind = "ibeam"
	ShapeTee             ShapeKind = "tee"
	ShapeChannel         ShapeKind = "channel"
	ShapeAngle           ShapeKind = "angle"
	ShapeCustom          ShapeKind = "custom"
)

// Family describes one shape kind: its recognized dimension fields,
// default dimensions, the closed-form property calculator and the
// polygonal representation used when the shape is rotated or merged into
// a composite. The Custom family has neither a closed form nor a canonical
// polygon; it always goes through the numeric pipeline
type Family struct {
	Kind        ShapeKind
	Description string
	Fields      []string
	Defaults    Dimensions

	calculate func(Dimensions) GeometricProperties
	toParts   func(Dimensions) []Part
}

// Calculate returns the property record from the family's closed-form
// composite formulas. Custom has no closed form and returns zeros
func (f Family) Calculate(dims Dimensions) GeometricProperties {
	if f.calculate == nil {
		return GeometricProperties{}
	}
	return f.calculate(dims)
}

// ToParts returns the family's boundary as a part list in drawing
// coordinates (y down), for use by the numeric pipeline
func (f Family) ToParts(dims Dimensions) []Part {
	if f.toParts == nil {
		return nil
	}
	return f.toParts(dims)
}

var families = []Family{
	{
		Kind:        ShapeRectangle,
		Description: "Solid rectangle",
		Fields:      []string{"depth", "width"},
		Defaults:    Dimensions{Depth: 300, Width: 200},
		calculate:   calcRectangle,
		toParts:     rectangleParts,
	},
	{
		Kind:        ShapeHollowRectangle,
		Description: "Rectangular hollow section with uniform wall thickness",
		Fields:      []string{"depth", "width", "thickness"},
		Defaults:    Dimensions{Depth: 300, Width: 200, Thickness: 10},
		calculate:   calcHollowRectangle,
		toParts:     hollowRectangleParts,
	},
	{
		Kind:        ShapeCircle,
		Description: "Solid circle",
		Fields:      []string{"radius"},
		Defaults:    Dimensions{Radius: 150},
		calculate:   calcCircle,
		toParts:     circleParts,
	},
	{
		Kind:        ShapeIBeam,
		Description: "Doubly symmetric I-beam",
		Fields:      []string{"depth", "width", "flangeThickness", "webThickness"},
		Defaults:    Dimensions{Depth: 300, Width: 150, FlangeThickness: 12, WebThickness: 8},
		calculate:   calcIBeam,
		toParts:     iBeamParts,
	},
	{
		Kind:        ShapeTee,
		Description: "T-section, flange on top",
		Fields:      []string{"depth", "width", "flangeThickness", "webThickness"},
		Defaults:    Dimensions{Depth: 250, Width: 200, FlangeThickness: 12, WebThickness: 8},
		calculate:   calcTee,
		toParts:     teeParts,
	},
	{
		Kind:        ShapeChannel,
		Description: "Channel, web on the left",
		Fields:      []string{"depth", "width", "flangeThickness", "webThickness"},
		Defaults:    Dimensions{Depth: 250, Width: 80, FlangeThickness: 10, WebThickness: 6},
		calculate:   calcChannel,
		toParts:     channelParts,
	},
	{
		Kind:        ShapeAngle,
		Description: "Angle with unequal legs, uniform thickness",
		Fields:      []string{"depth", "width", "thickness"},
		Defaults:    Dimensions{Depth: 150, Width: 100, Thickness: 10},
		calculate:   calcAngle,
		toParts:     angleParts,
	},
	{
		Kind:        ShapeCustom,
		Description: "Arbitrary solid/hole composite from a part list",
		Fields:      nil,
		Defaults:    Dimensions{},
	},
}

// Families returns every shape family in registry order
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// FamilyFor looks up a shape family by kind
func FamilyFor(kind ShapeKind) (Family, bool) {
	for _, f := range families {
		if f.Kind == kind {
			return f, true
		}
	}
	return Family{}, false
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// propsFromComposite fills a property record from an assembled composite
// whose extreme fibers sit at y=0, y=depth, z=0 and z=width, plus the
// plastic moduli computed separately. Every fiber-distance division is
// guarded so degenerate shapes report zeros
func propsFromComposite(c compositeResult, depth, width, zz, zy float64) GeometricProperties {
	props := GeometricProperties{
		Area:     c.Area,
		Centroid: Centroid{Y: c.Cy, Z: c.Cz},
		MomentInertia: MomentInertia{
			Iz:  c.Iz,
			Iy:  c.Iy,
			Izy: c.Izy,
		},
		PrincipalMoments: principalMoments(c.Iz, c.Iy, c.Izy),
		SectionModulus: SectionModulus{
			Szt: safeDiv(c.Iz, depth-c.Cy),
			Szb: safeDiv(c.Iz, c.Cy),
			Syt: safeDiv(c.Iy, width-c.Cz),
			Syb: safeDiv(c.Iy, c.Cz),
		},
		PlasticModulus: PlasticModulus{Zz: zz, Zy: zy},
	}
	if c.Area > 0 {
		props.RadiusGyration = RadiusGyration{
			Rz: math.Sqrt(c.Iz / c.Area),
			Ry: math.Sqrt(c.Iy / c.Area),
		}
	}
	return props
}

// scanPlastic runs the equal-area scan on a family's polygonal
// representation; used by the families whose plastic neutral axes have no
// tidy closed form once the section is asymmetric
func scanPlastic(parts []Part) (zz, zy float64) {
	_, _, zz, zy = plasticModuli(discretizeParts(parts))
	return zz, zy
}

func calcRectangle(dims Dimensions) GeometricProperties {
	d := math.Max(dims.Depth, 0)
	b := math.Max(dims.Width, 0)

	c := composite([]rectMoments{rectangleMoments(b, d, d/2, b/2)})
	zz := b * d * d / 4
	zy := d * b * b / 4
	return propsFromComposite(c, d, b, zz, zy)
}

func calcHollowRectangle(dims Dimensions) GeometricProperties {
	d := math.Max(dims.Depth, 0)
	b := math.Max(dims.Width, 0)
	// Zero thickness degenerates to the solid rectangle
	t := clamp(dims.Thickness, 0, math.Min(b, d)/2)

	di := math.Max(d-2*t, 0)
	bi := math.Max(b-2*t, 0)

	rects := []rectMoments{rectangleMoments(b, d, d/2, b/2)}
	if t > 0 && bi > 0 && di > 0 {
		rects = append(rects, rectangleMoments(bi, di, d/2, b/2).negated())
	}
	c := composite(rects)
	zz := (b*d*d - bi*di*di) / 4
	zy := (d*b*b - di*bi*bi) / 4
	return propsFromComposite(c, d, b, zz, zy)
}

func calcCircle(dims Dimensions) GeometricProperties {
	r := math.Max(dims.Radius, 0)

	area := math.Pi * r * r
	i := math.Pi * r * r * r * r / 4
	s := safeDiv(i, r)
	z := 4 * r * r * r / 3

	props := GeometricProperties{
		Area:     area,
		Centroid: Centroid{Y: r, Z: r},
		MomentInertia: MomentInertia{
			Iz: i,
			Iy: i,
		},
		PrincipalMoments: principalMoments(i, i, 0),
		SectionModulus:   SectionModulus{Szt: s, Szb: s, Syt: s, Syb: s},
		PlasticModulus:   PlasticModulus{Zz: z, Zy: z},
	}
	if r > 0 {
		// r/2 for a solid circle
		props.RadiusGyration = RadiusGyration{Rz: r / 2, Ry: r / 2}
	}
	return props
}

func calcIBeam(dims Dimensions) GeometricProperties {
	d := math.Max(dims.Depth, 0)
	b := math.Max(dims.Width, 0)
	tf := clamp(dims.FlangeThickness, 0, d/2)
	tw := clamp(dims.WebThickness, 0, b)

	web := d - 2*tf
	c := composite([]rectMoments{
		rectangleMoments(b, tf, tf/2, b/2),   // bottom flange
		rectangleMoments(b, tf, d-tf/2, b/2), // top flange
		rectangleMoments(tw, web, d/2, b/2),  // web
	})

	// Doubly symmetric: equal-area axes coincide with the centroidal axes
	zz := b*tf*(d-tf) + tw*web*web/4
	zy := tf*b*b/2 + web*tw*tw/4
	return propsFromComposite(c, d, b, zz, zy)
}

func calcTee(dims Dimensions) GeometricProperties {
	d := math.Max(dims.Depth, 0)
	b := math.Max(dims.Width, 0)
	tf := clamp(dims.FlangeThickness, 0, d)
	tw := clamp(dims.WebThickness, 0, b)

	c := composite([]rectMoments{
		rectangleMoments(b, tf, d-tf/2, b/2),      // flange on top
		rectangleMoments(tw, d-tf, (d-tf)/2, b/2), // web below
	})

	zz, zy := scanPlastic(teeParts(dims))
	return propsFromComposite(c, d, b, zz, zy)
}

func calcChannel(dims Dimensions) GeometricProperties {
	d := math.Max(dims.Depth, 0)
	b := math.Max(dims.Width, 0)
	tf := clamp(dims.FlangeThickness, 0, d/2)
	tw := clamp(dims.WebThickness, 0, b)

	lip := b - tw
	c := composite([]rectMoments{
		rectangleMoments(tw, d, d/2, tw/2),          // web, full depth on the left
		rectangleMoments(lip, tf, tf/2, tw+lip/2),   // bottom flange
		rectangleMoments(lip, tf, d-tf/2, tw+lip/2), // top flange
	})

	zz, zy := scanPlastic(channelParts(dims))
	return propsFromComposite(c, d, b, zz, zy)
}

func calcAngle(dims Dimensions) GeometricProperties {
	d := math.Max(dims.Depth, 0)
	b := math.Max(dims.Width, 0)
	t := clamp(dims.Thickness, 0, math.Min(b, d))

	lip := b - t
	c := composite([]rectMoments{
		rectangleMoments(t, d, d/2, t/2),       // vertical leg on the left
		rectangleMoments(lip, t, t/2, t+lip/2), // horizontal leg along the bottom
	})

	zz, zy := scanPlastic(angleParts(dims))
	return propsFromComposite(c, d, b, zz, zy)
}

// Polygonal representations for the numeric pipeline. Vertices are in
// drawing coordinates (y down from the top fiber), matching what the
// interactive editor would supply for the same shape

func solidPolygon(vertices ...geometry.Point) []Part {
	return []Part{{Type: PartPolygon, Solid: true, Vertices: vertices}}
}

func rectangleParts(dims Dimensions) []Part {
	d, b := math.Max(dims.Depth, 0), math.Max(dims.Width, 0)
	return solidPolygon(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: b, Y: 0},
		geometry.Point{X: b, Y: d},
		geometry.Point{X: 0, Y: d},
	)
}

func hollowRectangleParts(dims Dimensions) []Part {
	d, b := math.Max(dims.Depth, 0), math.Max(dims.Width, 0)
	t := clamp(dims.Thickness, 0, math.Min(b, d)/2)

	parts := rectangleParts(dims)
	if t > 0 && b-2*t > 0 && d-2*t > 0 {
		parts = append(parts, Part{
			Type:  PartPolygon,
			Solid: false,
			Vertices: []geometry.Point{
				{X: t, Y: t},
				{X: b - t, Y: t},
				{X: b - t, Y: d - t},
				{X: t, Y: d - t},
			},
		})
	}
	return parts
}

func circleParts(dims Dimensions) []Part {
	r := math.Max(dims.Radius, 0)
	return []Part{{
		Type:   PartCircle,
		Solid:  true,
		Center: geometry.Point{X: r, Y: r},
		Radius: r,
	}}
}

func iBeamParts(dims Dimensions) []Part {
	d, b := math.Max(dims.Depth, 0), math.Max(dims.Width, 0)
	tf := clamp(dims.FlangeThickness, 0, d/2)
	tw := clamp(dims.WebThickness, 0, b)

	zl := (b - tw) / 2
	zr := (b + tw) / 2
	return solidPolygon(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: b, Y: 0},
		geometry.Point{X: b, Y: tf},
		geometry.Point{X: zr, Y: tf},
		geometry.Point{X: zr, Y: d - tf},
		geometry.Point{X: b, Y: d - tf},
		geometry.Point{X: b, Y: d},
		geometry.Point{X: 0, Y: d},
		geometry.Point{X: 0, Y: d - tf},
		geometry.Point{X: zl, Y: d - tf},
		geometry.Point{X: zl, Y: tf},
		geometry.Point{X: 0, Y: tf},
	)
}

func teeParts(dims Dimensions) []Part {
	d, b := math.Max(dims.Depth, 0), math.Max(dims.Width, 0)
	tf := clamp(dims.FlangeThickness, 0, d)
	tw := clamp(dims.WebThickness, 0, b)

	zl := (b - tw) / 2
	zr := (b + tw) / 2
	return solidPolygon(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: b, Y: 0},
		geometry.Point{X: b, Y: tf},
		geometry.Point{X: zr, Y: tf},
		geometry.Point{X: zr, Y: d},
		geometry.Point{X: zl, Y: d},
		geometry.Point{X: zl, Y: tf},
		geometry.Point{X: 0, Y: tf},
	)
}

func channelParts(dims Dimensions) []Part {
	d, b := math.Max(dims.Depth, 0), math.Max(dims.Width, 0)
	tf := clamp(dims.FlangeThickness, 0, d/2)
	tw := clamp(dims.WebThickness, 0, b)

	return solidPolygon(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: b, Y: 0},
		geometry.Point{X: b, Y: tf},
		geometry.Point{X: tw, Y: tf},
		geometry.Point{X: tw, Y: d - tf},
		geometry.Point{X: b, Y: d - tf},
		geometry.Point{X: b, Y: d},
		geometry.Point{X: 0, Y: d},
	)
}

func angleParts(dims Dimensions) []Part {
	d, b := math.Max(dims.Depth, 0), math.Max(dims.Width, 0)
	t := clamp(dims.Thickness, 0, math.Min(b, d))

	return solidPolygon(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: t, Y: 0},
		geometry.Point{X: t, Y: d - t},
		geometry.Point{X: b, Y: d - t},
		geometry.Point{X: b, Y: d},
		geometry.Point{X: 0, Y: d},
	)
}
