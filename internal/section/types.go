package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gosection/internal/geometry"
)

// Resolution knobs for the numerical pipeline. Higher values trade compute
// time for accuracy; they are fixed constants so every call slices the
// section the same way
const (
	// scanSteps is the number of scan lines spanning the solid bounding box
	scanSteps = 2000

	// arcSegments is the number of straight segments replacing one arc edge
	arcSegments = 32

	// circleSegments is the polygon resolution for a full circle part
	circleSegments = 64
)

// PartType discriminates the part variants
type PartType string

const (
	PartPolygon PartType = "polygon"
	PartCircle  PartType = "circle"
)

// Part is one contiguous region contributing to a cross-section, either as
// solid material or as a hole cut out of it. Coordinates are in the drawing
// convention (Y increases downward)
type Part struct {
	Type  PartType `json:"type"`
	Solid bool     `json:"solid"`

	// Polygon parts: ordered vertices, implicitly closed. Curves maps an
	// edge index i (the edge from vertex i to vertex i+1 mod n) to the
	// control point the arc must pass through
	Vertices []geometry.Point       `json:"vertices,omitempty"`
	Curves   map[int]geometry.Point `json:"curves,omitempty"`

	// Circle parts
	Center geometry.Point `json:"center,omitempty"`
	Radius float64        `json:"radius,omitempty"`
}

// Discretize replaces every curved boundary with straight segments: arc
// edges are sampled along their circumcircle and circle parts become
// regular polygons. The result is the part's boundary as a plain vertex
// ring ready for scan-line integration
func (p Part) Discretize() []geometry.Point {
	if p.Type == PartCircle {
		return geometry.DiscretizeCircle(p.Center, p.Radius, circleSegments)
	}

	n := len(p.Vertices)
	if n < 3 {
		return nil
	}
	if len(p.Curves) == 0 {
		out := make([]geometry.Point, n)
		copy(out, p.Vertices)
		return out
	}

	var out []geometry.Point
	for i := 0; i < n; i++ {
		v1 := p.Vertices[i]
		v2 := p.Vertices[(i+1)%n]

		control, curved := p.Curves[i]
		if !curved {
			out = append(out, v1)
			continue
		}

		// Arc points include both endpoints; drop the last one since the
		// next loop iteration contributes it
		arc := geometry.DiscretizeArc(v1, control, v2, arcSegments)
		out = append(out, arc[:len(arc)-1]...)
	}
	return out
}

// Rotated returns a copy of the part rotated about the origin by the given
// angle in degrees. Control points and circle centers rotate with the
// part; radii are unchanged
func (p Part) Rotated(angleDeg float64) Part {
	out := p
	if len(p.Vertices) > 0 {
		out.Vertices = make([]geometry.Point, len(p.Vertices))
		for i, v := range p.Vertices {
			out.Vertices[i] = v.Rotate(angleDeg)
		}
	}
	if len(p.Curves) > 0 {
		out.Curves = make(map[int]geometry.Point, len(p.Curves))
		for i, c := range p.Curves {
			out.Curves[i] = c.Rotate(angleDeg)
		}
	}
	out.Center = p.Center.Rotate(angleDeg)
	return out
}

// Translated returns a copy of the part shifted by (dx, dy)
func (p Part) Translated(dx, dy float64) Part {
	out := p
	if len(p.Vertices) > 0 {
		out.Vertices = make([]geometry.Point, len(p.Vertices))
		for i, v := range p.Vertices {
			out.Vertices[i] = geometry.Point{X: v.X + dx, Y: v.Y + dy}
		}
	}
	if len(p.Curves) > 0 {
		out.Curves = make(map[int]geometry.Point, len(p.Curves))
		for i, c := range p.Curves {
			out.Curves[i] = geometry.Point{X: c.X + dx, Y: c.Y + dy}
		}
	}
	out.Center = geometry.Point{X: p.Center.X + dx, Y: p.Center.Y + dy}
	return out
}

// Dimensions holds the scalar parameters of a standard shape family. Each
// family reads only the fields it recognizes; absent fields are zero and
// fall back to documented defaults inside the family formulas
type Dimensions struct {
	Depth           float64 `json:"depth"`           // overall depth d (mm)
	Width           float64 `json:"width"`           // overall width b (mm)
	FlangeThickness float64 `json:"flangeThickness"` // tf (mm)
	WebThickness    float64 `json:"webThickness"`    // tw (mm)
	Thickness       float64 `json:"thickness"`       // uniform wall/leg thickness t (mm)
	Radius          float64 `json:"radius"`          // r (mm)
}

// Centroid is the centroid location reported as distances from the extreme
// fibers of the solid material: Y from the bottom fiber, Z from the left
type Centroid struct {
	Y float64 `json:"y"` // mm from bottom fiber
	Z float64 `json:"z"` // mm from left fiber
}

// MomentInertia holds the second moments of area about centroidal axes
type MomentInertia struct {
	Iz  float64 `json:"iz"`  // about the horizontal centroidal axis (mm⁴)
	Iy  float64 `json:"iy"`  // about the vertical centroidal axis (mm⁴)
	Izy float64 `json:"izy"` // product of inertia, y-up convention (mm⁴)
}

// PrincipalMoments holds the eigen-decomposition of the inertia tensor
type PrincipalMoments struct {
	I1    float64 `json:"i1"`    // major principal moment (mm⁴)
	I2    float64 `json:"i2"`    // minor principal moment (mm⁴)
	Angle float64 `json:"angle"` // from the z axis to the I1 axis (degrees)
}

// SectionModulus holds the four elastic section moduli; asymmetric
// sections have different extreme-fiber distances in each direction
type SectionModulus struct {
	Szt float64 `json:"szt"` // Iz / (distance to top fiber) (mm³)
	Szb float64 `json:"szb"` // Iz / (distance to bottom fiber) (mm³)
	Syt float64 `json:"syt"` // Iy / (distance to right fiber) (mm³)
	Syb float64 `json:"syb"` // Iy / (distance to left fiber) (mm³)
}

// RadiusGyration holds the radii of gyration about centroidal axes
type RadiusGyration struct {
	Rz float64 `json:"rz"` // mm
	Ry float64 `json:"ry"` // mm
}

// PlasticModulus holds the plastic section moduli about the equal-area axes
type PlasticModulus struct {
	Zz float64 `json:"zz"` // mm³
	Zy float64 `json:"zy"` // mm³
}

// GeometricProperties is the full property record of a cross-section. All
// fields are always populated; degenerate input yields zeros rather than
// NaN. Units follow the caller's input units (mm assumed throughout the
// CLI, giving mm², mm³, mm⁴)
type GeometricProperties struct {
	Area             float64          `json:"area"` // mm²
	Centroid         Centroid         `json:"centroid"`
	MomentInertia    MomentInertia    `json:"momentInertia"`
	PrincipalMoments PrincipalMoments `json:"principalMoments"`
	SectionModulus   SectionModulus   `json:"sectionModulus"`
	RadiusGyration   RadiusGyration   `json:"radiusGyration"`
	PlasticModulus   PlasticModulus   `json:"plasticModulus"`
}

// Definition is a custom section as loaded from a JSON file
type Definition struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Rotation    float64 `json:"rotation,omitempty"` // degrees, about the section centroid
	Parts       []Part  `json:"parts"`
}

// LoadFromFile loads a custom section definition from a JSON file
func LoadFromFile(filepath string) (*Definition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks the section definition for structural mistakes that the
// math core would otherwise silently zero out
func (d *Definition) Validate() error {
	if len(d.Parts) == 0 {
		return &ValidationError{"section must have at least one part"}
	}

	hasSolid := false
	for i, part := range d.Parts {
		switch part.Type {
		case PartPolygon:
			if len(part.Vertices) < 3 {
				return &ValidationError{fmt.Sprintf("part %d: polygon must have at least 3 vertices", i+1)}
			}
			for edge := range part.Curves {
				if edge < 0 || edge >= len(part.Vertices) {
					return &ValidationError{fmt.Sprintf("part %d: curve index %d out of range", i+1, edge)}
				}
			}
		case PartCircle:
			if part.Radius <= 0 {
				return &ValidationError{fmt.Sprintf("part %d: circle must have positive radius", i+1)}
			}
		default:
			return &ValidationError{fmt.Sprintf("part %d: unknown part type %q", i+1, part.Type)}
		}
		if part.Solid {
			hasSolid = true
		}
	}

	if !hasSolid {
		return &ValidationError{"section must have at least one solid part"}
	}
	return nil
}

// ValidationError represents a section definition error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
