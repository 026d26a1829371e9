package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle_ClosedForm200x100(t *testing.T) {
	props := Compute(ShapeRectangle, Dimensions{Depth: 200, Width: 100}, nil, 0)

	assert.InDelta(t, 20000, props.Area, 1e-9)
	assert.InDelta(t, 100, props.Centroid.Y, 1e-9)
	assert.InDelta(t, 50, props.Centroid.Z, 1e-9)

	assert.InEpsilon(t, 20000*200*200/12.0, props.MomentInertia.Iz, 1e-12)
	assert.InEpsilon(t, 20000*100*100/12.0, props.MomentInertia.Iy, 1e-12)
	assert.Zero(t, props.MomentInertia.Izy)

	assert.InDelta(t, 57.74, props.RadiusGyration.Rz, 0.01)
	assert.InDelta(t, 28.87, props.RadiusGyration.Ry, 0.01)

	assert.InEpsilon(t, 20000*200*200/12.0/100, props.SectionModulus.Szt, 1e-12)
	assert.Equal(t, props.SectionModulus.Szt, props.SectionModulus.Szb)
	assert.InEpsilon(t, 100*200*200/4.0, props.PlasticModulus.Zz, 1e-12)
	assert.InEpsilon(t, 200*100*100/4.0, props.PlasticModulus.Zy, 1e-12)
}

func TestHollowRectangle_200x100x10(t *testing.T) {
	props := Compute(ShapeHollowRectangle, Dimensions{Depth: 200, Width: 100, Thickness: 10}, nil, 0)

	// Inner 180×80
	assert.InDelta(t, 20000-14400, props.Area, 1e-9)
	assert.InDelta(t, 100, props.Centroid.Y, 1e-9)
	assert.InEpsilon(t, (100*200*200*200-80*180*180*180)/12.0, props.MomentInertia.Iz, 1e-12)
	assert.InEpsilon(t, (100*200*200-80*180*180)/4.0, props.PlasticModulus.Zz, 1e-12)
}

func TestHollowRectangle_ZeroThicknessDegeneratesToSolid(t *testing.T) {
	hollow := Compute(ShapeHollowRectangle, Dimensions{Depth: 200, Width: 100}, nil, 0)
	solid := Compute(ShapeRectangle, Dimensions{Depth: 200, Width: 100}, nil, 0)

	assert.Equal(t, solid.Area, hollow.Area)
	assert.Equal(t, solid.MomentInertia.Iz, hollow.MomentInertia.Iz)
}

func TestCircle_ClosedForms(t *testing.T) {
	r := 80.0
	props := Compute(ShapeCircle, Dimensions{Radius: r}, nil, 0)

	assert.InEpsilon(t, math.Pi*r*r, props.Area, 1e-12)
	assert.InEpsilon(t, math.Pi*r*r*r*r/4, props.MomentInertia.Iz, 1e-12)
	assert.Equal(t, props.MomentInertia.Iz, props.MomentInertia.Iy)
	assert.InEpsilon(t, 4*r*r*r/3, props.PlasticModulus.Zz, 1e-12)
	assert.InEpsilon(t, r/2, props.RadiusGyration.Rz, 1e-12)
	assert.InEpsilon(t, math.Pi*r*r*r/4, props.SectionModulus.Szt, 1e-12)
}

func TestCircle_DiscretizationConvergesToClosedForm(t *testing.T) {
	r := 80.0
	closed := Compute(ShapeCircle, Dimensions{Radius: r}, nil, 0)
	numeric := AnalyzeParts(circleParts(Dimensions{Radius: r}), 0).Properties

	assert.InEpsilon(t, closed.Area, numeric.Area, 0.005)
	assert.InEpsilon(t, closed.MomentInertia.Iz, numeric.MomentInertia.Iz, 0.01)
	assert.InEpsilon(t, closed.MomentInertia.Iy, numeric.MomentInertia.Iy, 0.01)
	assert.InEpsilon(t, closed.PlasticModulus.Zz, numeric.PlasticModulus.Zz, 0.01)
}

func TestIBeam_AnalyticMatchesNumericPipeline(t *testing.T) {
	dims := Dimensions{Depth: 300, Width: 150, FlangeThickness: 12, WebThickness: 8}

	analytic := Compute(ShapeIBeam, dims, nil, 0)
	numeric := AnalyzeParts(iBeamParts(dims), 0).Properties

	assert.InEpsilon(t, analytic.Area, numeric.Area, 1e-6)
	assert.InEpsilon(t, analytic.MomentInertia.Iz, numeric.MomentInertia.Iz, 1e-3)
	assert.InEpsilon(t, analytic.MomentInertia.Iy, numeric.MomentInertia.Iy, 1e-3)
	assert.InEpsilon(t, analytic.PlasticModulus.Zz, numeric.PlasticModulus.Zz, 1e-3)
	assert.InEpsilon(t, analytic.PlasticModulus.Zy, numeric.PlasticModulus.Zy, 1e-3)
	assert.InDelta(t, 150, analytic.Centroid.Y, 1e-9)
	assert.Zero(t, analytic.MomentInertia.Izy)
}

func TestTee_AnalyticMatchesNumericPipeline(t *testing.T) {
	dims := Dimensions{Depth: 250, Width: 200, FlangeThickness: 12, WebThickness: 8}

	analytic := Compute(ShapeTee, dims, nil, 0)
	numeric := AnalyzeParts(teeParts(dims), 0).Properties

	assert.InEpsilon(t, analytic.Area, numeric.Area, 1e-6)
	assert.InDelta(t, analytic.Centroid.Y, numeric.Centroid.Y, 0.01)
	assert.InEpsilon(t, analytic.MomentInertia.Iz, numeric.MomentInertia.Iz, 1e-3)
	assert.InEpsilon(t, analytic.MomentInertia.Iy, numeric.MomentInertia.Iy, 1e-3)
	assert.Zero(t, analytic.MomentInertia.Izy)

	// Flange on top pulls the centroid up: the short top-fiber distance
	// gives the larger modulus
	assert.Greater(t, analytic.SectionModulus.Szt, analytic.SectionModulus.Szb)
}

func TestChannel_AnalyticMatchesNumericPipeline(t *testing.T) {
	dims := Dimensions{Depth: 250, Width: 80, FlangeThickness: 10, WebThickness: 6}

	analytic := Compute(ShapeChannel, dims, nil, 0)
	numeric := AnalyzeParts(channelParts(dims), 0).Properties

	assert.InEpsilon(t, analytic.Area, numeric.Area, 1e-6)
	assert.InDelta(t, analytic.Centroid.Z, numeric.Centroid.Z, 0.01)
	assert.InEpsilon(t, analytic.MomentInertia.Iz, numeric.MomentInertia.Iz, 1e-3)
	assert.InEpsilon(t, analytic.MomentInertia.Iy, numeric.MomentInertia.Iy, 1e-3)

	// Symmetric about the horizontal axis, centroid at mid-depth
	assert.InDelta(t, 125, analytic.Centroid.Y, 1e-9)
	assert.Zero(t, analytic.MomentInertia.Izy)
}

func TestAngle_UnequalLegsAreAsymmetric(t *testing.T) {
	dims := Dimensions{Depth: 150, Width: 100, Thickness: 10}

	props := Compute(ShapeAngle, dims, nil, 0)

	// Hand composite: legs 10×150 at (75, 5) and 90×10 at (5, 55)
	assert.InDelta(t, 2400, props.Area, 1e-9)
	assert.InDelta(t, 48.75, props.Centroid.Y, 1e-9)
	assert.InDelta(t, 23.75, props.Centroid.Z, 1e-9)
	assert.InDelta(t, -1968750, props.MomentInertia.Izy, 1e-6)

	// Asymmetric: principal axes tilt strictly between 0° and 90°
	assert.Greater(t, props.PrincipalMoments.Angle, 0.0)
	assert.Less(t, props.PrincipalMoments.Angle, 90.0)

	// Trace invariance
	assert.InEpsilon(t,
		props.MomentInertia.Iz+props.MomentInertia.Iy,
		props.PrincipalMoments.I1+props.PrincipalMoments.I2,
		1e-12)
}

func TestAngle_AnalyticMatchesNumericPipeline(t *testing.T) {
	dims := Dimensions{Depth: 150, Width: 100, Thickness: 10}

	analytic := Compute(ShapeAngle, dims, nil, 0)
	numeric := AnalyzeParts(angleParts(dims), 0).Properties

	// The leg boundary falls between scan lines for these dimensions, so
	// the numeric result carries a slice's worth of discretization error
	assert.InEpsilon(t, analytic.Area, numeric.Area, 2e-3)
	assert.InDelta(t, analytic.Centroid.Y, numeric.Centroid.Y, 0.1)
	assert.InDelta(t, analytic.Centroid.Z, numeric.Centroid.Z, 0.1)
	assert.InEpsilon(t, analytic.MomentInertia.Iz, numeric.MomentInertia.Iz, 0.01)
	assert.InEpsilon(t, analytic.MomentInertia.Iy, numeric.MomentInertia.Iy, 0.01)
	// Sign and magnitude of the product of inertia survive the numeric
	// path, including the y-down to y-up flip
	assert.InEpsilon(t, analytic.MomentInertia.Izy, numeric.MomentInertia.Izy, 0.01)
	assert.InDelta(t, analytic.PrincipalMoments.Angle, numeric.PrincipalMoments.Angle, 0.5)
}

func TestFamilies_RegistryIsComplete(t *testing.T) {
	kinds := []ShapeKind{
		ShapeRectangle, ShapeHollowRectangle, ShapeCircle,
		ShapeIBeam, ShapeTee, ShapeChannel, ShapeAngle, ShapeCustom,
	}
	require.Len(t, Families(), len(kinds))

	for _, kind := range kinds {
		fam, ok := FamilyFor(kind)
		require.True(t, ok, "missing family %s", kind)
		assert.Equal(t, kind, fam.Kind)
		if kind != ShapeCustom {
			assert.NotEmpty(t, fam.Fields)
			assert.NotNil(t, fam.ToParts(fam.Defaults))
			assert.Positive(t, fam.Calculate(fam.Defaults).Area)
		}
	}
}

func TestFamilies_NonPositiveDimensionsYieldZerosNotNaN(t *testing.T) {
	for _, fam := range Families() {
		props := fam.Calculate(Dimensions{})
		assert.False(t, math.IsNaN(props.Area), "%s area", fam.Kind)
		assert.False(t, math.IsNaN(props.RadiusGyration.Rz), "%s rz", fam.Kind)
		assert.False(t, math.IsNaN(props.SectionModulus.Szt), "%s szt", fam.Kind)
		assert.Zero(t, props.Area, "%s area", fam.Kind)
	}
}
