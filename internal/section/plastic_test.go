package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlasticModuli_SolidRectangleMatchesClosedForm(t *testing.T) {
	// b=100, d=200: Zz = b·d²/4, Zy = d·b²/4
	rings := discretizeParts([]Part{rectPart(0, 0, 100, 200, true)})
	pnaY, pnaX, zz, zy := plasticModuli(rings)

	assert.InEpsilon(t, 100*200*200/4.0, zz, 1e-3)
	assert.InEpsilon(t, 200*100*100/4.0, zy, 1e-3)
	assert.InDelta(t, 100, pnaY, 0.2)
	assert.InDelta(t, 50, pnaX, 0.1)
}

func TestPlasticModuli_HollowRectangleMatchesClosedForm(t *testing.T) {
	// 200 wide × 300 deep, 10 thick: Zz = (b·d² − bi·di²)/4
	rings := discretizeParts([]Part{
		rectPart(0, 0, 200, 300, true),
		rectPart(10, 10, 180, 280, false),
	})
	_, _, zz, zy := plasticModuli(rings)

	// The wall boundaries land mid-slice for this step size, so allow a
	// slice's worth of error
	assert.InEpsilon(t, (200*300*300-180*280*280)/4.0, zz, 5e-3)
	assert.InEpsilon(t, (300*200*200-280*180*180)/4.0, zy, 5e-3)
}

func TestPlasticModuli_CircleConvergesToClosedForm(t *testing.T) {
	// Z = 4r³/3 for a solid circle; the 64-gon approximation lands
	// within a fraction of a percent
	rings := discretizeParts([]Part{{
		Type:   PartCircle,
		Solid:  true,
		Center: pt(100, 100),
		Radius: 60,
	}})
	_, _, zz, zy := plasticModuli(rings)

	want := 4.0 * 60 * 60 * 60 / 3
	assert.InEpsilon(t, want, zz, 0.01)
	assert.InEpsilon(t, want, zy, 0.01)
}

func TestPlasticModuli_EqualAreaAxisSplitsAsymmetricSection(t *testing.T) {
	// T-section: wide flange on top, narrow web below. The plastic
	// neutral axis must split the material into equal halves, which for
	// this geometry puts it inside the flange
	parts := teeParts(Dimensions{Depth: 250, Width: 200, FlangeThickness: 20, WebThickness: 10})
	rings := discretizeParts(parts)
	pnaY, _, _, _ := plasticModuli(rings)

	// Flange area 4000, web area 2300: half of 6300 sits 15.75 under
	// the top edge at flange width 200
	assert.InDelta(t, 15.75, pnaY, 0.2)

	// Material above and below the axis balances
	var above, below float64
	step := 250.0 / scanSteps
	for i := 0; i < scanSteps; i++ {
		y := (float64(i) + 0.5) * step
		var w float64
		for _, s := range materialSpansAtY(rings, y) {
			w += s.hi - s.lo
		}
		if y <= pnaY {
			above += w * step
		} else {
			below += w * step
		}
	}
	assert.InDelta(t, above, below, 6300*0.005)
}

func TestPlasticModuli_NoSolidsYieldsZeros(t *testing.T) {
	pnaY, pnaX, zz, zy := plasticModuli(nil)
	assert.Zero(t, pnaY)
	assert.Zero(t, pnaX)
	assert.Zero(t, zz)
	assert.Zero(t, zy)
}
