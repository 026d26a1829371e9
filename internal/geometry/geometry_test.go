package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumcircle_ThreePointsOnKnownCircle(t *testing.T) {
	// Points on the circle centered at (1, 2) with radius 5
	center, radius, ok := Circumcircle(
		Point{X: 6, Y: 2},
		Point{X: 1, Y: 7},
		Point{X: -4, Y: 2},
	)

	require.True(t, ok)
	assert.InDelta(t, 1, center.X, 1e-9)
	assert.InDelta(t, 2, center.Y, 1e-9)
	assert.InDelta(t, 5, radius, 1e-9)
}

func TestCircumcircle_CollinearPointsHaveNoSolution(t *testing.T) {
	_, _, ok := Circumcircle(
		Point{X: 0, Y: 0},
		Point{X: 1, Y: 1},
		Point{X: 5, Y: 5},
	)
	assert.False(t, ok)
}

func TestDiscretizeArc_SemicirclePassesThroughControl(t *testing.T) {
	p1 := Point{X: -1, Y: 0}
	control := Point{X: 0, Y: 1}
	p2 := Point{X: 1, Y: 0}

	pts := DiscretizeArc(p1, control, p2, 8)
	require.Len(t, pts, 9)

	// Endpoints are pinned exactly
	assert.Equal(t, p1, pts[0])
	assert.Equal(t, p2, pts[8])

	// Every sample sits on the unit circle, and the midpoint is the
	// control point's side of the chord
	for _, p := range pts {
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-9)
	}
	assert.InDelta(t, 0, pts[4].X, 1e-9)
	assert.InDelta(t, 1, pts[4].Y, 1e-9)
}

func TestDiscretizeArc_ReflexSweepStaysOnControlSide(t *testing.T) {
	// Three-quarter arc of the unit circle: start at (1,0), through the
	// top, ending at the bottom. The short way would go clockwise; the
	// control point forces the long counterclockwise sweep
	p1 := Point{X: 1, Y: 0}
	control := Point{X: 0, Y: 1}
	p2 := Point{X: 0, Y: -1}

	pts := DiscretizeArc(p1, control, p2, 12)
	require.Len(t, pts, 13)

	for _, p := range pts {
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-9)
	}
	// A third of the way along a 270° sweep is 90°: the control point
	assert.InDelta(t, 0, pts[4].X, 1e-9)
	assert.InDelta(t, 1, pts[4].Y, 1e-9)
	// The sweep continues left, not back down toward the chord
	assert.Less(t, pts[8].X, 0.0)
}

func TestDiscretizeArc_CollinearFallsBackToStraightSegment(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 10, Y: 0}
	pts := DiscretizeArc(p1, Point{X: 5, Y: 0}, p2, 16)

	assert.Equal(t, []Point{p1, p2}, pts)
}

func TestRotate_QuarterAndFullTurn(t *testing.T) {
	p := Point{X: 1, Y: 0}

	q := p.Rotate(90)
	assert.InDelta(t, 0, q.X, 1e-12)
	assert.InDelta(t, 1, q.Y, 1e-12)

	full := p.Rotate(360)
	assert.InDelta(t, p.X, full.X, 1e-12)
	assert.InDelta(t, p.Y, full.Y, 1e-12)
}

func TestRotate_ThereAndBackIsIdentity(t *testing.T) {
	p := Point{X: 3.7, Y: -2.1}
	q := p.Rotate(33.3).Rotate(-33.3)
	assert.InDelta(t, p.X, q.X, 1e-12)
	assert.InDelta(t, p.Y, q.Y, 1e-12)
}

func TestClosestPointOnSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	tests := []struct {
		name     string
		cursor   Point
		want     Point
		wantDist float64
	}{
		{"projects inside the segment", Point{X: 4, Y: 3}, Point{X: 4, Y: 0}, 3},
		{"clamps before the start", Point{X: -5, Y: 0}, Point{X: 0, Y: 0}, 5},
		{"clamps past the end", Point{X: 13, Y: 4}, Point{X: 10, Y: 0}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, dist := ClosestPointOnSegment(a, b, tc.cursor)
			assert.InDelta(t, tc.want.X, got.X, 1e-12)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tc.wantDist, dist, 1e-12)
		})
	}
}

func TestClosestPointOnSegment_DegenerateSegment(t *testing.T) {
	a := Point{X: 2, Y: 2}
	got, dist := ClosestPointOnSegment(a, a, Point{X: 5, Y: 6})
	assert.Equal(t, a, got)
	assert.InDelta(t, 5, dist, 1e-12)
}
