package renderer_test

import (
	"testing"

	"github.com/katalvlaran/axiscale/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_Horizontal(t *testing.T) {
	l := renderer.NewLinear(renderer.WithLength(500), renderer.WithOrigin(renderer.Point{X: 10, Y: 20}))
	assert.Equal(t, 500.0, l.AxisLength())
	assert.Equal(t, renderer.DefaultMinGridDistance, l.MinGridDistance())
	assert.Equal(t, 4, l.GridCount())

	assert.Equal(t, 125.0, l.PositionToCoordinate(0.25))
	assert.Equal(t, renderer.Point{X: 135, Y: 20}, l.PositionToPoint(0.25))
	assert.InDelta(t, 0.25, l.PointToPosition(renderer.Point{X: 135, Y: 999}), 1e-12)
}

func TestLinear_VerticalInversed(t *testing.T) {
	l := renderer.NewLinear(
		renderer.WithLength(200),
		renderer.WithOrientation(renderer.Vertical),
		renderer.WithInversed(true),
	)
	assert.True(t, l.Inversed())
	assert.Equal(t, renderer.Vertical, l.Orientation())

	// inverted: position 0 sits at the far end
	assert.Equal(t, 200.0, l.PositionToCoordinate(0))
	assert.Equal(t, renderer.Point{X: 0, Y: 0}, l.PositionToPoint(0))
	assert.Equal(t, renderer.Point{X: 0, Y: 200}, l.PositionToPoint(1))
	for _, p := range []float64{0, 0.1, 0.5, 0.93, 1} {
		assert.InDelta(t, p, l.PointToPosition(l.PositionToPoint(p)), 1e-12)
	}
}

func TestLinear_GridCountFloor(t *testing.T) {
	l := renderer.NewLinear(renderer.WithLength(30), renderer.WithMinGridDistance(100))
	assert.Equal(t, 1, l.GridCount())
}

func TestParseOrientation(t *testing.T) {
	o, err := renderer.ParseOrientation("v")
	require.NoError(t, err)
	assert.Equal(t, renderer.Vertical, o)
	assert.Equal(t, "vertical", o.String())

	_, err = renderer.ParseOrientation("diagonal")
	require.Error(t, err)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { renderer.WithLength(0) })
	assert.Panics(t, func() { renderer.WithMinGridDistance(-1) })
}
