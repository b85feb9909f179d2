package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePlate(t *testing.T) {
	d := plate.DefaultDimensions()
	result := AnalyzeModel(plate.Build(d).Model)

	assert.InDelta(t, 100, result.Dimensions.X, 1e-9)
	assert.InDelta(t, 50, result.Dimensions.Y, 1e-9)
	assert.InDelta(t, 5, result.Dimensions.Z, 1e-9)
	assert.InDelta(t, 25000, result.BoundsVolume, 1e-6)
	assert.Less(t, result.Volume, result.BoundsVolume)
	assert.Greater(t, result.Volume, 0.0)
	assert.Greater(t, result.EdgeCount, result.TriangleCount)
	assert.LessOrEqual(t, result.MinEdgeLength, result.AvgEdgeLength)
	assert.LessOrEqual(t, result.AvgEdgeLength, result.MaxEdgeLength)
}

func TestAnalyzeEmptyModel(t *testing.T) {
	result := AnalyzeModel(stl.NewModel("empty"))
	assert.Equal(t, 0, result.TriangleCount)
	assert.Equal(t, 0, result.EdgeCount)
	assert.Equal(t, geometry.Vector3{}, result.Dimensions)
}

func TestEdgesAreCountedOnce(t *testing.T) {
	m := stl.NewModel("quad")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(1, 1, 0)
	d := geometry.NewVector3(0, 1, 0)
	m.AddFacet(a, b, c)
	m.AddFacet(a, c, d)

	result := AnalyzeModel(m)
	assert.Equal(t, 5, result.EdgeCount)
	assert.InDelta(t, 1, result.MinEdgeLength, 1e-12)
	assert.InDelta(t, math.Sqrt2, result.MaxEdgeLength, 1e-12)
}

func TestMeasureHole(t *testing.T) {
	hole, err := MeasureHole(plate.Build(plate.Dimensions{Length: 60, Width: 40, Thickness: 3, HoleDiameter: 12}))
	require.NoError(t, err)
	require.NotNil(t, hole)
	assert.InDelta(t, 12, hole.Diameter, 1e-6)
	assert.InDelta(t, 0, hole.Center.X, 1e-6)
	assert.InDelta(t, 0, hole.Center.Y, 1e-6)
	assert.True(t, hole.Through)

	hole, err = MeasureHole(plate.Build(plate.Dimensions{Length: 60, Width: 40, Thickness: 3}))
	assert.NoError(t, err)
	assert.Nil(t, hole)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.500 mm", FormatMeasurement(12.5, ""))
	assert.Equal(t, "1.000 mm²", FormatMeasurement(1, "mm²"))
	assert.Equal(t, "(1.000, -2.000, 0.500)", FormatVector(geometry.NewVector3(1, -2, 0.5)))
}
