package plate

import (
	"math"
	"testing"

	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertCenteredExtent(t *testing.T, s *Solid, d Dimensions) {
	t.Helper()

	bbox := s.BoundingBox()
	size := bbox.Size()
	center := bbox.Center()

	assert.InDelta(t, d.Length, size.X, tolerance, "length")
	assert.InDelta(t, d.Width, size.Y, tolerance, "width")
	assert.InDelta(t, d.Thickness, size.Z, tolerance, "thickness")
	assert.InDelta(t, 0, center.X, tolerance)
	assert.InDelta(t, 0, center.Y, tolerance)
	assert.InDelta(t, 0, center.Z, tolerance)
}

func TestBuildMatchesDimensions(t *testing.T) {
	cases := []Dimensions{
		DefaultDimensions(),
		{Length: 100, Width: 100, Thickness: 5, HoleDiameter: 20},
		{Length: 30, Width: 200, Thickness: 12, HoleDiameter: 29},
		{Length: 1, Width: 1, Thickness: 0.2, HoleDiameter: 0.5},
		{Length: 250.5, Width: 40.25, Thickness: 3.3, HoleDiameter: 0},
	}

	for _, d := range cases {
		t.Run(d.String(), func(t *testing.T) {
			s := Build(d)
			require.NotNil(t, s)
			require.Greater(t, s.TriangleCount(), 0)
			assertCenteredExtent(t, s, d)
		})
	}
}

func TestBuildIsClosedAndOutwardFacing(t *testing.T) {
	d := DefaultDimensions()
	s := Build(d)

	full := d.Length * d.Width * d.Thickness
	hole := math.Pi * d.HoleRadius() * d.HoleRadius() * d.Thickness
	volume := s.Model.Volume()

	assert.Greater(t, volume, 0.0)
	assert.Less(t, volume, full-hole)
	// The bevel only removes a thin rim
	assert.Greater(t, volume, 0.95*(full-hole))
}

func TestBuildWithoutHole(t *testing.T) {
	d := Dimensions{Length: 80, Width: 40, Thickness: 4, HoleDiameter: 0}
	s := Build(d)

	assert.False(t, s.HasHole())
	assert.Empty(t, s.HoleLoop())
	assert.True(t, s.Contains(geometry.NewVector3(0, 0, 0)))
	assertCenteredExtent(t, s, d)

	withHole := Build(Dimensions{Length: 80, Width: 40, Thickness: 4, HoleDiameter: 10})
	assert.Greater(t, s.Model.Volume(), withHole.Model.Volume())
	assert.Less(t, s.TriangleCount(), withHole.TriangleCount())
}

func TestBuildWithHoleHasVoid(t *testing.T) {
	s := Build(DefaultDimensions())

	assert.True(t, s.HasHole())
	assert.False(t, s.Contains(geometry.NewVector3(0, 0, 0)))
	assert.True(t, s.Contains(geometry.NewVector3(30, 0, 0)))
	assert.False(t, s.Contains(geometry.NewVector3(60, 0, 0)))
	assert.False(t, s.Contains(geometry.NewVector3(30, 0, 3)))
}

func TestBuildDefersSignedDistanceShape(t *testing.T) {
	s := Build(DefaultDimensions())
	assert.Nil(t, s.shape)

	assert.True(t, s.Contains(geometry.NewVector3(30, 0, 0)))
	require.NotNil(t, s.shape)

	first := s.Shape()
	assert.Same(t, first, s.Shape())
}

func TestHoleLoopHasNominalRadius(t *testing.T) {
	d := DefaultDimensions()
	s := Build(d)

	loop := s.HoleLoop()
	require.GreaterOrEqual(t, len(loop), HoleSegments)
	for _, p := range loop {
		assert.InDelta(t, d.HoleRadius(), math.Hypot(p.X, p.Y), tolerance)
		assert.InDelta(t, 0, p.Z, tolerance)
	}

	fit, err := geometry.FitCircleToPoints3D(loop, 2)
	require.NoError(t, err)
	assert.InDelta(t, d.HoleRadius(), fit.Radius, 1e-6)
}

func TestBuildAcceptsOversizedHole(t *testing.T) {
	cases := []Dimensions{
		{Length: 20, Width: 10, Thickness: 2, HoleDiameter: 10},
		{Length: 20, Width: 10, Thickness: 2, HoleDiameter: 40},
		{Length: 10, Width: 10, Thickness: 1, HoleDiameter: 100},
	}

	for _, d := range cases {
		t.Run(d.String(), func(t *testing.T) {
			assert.False(t, d.HoleFits())
			assert.NotPanics(t, func() {
				s := Build(d)
				assert.NotNil(t, s.Model)
			})
		})
	}
}

func TestBuildDegenerateInputDoesNotPanic(t *testing.T) {
	cases := []Dimensions{
		{},
		{Length: 0, Width: 10, Thickness: 1},
		{Length: 10, Width: 10, Thickness: 0, HoleDiameter: 2},
		{Length: -10, Width: 5, Thickness: 1, HoleDiameter: -3},
	}

	for _, d := range cases {
		assert.NotPanics(t, func() { Build(d) }, d.String())
	}

	s := Build(Dimensions{})
	assert.False(t, s.Contains(geometry.NewVector3(0, 0, 0)))
	_, err := s.Tessellate(10)
	assert.ErrorIs(t, err, ErrNoShape)
}

func TestSweepSamplesIncludeCorners(t *testing.T) {
	samples := sweepSamples(50, 25, HoleSegments)

	corners := 0
	for i, s := range samples {
		if math.Abs(math.Abs(s.outer[0])-50) < tolerance && math.Abs(math.Abs(s.outer[1])-25) < tolerance {
			corners++
		}
		if i > 0 {
			assert.Greater(t, s.angle, samples[i-1].angle)
		}
	}
	assert.Equal(t, 4, corners)
	assert.Len(t, samples, HoleSegments+4)
}

func TestSweepSamplesSquareSharesCornerAngles(t *testing.T) {
	// 45° is both a hole sample and a corner of a square
	samples := sweepSamples(10, 10, HoleSegments)
	assert.Len(t, samples, HoleSegments)
}

func TestBevelOffset(t *testing.T) {
	inset, dz := bevelOffset(0, BevelSize, BevelThickness)
	assert.InDelta(t, BevelSize, inset, tolerance)
	assert.InDelta(t, 0, dz, tolerance)

	inset, dz = bevelOffset(BevelSegments, BevelSize, BevelThickness)
	assert.InDelta(t, 0, inset, tolerance)
	assert.InDelta(t, BevelThickness, dz, tolerance)
}

func TestTessellateSmoothMesh(t *testing.T) {
	d := Dimensions{Length: 20, Width: 10, Thickness: 4, HoleDiameter: 4}
	s := Build(d)

	model, err := s.Tessellate(40)
	require.NoError(t, err)
	require.Greater(t, model.TriangleCount(), 0)

	size := model.BoundingBox().Size()
	assert.InDelta(t, d.Length, size.X, 2)
	assert.InDelta(t, d.Width, size.Y, 2)
	assert.InDelta(t, d.Thickness, size.Z, 2)
}
