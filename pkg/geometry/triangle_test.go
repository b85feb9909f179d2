package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestNewFacetNormalFollowsWinding(t *testing.T) {
	ccw := NewFacet(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if ccw.Normal != NewVector3(0, 0, 1) {
		t.Errorf("NewFacet failed: expected +Z normal, got %v", ccw.Normal)
	}

	cw := NewFacet(NewVector3(0, 0, 0), NewVector3(0, 1, 0), NewVector3(1, 0, 0))
	if cw.Normal != NewVector3(0, 0, -1) {
		t.Errorf("NewFacet failed: expected -Z normal, got %v", cw.Normal)
	}
}

func TestTriangleIsDegenerate(t *testing.T) {
	line := NewFacet(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(2, 0, 0))
	if !line.IsDegenerate() {
		t.Errorf("IsDegenerate failed: collinear triangle not reported")
	}

	tri := NewFacet(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if tri.IsDegenerate() {
		t.Errorf("IsDegenerate failed: regular triangle reported as degenerate")
	}
}

func TestSignedVolumeOfUnitCube(t *testing.T) {
	// Two outward-facing triangles per face of the unit cube
	p := func(x, y, z float64) Vector3 { return NewVector3(x, y, z) }
	quads := [][4]Vector3{
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)}, // bottom
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)}, // top
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)}, // front
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)}, // back
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)}, // left
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)}, // right
	}

	volume := 0.0
	for _, q := range quads {
		volume += NewFacet(q[0], q[1], q[2]).SignedVolume()
		volume += NewFacet(q[0], q[2], q[3]).SignedVolume()
	}

	if math.Abs(volume-1.0) > 1e-10 {
		t.Errorf("SignedVolume failed: expected 1, got %v", volume)
	}
}
