package plate

import (
	"sync"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/stl"
)

// Solid is a built plate: the triangle mesh used for display and export,
// plus a signed distance twin used for point queries. The twin is only
// built on the first query.
type Solid struct {
	Dimensions Dimensions
	Model      *stl.Model

	holeRing []geometry.Vector3

	params    shapeParams
	shapeOnce sync.Once
	shape     sdf.SDF3
}

type shapeParams struct {
	length, width, thickness, holeRadius, round float64
}

// BoundingBox returns the extent of the mesh
func (s *Solid) BoundingBox() geometry.BoundingBox {
	return s.Model.BoundingBox()
}

// TriangleCount returns the number of mesh triangles
func (s *Solid) TriangleCount() int {
	return s.Model.TriangleCount()
}

// HasHole reports whether the plate was built with a hole
func (s *Solid) HasHole() bool {
	return len(s.holeRing) > 0
}

// HoleLoop returns the hole boundary at mid thickness
func (s *Solid) HoleLoop() []geometry.Vector3 {
	return s.holeRing
}

// Contains reports whether p lies inside the material
func (s *Solid) Contains(p geometry.Vector3) bool {
	shape := s.Shape()
	if shape == nil {
		return false
	}
	return shape.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}) <= 0
}

// Shape returns the signed distance representation of the plate, or nil
// when the plate has no volume
func (s *Solid) Shape() sdf.SDF3 {
	s.shapeOnce.Do(func() {
		p := s.params
		s.shape = buildShape(p.length, p.width, p.thickness, p.holeRadius, p.round)
	})
	return s.shape
}

// buildShape mirrors the mesh as an SDF: a rectangle minus a circle,
// extruded symmetrically with rounded edges where the thickness allows
func buildShape(length, width, thickness, holeRadius, round float64) sdf.SDF3 {
	if length <= 0 || width <= 0 || thickness <= 0 {
		return nil
	}

	profile := sdf.Box2D(v2.Vec{X: length, Y: width}, 0)
	if holeRadius > 0 {
		hole, err := sdf.Circle2D(holeRadius)
		if err == nil {
			profile = sdf.Difference2D(profile, hole)
		}
	}

	if round > 0 {
		if shape, err := sdf.ExtrudeRounded3D(profile, thickness, round); err == nil {
			return shape
		}
	}

	return sdf.Extrude3D(profile, thickness)
}
