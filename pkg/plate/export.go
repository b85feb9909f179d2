package plate

import (
	"errors"

	"github.com/deadsy/sdfx/render"
	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/stl"
)

// DefaultMeshCells is the marching cubes resolution along the longest side
const DefaultMeshCells = 200

// ErrNoShape is returned when the plate has no volume to tessellate
var ErrNoShape = errors.New("plate has no volume")

// Tessellate samples the signed distance twin with marching cubes and
// returns the resulting smooth mesh
func (s *Solid) Tessellate(cells int) (*stl.Model, error) {
	shape := s.Shape()
	if shape == nil {
		return nil, ErrNoShape
	}
	if cells <= 0 {
		cells = DefaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(shape, renderer)

	model := stl.NewModel("plate")
	for _, tri := range triangles {
		model.AddFacet(
			geometry.NewVector3(tri[0].X, tri[0].Y, tri[0].Z),
			geometry.NewVector3(tri[1].X, tri[1].Y, tri[1].Z),
			geometry.NewVector3(tri[2].X, tri[2].Y, tri[2].Z),
		)
	}

	return model, nil
}
