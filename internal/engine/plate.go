package engine

import (
	"image/color"

	"github.com/philipparndt/plateview/pkg/plate"
)

// SetPlate replaces the displayed plate with one built from d. The new
// plate keeps the current color and wireframe mode.
func (e *Engine) SetPlate(d plate.Dimensions) {
	if e.tornDown {
		return
	}

	solid := plate.Build(d)

	if e.plate != nil {
		e.scene.Remove(e.plate)
	}

	e.plate = &Plate{
		Solid: solid,
		Material: Material{
			Color:     e.color,
			Opacity:   PlateOpacity,
			Wireframe: e.wireframe,
		},
		CastShadow:    true,
		ReceiveShadow: true,
	}
	e.scene.Add(e.plate)

	e.refreshAxes()

	e.log.Debug().
		Stringer("dimensions", d).
		Int("triangles", solid.TriangleCount()).
		Bool("fits", d.HoleFits()).
		Msg("plate rebuilt")
}

// refreshAxes re-adds the axes helper so it stays the last object
func (e *Engine) refreshAxes() {
	if existing := e.scene.ObjectByName(AxesName); existing != nil {
		e.scene.Remove(existing)
	}
	e.scene.Add(NewAxesHelper(AxesLength))
}

// SetMaterialColor recolors the current plate. Geometry is untouched.
func (e *Engine) SetMaterialColor(name string) {
	if e.tornDown {
		return
	}

	e.color = MaterialColor(name)
	if e.plate != nil {
		e.plate.Material.Color = e.color
	}

	e.log.Debug().Str("material", name).Msg("material color changed")
}

// Plate returns the displayed plate, or nil
func (e *Engine) Plate() *Plate {
	return e.plate
}

// Dimensions returns the dimensions of the displayed plate
func (e *Engine) Dimensions() plate.Dimensions {
	if e.plate == nil {
		return plate.Dimensions{}
	}
	return e.plate.Solid.Dimensions
}

// Color returns the current plate color
func (e *Engine) Color() color.RGBA {
	return e.color
}
