// Package plate builds the mesh of a rectangular plate with a centered
// circular hole, extruded along Z and centered on the origin.
package plate

import "fmt"

// Dimensions are the plate parameters in millimeters
type Dimensions struct {
	Length       float64 `json:"length" toml:"length"`
	Width        float64 `json:"width" toml:"width"`
	Thickness    float64 `json:"thickness" toml:"thickness"`
	HoleDiameter float64 `json:"hole_diameter" toml:"hole_diameter"`
}

// DefaultDimensions returns the dimensions used when nothing else is known
func DefaultDimensions() Dimensions {
	return Dimensions{
		Length:       100,
		Width:        50,
		Thickness:    5,
		HoleDiameter: 10,
	}
}

// HoleRadius returns half the hole diameter, or 0 when there is no hole
func (d Dimensions) HoleRadius() float64 {
	if d.HoleDiameter <= 0 {
		return 0
	}
	return d.HoleDiameter / 2
}

// HoleFits reports whether the hole stays inside the outline.
// Oversized holes are still built; this is informational only.
func (d Dimensions) HoleFits() bool {
	return d.HoleDiameter < min(d.Length, d.Width)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%g × %g × %g mm, hole %g mm", d.Length, d.Width, d.Thickness, d.HoleDiameter)
}
