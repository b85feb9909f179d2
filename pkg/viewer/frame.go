package viewer

import (
	"image/color"

	"github.com/philipparndt/plateview/pkg/geometry"
)

// LightKind selects how a light contributes to shading
type LightKind int

const (
	AmbientLight LightKind = iota
	DirectionalLight
	PointLight
)

// Light is one light source of a frame. Directional lights shine from
// Position toward the origin.
type Light struct {
	Kind      LightKind
	Color     color.RGBA
	Intensity float64
	Position  geometry.Vector3
}

// MeshDraw is a triangle mesh with a flat Lambert material
type MeshDraw struct {
	Triangles []geometry.Triangle
	Color     color.RGBA
	Opacity   float64
	Wireframe bool
}

// LineDraw is an unlit line segment
type LineDraw struct {
	From  geometry.Vector3
	To    geometry.Vector3
	Color color.RGBA
}

// LabelDraw is text anchored at a 3D point
type LabelDraw struct {
	At    geometry.Vector3
	Text  string
	Color color.RGBA
}

// Frame is everything drawn for one image. Lines are drawn before meshes
// so translucent meshes blend over them.
type Frame struct {
	Background color.RGBA
	Lights     []Light
	Lines      []LineDraw
	Meshes     []MeshDraw
	Labels     []LabelDraw
	Overlay    []string
}

// Hex converts a 0xRRGGBB value to an opaque color
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}
