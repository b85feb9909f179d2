package viewer

import (
	"math"

	"github.com/philipparndt/plateview/pkg/geometry"
)

// Camera is a perspective camera looking from Position at Target
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Aspect   float64 // Width over height, 0 means use the viewport
	Near     float64
	Far      float64
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z
func NewPerspectiveCamera(fovDegrees, aspect, near, far float64) *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 0, 0),
		Target:   geometry.NewVector3(0, 0, -1),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      fovDegrees * math.Pi / 180,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// SetPosition moves the camera without changing what it looks at
func (c *Camera) SetPosition(x, y, z float64) {
	c.Position = geometry.NewVector3(x, y, z)
}

// LookAt points the camera at target
func (c *Camera) LookAt(target geometry.Vector3) {
	c.Target = target
}

// Basis returns the right, up and forward unit vectors of the view
func (c *Camera) Basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// ToView transforms a world point into camera space, with z measured
// along the view direction
func (c *Camera) ToView(point geometry.Vector3) geometry.Vector3 {
	return c.view().apply(point)
}

// viewBasis caches the camera frame for transforming many points
type viewBasis struct {
	origin, right, up, forward geometry.Vector3
}

func (c *Camera) view() viewBasis {
	right, up, forward := c.Basis()
	return viewBasis{origin: c.Position, right: right, up: up, forward: forward}
}

func (b viewBasis) apply(point geometry.Vector3) geometry.Vector3 {
	relative := point.Sub(b.origin)
	return geometry.NewVector3(relative.Dot(b.right), relative.Dot(b.up), relative.Dot(b.forward))
}

// ProjectView maps a camera space point to screen coordinates
func (c *Camera) ProjectView(view geometry.Vector3, width, height float64) (float64, float64) {
	z := view.Z
	if z <= 0.01 {
		z = 0.01
	}

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = width / height
	}
	fovScale := math.Tan(c.FOV / 2)

	screenX := (view.X/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-view.Y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY
}

// Project projects a 3D point to 2D screen coordinates and view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	view := c.ToView(point)
	x, y := c.ProjectView(view, width, height)
	return x, y, view.Z
}

// Visible reports whether a view depth lies between the clip planes
func (c *Camera) Visible(depth float64) bool {
	return depth >= c.Near && depth <= c.Far
}
