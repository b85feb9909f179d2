package viewer

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/philipparndt/plateview/pkg/geometry"
)

const (
	// DefaultRotateSpeed is the rotation in radians per dragged pixel
	DefaultRotateSpeed = 0.01
	// DefaultZoomSpeed scales scroll steps into log distance changes
	DefaultZoomSpeed = 0.001
	// DefaultPanSpeed is the pan per pixel relative to the view distance
	DefaultPanSpeed = 0.002
	// DefaultDampingFrequency is the spring angular frequency in rad/s
	DefaultDampingFrequency = 6.0

	minDistance   = 0.1
	maxElevation  = math.Pi/2 - 0.1
	settleEpsilon = 1e-4
)

// dampedAxis eases a single input axis toward its accumulated goal.
// step returns how far the value moved since the last step.
type dampedAxis struct {
	spring   harmonica.Spring
	damped   bool
	value    float64
	velocity float64
	goal     float64
}

func (a *dampedAxis) push(delta float64) {
	a.goal += delta
}

func (a *dampedAxis) step() float64 {
	prev := a.value

	if a.damped {
		a.value, a.velocity = a.spring.Update(a.value, a.velocity, a.goal)
	} else {
		a.value, a.velocity = a.goal, 0
	}

	if math.Abs(a.goal-a.value) < settleEpsilon && math.Abs(a.velocity) < settleEpsilon {
		delta := a.goal - prev
		a.value, a.velocity, a.goal = 0, 0, 0
		return delta
	}

	return a.value - prev
}

func (a *dampedAxis) settled() bool {
	return a.value == a.goal && a.velocity == 0
}

func (a *dampedAxis) clear() {
	a.value, a.velocity, a.goal = 0, 0, 0
}

// OrbitControls orbits a camera around a target point. Input is queued
// through Rotate, Zoom and Pan and applied by Update, once per frame.
type OrbitControls struct {
	Camera *Camera
	Target geometry.Vector3

	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64

	target0   geometry.Vector3
	position0 geometry.Vector3

	azimuth   dampedAxis
	elevation dampedAxis
	zoom      dampedAxis
	panX      dampedAxis
	panY      dampedAxis
}

// NewOrbitControls attaches controls to the camera and records its current
// pose as the reset pose. A damping frequency of 0 applies input at once.
func NewOrbitControls(camera *Camera, fps int, dampingFrequency float64) *OrbitControls {
	o := &OrbitControls{
		Camera:      camera,
		Target:      camera.Target,
		RotateSpeed: DefaultRotateSpeed,
		ZoomSpeed:   DefaultZoomSpeed,
		PanSpeed:    DefaultPanSpeed,
	}

	damped := dampingFrequency > 0 && fps > 0
	var spring harmonica.Spring
	if damped {
		// Critically damped, no overshoot
		spring = harmonica.NewSpring(harmonica.FPS(fps), dampingFrequency, 1.0)
	}
	for _, axis := range o.axes() {
		axis.spring = spring
		axis.damped = damped
	}

	o.SaveState()
	return o
}

func (o *OrbitControls) axes() []*dampedAxis {
	return []*dampedAxis{&o.azimuth, &o.elevation, &o.zoom, &o.panX, &o.panY}
}

// SaveState records the current camera pose as the reset pose
func (o *OrbitControls) SaveState() {
	o.target0 = o.Target
	o.position0 = o.Camera.Position
}

// Reset returns the camera to the saved pose and drops pending motion
func (o *OrbitControls) Reset() {
	o.Target = o.target0
	o.Camera.Position = o.position0
	o.Camera.LookAt(o.Target)
	for _, axis := range o.axes() {
		axis.clear()
	}
}

// Rotate queues an orbit by a pointer movement in pixels
func (o *OrbitControls) Rotate(dx, dy float64) {
	o.azimuth.push(dx * o.RotateSpeed)
	o.elevation.push(-dy * o.RotateSpeed)
}

// Zoom queues a dolly step. Positive values move the camera closer.
func (o *OrbitControls) Zoom(delta float64) {
	o.zoom.push(-delta * o.ZoomSpeed)
}

// Pan queues a target shift by a pointer movement in pixels
func (o *OrbitControls) Pan(dx, dy float64) {
	o.panX.push(-dx * o.PanSpeed)
	o.panY.push(dy * o.PanSpeed)
}

// Settled reports whether no motion is pending
func (o *OrbitControls) Settled() bool {
	for _, axis := range o.axes() {
		if !axis.settled() {
			return false
		}
	}
	return true
}

// Update advances pending motion by one frame and moves the camera.
// It returns false when nothing changed.
func (o *OrbitControls) Update() bool {
	if o.Settled() {
		return false
	}

	dAzimuth := o.azimuth.step()
	dElevation := o.elevation.step()
	dZoom := o.zoom.step()
	dPanX := o.panX.step()
	dPanY := o.panY.step()

	distance, elevation, azimuth := toSpherical(o.Camera.Position.Sub(o.Target))

	if dPanX != 0 || dPanY != 0 {
		right, up, _ := o.Camera.Basis()
		shift := right.Mul(dPanX * distance).Add(up.Mul(dPanY * distance))
		o.Target = o.Target.Add(shift)
	}

	azimuth += dAzimuth
	elevation = math.Max(-maxElevation, math.Min(maxElevation, elevation+dElevation))
	distance = math.Max(minDistance, distance*math.Exp(dZoom))

	o.Camera.Position = o.Target.Add(fromSpherical(distance, elevation, azimuth))
	o.Camera.LookAt(o.Target)

	return true
}

// toSpherical splits an offset into distance, elevation above the XZ
// plane and azimuth around Y measured from +Z
func toSpherical(offset geometry.Vector3) (distance, elevation, azimuth float64) {
	distance = offset.Length()
	if distance == 0 {
		return 0, 0, 0
	}
	elevation = math.Asin(math.Max(-1, math.Min(1, offset.Y/distance)))
	azimuth = math.Atan2(offset.X, offset.Z)
	return distance, elevation, azimuth
}

func fromSpherical(distance, elevation, azimuth float64) geometry.Vector3 {
	x := distance * math.Cos(elevation) * math.Sin(azimuth)
	y := distance * math.Sin(elevation)
	z := distance * math.Cos(elevation) * math.Cos(azimuth)
	return geometry.NewVector3(x, y, z)
}
