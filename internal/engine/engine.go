// Package engine owns the preview scene of a plate: its geometry, the
// camera and orbit controls, and the frame loop that draws it.
package engine

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/viewer"
	"github.com/rs/zerolog"
)

// Camera defaults
const (
	CameraFOV  = 75.0
	CameraNear = 0.1
	CameraFar  = 1000.0
)

// DefaultCameraPosition is where the camera starts and returns on reset
var DefaultCameraPosition = geometry.NewVector3(150, 100, 150)

var (
	// ErrLoopStarted is returned by Start when the loop already runs
	ErrLoopStarted = errors.New("render loop already started")
	// ErrTornDown is returned when the engine was torn down
	ErrTornDown = errors.New("engine torn down")
)

// Surface receives every rendered frame. The image is only valid until
// Present returns.
type Surface interface {
	Present(frame *image.RGBA)
}

// Options configure a new engine
type Options struct {
	Width  int
	Height int

	// FPS is the expected frame rate, used to step the orbit damping
	FPS int
	// Damping is the orbit spring frequency, 0 disables damping
	Damping float64

	// Dimensions of the initial plate, defaults when zero
	Dimensions plate.Dimensions
	// Material selects the initial plate color, fallback gray when empty
	Material string

	// Overlay draws the dimensions in the top left corner
	Overlay bool

	Surface Surface
	Logger  zerolog.Logger
}

// Engine is one preview instance. It is not safe for concurrent use:
// every method must run on the goroutine that drives the Scheduler.
type Engine struct {
	log zerolog.Logger

	scene    *Scene
	camera   *viewer.Camera
	controls *viewer.OrbitControls
	renderer *viewer.Renderer
	surface  Surface
	overlay  bool

	plate     *Plate
	color     color.RGBA
	wireframe bool

	scheduler Scheduler
	started   bool
	tornDown  bool
	frames    uint64
}

// Create builds the scene, camera, lights and the initial plate
func Create(opts Options) (*Engine, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Dimensions == (plate.Dimensions{}) {
		opts.Dimensions = plate.DefaultDimensions()
	}

	camera := viewer.NewPerspectiveCamera(CameraFOV, float64(opts.Width)/float64(opts.Height), CameraNear, CameraFar)
	camera.Position = DefaultCameraPosition
	camera.LookAt(geometry.Vector3{})

	e := &Engine{
		log:      opts.Logger,
		scene:    NewScene(),
		camera:   camera,
		controls: viewer.NewOrbitControls(camera, opts.FPS, opts.Damping),
		renderer: viewer.NewRenderer(opts.Width, opts.Height),
		surface:  opts.Surface,
		overlay:  opts.Overlay,
		color:    FallbackColor,
	}
	if opts.Material != "" {
		e.color = MaterialColor(opts.Material)
	}

	for _, light := range lightRig() {
		e.scene.Add(light)
	}

	e.SetPlate(opts.Dimensions)

	e.log.Info().
		Int("width", opts.Width).
		Int("height", opts.Height).
		Int("fps", opts.FPS).
		Msg("engine created")

	return e, nil
}

// Teardown detaches everything and stops the frame loop after the
// pending tick. Later calls on the engine do nothing.
func (e *Engine) Teardown() {
	if e.tornDown {
		return
	}
	e.tornDown = true
	e.scene.clear()
	e.plate = nil
	e.scheduler = nil

	e.log.Info().Uint64("frames", e.frames).Msg("engine torn down")
}

// TornDown reports whether Teardown was called
func (e *Engine) TornDown() bool {
	return e.tornDown
}

// Scene returns the scene graph
func (e *Engine) Scene() *Scene {
	return e.scene
}

// Camera returns the view camera
func (e *Engine) Camera() *viewer.Camera {
	return e.camera
}

// Controls returns the orbit controls driving the camera
func (e *Engine) Controls() *viewer.OrbitControls {
	return e.controls
}

// Renderer returns the frame renderer
func (e *Engine) Renderer() *viewer.Renderer {
	return e.renderer
}

// Frames returns the number of frames presented so far
func (e *Engine) Frames() uint64 {
	return e.frames
}
