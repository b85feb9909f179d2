package engine

import (
	"image/color"

	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/viewer"
)

// Names of the fixed scene objects
const (
	AxesName  = "axes"
	PlateName = "plate"
)

const (
	// AxesLength is the length of each axis line in millimeters
	AxesLength = 75.0
	// PlateOpacity is the opacity of the plate material
	PlateOpacity = 0.9
)

// BackgroundColor is the clear color of every frame
var BackgroundColor = viewer.Hex(0xf0f0f0)

// Object is anything that can be attached to a Scene
type Object interface {
	Name() string
}

// Scene holds the attached objects in insertion order
type Scene struct {
	Background color.RGBA
	children   []Object
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{Background: BackgroundColor}
}

// Add attaches an object at the end of the scene
func (s *Scene) Add(o Object) {
	s.children = append(s.children, o)
}

// Remove detaches an object. It reports whether the object was attached.
func (s *Scene) Remove(o Object) bool {
	for i, child := range s.children {
		if child == o {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return true
		}
	}
	return false
}

// ObjectByName returns the first object with the given name, or nil
func (s *Scene) ObjectByName(name string) Object {
	for _, child := range s.children {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

// Children returns a copy of the attached objects
func (s *Scene) Children() []Object {
	out := make([]Object, len(s.children))
	copy(out, s.children)
	return out
}

// Plates returns the attached plates
func (s *Scene) Plates() []*Plate {
	var plates []*Plate
	for _, child := range s.children {
		if p, ok := child.(*Plate); ok {
			plates = append(plates, p)
		}
	}
	return plates
}

func (s *Scene) clear() {
	s.children = nil
}

// Material is the display material of a plate
type Material struct {
	Color     color.RGBA
	Opacity   float64
	Wireframe bool
}

// Plate is the displayed solid
type Plate struct {
	Solid         *plate.Solid
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

func (p *Plate) Name() string { return PlateName }

func (p *Plate) draw() viewer.MeshDraw {
	return viewer.MeshDraw{
		Triangles: p.Solid.Model.Triangles,
		Color:     p.Material.Color,
		Opacity:   p.Material.Opacity,
		Wireframe: p.Material.Wireframe,
	}
}

// AxesHelper shows the coordinate axes as colored lines from the origin
type AxesHelper struct {
	Length float64
}

func NewAxesHelper(length float64) *AxesHelper {
	return &AxesHelper{Length: length}
}

func (a *AxesHelper) Name() string { return AxesName }

var (
	axisX = viewer.Hex(0xff0000)
	axisY = viewer.Hex(0x00ff00)
	axisZ = viewer.Hex(0x0000ff)
)

func (a *AxesHelper) lines() []viewer.LineDraw {
	origin := geometry.Vector3{}
	return []viewer.LineDraw{
		{From: origin, To: geometry.NewVector3(a.Length, 0, 0), Color: axisX},
		{From: origin, To: geometry.NewVector3(0, a.Length, 0), Color: axisY},
		{From: origin, To: geometry.NewVector3(0, 0, a.Length), Color: axisZ},
	}
}

func (a *AxesHelper) labels() []viewer.LabelDraw {
	tip := a.Length * 1.08
	return []viewer.LabelDraw{
		{At: geometry.NewVector3(tip, 0, 0), Text: "X", Color: axisX},
		{At: geometry.NewVector3(0, tip, 0), Text: "Y", Color: axisY},
		{At: geometry.NewVector3(0, 0, tip), Text: "Z", Color: axisZ},
	}
}

// Light is a scene light
type Light struct {
	viewer.Light
	CastShadow bool
	name       string
}

func (l *Light) Name() string { return l.name }

// lightRig returns the fixed lights: soft ambient, a shadow casting key
// light and a point fill light
func lightRig() []*Light {
	return []*Light{
		{
			name:  "ambient",
			Light: viewer.Light{Kind: viewer.AmbientLight, Color: viewer.Hex(0x404040), Intensity: 0.6},
		},
		{
			name: "directional",
			Light: viewer.Light{
				Kind:      viewer.DirectionalLight,
				Color:     viewer.Hex(0xffffff),
				Intensity: 0.8,
				Position:  geometry.NewVector3(100, 100, 50),
			},
			CastShadow: true,
		},
		{
			name: "point",
			Light: viewer.Light{
				Kind:      viewer.PointLight,
				Color:     viewer.Hex(0xffffff),
				Intensity: 0.5,
				Position:  geometry.NewVector3(-50, 50, 50),
			},
		},
	}
}

// frame collects the draw list of the scene in attachment order
func (s *Scene) frame() *viewer.Frame {
	f := &viewer.Frame{Background: s.Background}

	for _, child := range s.children {
		switch o := child.(type) {
		case *Light:
			f.Lights = append(f.Lights, o.Light)
		case *AxesHelper:
			f.Lines = append(f.Lines, o.lines()...)
			f.Labels = append(f.Labels, o.labels()...)
		case *Plate:
			f.Meshes = append(f.Meshes, o.draw())
		}
	}

	return f
}
