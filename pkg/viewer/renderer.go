package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/plateview/pkg/geometry"
	"golang.org/x/image/font"
)

const (
	edgeBias      = 0.05
	overlayMargin = 8
	overlayLine   = 16
)

var overlayColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}

// Stats counts what the last Render call drew
type Stats struct {
	Triangles int
	Culled    int
	Lines     int
}

// Renderer draws frames into an RGBA image on the CPU
type Renderer struct {
	canvas *canvas
	face   font.Face
	stats  Stats
}

// NewRenderer creates a renderer for the given output size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		canvas: newCanvas(max(width, 1), max(height, 1)),
		face:   newLabelFace(labelSize),
	}
}

// Size returns the output size in pixels
func (r *Renderer) Size() (int, int) {
	return r.canvas.width, r.canvas.height
}

// SetSize reallocates the buffers. It returns false when the size is
// unchanged or not positive.
func (r *Renderer) SetSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == r.canvas.width && height == r.canvas.height {
		return false
	}
	r.canvas = newCanvas(width, height)
	return true
}

// Stats returns the counters of the last frame
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render draws the frame as seen by the camera. The returned image is
// reused by the next call.
func (r *Renderer) Render(frame *Frame, cam *Camera) *image.RGBA {
	r.stats = Stats{}
	r.canvas.clear(frame.Background)

	view := cam.view()

	for _, line := range frame.Lines {
		r.drawLine(view, cam, line.From, line.To, line.Color, 1, 0)
	}

	for _, mesh := range frame.Meshes {
		if mesh.Wireframe {
			r.drawWireframe(view, cam, mesh, frame.Lights)
		} else {
			r.drawSolid(view, cam, mesh, frame.Lights)
		}
	}

	for _, label := range frame.Labels {
		r.drawLabel(view, cam, label)
	}

	for i, text := range frame.Overlay {
		drawText(r.canvas.img, r.face, overlayMargin, overlayMargin+(i+1)*overlayLine, text, overlayColor)
	}

	return r.canvas.img
}

func (r *Renderer) project(cam *Camera, v geometry.Vector3) screenVertex {
	x, y := cam.ProjectView(v, float64(r.canvas.width), float64(r.canvas.height))
	return screenVertex{x: x, y: y, z: v.Z}
}

func (r *Renderer) drawSolid(view viewBasis, cam *Camera, mesh MeshDraw, lights []Light) {
	alpha := opacity(mesh.Opacity)

	for _, tri := range mesh.Triangles {
		normal := faceNormal(tri)
		center := tri.Center()

		// Back-face culling
		if normal.Dot(center.Sub(cam.Position)) >= 0 {
			r.stats.Culled++
			continue
		}

		a, b, c := view.apply(tri.V1), view.apply(tri.V2), view.apply(tri.V3)
		if a.Z > cam.Far && b.Z > cam.Far && c.Z > cam.Far {
			r.stats.Culled++
			continue
		}

		poly, n := clipTriangleNear([3]geometry.Vector3{a, b, c}, cam.Near)
		if n < 3 {
			r.stats.Culled++
			continue
		}

		col := shade(mesh.Color, normal, center, lights)
		p0 := r.project(cam, poly[0])
		for i := 1; i+1 < n; i++ {
			r.canvas.fillTriangle([3]screenVertex{p0, r.project(cam, poly[i]), r.project(cam, poly[i+1])}, col, alpha)
		}
		r.stats.Triangles++
	}
}

// clipTriangleNear keeps the part of a view space triangle in front of the
// near plane (Sutherland-Hodgman against one plane). The result is a convex
// polygon of n vertices in the original winding, where n is 0, 3 or 4.
func clipTriangleNear(tri [3]geometry.Vector3, near float64) ([4]geometry.Vector3, int) {
	var out [4]geometry.Vector3
	n := 0

	for i := 0; i < 3; i++ {
		cur, next := tri[i], tri[(i+1)%3]
		curIn, nextIn := cur.Z >= near, next.Z >= near

		if curIn {
			out[n] = cur
			n++
		}
		if curIn != nextIn {
			out[n] = cur.Lerp(next, (near-cur.Z)/(next.Z-cur.Z))
			n++
		}
	}
	return out, n
}

type edgeKey struct {
	a, b geometry.Vector3
}

func newEdgeKey(a, b geometry.Vector3) edgeKey {
	if b.X < a.X || (b.X == a.X && (b.Y < a.Y || (b.Y == a.Y && b.Z < a.Z))) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// drawWireframe draws every distinct triangle edge once
func (r *Renderer) drawWireframe(view viewBasis, cam *Camera, mesh MeshDraw, lights []Light) {
	alpha := opacity(mesh.Opacity)
	seen := make(map[edgeKey]struct{}, len(mesh.Triangles)*2)

	for _, tri := range mesh.Triangles {
		col := shade(mesh.Color, faceNormal(tri), tri.Center(), lights)
		vertices := [3]geometry.Vector3{tri.V1, tri.V2, tri.V3}

		for i := 0; i < 3; i++ {
			key := newEdgeKey(vertices[i], vertices[(i+1)%3])
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			r.drawLine(view, cam, key.a, key.b, col, alpha, edgeBias)
		}
		r.stats.Triangles++
	}
}

func (r *Renderer) drawLine(view viewBasis, cam *Camera, from, to geometry.Vector3, col color.RGBA, alpha, bias float64) {
	a, b, ok := clipNear(view.apply(from), view.apply(to), cam.Near)
	if !ok {
		return
	}
	r.canvas.drawLine(r.project(cam, a), r.project(cam, b), col, alpha, bias)
	r.stats.Lines++
}

func (r *Renderer) drawLabel(view viewBasis, cam *Camera, label LabelDraw) {
	v := view.apply(label.At)
	if !cam.Visible(v.Z) {
		return
	}
	p := r.project(cam, v)
	w := textWidth(r.face, label.Text)
	drawText(r.canvas.img, r.face, int(p.x)-w/2, int(p.y)-4, label.Text, label.Color)
}

// clipNear cuts a view space segment at the near plane
func clipNear(a, b geometry.Vector3, near float64) (geometry.Vector3, geometry.Vector3, bool) {
	if a.Z < near && b.Z < near {
		return a, b, false
	}
	if a.Z < near {
		a = a.Lerp(b, (near-a.Z)/(b.Z-a.Z))
	}
	if b.Z < near {
		b = b.Lerp(a, (near-b.Z)/(a.Z-b.Z))
	}
	return a, b, true
}

func faceNormal(tri geometry.Triangle) geometry.Vector3 {
	if tri.Normal.Length() > 0 {
		return tri.Normal
	}
	return tri.CalculateNormal()
}

// shade applies Lambert lighting to a base color
func shade(base color.RGBA, normal, point geometry.Vector3, lights []Light) color.RGBA {
	var lr, lg, lb float64

	for _, light := range lights {
		factor := light.Intensity
		switch light.Kind {
		case DirectionalLight:
			factor *= math.Max(0, normal.Dot(light.Position.Normalize()))
		case PointLight:
			factor *= math.Max(0, normal.Dot(light.Position.Sub(point).Normalize()))
		}
		lr += factor * float64(light.Color.R) / 255
		lg += factor * float64(light.Color.G) / 255
		lb += factor * float64(light.Color.B) / 255
	}

	channel := func(c uint8, l float64) uint8 {
		return uint8(math.Min(255, math.Round(float64(c)*l)))
	}
	return color.RGBA{
		R: channel(base.R, lr),
		G: channel(base.G, lg),
		B: channel(base.B, lb),
		A: 255,
	}
}

func opacity(o float64) float64 {
	if o <= 0 || o > 1 {
		return 1
	}
	return o
}
