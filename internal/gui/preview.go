package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/plateview/internal/engine"
)

// Drag and scroll scale from fyne units to orbit input
const (
	dragScale   = 1.0
	scrollScale = 1.0
)

// Preview shows the engine frames and turns pointer input into orbit
// motion. It is the engine's Surface. A drag rotates, a drag started with
// Shift held or with the secondary button pans.
type Preview struct {
	widget.BaseWidget

	engine  *engine.Engine
	image   *canvas.Image
	buffer  *image.RGBA
	panning bool
}

// NewPreview creates an empty preview. Attach connects it to an engine.
func NewPreview() *Preview {
	p := &Preview{
		image: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScaleFastest
	p.ExtendBaseWidget(p)
	return p
}

// Attach sets the engine that receives pointer input and resizes
func (p *Preview) Attach(e *engine.Engine) {
	p.engine = e
	if size := p.Size(); size.Width > 0 && size.Height > 0 {
		e.OnResize(int(size.Width), int(size.Height))
	}
}

// Present copies frame into the displayed image
func (p *Preview) Present(frame *image.RGBA) {
	if p.buffer == nil || p.buffer.Rect != frame.Rect {
		p.buffer = image.NewRGBA(frame.Rect)
	}
	copy(p.buffer.Pix, frame.Pix)
	p.image.Image = p.buffer
	p.image.Refresh()
}

// Frame returns the last presented frame, nil before the first one
func (p *Preview) Frame() *image.RGBA {
	return p.buffer
}

// MouseDown picks the drag mode for the gesture that follows
func (p *Preview) MouseDown(event *desktop.MouseEvent) {
	p.panning = event.Button == desktop.MouseButtonSecondary ||
		event.Modifier&fyne.KeyModifierShift != 0
}

// MouseUp implements desktop.Mouseable
func (p *Preview) MouseUp(*desktop.MouseEvent) {
	p.panning = false
}

// Dragged rotates or pans the camera
func (p *Preview) Dragged(event *fyne.DragEvent) {
	if p.engine == nil {
		return
	}
	dx, dy := float64(event.Dragged.DX)*dragScale, float64(event.Dragged.DY)*dragScale
	if p.panning {
		p.engine.Pan(dx, dy)
		return
	}
	p.engine.Rotate(dx, dy)
}

// DragEnd implements fyne.Draggable
func (p *Preview) DragEnd() {
	p.panning = false
}

// Scrolled zooms the camera
func (p *Preview) Scrolled(event *fyne.ScrollEvent) {
	if p.engine != nil {
		p.engine.Zoom(float64(event.Scrolled.DY) * scrollScale)
	}
}

// CreateRenderer implements fyne.Widget
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	return &previewRenderer{preview: p}
}

// previewRenderer implements fyne.WidgetRenderer
type previewRenderer struct {
	preview *Preview
}

func (r *previewRenderer) Layout(size fyne.Size) {
	r.preview.image.Resize(size)
	if r.preview.engine != nil {
		r.preview.engine.OnResize(int(size.Width), int(size.Height))
	}
}

func (r *previewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *previewRenderer) Refresh() {
	r.preview.image.Refresh()
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.preview.image}
}

func (r *previewRenderer) Destroy() {}
