// Package gui is the desktop configurator: dimension form, material and
// finish selection, a live preview and quote requests.
package gui

import (
	"context"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/plateview/internal/engine"
	"github.com/philipparndt/plateview/internal/input"
	"github.com/philipparndt/plateview/internal/quote"
	"github.com/philipparndt/plateview/internal/session"
	"github.com/rs/zerolog"
)

// Submitter prices a configuration
type Submitter interface {
	Submit(ctx context.Context, cfg quote.Configuration) (*quote.Quote, error)
}

// Configurator holds the form widgets and forwards their changes to the
// engine. All methods run on the fyne main goroutine.
type Configurator struct {
	engine  *engine.Engine
	bridge  *input.Bridge
	quotes  Submitter
	timeout time.Duration
	log     zerolog.Logger

	length       *widget.Entry
	width        *widget.Entry
	thickness    *widget.Entry
	holeDiameter *widget.Entry
	material     *widget.Select
	surface      *widget.Select
	quantity     *widget.Entry

	quoteButton *widget.Button
	result      *widget.Label
	status      *widget.Label
}

// NewConfigurator builds the form from a saved session and applies it to e
func NewConfigurator(e *engine.Engine, quotes Submitter, timeout time.Duration, data session.Data, log zerolog.Logger) *Configurator {
	c := &Configurator{
		engine:  e,
		bridge:  input.NewBridge(e, log),
		quotes:  quotes,
		timeout: timeout,
		log:     log,
		result:  widget.NewLabel(""),
		status:  widget.NewLabel(""),
	}
	c.result.Wrapping = fyne.TextWrapWord

	fields := input.FieldsOf(data.Dimensions)
	c.length = c.dimensionEntry(fields.Length)
	c.width = c.dimensionEntry(fields.Width)
	c.thickness = c.dimensionEntry(fields.Thickness)
	c.holeDiameter = c.dimensionEntry(fields.HoleDiameter)

	c.material = widget.NewSelect(quote.Materials(), c.bridge.MaterialChanged)
	c.surface = widget.NewSelect(quote.SurfaceTreatments(), nil)
	c.quantity = widget.NewEntry()
	c.quantity.SetText(strconv.Itoa(data.Quantity))

	c.quoteButton = widget.NewButton("Get Quote", c.RequestQuote)

	c.bridge.DimensionsChanged(c.fields())
	c.material.SetSelected(data.Material)
	c.surface.SetSelected(data.SurfaceTreatment)
	if data.Wireframe != e.Wireframe() {
		e.ToggleWireframe()
	}
	c.updateStatus()

	return c
}

func (c *Configurator) dimensionEntry(text string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(text)
	entry.OnChanged = func(string) { c.dimensionsChanged() }
	return entry
}

func (c *Configurator) fields() input.Fields {
	return input.Fields{
		Length:       c.length.Text,
		Width:        c.width.Text,
		Thickness:    c.thickness.Text,
		HoleDiameter: c.holeDiameter.Text,
	}
}

func (c *Configurator) dimensionsChanged() {
	if c.engine.TornDown() {
		return
	}
	c.bridge.DimensionsChanged(c.fields())
	c.updateStatus()
}

func (c *Configurator) updateStatus() {
	d := c.engine.Dimensions()
	text := d.String()
	if d.HoleDiameter > 0 && !d.HoleFits() {
		text += " (hole exceeds plate)"
	}
	c.status.SetText(text)
}

// Configuration returns the order described by the form
func (c *Configurator) Configuration() quote.Configuration {
	quantity, err := strconv.Atoi(c.quantity.Text)
	if err != nil || quantity < 1 {
		quantity = 1
	}
	return quote.Configuration{
		Material:         c.material.Selected,
		SurfaceTreatment: c.surface.Selected,
		Dimensions:       input.ParseDimensions(c.fields()),
		Quantity:         quantity,
	}
}

// Session returns the form state for saving
func (c *Configurator) Session() session.Data {
	cfg := c.Configuration()
	return session.Data{
		Version:          session.Version,
		Dimensions:       cfg.Dimensions,
		Material:         cfg.Material,
		SurfaceTreatment: cfg.SurfaceTreatment,
		Quantity:         cfg.Quantity,
		Wireframe:        c.engine.Wireframe(),
	}
}

// RequestQuote submits the configuration in the background and shows
// the answer when it arrives
func (c *Configurator) RequestQuote() {
	if c.quotes == nil {
		return
	}

	cfg := c.Configuration()
	c.result.SetText(quote.LoadingMessage)
	c.quoteButton.Disable()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		q, err := c.quotes.Submit(ctx, cfg)
		fyne.Do(func() {
			c.quoteButton.Enable()
			if err != nil {
				c.log.Warn().Err(err).Msg("quote request failed")
				c.result.SetText(quote.ErrorMessage)
				return
			}
			c.result.SetText(quote.Text(*q))
		})
	}()
}

// Result returns the text of the quote area
func (c *Configurator) Result() string {
	return c.result.Text
}

// Panel lays out the form
func (c *Configurator) Panel() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Length (mm)", c.length),
		widget.NewFormItem("Width (mm)", c.width),
		widget.NewFormItem("Thickness (mm)", c.thickness),
		widget.NewFormItem("Hole Diameter (mm)", c.holeDiameter),
		widget.NewFormItem("Material", c.material),
		widget.NewFormItem("Surface", c.surface),
		widget.NewFormItem("Quantity", c.quantity),
	)

	view := container.NewGridWithColumns(2,
		widget.NewButton("Reset View", c.engine.ResetView),
		widget.NewButton("Wireframe", c.engine.ToggleWireframe),
	)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Shift+drag to pan\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		widget.NewLabel("Plate Configuration:"),
		widget.NewSeparator(),
		form,
		c.status,
		widget.NewSeparator(),
		view,
		widget.NewSeparator(),
		c.quoteButton,
		c.result,
		widget.NewSeparator(),
		instructions,
	)
}
