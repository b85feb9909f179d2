package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/internal/engine"
	"github.com/philipparndt/plateview/internal/quote"
	"github.com/philipparndt/plateview/internal/session"
	"github.com/rs/zerolog"
)

// Options configure the configurator window
type Options struct {
	Config      config.Config
	SessionPath string
	Logger      zerolog.Logger
}

// Window is a running configurator window
type Window struct {
	window       fyne.Window
	engine       *engine.Engine
	preview      *Preview
	configurator *Configurator
	queue        engine.FrameQueue
	done         chan struct{}
	opts         Options
}

// NewWindow creates the configurator window of a and starts its frame
// ticker. The engine is torn down when the window closes.
func NewWindow(a fyne.App, opts Options) (*Window, error) {
	cfg := opts.Config
	log := opts.Logger

	data := session.Default()
	data.Dimensions = cfg.Viewer.Dimensions
	data.Material = cfg.Viewer.Material
	if opts.SessionPath != "" {
		saved, err := session.Load(opts.SessionPath)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring session")
		} else {
			data = saved
		}
	}

	w := &Window{
		window:  a.NewWindow(cfg.App.Title),
		preview: NewPreview(),
		done:    make(chan struct{}),
		opts:    opts,
	}

	e, err := engine.Create(engine.Options{
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		FPS:        cfg.Viewer.FPS,
		Damping:    cfg.Viewer.Damping,
		Dimensions: data.Dimensions,
		Material:   data.Material,
		Surface:    w.preview,
		Logger:     log.With().Str("component", "engine").Logger(),
	})
	if err != nil {
		return nil, err
	}
	w.engine = e
	w.preview.Attach(e)

	client := quote.NewClient(cfg.Quote.Endpoint, cfg.Quote.Timeout.Duration)
	w.configurator = NewConfigurator(e, client, cfg.Quote.Timeout.Duration, data, log)

	panel := container.NewVScroll(w.configurator.Panel())
	panel.SetMinSize(fyne.NewSize(320, 0))
	w.window.SetContent(container.NewBorder(nil, nil, nil, panel, w.preview))
	w.window.Resize(fyne.NewSize(float32(cfg.Viewer.Width), float32(cfg.Viewer.Height)))
	w.window.SetOnClosed(w.close)

	if err := e.Start(&w.queue); err != nil {
		return nil, err
	}
	go w.tick(cfg.Viewer.FPS)

	return w, nil
}

// tick pumps the frame queue on the fyne main goroutine
func (w *Window) tick(fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			fyne.Do(func() { w.queue.RunFrame() })
		}
	}
}

func (w *Window) close() {
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)

	if w.opts.SessionPath != "" {
		if err := session.Save(w.opts.SessionPath, w.configurator.Session()); err != nil {
			w.opts.Logger.Warn().Err(err).Msg("failed to save session")
		}
	}
	w.engine.Teardown()
}

// ShowAndRun shows the window and runs the fyne event loop
func (w *Window) ShowAndRun() {
	w.window.ShowAndRun()
}

// Close closes the window
func (w *Window) Close() {
	w.window.Close()
}
