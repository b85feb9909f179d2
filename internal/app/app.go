// Package app is the standalone plate viewer window.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/internal/engine"
	"github.com/philipparndt/plateview/internal/session"
	"github.com/rs/zerolog"
)

// Options configure the viewer
type Options struct {
	Config config.Config
	// WatchFile is a plate TOML file reloaded on change, empty to disable
	WatchFile string
	// SessionPath restores and saves the last state, empty to disable
	SessionPath string
	Logger      zerolog.Logger
}

type App struct {
	View        ViewState
	Interaction InteractionState
	FileWatch   FileWatchState
	Session     SessionState
	UI          UIState

	log zerolog.Logger
}

// Run opens the viewer window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	app := &App{
		log:     opts.Logger,
		Session: SessionState{path: opts.SessionPath, data: session.Default()},
		UI:      UIState{showHelp: true},
	}
	app.Session.data.Dimensions = cfg.Viewer.Dimensions
	app.Session.data.Material = cfg.Viewer.Material
	app.loadSession()

	if opts.WatchFile != "" {
		d, err := config.LoadDimensions(opts.WatchFile)
		if err != nil {
			return err
		}
		app.Session.data.Dimensions = d
		app.FileWatch.sourceFile = opts.WatchFile
	}

	// Must be before InitWindow
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Viewer.Width), int32(cfg.Viewer.Height), cfg.App.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Viewer.FPS))

	app.View.surface = newTextureSurface(cfg.Viewer.Width, cfg.Viewer.Height)
	defer app.View.surface.unload()

	e, err := engine.Create(engine.Options{
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		FPS:        cfg.Viewer.FPS,
		Damping:    cfg.Viewer.Damping,
		Dimensions: app.Session.data.Dimensions,
		Material:   app.Session.data.Material,
		Overlay:    true,
		Surface:    app.View.surface,
		Logger:     app.log.With().Str("component", "engine").Logger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	app.View.engine = e
	defer e.Teardown()

	if app.Session.data.Wireframe {
		e.ToggleWireframe()
	}

	if app.FileWatch.sourceFile != "" {
		if err := app.setupFileWatcher(); err != nil {
			app.log.Warn().Err(err).Msg("auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	if err := e.Start(&app.View.queue); err != nil {
		return err
	}

	for !rl.WindowShouldClose() {
		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadPlate()
		}

		if rl.IsWindowResized() {
			e.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		app.handleInput()
		app.View.queue.RunFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		app.View.surface.draw()
		app.drawUI()
		rl.EndDrawing()
	}

	app.saveSession()
	return nil
}

func (app *App) loadSession() {
	if app.Session.path == "" {
		return
	}
	data, err := session.Load(app.Session.path)
	if err != nil {
		app.log.Warn().Err(err).Msg("ignoring session")
		return
	}
	app.Session.data = data
}

func (app *App) saveSession() {
	if app.Session.path == "" {
		return
	}
	data := app.Session.data
	data.Dimensions = app.View.engine.Dimensions()
	data.Wireframe = app.View.engine.Wireframe()
	if err := session.Save(app.Session.path, data); err != nil {
		app.log.Warn().Err(err).Msg("failed to save session")
	}
}
