package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/pkg/watcher"
)

// setupFileWatcher watches the plate file for changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500*time.Millisecond, app.log.With().Str("component", "watcher").Logger())
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.log.Info().Str("file", app.FileWatch.sourceFile).Msg("watching for changes")

	return nil
}

// reloadPlate reads the plate file and rebuilds the plate. A broken file
// keeps the current plate.
func (app *App) reloadPlate() {
	d, err := config.LoadDimensions(app.FileWatch.sourceFile)
	if err != nil {
		app.log.Warn().Err(err).Msg("reload failed")
		app.FileWatch.lastError = err
		app.FileWatch.errorTime = time.Now()
		return
	}

	app.FileWatch.lastError = nil
	app.View.engine.SetPlate(d)
	app.log.Info().Stringer("dimensions", d).Msg("plate reloaded")
}
