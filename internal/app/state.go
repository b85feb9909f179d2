package app

import (
	"sync/atomic"
	"time"

	"github.com/philipparndt/plateview/internal/engine"
	"github.com/philipparndt/plateview/internal/session"
	"github.com/philipparndt/plateview/pkg/analysis"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/watcher"
)

// ViewState holds the engine and what drives it
type ViewState struct {
	engine  *engine.Engine
	queue   engine.FrameQueue
	surface *textureSurface
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	isRotating bool
	isPanning  bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile  string               // Plate TOML file, empty when not watching
	fileWatcher *watcher.FileWatcher // File watcher for auto-reload
	needsReload atomic.Bool          // Set by the watcher goroutine
	lastError   error                // Last failed reload
	errorTime   time.Time            // When lastError happened
}

// UIState holds HUD state
type UIState struct {
	showHelp bool
	info     *analysis.MeasurementResult // Cached for infoFor
	infoFor  *plate.Solid
}

// SessionState is the configuration restored on start and saved on exit
type SessionState struct {
	path string
	data session.Data
}
