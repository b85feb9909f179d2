package engine

// ResetView returns the camera to its default pose and drops any orbit
// motion still in flight
func (e *Engine) ResetView() {
	if e.tornDown {
		return
	}

	p := DefaultCameraPosition
	e.camera.SetPosition(p.X, p.Y, p.Z)
	e.controls.Reset()

	e.log.Debug().Msg("view reset")
}

// ToggleWireframe flips between solid and wireframe display
func (e *Engine) ToggleWireframe() {
	if e.tornDown {
		return
	}

	e.wireframe = !e.wireframe
	if e.plate != nil {
		e.plate.Material.Wireframe = e.wireframe
	}

	e.log.Debug().Bool("wireframe", e.wireframe).Msg("wireframe toggled")
}

// Wireframe reports whether wireframe display is on
func (e *Engine) Wireframe() bool {
	return e.wireframe
}

// OnResize adapts the camera and output to a new viewport size.
// Non-positive sizes are ignored.
func (e *Engine) OnResize(width, height int) {
	if e.tornDown || width <= 0 || height <= 0 {
		return
	}

	e.camera.Aspect = float64(width) / float64(height)
	if e.renderer.SetSize(width, height) {
		e.log.Debug().Int("width", width).Int("height", height).Msg("viewport resized")
	}
}

// Rotate, Zoom and Pan forward pointer input to the orbit controls

func (e *Engine) Rotate(dx, dy float64) {
	if !e.tornDown {
		e.controls.Rotate(dx, dy)
	}
}

func (e *Engine) Zoom(delta float64) {
	if !e.tornDown {
		e.controls.Zoom(delta)
	}
}

func (e *Engine) Pan(dx, dy float64) {
	if !e.tornDown {
		e.controls.Pan(dx, dy)
	}
}
