package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/plateview/internal/quote"
)

// wheelScale converts wheel notches into zoom steps
const wheelScale = 100

var materialKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}

// handleInput processes user input
func (app *App) handleInput() {
	e := app.View.engine

	if rl.IsKeyPressed(rl.KeyHome) || rl.IsKeyPressed(rl.KeyR) {
		e.ResetView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		e.ToggleWireframe()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	materials := quote.Materials()
	for i, key := range materialKeys {
		if i < len(materials) && rl.IsKeyPressed(key) {
			app.Session.data.Material = materials[i]
			e.SetMaterialColor(materials[i])
		}
	}

	// Rotate with the left button, pan with the right or middle button
	app.Interaction.isRotating = rl.IsMouseButtonDown(rl.MouseLeftButton)
	app.Interaction.isPanning = rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseMiddleButton)

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		switch {
		case app.Interaction.isPanning:
			e.Pan(float64(delta.X), float64(delta.Y))
		case app.Interaction.isRotating:
			e.Rotate(float64(delta.X), float64(delta.Y))
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		e.Zoom(float64(wheel) * wheelScale)
	}
}
