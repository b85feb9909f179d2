package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/plateview/pkg/analysis"
	"github.com/philipparndt/plateview/version"
)

const errorDisplayTime = 5 * time.Second

var helpLines = []string{
	"Drag: rotate   Right drag: pan   Wheel: zoom",
	"Home/R: reset view   W: wireframe",
	"1-4: aluminum, steel, titanium, plastic",
	"H: hide help",
}

// drawUI draws the HUD over the engine frame
func (app *App) drawUI() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())
	lineHeight := int32(20)
	fontSize := int32(14)
	textColor := rl.NewColor(40, 40, 40, 255)

	// Model info, top right
	if p := app.View.engine.Plate(); p != nil {
		if app.UI.infoFor != p.Solid {
			app.UI.info = analysis.AnalyzeModel(p.Solid.Model)
			app.UI.infoFor = p.Solid
		}
		result := app.UI.info
		lines := []string{
			fmt.Sprintf("Material: %s", app.Session.data.Material),
			fmt.Sprintf("Triangles: %d", result.TriangleCount),
			fmt.Sprintf("Volume: %.2f mm³", result.Volume),
			fmt.Sprintf("Surface Area: %.2f mm²", result.SurfaceArea),
		}
		y := int32(10)
		for _, line := range lines {
			width := rl.MeasureText(line, fontSize)
			rl.DrawText(line, screenWidth-width-10, y, fontSize, textColor)
			y += lineHeight
		}
	}

	// Reload error, bottom right
	if err := app.FileWatch.lastError; err != nil && time.Since(app.FileWatch.errorTime) < errorDisplayTime {
		text := fmt.Sprintf("Reload failed: %v", err)
		width := rl.MeasureText(text, fontSize)
		boxX := screenWidth - width - 30
		boxY := screenHeight - 50

		rl.DrawRectangle(boxX, boxY, width+20, 30, rl.NewColor(0, 0, 0, 200))
		rl.DrawRectangleLines(boxX, boxY, width+20, 30, rl.Red)
		rl.DrawText(text, boxX+10, boxY+8, fontSize, rl.Red)
	}

	// Help, bottom left
	y := screenHeight - 10 - lineHeight
	rl.DrawText(fmt.Sprintf("plateview %s  %d fps", version.GetVersion(), rl.GetFPS()), 10, y, fontSize, rl.Gray)
	if app.UI.showHelp {
		for i := len(helpLines) - 1; i >= 0; i-- {
			y -= lineHeight
			rl.DrawText(helpLines[i], 10, y, fontSize, textColor)
		}
	}
}
