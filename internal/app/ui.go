package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomobius/version"
)

// drawUI draws the measurement overlay and the help panel
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenHeight := float32(rl.GetScreenHeight())
	report := app.Model.report
	p := report.Params

	line := func(text string, size float32, col rl.Color) {
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	// === STRIP ===
	line("Strip:", fontSize16, rl.Yellow)
	line(fmt.Sprintf("  Radius: %.4f", p.R), fontSize14, rl.White)
	line(fmt.Sprintf("  Width: %.4f", p.W), fontSize14, rl.White)
	line(fmt.Sprintf("  Resolution: %d x %d", p.N, p.N), fontSize14, rl.White)
	y += lineHeight

	// === MEASUREMENTS ===
	line("Measurements:", fontSize16, rl.Yellow)
	line(fmt.Sprintf("  Surface Area: %.4f", report.SurfaceArea), fontSize14, rl.White)
	line(fmt.Sprintf("  Edge Length: %.4f", report.EdgeLength), fontSize14, rl.White)
	line(fmt.Sprintf("  Boundary Length: %.4f", report.BoundaryLength), fontSize14, rl.Orange)
	line(fmt.Sprintf("  Mesh Area: %.4f", report.MeshArea), fontSize14, rl.NewColor(100, 200, 255, 255))
	line(fmt.Sprintf("  Triangles: %d", report.TriangleCount), fontSize14, rl.White)
	line(fmt.Sprintf("  Size: %.3f x %.3f x %.3f", report.Dimensions.X, report.Dimensions.Y, report.Dimensions.Z), fontSize14, rl.White)
	if report.Midline != nil {
		line(fmt.Sprintf("  Midline Radius: %.4f", report.Midline.Radius), fontSize14, rl.White)
	}
	y += lineHeight

	if app.FileWatch.lastError != "" {
		line(app.FileWatch.lastError, fontSize14, rl.Red)
		y += lineHeight
	}

	if app.View.showHelp {
		line("View:", fontSize16, rl.Yellow)
		line("  Home: Reset | T: Top | 1: Front | 2: Side", fontSize14, rl.LightGray)
		line("  W: Wireframe | F: Fill | E: Edge", fontSize14, rl.LightGray)
		y += lineHeight / 2
		line("Navigate:", fontSize16, rl.Yellow)
		line("  Left Drag: Rotate | Shift+Drag: Pan", fontSize14, rl.LightGray)
		line("  Mouse Wheel: Zoom | Middle: Pan", fontSize14, rl.LightGray)
		y += lineHeight / 2
		line("Strip:", fontSize16, rl.Yellow)
		line("  +/-: Resolution | Up/Down: Width", fontSize14, rl.LightGray)
		if app.FileWatch.configPath != "" {
			line("  R: Reload "+app.FileWatch.configPath, fontSize14, rl.LightGray)
		}
	} else {
		line("H: Help", fontSize14, rl.LightGray)
	}

	versionText := fmt.Sprintf("gomobius %s | %d FPS", version.GetFullVersion(), rl.GetFPS())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: screenHeight - 20}, fontSize12, 1, rl.Gray)
}
