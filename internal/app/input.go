package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraSideView()
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Camera panning with Shift + mouse drag or middle mouse button drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && shiftPressed) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		// Orbit with mouse drag
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.azimuth -= delta.X * 0.01
			app.Camera.elevation += delta.Y * 0.01
		}
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.Camera.distance *= (1.0 - wheel*0.03)
		if minDist := app.Model.size * 0.1; app.Camera.distance < minDist {
			app.Camera.distance = minDist
		}
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyE) {
		app.View.showEdge = !app.View.showEdge
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	// Strip parameters
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		app.changeResolution(1)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		app.changeResolution(-1)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		app.changeWidth(1.25)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		app.changeWidth(0.8)
	}
	if rl.IsKeyPressed(rl.KeyR) && app.FileWatch.configPath != "" {
		app.reloadConfig()
	}
}
