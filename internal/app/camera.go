package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultAzimuth   = -math.Pi / 3 // -60 degrees
	defaultElevation = math.Pi / 6  // 30 degrees
	maxElevation     = math.Pi/2 - 0.01
)

// resetCameraView frames the whole strip from the default angles
func (app *App) resetCameraView() {
	distance := app.Model.size * 2.2
	if distance <= 0 {
		distance = 1
	}

	app.Camera.defaultDist = distance
	app.Camera.defaultAz = defaultAzimuth
	app.Camera.defaultEl = defaultElevation

	app.Camera.distance = distance
	app.Camera.azimuth = defaultAzimuth
	app.Camera.elevation = defaultElevation
	app.Camera.target = app.Model.center

	app.Camera.camera = rl.Camera3D{
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 0, Z: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// setCameraTopView looks straight down the Z axis
func (app *App) setCameraTopView() {
	app.Camera.azimuth = -math.Pi / 2
	app.Camera.elevation = maxElevation
	app.Camera.target = app.Model.center
}

// setCameraFrontView looks along +Y
func (app *App) setCameraFrontView() {
	app.Camera.azimuth = -math.Pi / 2
	app.Camera.elevation = 0
	app.Camera.target = app.Model.center
}

// setCameraSideView looks along -X
func (app *App) setCameraSideView() {
	app.Camera.azimuth = 0
	app.Camera.elevation = 0
	app.Camera.target = app.Model.center
}

// orbitOffset returns the camera position relative to its target
func orbitOffset(distance, azimuth, elevation float32) rl.Vector3 {
	az, el := float64(azimuth), float64(elevation)
	return rl.Vector3{
		X: distance * float32(math.Cos(el)*math.Cos(az)),
		Y: distance * float32(math.Cos(el)*math.Sin(az)),
		Z: distance * float32(math.Sin(el)),
	}
}

// clampElevation keeps the camera off the poles where Up and the view align
func clampElevation(el float32) float32 {
	return float32(math.Max(-maxElevation, math.Min(maxElevation, float64(el))))
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	app.Camera.elevation = clampElevation(app.Camera.elevation)
	app.Camera.camera.Position = rl.Vector3Add(app.Camera.target,
		orbitOffset(app.Camera.distance, app.Camera.azimuth, app.Camera.elevation))
	app.Camera.camera.Target = app.Camera.target
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}
