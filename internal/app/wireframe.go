package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxWireLines caps the grid lines drawn along each parameter direction
const maxWireLines = 60

// drawWireframe draws a thinned parameter grid over the surface
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(40, 40, 40, 200)
	s := app.Model.strip
	rows, cols := s.X().Shape()

	for _, i := range wireIndices(rows, maxWireLines) {
		for j := 0; j+1 < cols; j++ {
			rl.DrawLine3D(toRaylib(s.Vertex(i, j)), toRaylib(s.Vertex(i, j+1)), wireframeColor)
		}
	}
	for _, j := range wireIndices(cols, maxWireLines) {
		for i := 0; i+1 < rows; i++ {
			rl.DrawLine3D(toRaylib(s.Vertex(i, j)), toRaylib(s.Vertex(i+1, j)), wireframeColor)
		}
	}
}

// drawEdge highlights the single boundary of the strip
func (app *App) drawEdge() {
	edge := app.Model.strip.BoundaryCurve()
	for i := 0; i+1 < len(edge); i++ {
		rl.DrawLine3D(toRaylib(edge[i]), toRaylib(edge[i+1]), rl.Orange)
	}
}

// drawAxes draws the coordinate axes from the model center
func (app *App) drawAxes() {
	length := app.Model.size * 0.6
	o := app.Model.center
	rl.DrawLine3D(o, rl.Vector3Add(o, rl.Vector3{X: length}), rl.Red)
	rl.DrawLine3D(o, rl.Vector3Add(o, rl.Vector3{Y: length}), rl.Green)
	rl.DrawLine3D(o, rl.Vector3Add(o, rl.Vector3{Z: length}), rl.Blue)
}

// wireIndices picks at most limit evenly spaced indices out of 0..n-1,
// always including both ends
func wireIndices(n, limit int) []int {
	if n <= 0 || limit <= 0 {
		return nil
	}
	if n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if limit == 1 {
		return []int{0}
	}

	idx := make([]int, limit)
	for k := range idx {
		idx[k] = k * (n - 1) / (limit - 1)
	}
	return idx
}
