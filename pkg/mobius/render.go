package mobius

import "github.com/philipparndt/gomobius/pkg/grid"

// Renderer draws a surface given as three equally shaped coordinate grids
type Renderer interface {
	Render(x, y, z *grid.Grid) error
}

// RendererFunc adapts a plain function to the Renderer interface
type RendererFunc func(x, y, z *grid.Grid) error

// Render calls f(x, y, z)
func (f RendererFunc) Render(x, y, z *grid.Grid) error {
	return f(x, y, z)
}

// Plot hands the coordinate grids to r
func (s *Strip) Plot(r Renderer) error {
	return r.Render(s.x, s.y, s.z)
}
