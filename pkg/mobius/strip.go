package mobius

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/grid"
)

// ErrInvalidParams is returned when a strip cannot be built from the given parameters
var ErrInvalidParams = errors.New("invalid strip parameters")

// Params describes a Möbius strip
type Params struct {
	R float64 // Radius from the center to the middle of the strip
	W float64 // Width of the strip
	N int     // Resolution (number of samples along u and v)
}

// DefaultParams returns R=1.0, w=0.2, n=100
func DefaultParams() Params {
	return Params{R: 1.0, W: 0.2, N: 100}
}

// Validate checks that the parameters describe a computable strip.
// A zero width is accepted: the strip collapses onto its midline circle.
func (p Params) Validate() error {
	if math.IsNaN(p.R) || math.IsInf(p.R, 0) || p.R <= 0 {
		return fmt.Errorf("%w: radius must be a positive finite number, got %v", ErrInvalidParams, p.R)
	}
	if math.IsNaN(p.W) || math.IsInf(p.W, 0) || p.W < 0 {
		return fmt.Errorf("%w: width must be a non-negative finite number, got %v", ErrInvalidParams, p.W)
	}
	if p.N < 2 {
		return fmt.Errorf("%w: resolution must be at least 2, got %d", ErrInvalidParams, p.N)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("R=%g w=%g n=%d", p.R, p.W, p.N)
}

// Strip is an immutable sampled Möbius strip.
// The parameter grids U, V and the coordinate grids X, Y, Z are all N×N with
// U[i][j] = u_j over [0, 2π] and V[i][j] = v_i over [-w/2, w/2].
type Strip struct {
	params  Params
	u, v    *grid.Grid
	x, y, z *grid.Grid
}

// New samples the strip described by p
func New(p Params) (*Strip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Strip{params: p}
	s.u, s.v = grid.Meshgrid(
		grid.Linspace(0, 2*math.Pi, p.N),
		grid.Linspace(-p.W/2, p.W/2, p.N),
	)
	s.x, s.y, s.z = s.generateSurface()
	return s, nil
}

// generateSurface evaluates the parametric map over the parameter grid
func (s *Strip) generateSurface() (*grid.Grid, *grid.Grid, *grid.Grid) {
	R := s.params.R
	x := grid.Zip2(s.u, s.v, func(u, v float64) float64 {
		return (R + v*math.Cos(u/2)) * math.Cos(u)
	})
	y := grid.Zip2(s.u, s.v, func(u, v float64) float64 {
		return (R + v*math.Cos(u/2)) * math.Sin(u)
	})
	z := grid.Zip2(s.u, s.v, func(u, v float64) float64 {
		return v * math.Sin(u/2)
	})
	return x, y, z
}

// Point evaluates the parametric map at (u, v).
// The u/2 inside the trigonometric terms is the half-twist: after one full
// turn in u the strip comes back with v mirrored.
func (s *Strip) Point(u, v float64) geometry.Vector3 {
	r := s.params.R + v*math.Cos(u/2)
	return geometry.NewVector3(r*math.Cos(u), r*math.Sin(u), v*math.Sin(u/2))
}

// Params returns the parameters the strip was built from
func (s *Strip) Params() Params { return s.params }

// U returns the u parameter grid. Callers must not modify it.
func (s *Strip) U() *grid.Grid { return s.u }

// V returns the v parameter grid. Callers must not modify it.
func (s *Strip) V() *grid.Grid { return s.v }

// X returns the x coordinate grid. Callers must not modify it.
func (s *Strip) X() *grid.Grid { return s.x }

// Y returns the y coordinate grid. Callers must not modify it.
func (s *Strip) Y() *grid.Grid { return s.y }

// Z returns the z coordinate grid. Callers must not modify it.
func (s *Strip) Z() *grid.Grid { return s.z }

// Vertex returns the surface point stored at grid position (i, j)
func (s *Strip) Vertex(i, j int) geometry.Vector3 {
	return geometry.NewVector3(s.x.At(i, j), s.y.At(i, j), s.z.At(i, j))
}
