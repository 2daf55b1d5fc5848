package mobius

import (
	"math"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/grid"
)

// steps returns the parameter spacing du, dv of the sampling grid
func (s *Strip) steps() (float64, float64) {
	n := float64(s.params.N - 1)
	return 2 * math.Pi / n, s.params.W / n
}

// partial differentiates g along axis and divides by the sample spacing
func partial(g *grid.Grid, axis grid.Axis, spacing float64) *grid.Grid {
	return g.Gradient(axis).Map(func(d float64) float64 { return d / spacing })
}

// SurfaceArea approximates ∫∫ |∂r/∂u × ∂r/∂v| du dv.
//
// The partial derivatives are finite differences of the coordinate grids
// (central inside, one-sided at the border). Every grid node contributes
// |r_u × r_v|·du·dv with equal weight, border rows and columns included, so
// the estimate overshoots slightly and the bias shrinks as N grows.
func (s *Strip) SurfaceArea() float64 {
	if s.params.W == 0 {
		return 0
	}

	du, dv := s.steps()

	dxdu := partial(s.x, grid.Cols, du)
	dxdv := partial(s.x, grid.Rows, dv)
	dydu := partial(s.y, grid.Cols, du)
	dydv := partial(s.y, grid.Rows, dv)
	dzdu := partial(s.z, grid.Cols, du)
	dzdv := partial(s.z, grid.Rows, dv)

	rows, cols := s.x.Shape()
	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ru := geometry.NewVector3(dxdu.At(i, j), dydu.At(i, j), dzdu.At(i, j))
			rv := geometry.NewVector3(dxdv.At(i, j), dydv.At(i, j), dzdv.At(i, j))
			total += ru.Cross(rv).Length()
		}
	}

	return total * du * dv
}

// EdgeCurve samples the edge v = +w/2 at N evenly spaced u over [0, 2π]
func (s *Strip) EdgeCurve() []geometry.Vector3 {
	return s.curve(grid.Linspace(0, 2*math.Pi, s.params.N), s.params.W/2)
}

// EdgeLength approximates the arc length of the edge curve u ↦ r(u, w/2), u ∈ [0, 2π].
//
// The differences are taken per sample, not per unit of u, so summing their
// norms already integrates over the sample spacing.
func (s *Strip) EdgeLength() float64 {
	return arcLength(s.EdgeCurve())
}

// BoundaryCurve samples the complete boundary of the strip. Because of the
// half-twist the single edge only closes after u runs over [0, 4π]; the
// samples keep the spacing of EdgeCurve, giving 2N-1 points.
func (s *Strip) BoundaryCurve() []geometry.Vector3 {
	return s.curve(grid.Linspace(0, 4*math.Pi, 2*s.params.N-1), s.params.W/2)
}

// BoundaryLength approximates the length of the whole boundary curve
func (s *Strip) BoundaryLength() float64 {
	return arcLength(s.BoundaryCurve())
}

// Midline samples the centre circle v = 0
func (s *Strip) Midline() []geometry.Vector3 {
	return s.curve(grid.Linspace(0, 2*math.Pi, s.params.N), 0)
}

func (s *Strip) curve(us []float64, v float64) []geometry.Vector3 {
	points := make([]geometry.Vector3, len(us))
	for i, u := range us {
		points[i] = s.Point(u, v)
	}
	return points
}

// arcLength sums the norms of the per-sample finite differences of a curve
func arcLength(points []geometry.Vector3) float64 {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	zs := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	dx := grid.Gradient(xs)
	dy := grid.Gradient(ys)
	dz := grid.Gradient(zs)

	total := 0.0
	for i := range points {
		total += math.Sqrt(dx[i]*dx[i] + dy[i]*dy[i] + dz[i]*dz[i])
	}
	return total
}
