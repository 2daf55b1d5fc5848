package mobius

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gomobius/pkg/grid"
)

func mustStrip(t *testing.T, p Params) *Strip {
	t.Helper()
	s, err := New(p)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", p, err)
	}
	return s
}

func TestNewRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"zero radius", Params{R: 0, W: 0.2, N: 10}},
		{"negative radius", Params{R: -1, W: 0.2, N: 10}},
		{"NaN radius", Params{R: math.NaN(), W: 0.2, N: 10}},
		{"negative width", Params{R: 1, W: -0.1, N: 10}},
		{"infinite width", Params{R: 1, W: math.Inf(1), N: 10}},
		{"resolution one", Params{R: 1, W: 0.2, N: 1}},
		{"resolution zero", Params{R: 1, W: 0.2, N: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.params)
			if err == nil {
				t.Fatalf("expected error, got strip %v", s.Params())
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestNewAcceptsZeroWidth(t *testing.T) {
	if _, err := New(Params{R: 1, W: 0, N: 2}); err != nil {
		t.Errorf("zero width strip should be accepted: %v", err)
	}
}

func TestGridShapes(t *testing.T) {
	for _, n := range []int{2, 3, 17, 100} {
		s := mustStrip(t, Params{R: 1, W: 0.3, N: n})

		for name, g := range map[string]*grid.Grid{"u": s.U(), "v": s.V(), "x": s.X(), "y": s.Y(), "z": s.Z()} {
			rows, cols := g.Shape()
			if rows != n || cols != n || g.Len() != n*n {
				t.Errorf("n=%d: grid %s has shape %dx%d (%d entries)", n, name, rows, cols, g.Len())
			}
		}

		if got := len(s.EdgeCurve()); got != n {
			t.Errorf("n=%d: edge curve has %d samples", n, got)
		}
		if got := len(s.BoundaryCurve()); got != 2*n-1 {
			t.Errorf("n=%d: boundary curve has %d samples, expected %d", n, got, 2*n-1)
		}
	}
}

func TestParameterGridLayout(t *testing.T) {
	s := mustStrip(t, Params{R: 1, W: 0.4, N: 5})

	// u is constant down a column, v is constant along a row
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if s.U().At(i, j) != s.U().At(0, j) {
				t.Errorf("u should not vary with row: U[%d][%d]=%v", i, j, s.U().At(i, j))
			}
			if s.V().At(i, j) != s.V().At(i, 0) {
				t.Errorf("v should not vary with column: V[%d][%d]=%v", i, j, s.V().At(i, j))
			}
		}
	}

	if s.U().At(0, 0) != 0 || s.U().At(0, 4) != 2*math.Pi {
		t.Errorf("u range: expected [0, 2π], got [%v, %v]", s.U().At(0, 0), s.U().At(0, 4))
	}
	if s.V().At(0, 0) != -0.2 || s.V().At(4, 0) != 0.2 {
		t.Errorf("v range: expected [-0.2, 0.2], got [%v, %v]", s.V().At(0, 0), s.V().At(4, 0))
	}
}

func TestCoordinatesMatchParametricMap(t *testing.T) {
	s := mustStrip(t, Params{R: 1.5, W: 0.6, N: 7})

	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			p := s.Point(s.U().At(i, j), s.V().At(i, j))
			if s.Vertex(i, j) != p {
				t.Errorf("vertex (%d,%d): expected %v, got %v", i, j, p, s.Vertex(i, j))
			}
		}
	}
}

func TestHalfTwist(t *testing.T) {
	s := mustStrip(t, Params{R: 1, W: 0.4, N: 10})

	// One full turn maps the edge v onto the opposite edge -v
	for _, v := range []float64{-0.2, 0.1, 0.2} {
		start := s.Point(0, v)
		end := s.Point(2*math.Pi, -v)
		if start.Distance(end) > 1e-12 {
			t.Errorf("r(0,%v)=%v should equal r(2π,%v)=%v", v, start, -v, end)
		}
	}
}

func TestPlotPassesGrids(t *testing.T) {
	s := mustStrip(t, Params{R: 1, W: 0.2, N: 4})

	called := false
	err := s.Plot(RendererFunc(func(x, y, z *grid.Grid) error {
		called = true
		if x != s.X() || y != s.Y() || z != s.Z() {
			t.Error("renderer should receive the strip's coordinate grids")
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if !called {
		t.Error("renderer was not called")
	}
}

func TestPlotPropagatesError(t *testing.T) {
	s := mustStrip(t, Params{R: 1, W: 0.2, N: 4})
	boom := errors.New("display unavailable")

	err := s.Plot(RendererFunc(func(x, y, z *grid.Grid) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("expected renderer error, got %v", err)
	}
}
