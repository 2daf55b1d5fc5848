package grid

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	samples := Linspace(0, 1, 5)
	expected := []float64{0, 0.25, 0.5, 0.75, 1}

	if len(samples) != len(expected) {
		t.Fatalf("Linspace length: expected %d, got %d", len(expected), len(samples))
	}
	for i := range expected {
		if math.Abs(samples[i]-expected[i]) > 1e-12 {
			t.Errorf("Linspace[%d]: expected %v, got %v", i, expected[i], samples[i])
		}
	}
}

func TestLinspacePinsEndpoint(t *testing.T) {
	samples := Linspace(0, 2*math.Pi, 199)
	if samples[len(samples)-1] != 2*math.Pi {
		t.Errorf("last sample should equal stop exactly, got %v", samples[len(samples)-1])
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	if got := Linspace(3, 7, 0); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := Linspace(3, 7, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("expected [3], got %v", got)
	}
}

func TestMeshgrid(t *testing.T) {
	x, y := Meshgrid([]float64{1, 2, 3}, []float64{10, 20})

	rows, cols := x.Shape()
	if rows != 2 || cols != 3 {
		t.Fatalf("shape: expected 2x3, got %dx%d", rows, cols)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if x.At(i, j) != float64(j+1) {
				t.Errorf("X[%d][%d]: expected %v, got %v", i, j, float64(j+1), x.At(i, j))
			}
			if y.At(i, j) != float64(10*(i+1)) {
				t.Errorf("Y[%d][%d]: expected %v, got %v", i, j, float64(10*(i+1)), y.At(i, j))
			}
		}
	}
}

func TestGradient1D(t *testing.T) {
	// f(i) = i^2 sampled at 0..4
	d := Gradient([]float64{0, 1, 4, 9, 16})
	expected := []float64{1, 2, 4, 6, 7}

	for i := range expected {
		if math.Abs(d[i]-expected[i]) > 1e-12 {
			t.Errorf("Gradient[%d]: expected %v, got %v", i, expected[i], d[i])
		}
	}
}

func TestGradientShortInput(t *testing.T) {
	if d := Gradient([]float64{5}); len(d) != 1 || d[0] != 0 {
		t.Errorf("single sample should yield [0], got %v", d)
	}
	if d := Gradient([]float64{1, 4}); d[0] != 3 || d[1] != 3 {
		t.Errorf("two samples should yield one-sided differences, got %v", d)
	}
}

func TestGridGradientAxes(t *testing.T) {
	// g[i][j] = 10*i + j
	g, err := FromRows([][]float64{
		{0, 1, 2},
		{10, 11, 12},
		{20, 21, 22},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	alongRows := g.Gradient(Rows)
	alongCols := g.Gradient(Cols)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(alongRows.At(i, j)-10) > 1e-12 {
				t.Errorf("Rows gradient at (%d,%d): expected 10, got %v", i, j, alongRows.At(i, j))
			}
			if math.Abs(alongCols.At(i, j)-1) > 1e-12 {
				t.Errorf("Cols gradient at (%d,%d): expected 1, got %v", i, j, alongCols.At(i, j))
			}
		}
	}
}

func TestFromRowsRagged(t *testing.T) {
	if _, err := FromRows([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestSumMinMax(t *testing.T) {
	g, _ := FromRows([][]float64{{1, -2}, {3, 4}})

	if g.Sum() != 6 {
		t.Errorf("Sum: expected 6, got %v", g.Sum())
	}
	if g.Min() != -2 {
		t.Errorf("Min: expected -2, got %v", g.Min())
	}
	if g.Max() != 4 {
		t.Errorf("Max: expected 4, got %v", g.Max())
	}
}

func TestZip3(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}})
	b, _ := FromRows([][]float64{{3, 4}})
	c, _ := FromRows([][]float64{{5, 6}})

	sum := Zip3(a, b, c, func(x, y, z float64) float64 { return x + y + z })
	if sum.At(0, 0) != 9 || sum.At(0, 1) != 12 {
		t.Errorf("Zip3 failed: got %v, %v", sum.At(0, 0), sum.At(0, 1))
	}
}
