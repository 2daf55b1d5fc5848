package grid

// Linspace returns n evenly spaced samples over [start, stop].
// The last sample is pinned to stop so rounding never overshoots the interval.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}

	step := (stop - start) / float64(n-1)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i)*step + start
	}
	samples[n-1] = stop
	return samples
}

// Meshgrid expands two coordinate vectors into a pair of grids with
// len(ys) rows and len(xs) columns: X[i][j] = xs[j], Y[i][j] = ys[i].
func Meshgrid(xs, ys []float64) (*Grid, *Grid) {
	x := New(len(ys), len(xs))
	y := New(len(ys), len(xs))
	for i, yv := range ys {
		for j, xv := range xs {
			x.Set(i, j, xv)
			y.Set(i, j, yv)
		}
	}
	return x, y
}

// Gradient approximates the derivative of a uniformly sampled sequence with
// unit spacing: central differences at interior samples and one-sided
// differences at both ends. Sequences shorter than two samples yield zeros.
func Gradient(values []float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	for i := 1; i < n-1; i++ {
		out[i] = (values[i+1] - values[i-1]) / 2.0
	}
	out[0] = values[1] - values[0]
	out[n-1] = values[n-1] - values[n-2]
	return out
}

// Gradient applies the one-dimensional Gradient along the given axis of the grid
func (g *Grid) Gradient(axis Axis) *Grid {
	out := New(g.rows, g.cols)

	switch axis {
	case Cols:
		for i := 0; i < g.rows; i++ {
			d := Gradient(g.Row(i))
			copy(out.values[i*g.cols:], d)
		}
	case Rows:
		for j := 0; j < g.cols; j++ {
			d := Gradient(g.Col(j))
			for i, v := range d {
				out.values[i*g.cols+j] = v
			}
		}
	}

	return out
}
