package grid

import (
	"fmt"
	"math"
)

// Axis selects the direction a grid operation runs along
type Axis int

const (
	// Rows runs down the columns, from row i to row i+1 (first index)
	Rows Axis = iota
	// Cols runs along a row, from column j to column j+1 (second index)
	Cols
)

// Grid is a dense rows×cols field of float64 values stored row-major
type Grid struct {
	rows, cols int
	values     []float64
}

// New creates a zero-filled grid
func New(rows, cols int) *Grid {
	return &Grid{
		rows:   rows,
		cols:   cols,
		values: make([]float64, rows*cols),
	}
}

// FromRows creates a grid from a slice of equal-length rows
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	g := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), g.cols)
		}
		copy(g.values[i*g.cols:], row)
	}
	return g, nil
}

// Shape returns the number of rows and columns
func (g *Grid) Shape() (int, int) {
	return g.rows, g.cols
}

// Len returns the number of entries in the grid
func (g *Grid) Len() int {
	return len(g.values)
}

// SameShape reports whether two grids have identical dimensions
func (g *Grid) SameShape(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

// At returns the value at row i, column j
func (g *Grid) At(i, j int) float64 {
	return g.values[i*g.cols+j]
}

// Set stores a value at row i, column j
func (g *Grid) Set(i, j int, v float64) {
	g.values[i*g.cols+j] = v
}

// Row returns a copy of row i
func (g *Grid) Row(i int) []float64 {
	row := make([]float64, g.cols)
	copy(row, g.values[i*g.cols:(i+1)*g.cols])
	return row
}

// Col returns a copy of column j
func (g *Grid) Col(j int) []float64 {
	col := make([]float64, g.rows)
	for i := range col {
		col[i] = g.values[i*g.cols+j]
	}
	return col
}

// Sum returns the sum of all entries
func (g *Grid) Sum() float64 {
	total := 0.0
	for _, v := range g.values {
		total += v
	}
	return total
}

// Min returns the smallest entry, or +Inf for an empty grid
func (g *Grid) Min() float64 {
	m := math.Inf(1)
	for _, v := range g.values {
		m = math.Min(m, v)
	}
	return m
}

// Max returns the largest entry, or -Inf for an empty grid
func (g *Grid) Max() float64 {
	m := math.Inf(-1)
	for _, v := range g.values {
		m = math.Max(m, v)
	}
	return m
}

// Map returns a new grid with f applied to every entry
func (g *Grid) Map(f func(v float64) float64) *Grid {
	out := New(g.rows, g.cols)
	for k, v := range g.values {
		out.values[k] = f(v)
	}
	return out
}

// Scale returns a new grid with every entry multiplied by s
func (g *Grid) Scale(s float64) *Grid {
	return g.Map(func(v float64) float64 { return v * s })
}

// Zip2 combines two equally shaped grids pointwise
func Zip2(a, b *Grid, f func(a, b float64) float64) *Grid {
	out := New(a.rows, a.cols)
	for k := range out.values {
		out.values[k] = f(a.values[k], b.values[k])
	}
	return out
}

// Zip3 combines three equally shaped grids pointwise
func Zip3(a, b, c *Grid, f func(a, b, c float64) float64) *Grid {
	out := New(a.rows, a.cols)
	for k := range out.values {
		out.values[k] = f(a.values[k], b.values[k], c.values[k])
	}
	return out
}
