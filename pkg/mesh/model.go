package mesh

import (
	"fmt"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/grid"
)

// Model is an in-memory triangle mesh of a sampled surface
type Model struct {
	Name      string
	Rows      int // Grid rows the mesh was built from
	Cols      int // Grid columns the mesh was built from
	Triangles []geometry.Triangle
}

// NewModel creates an empty mesh
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromGrids triangulates a surface given as three equally shaped coordinate
// grids. Every cell (i, j)..(i+1, j+1) becomes two triangles
// (i,j)→(i,j+1)→(i+1,j+1) and (i,j)→(i+1,j+1)→(i+1,j), so a rows×cols grid
// yields 2·(rows-1)·(cols-1) triangles.
func FromGrids(name string, x, y, z *grid.Grid) (*Model, error) {
	if !x.SameShape(y) || !x.SameShape(z) {
		return nil, fmt.Errorf("coordinate grids differ in shape")
	}

	rows, cols := x.Shape()
	model := NewModel(name)
	model.Rows, model.Cols = rows, cols
	if rows < 2 || cols < 2 {
		return model, nil
	}
	model.Triangles = make([]geometry.Triangle, 0, 2*(rows-1)*(cols-1))

	vertex := func(i, j int) geometry.Vector3 {
		return geometry.NewVector3(x.At(i, j), y.At(i, j), z.At(i, j))
	}

	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := vertex(i, j)
			b := vertex(i, j+1)
			c := vertex(i+1, j+1)
			d := vertex(i+1, j)
			model.AddTriangle(geometry.NewTriangle(a, b, c))
			model.AddTriangle(geometry.NewTriangle(a, c, d))
		}
	}

	return model, nil
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total area of all triangles
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Quad returns the two triangles of grid cell (i, j)
func (m *Model) Quad(i, j int) (geometry.Triangle, geometry.Triangle) {
	k := 2 * (i*(m.Cols-1) + j)
	return m.Triangles[k], m.Triangles[k+1]
}
