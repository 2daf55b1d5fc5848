package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/mesh"
)

// Light direction for baked lighting
var lightDir = geometry.NewVector3(-0.5, -0.5, -1.0).Normalize()

// bakedColor returns the vertex color of a triangle with the given normal.
// Lighting is two-sided since the strip has no consistent outward normal.
func bakedColor(normal geometry.Vector3) rl.Color {
	intensity := math.Max(0.3, math.Abs(normal.Dot(lightDir))) // Min 30% ambient
	return rl.NewColor(
		uint8(173*intensity),
		uint8(216*intensity),
		uint8(230*intensity),
		255,
	)
}

// modelToRaylibMesh converts a triangle model to a Raylib mesh with baked lighting.
// Every triangle is emitted twice with opposite winding so both sides render
// with back-face culling enabled.
func modelToRaylibMesh(model *mesh.Model) rl.Mesh {
	triangleCount := len(model.Triangles) * 2
	vertexCount := triangleCount * 3

	m := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	emit := func(v, n geometry.Vector3, c rl.Color) {
		vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
		normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
		colors = append(colors, c.R, c.G, c.B, c.A)
	}

	for _, triangle := range model.Triangles {
		normal := triangle.Normal()
		c := bakedColor(normal)

		emit(triangle.V1, normal, c)
		emit(triangle.V2, normal, c)
		emit(triangle.V3, normal, c)

		back := normal.Mul(-1)
		emit(triangle.V1, back, c)
		emit(triangle.V3, back, c)
		emit(triangle.V2, back, c)
	}

	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		m.Normals = &normals[0]
	}
	if len(texcoords) > 0 {
		m.Texcoords = &texcoords[0]
	}
	if len(colors) > 0 {
		m.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&m, false)

	return m
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
