package viewer

import (
	"image/color"
	"math"
	"sort"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/grid"
)

// maxPatches limits the canvas plot to at most maxPatches×maxPatches quads
const maxPatches = 50

// scene holds the projected surface for one frame
type scene struct {
	x, y, z *grid.Grid
	bbox    geometry.BoundingBox
	camera  *Camera
	width   float64
	height  float64
}

// gridBounds returns the bounding box of the surface points
func gridBounds(x, y, z *grid.Grid) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	rows, cols := x.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			bbox.Extend(geometry.NewVector3(x.At(i, j), y.At(i, j), z.At(i, j)))
		}
	}
	return bbox
}

func newScene(x, y, z *grid.Grid, cam *Camera, opts Options) *scene {
	bbox := gridBounds(x, y, z)
	if cam == nil {
		cam = NewCamera(bbox, opts.Azimuth, opts.Elevation)
	}
	return &scene{
		x: x, y: y, z: z,
		bbox:   bbox,
		camera: cam,
		width:  float64(opts.Width),
		height: float64(opts.Height),
	}
}

func (s *scene) vertex(i, j int) geometry.Vector3 {
	return geometry.NewVector3(s.x.At(i, j), s.y.At(i, j), s.z.At(i, j))
}

func (s *scene) project(p geometry.Vector3) screenPoint {
	x, y, z := s.camera.Project(p, s.width, s.height)
	return screenPoint{X: x, Y: y, Z: z}
}

// shade applies two-sided Lambert lighting from a head light. The strip is
// non-orientable, so the sign of the normal carries no meaning.
func (s *scene) shade(normal geometry.Vector3) color.RGBA {
	intensity := 0.35 + 0.65*math.Abs(normal.Dot(s.camera.ViewDirection()))
	return color.RGBA{
		R: uint8(float64(surfaceColor.R) * intensity),
		G: uint8(float64(surfaceColor.G) * intensity),
		B: uint8(float64(surfaceColor.B) * intensity),
		A: 255,
	}
}

// patch is a projected surface quad
type patch struct {
	corners [4]screenPoint
	depth   float64
	color   color.RGBA
}

// patches returns the surface quads ordered back to front. Large grids are
// strided so at most maxPatches quads are drawn along each direction.
func (s *scene) patches() []patch {
	rows, cols := s.x.Shape()
	ri := strideIndices(rows, maxPatches)
	ci := strideIndices(cols, maxPatches)

	out := make([]patch, 0, len(ri)*len(ci))
	for a := 0; a+1 < len(ri); a++ {
		for b := 0; b+1 < len(ci); b++ {
			i0, i1 := ri[a], ri[a+1]
			j0, j1 := ci[b], ci[b+1]
			p := [4]geometry.Vector3{
				s.vertex(i0, j0),
				s.vertex(i0, j1),
				s.vertex(i1, j1),
				s.vertex(i1, j0),
			}

			normal := p[2].Sub(p[0]).Cross(p[3].Sub(p[1])).Normalize()
			var pt patch
			for k, v := range p {
				pt.corners[k] = s.project(v)
				pt.depth += pt.corners[k].Z / 4
			}
			pt.color = s.shade(normal)
			out = append(out, pt)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].depth > out[j].depth
	})
	return out
}

// strideIndices picks at most limit+1 indices out of 0..n-1 with a uniform
// stride, always keeping the last index
func strideIndices(n, limit int) []int {
	if n <= 0 {
		return nil
	}
	stride := int(math.Ceil(float64(n-1) / float64(limit)))
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n-1; i += stride {
		idx = append(idx, i)
	}
	return append(idx, n-1)
}

// axis is a projected coordinate axis running along one side of the bounding box
type axis struct {
	from, to screenPoint
	label    string
}

func (s *scene) axes() []axis {
	origin := s.bbox.Min
	size := s.bbox.Size()
	ends := []struct {
		end   geometry.Vector3
		label string
	}{
		{origin.Add(geometry.NewVector3(size.X, 0, 0)), "X"},
		{origin.Add(geometry.NewVector3(0, size.Y, 0)), "Y"},
		{origin.Add(geometry.NewVector3(0, 0, size.Z)), "Z"},
	}

	from := s.project(origin)
	out := make([]axis, len(ends))
	for i, e := range ends {
		out[i] = axis{from: from, to: s.project(e.end), label: e.label}
	}
	return out
}
