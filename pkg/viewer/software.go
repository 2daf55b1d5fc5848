package viewer

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"time"

	"github.com/philipparndt/gomobius/pkg/grid"
)

// ImageRenderer rasterizes a surface into an in-memory image.
// A nil camera frames the surface from the renderer's configured angles.
type ImageRenderer interface {
	RenderImage(x, y, z *grid.Grid, cam *Camera) (*image.RGBA, error)
}

// RasterRenderer draws flat-shaded triangles into a depth buffer
type RasterRenderer struct {
	Options Options
	Camera  *Camera

	last *image.RGBA
}

// NewRasterRenderer creates a z-buffer renderer
func NewRasterRenderer(opts Options) *RasterRenderer {
	return &RasterRenderer{Options: opts}
}

// Render rasterizes the surface and writes it as PNG to Options.Output
func (r *RasterRenderer) Render(x, y, z *grid.Grid) error {
	img, err := r.RenderImage(x, y, z, r.Camera)
	if err != nil {
		return err
	}
	r.last = img
	return encode(r.Options, img)
}

// LastImage returns the image produced by the latest Render call
func (r *RasterRenderer) LastImage() *image.RGBA {
	return r.last
}

// RenderImage rasterizes the surface
func (r *RasterRenderer) RenderImage(x, y, z *grid.Grid, cam *Camera) (*image.RGBA, error) {
	if err := checkGrids(x, y, z); err != nil {
		return nil, err
	}
	start := time.Now()

	s := newScene(x, y, z, cam, r.Options)
	f := newFrame(r.Options.Width, r.Options.Height, backgroundColor)

	rows, cols := x.Shape()
	for i := 0; i+1 < rows; i++ {
		for j := 0; j+1 < cols; j++ {
			a, b, c, d := s.vertex(i, j), s.vertex(i, j+1), s.vertex(i+1, j+1), s.vertex(i+1, j)
			pa, pb, pc, pd := s.project(a), s.project(b), s.project(c), s.project(d)

			f.fillTriangle(pa, pb, pc, s.shade(b.Sub(a).Cross(c.Sub(a)).Normalize()))
			f.fillTriangle(pa, pc, pd, s.shade(c.Sub(a).Cross(d.Sub(a)).Normalize()))
		}
	}

	for _, a := range s.axes() {
		f.drawLine(round(a.from.X), round(a.from.Y), round(a.to.X), round(a.to.Y), axisColor)
	}

	if err := annotate(f.img, s, r.Options.Title); err != nil {
		return nil, err
	}

	r.Options.logger().Debug("raster render finished",
		"triangles", 2*(rows-1)*(cols-1),
		"size", fmt.Sprintf("%dx%d", r.Options.Width, r.Options.Height),
		"elapsed", time.Since(start))

	return f.img, nil
}

// encode writes img to opts.Output as PNG when an output is configured
func encode(opts Options, img image.Image) error {
	if opts.Output == nil {
		return nil
	}
	if err := png.Encode(opts.Output, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
