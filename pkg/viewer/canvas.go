package viewer

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gomobius/pkg/grid"
)

// surfaceAlpha matches the translucent look of a classic surface plot
const surfaceAlpha = 0.8

// CanvasRenderer paints the surface with the painter's algorithm: every
// patch is filled translucent light blue and outlined in black, back to front.
type CanvasRenderer struct {
	Options Options
	Camera  *Camera

	last *image.RGBA
}

// NewCanvasRenderer creates an anti-aliased painter's-algorithm renderer
func NewCanvasRenderer(opts Options) *CanvasRenderer {
	return &CanvasRenderer{Options: opts}
}

// Render paints the surface and writes it as PNG to Options.Output
func (r *CanvasRenderer) Render(x, y, z *grid.Grid) error {
	img, err := r.RenderImage(x, y, z, r.Camera)
	if err != nil {
		return err
	}
	r.last = img
	return encode(r.Options, img)
}

// LastImage returns the image produced by the latest Render call
func (r *CanvasRenderer) LastImage() *image.RGBA {
	return r.last
}

// RenderImage paints the surface
func (r *CanvasRenderer) RenderImage(x, y, z *grid.Grid, cam *Camera) (*image.RGBA, error) {
	if err := checkGrids(x, y, z); err != nil {
		return nil, err
	}
	start := time.Now()

	s := newScene(x, y, z, cam, r.Options)

	dc := gg.NewContext(r.Options.Width, r.Options.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	patches := s.patches()
	dc.SetLineWidth(0.5)
	for _, p := range patches {
		dc.MoveTo(p.corners[0].X, p.corners[0].Y)
		for _, c := range p.corners[1:] {
			dc.LineTo(c.X, c.Y)
		}
		dc.ClosePath()

		dc.SetRGBA(float64(p.color.R)/255, float64(p.color.G)/255, float64(p.color.B)/255, surfaceAlpha)
		if err := dc.FillPreserve(); err != nil {
			return nil, fmt.Errorf("failed to fill patch: %w", err)
		}
		dc.SetColor(edgeColor)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to stroke patch: %w", err)
		}
	}

	dc.SetColor(axisColor)
	dc.SetLineWidth(1)
	for _, a := range s.axes() {
		dc.DrawLine(a.from.X, a.from.Y, a.to.X, a.to.Y)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to stroke axis %s: %w", a.label, err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush canvas: %w", err)
	}
	src := dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	if err := annotate(img, s, r.Options.Title); err != nil {
		return nil, err
	}

	r.Options.logger().Debug("canvas render finished",
		"patches", len(patches),
		"size", fmt.Sprintf("%dx%d", r.Options.Width, r.Options.Height),
		"elapsed", time.Since(start))

	return img, nil
}
