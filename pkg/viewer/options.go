package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"github.com/philipparndt/gomobius/pkg/grid"
)

// ErrShapeMismatch is returned when the coordinate grids are not equally shaped
var ErrShapeMismatch = errors.New("coordinate grids differ in shape")

// Options configures the software renderers
type Options struct {
	Width     int
	Height    int
	Azimuth   float64 // degrees around the z axis
	Elevation float64 // degrees above the xy plane
	Title     string

	// Output receives the encoded PNG. When nil, Render only rasterizes and
	// the image is available through LastImage.
	Output io.Writer

	Logger *slog.Logger
}

// DefaultOptions mirrors the default 3D view of common plotting tools
func DefaultOptions() Options {
	return Options{
		Width:     1000,
		Height:    700,
		Azimuth:   -60,
		Elevation: 30,
		Title:     "Möbius Strip",
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Colors shared by both renderers
var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	surfaceColor    = color.RGBA{173, 216, 230, 255} // light blue
	edgeColor       = color.RGBA{0, 0, 0, 255}
	axisColor       = color.RGBA{90, 90, 90, 255}
	textColor       = color.RGBA{20, 20, 20, 255}
)

// checkGrids verifies the renderer contract: three equally shaped grids
func checkGrids(x, y, z *grid.Grid) error {
	if x == nil || y == nil || z == nil {
		return fmt.Errorf("%w: missing grid", ErrShapeMismatch)
	}
	if !x.SameShape(y) || !x.SameShape(z) {
		xr, xc := x.Shape()
		yr, yc := y.Shape()
		zr, zc := z.Shape()
		return fmt.Errorf("%w: x %dx%d, y %dx%d, z %dx%d", ErrShapeMismatch, xr, xc, yr, yc, zr, zc)
	}
	return nil
}
