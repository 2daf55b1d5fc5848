package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel position plus view depth
type screenPoint struct {
	X, Y, Z float64
}

// frame is an RGBA image with a depth buffer
type frame struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

func newFrame(width, height int, background color.RGBA) *frame {
	f := &frame{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}
	for i := range f.zbuf {
		f.zbuf[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.img.SetRGBA(x, y, background)
		}
	}
	return f
}

// fillTriangle fills a triangle with depth testing (scanline, nearest wins)
func (f *frame) fillTriangle(a, b, c screenPoint, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	yStart := int(math.Max(0, math.Ceil(a.Y)))
	yEnd := int(math.Min(float64(f.height-1), math.Floor(c.Y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// The long edge a-c always spans the scanline
		xLong, zLong, ok := edgeAt(a, c, fy)
		if !ok {
			continue
		}

		// The short edge is a-b on the upper half and b-c on the lower half
		var xShort, zShort float64
		if fy < b.Y {
			xShort, zShort, ok = edgeAt(a, b, fy)
		} else {
			xShort, zShort, ok = edgeAt(b, c, fy)
		}
		if !ok {
			continue
		}

		xStart, zStart, xEnd, zEnd := xLong, zLong, xShort, zShort
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		xs := int(math.Max(0, math.Ceil(xStart)))
		xe := int(math.Min(float64(f.width-1), math.Floor(xEnd)))

		for x := xs; x <= xe; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*f.width + x
			if z < f.zbuf[idx] {
				f.zbuf[idx] = z
				f.img.SetRGBA(x, y, col)
			}
		}
	}
}

// edgeAt intersects the edge p-q with the horizontal line at y
func edgeAt(p, q screenPoint, y float64) (x, z float64, ok bool) {
	if p.Y == q.Y {
		if y != p.Y {
			return 0, 0, false
		}
		return p.X, p.Z, true
	}
	if y < math.Min(p.Y, q.Y) || y > math.Max(p.Y, q.Y) {
		return 0, 0, false
	}
	t := (y - p.Y) / (q.Y - p.Y)
	return p.X + t*(q.X-p.X), p.Z + t*(q.Z-p.Z), true
}

// drawLine draws a line without depth testing using Bresenham's algorithm
func (f *frame) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < f.width && y1 >= 0 && y1 < f.height {
			f.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
