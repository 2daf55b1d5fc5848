package viewer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/grid"
	"github.com/philipparndt/gomobius/pkg/mobius"
)

func testStrip(t *testing.T) *mobius.Strip {
	t.Helper()
	s, err := mobius.New(mobius.Params{R: 1, W: 0.4, N: 30})
	if err != nil {
		t.Fatalf("mobius.New() error = %v", err)
	}
	return s
}

func testOptions(out *bytes.Buffer) Options {
	opts := DefaultOptions()
	opts.Width = 240
	opts.Height = 180
	opts.Output = out
	return opts
}

func countNonBackground(img image.Image) int {
	count := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				count++
			}
		}
	}
	return count
}

func TestCheckGrids(t *testing.T) {
	a := grid.New(3, 4)
	b := grid.New(4, 3)

	if err := checkGrids(a, a, a); err != nil {
		t.Errorf("checkGrids() equal shapes error = %v", err)
	}
	if err := checkGrids(a, b, a); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("checkGrids() mismatched shapes error = %v, want ErrShapeMismatch", err)
	}
	if err := checkGrids(a, nil, a); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("checkGrids() nil grid error = %v, want ErrShapeMismatch", err)
	}
}

func TestRendererShapeMismatch(t *testing.T) {
	a := grid.New(3, 4)
	b := grid.New(3, 5)

	renderers := map[string]interface {
		Render(x, y, z *grid.Grid) error
	}{
		"raster": NewRasterRenderer(DefaultOptions()),
		"canvas": NewCanvasRenderer(DefaultOptions()),
	}

	for name, r := range renderers {
		t.Run(name, func(t *testing.T) {
			if err := r.Render(a, a, b); !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("Render() error = %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestRasterRendererWritesPNG(t *testing.T) {
	var out bytes.Buffer
	r := NewRasterRenderer(testOptions(&out))

	if err := testStrip(t).Plot(r); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 240 || img.Bounds().Dy() != 180 {
		t.Errorf("image size = %v, want 240x180", img.Bounds().Size())
	}
	if countNonBackground(img) < 500 {
		t.Errorf("expected the surface to cover part of the image")
	}
	if r.LastImage() == nil {
		t.Errorf("LastImage() = nil after Render")
	}
}

func TestCanvasRendererWritesPNG(t *testing.T) {
	var out bytes.Buffer
	r := NewCanvasRenderer(testOptions(&out))

	if err := testStrip(t).Plot(r); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 240 || img.Bounds().Dy() != 180 {
		t.Errorf("image size = %v, want 240x180", img.Bounds().Size())
	}
	if countNonBackground(img) < 500 {
		t.Errorf("expected the surface to cover part of the image")
	}
}

func TestRenderWithoutOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 48
	r := NewRasterRenderer(opts)

	if err := testStrip(t).Plot(r); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}
	if r.LastImage() == nil {
		t.Fatal("LastImage() = nil")
	}
	if got := r.LastImage().Bounds().Size(); got != image.Pt(64, 48) {
		t.Errorf("image size = %v, want 64x48", got)
	}
}

func TestCameraProjectsTargetToCenter(t *testing.T) {
	bbox := geometry.BoundsOf([]geometry.Vector3{
		geometry.NewVector3(-1, -1, -0.2),
		geometry.NewVector3(1, 1, 0.2),
	})
	cam := NewCamera(bbox, -60, 30)

	x, y, depth := cam.Project(cam.Target, 400, 300)
	if math.Abs(x-200) > 1e-9 || math.Abs(y-150) > 1e-9 {
		t.Errorf("Project(target) = (%v, %v), want (200, 150)", x, y)
	}
	if math.Abs(depth-cam.Distance) > 1e-9 {
		t.Errorf("Project(target) depth = %v, want %v", depth, cam.Distance)
	}
}

func TestCameraElevationClamped(t *testing.T) {
	cam := NewCamera(geometry.BoundsOf([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 1),
	}), 0, 0)

	cam.Rotate(0, 10)
	if cam.Elevation >= math.Pi/2 {
		t.Errorf("Elevation = %v, want below pi/2", cam.Elevation)
	}
	cam.Rotate(0, -20)
	if cam.Elevation <= -math.Pi/2 {
		t.Errorf("Elevation = %v, want above -pi/2", cam.Elevation)
	}
}

func TestCameraZoomFloor(t *testing.T) {
	cam := NewCamera(geometry.BoundsOf([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 1),
	}), 0, 0)

	cam.Zoom(-0.99)
	cam.Zoom(-0.99)
	if cam.Distance < 0.1 {
		t.Errorf("Distance = %v, want at least 0.1", cam.Distance)
	}
}

func TestStrideIndices(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		limit int
		want  []int
	}{
		{"empty", 0, 50, nil},
		{"single", 1, 50, []int{0}},
		{"two", 2, 50, []int{0, 1}},
		{"below limit", 5, 50, []int{0, 1, 2, 3, 4}},
		{"strided keeps last", 10, 4, []int{0, 3, 6, 9}},
		{"uneven stride", 8, 3, []int{0, 3, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strideIndices(tt.n, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("strideIndices(%d, %d) = %v, want %v", tt.n, tt.limit, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("strideIndices(%d, %d) = %v, want %v", tt.n, tt.limit, got, tt.want)
					break
				}
			}
		})
	}
}

func TestPatchesLimitedAndSorted(t *testing.T) {
	s, err := mobius.New(mobius.Params{R: 1, W: 0.4, N: 200})
	if err != nil {
		t.Fatalf("mobius.New() error = %v", err)
	}

	sc := newScene(s.X(), s.Y(), s.Z(), nil, DefaultOptions())
	patches := sc.patches()

	if len(patches) > maxPatches*maxPatches {
		t.Errorf("len(patches) = %d, want at most %d", len(patches), maxPatches*maxPatches)
	}
	for i := 1; i < len(patches); i++ {
		if patches[i].depth > patches[i-1].depth {
			t.Fatalf("patches not ordered back to front at %d", i)
		}
	}
}

func TestFillTriangleDepthTest(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	near := [3]screenPoint{{2, 2, 1}, {18, 2, 1}, {10, 18, 1}}
	far := [3]screenPoint{{2, 2, 5}, {18, 2, 5}, {10, 18, 5}}

	// The nearer triangle wins regardless of drawing order
	for _, nearFirst := range []bool{true, false} {
		f := newFrame(20, 20, backgroundColor)
		if nearFirst {
			f.fillTriangle(near[0], near[1], near[2], red)
			f.fillTriangle(far[0], far[1], far[2], blue)
		} else {
			f.fillTriangle(far[0], far[1], far[2], blue)
			f.fillTriangle(near[0], near[1], near[2], red)
		}

		if got := f.img.RGBAAt(10, 6); got != red {
			t.Errorf("nearFirst=%v: pixel = %v, want %v", nearFirst, got, red)
		}
		if got := f.img.RGBAAt(0, 19); got != backgroundColor {
			t.Errorf("nearFirst=%v: outside pixel = %v, want background", nearFirst, got)
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	f := newFrame(10, 10, backgroundColor)
	f.drawLine(-5, 5, 15, 5, axisColor)

	for x := 0; x < 10; x++ {
		if got := f.img.RGBAAt(x, 5); got != axisColor {
			t.Errorf("pixel (%d, 5) = %v, want %v", x, got, axisColor)
		}
	}
}

func TestShadeTwoSided(t *testing.T) {
	s := testStrip(t)
	sc := newScene(s.X(), s.Y(), s.Z(), nil, DefaultOptions())

	n := geometry.NewVector3(0.3, -0.5, 0.8).Normalize()
	if sc.shade(n) != sc.shade(n.Mul(-1)) {
		t.Errorf("shade() differs for opposite normals")
	}
}

func TestAnnotate(t *testing.T) {
	s := testStrip(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 120
	sc := newScene(s.X(), s.Y(), s.Z(), nil, opts)

	img := newFrame(200, 120, backgroundColor).img
	if err := annotate(img, sc, "Title"); err != nil {
		t.Fatalf("annotate() error = %v", err)
	}
	if countNonBackground(img) == 0 {
		t.Errorf("annotate() drew nothing")
	}
}
