package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gomobius/pkg/grid"
)

// SurfaceView is an interactive fyne widget showing a rendered surface.
// Dragging orbits the camera and scrolling zooms.
type SurfaceView struct {
	widget.BaseWidget
	x, y, z   *grid.Grid
	renderer  ImageRenderer
	camera    *Camera
	image     *canvas.Image
	opts      Options
	dragStart *fyne.Position
	onError   func(error)
}

// NewSurfaceView creates a widget drawing the surface with the given renderer
func NewSurfaceView(x, y, z *grid.Grid, renderer ImageRenderer, opts Options) (*SurfaceView, error) {
	if err := checkGrids(x, y, z); err != nil {
		return nil, err
	}

	v := &SurfaceView{
		x: x, y: y, z: z,
		renderer: renderer,
		camera:   NewCamera(gridBounds(x, y, z), opts.Azimuth, opts.Elevation),
		image:    canvas.NewImageFromImage(nil),
		opts:     opts,
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.SetMinSize(fyne.NewSize(400, 400))
	v.ExtendBaseWidget(v)
	return v, nil
}

// SetOnError sets the callback invoked when a redraw fails
func (v *SurfaceView) SetOnError(callback func(error)) {
	v.onError = callback
}

// SetSurface replaces the displayed surface and reframes the camera
func (v *SurfaceView) SetSurface(x, y, z *grid.Grid) error {
	if err := checkGrids(x, y, z); err != nil {
		return err
	}
	v.x, v.y, v.z = x, y, z
	az, el := v.camera.Azimuth, v.camera.Elevation
	v.camera = NewCamera(gridBounds(x, y, z), 0, 0)
	v.camera.Azimuth, v.camera.Elevation = az, el
	v.camera.UpdatePosition()
	v.redraw(v.Size())
	return nil
}

// SetRenderer switches the renderer used for the next redraw
func (v *SurfaceView) SetRenderer(renderer ImageRenderer) {
	v.renderer = renderer
}

// Camera returns the orbit camera of the view
func (v *SurfaceView) Camera() *Camera {
	return v.camera
}

// CreateRenderer creates the renderer for the widget
func (v *SurfaceView) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceWidgetRenderer{view: v}
}

// redraw renders the surface at the given widget size
func (v *SurfaceView) redraw(size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return
	}

	opts := v.opts
	opts.Width, opts.Height = w, h
	opts.Output = nil

	rgba, err := v.render(opts)
	if err != nil {
		opts.logger().Error("failed to render surface", "error", err)
		if v.onError != nil {
			v.onError(err)
		}
		return
	}

	v.image.Image = rgba
	v.image.Refresh()
}

// render draws with a copy of the known renderers sized to the widget
func (v *SurfaceView) render(opts Options) (*image.RGBA, error) {
	switch r := v.renderer.(type) {
	case *RasterRenderer:
		return NewRasterRenderer(opts).RenderImage(v.x, v.y, v.z, v.camera)
	case *CanvasRenderer:
		return NewCanvasRenderer(opts).RenderImage(v.x, v.y, v.z, v.camera)
	default:
		return r.RenderImage(v.x, v.y, v.z, v.camera)
	}
}

// Dragged handles mouse drag events for rotation
func (v *SurfaceView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaX)*0.01, float64(deltaY)*0.01)
		v.redraw(v.Size())
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (v *SurfaceView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *SurfaceView) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	v.camera.Zoom(delta)
	v.redraw(v.Size())
}

// surfaceWidgetRenderer implements fyne.WidgetRenderer
type surfaceWidgetRenderer struct {
	view *SurfaceView
	last fyne.Size
}

func (s *surfaceWidgetRenderer) Layout(size fyne.Size) {
	s.view.image.Resize(size)
	if size != s.last {
		s.last = size
		s.view.redraw(size)
	}
}

func (s *surfaceWidgetRenderer) MinSize() fyne.Size {
	return s.view.image.MinSize()
}

func (s *surfaceWidgetRenderer) Refresh() {
	canvas.Refresh(s.view.image)
}

func (s *surfaceWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{s.view.image}
}

func (s *surfaceWidgetRenderer) Destroy() {}

// WindowRenderer shows the surface in an interactive desktop window.
// Render blocks until the window is closed.
type WindowRenderer struct {
	Options  Options
	Renderer ImageRenderer
}

// NewWindowRenderer creates a window renderer drawing with the canvas renderer
func NewWindowRenderer(opts Options) *WindowRenderer {
	return &WindowRenderer{Options: opts, Renderer: NewCanvasRenderer(opts)}
}

// Render opens the window and runs the fyne event loop
func (r *WindowRenderer) Render(x, y, z *grid.Grid) error {
	view, err := NewSurfaceView(x, y, z, r.Renderer, r.Options)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow(r.Options.Title)
	w.SetContent(view)
	w.Resize(fyne.NewSize(float32(r.Options.Width), float32(r.Options.Height)))
	w.ShowAndRun()
	return nil
}
