package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gomobius/pkg/analysis"
	"github.com/philipparndt/gomobius/pkg/config"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/philipparndt/gomobius/pkg/viewer"
	"github.com/spf13/cobra"
)

type App struct {
	window    fyne.Window
	strip     *mobius.Strip
	view      *viewer.SurfaceView
	opts      viewer.Options
	params    *ParamsForm
	infoLabel *widget.Label
	logger    *slog.Logger
}

// ParamsForm holds the parameter inputs
type ParamsForm struct {
	radius     *widget.Entry
	width      *widget.Entry
	resolution *widget.Entry
	style      *widget.Select
}

var configPath string

var rootCmd = &cobra.Command{
	Use:           "mobius-gui",
	Short:         "Desktop window for exploring the Möbius strip",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	strip, err := mobius.New(cfg.Params())
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("Möbius Strip")

	appInstance := &App{
		window: w,
		strip:  strip,
		logger: logger,
		opts: viewer.Options{
			Width:     cfg.Render.Width,
			Height:    cfg.Render.Height,
			Azimuth:   cfg.Render.Azimuth,
			Elevation: cfg.Render.Elevation,
			Title:     cfg.Render.Title,
			Logger:    logger,
		},
	}
	if err := appInstance.setupMainUI(cfg); err != nil {
		return err
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

func newImageRenderer(style string, opts viewer.Options) viewer.ImageRenderer {
	if style == config.StyleRaster {
		return viewer.NewRasterRenderer(opts)
	}
	return viewer.NewCanvasRenderer(opts)
}

func (a *App) setupMainUI(cfg config.Config) error {
	view, err := viewer.NewSurfaceView(a.strip.X(), a.strip.Y(), a.strip.Z(), newImageRenderer(cfg.Render.Style, a.opts), a.opts)
	if err != nil {
		return err
	}
	view.SetOnError(func(err error) {
		dialog.ShowError(err, a.window)
	})
	a.view = view

	p := a.strip.Params()
	a.params = &ParamsForm{
		radius:     widget.NewEntry(),
		width:      widget.NewEntry(),
		resolution: widget.NewEntry(),
		style:      widget.NewSelect([]string{config.StyleCanvas, config.StyleRaster}, nil),
	}
	a.params.radius.SetText(strconv.FormatFloat(p.R, 'g', -1, 64))
	a.params.width.SetText(strconv.FormatFloat(p.W, 'g', -1, 64))
	a.params.resolution.SetText(strconv.Itoa(p.N))
	a.params.style.SetSelected(cfg.Render.Style)

	a.infoLabel = widget.NewLabel("")
	a.infoLabel.TextStyle = fyne.TextStyle{Monospace: true}

	applyButton := widget.NewButton("Apply", func() {
		a.applyParams()
	})
	saveButton := widget.NewButton("Save PNG", func() {
		a.showSaveDialog()
	})

	form := widget.NewForm(
		widget.NewFormItem("Radius", a.params.radius),
		widget.NewFormItem("Width", a.params.width),
		widget.NewFormItem("Resolution", a.params.resolution),
		widget.NewFormItem("Style", a.params.style),
	)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Edit the parameters and press Apply",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Parameters:"),
		widget.NewSeparator(),
		form,
		applyButton,
		widget.NewSeparator(),
		widget.NewLabel("Measurements:"),
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		saveButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
	return a.updateMeasurements()
}

// readParams parses the form inputs
func (a *App) readParams() (mobius.Params, error) {
	r, err := strconv.ParseFloat(a.params.radius.Text, 64)
	if err != nil {
		return mobius.Params{}, fmt.Errorf("radius: %w", err)
	}
	w, err := strconv.ParseFloat(a.params.width.Text, 64)
	if err != nil {
		return mobius.Params{}, fmt.Errorf("width: %w", err)
	}
	n, err := strconv.Atoi(a.params.resolution.Text)
	if err != nil {
		return mobius.Params{}, fmt.Errorf("resolution: %w", err)
	}
	return mobius.Params{R: r, W: w, N: n}, nil
}

func (a *App) applyParams() {
	p, err := a.readParams()
	var strip *mobius.Strip
	if err == nil {
		strip, err = mobius.New(p)
	}
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.strip = strip

	a.view.SetRenderer(newImageRenderer(a.params.style.Selected, a.opts))
	if err := a.view.SetSurface(a.strip.X(), a.strip.Y(), a.strip.Z()); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if err := a.updateMeasurements(); err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *App) updateMeasurements() error {
	report, err := analysis.AnalyzeStrip(a.strip)
	if err != nil {
		return err
	}

	info := fmt.Sprintf(
		"Surface Area ≈ %.4f\nEdge Length ≈ %.4f\n\nBoundary: %.4f\nMesh Area: %.4f\nTriangles: %d\n\nSize:\n  X: %.4f\n  Y: %.4f\n  Z: %.4f",
		report.SurfaceArea,
		report.EdgeLength,
		report.BoundaryLength,
		report.MeshArea,
		report.TriangleCount,
		report.Dimensions.X,
		report.Dimensions.Y,
		report.Dimensions.Z,
	)
	a.infoLabel.SetText(info)
	a.logger.Info("strip measured", "params", a.strip.Params().String(), "area", report.SurfaceArea, "edge", report.EdgeLength)
	return nil
}

func (a *App) showSaveDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		opts := a.opts
		opts.Output = writer
		r := newImageRenderer(a.params.style.Selected, opts).(mobius.Renderer)
		if err := a.strip.Plot(r); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save image: %w", err), a.window)
		}
	}, a.window)
}
