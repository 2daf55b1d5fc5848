package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/philipparndt/gomobius/pkg/config"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/philipparndt/gomobius/pkg/viewer"
	"github.com/philipparndt/gomobius/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	renderOut       string
	renderStyle     string
	renderSize      string
	renderAzimuth   float64
	renderElevation float64
	renderTitle     string
	renderWatch     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the strip to a PNG image",
	Long: `Render the strip as a 3D surface plot and write it as PNG.

The canvas style paints translucent light blue patches with black edges in
back to front order. The raster style fills every triangle of the grid into
a depth buffer with headlight shading.

With --watch the image is rendered again whenever the --config file changes.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	defaults := config.Default().Render
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", defaults.Output, "Output PNG file")
	renderCmd.Flags().StringVar(&renderStyle, "style", defaults.Style, "Rendering style: canvas or raster")
	renderCmd.Flags().StringVar(&renderSize, "size", fmt.Sprintf("%dx%d", defaults.Width, defaults.Height), "Image size as WIDTHxHEIGHT")
	renderCmd.Flags().Float64Var(&renderAzimuth, "azimuth", defaults.Azimuth, "View azimuth in degrees")
	renderCmd.Flags().Float64Var(&renderElevation, "elevation", defaults.Elevation, "View elevation in degrees")
	renderCmd.Flags().StringVar(&renderTitle, "title", defaults.Title, "Plot title")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "Re-render when the config file changes")
}

// loadRenderConfig layers the render flags the user set over the configuration
func loadRenderConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Render.Output = renderOut
	}
	if flags.Changed("style") {
		cfg.Render.Style = renderStyle
	}
	if flags.Changed("size") {
		w, h, err := parseSize(renderSize)
		if err != nil {
			return cfg, err
		}
		cfg.Render.Width, cfg.Render.Height = w, h
	}
	if flags.Changed("azimuth") {
		cfg.Render.Azimuth = renderAzimuth
	}
	if flags.Changed("elevation") {
		cfg.Render.Elevation = renderElevation
	}
	if flags.Changed("title") {
		cfg.Render.Title = renderTitle
	}

	return cfg, cfg.Validate()
}

// parseSize parses a WIDTHxHEIGHT pair
func parseSize(s string) (int, int, error) {
	var w, h int
	var rest string
	n, _ := fmt.Sscanf(s, "%dx%d%s", &w, &h, &rest)
	if n != 2 || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT with positive values", s)
	}
	return w, h, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWatch && configPath == "" {
		return fmt.Errorf("--watch requires --config")
	}

	cfg, err := loadRenderConfig(cmd)
	if err != nil {
		return err
	}
	if err := renderToFile(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Render.Output)

	if !renderWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndRender(ctx, cmd)
}

// watchAndRender re-renders on every change of the config file until ctx ends
func watchAndRender(ctx context.Context, cmd *cobra.Command) error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{configPath}, func(path string) {
		cfg, err := loadRenderConfig(cmd)
		if err == nil {
			err = renderToFile(cfg)
		}
		if err != nil {
			logger.Error("re-render failed", "config", path, "error", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Render.Output)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", configPath)
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// newRenderer builds the PNG renderer for the configured style
func newRenderer(cfg config.Config, opts viewer.Options) (mobius.Renderer, error) {
	switch cfg.Render.Style {
	case config.StyleCanvas:
		return viewer.NewCanvasRenderer(opts), nil
	case config.StyleRaster:
		return viewer.NewRasterRenderer(opts), nil
	default:
		return nil, fmt.Errorf("%w: unknown render style %q", config.ErrInvalidConfig, cfg.Render.Style)
	}
}

// renderToFile samples the strip and writes the image to cfg.Render.Output.
// The image goes to a temporary file first so a watcher never sees half a PNG.
func renderToFile(cfg config.Config) error {
	strip, err := mobius.New(cfg.Params())
	if err != nil {
		return err
	}

	out := cfg.Render.Output
	tmp, err := os.CreateTemp(filepath.Dir(out), ".mobius-*.png")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	opts := viewer.Options{
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		Azimuth:   cfg.Render.Azimuth,
		Elevation: cfg.Render.Elevation,
		Title:     cfg.Render.Title,
		Output:    tmp,
		Logger:    logger,
	}

	r, err := newRenderer(cfg, opts)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := strip.Plot(r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("rendered strip", "params", strip.Params().String(), "style", cfg.Render.Style, "output", out)
	return nil
}
