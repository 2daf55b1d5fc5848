package main

import (
	"github.com/philipparndt/gomobius/pkg/config"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/philipparndt/gomobius/pkg/viewer"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the strip in an interactive window",
	Long: `Open the surface plot in a desktop window. Drag to rotate and scroll
to zoom. The command returns when the window is closed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		strip, err := mobius.New(cfg.Params())
		if err != nil {
			return err
		}

		opts := viewer.Options{
			Width:     cfg.Render.Width,
			Height:    cfg.Render.Height,
			Azimuth:   cfg.Render.Azimuth,
			Elevation: cfg.Render.Elevation,
			Title:     cfg.Render.Title,
			Logger:    logger,
		}
		r := viewer.NewWindowRenderer(opts)
		if cfg.Render.Style == config.StyleRaster {
			r.Renderer = viewer.NewRasterRenderer(opts)
		}
		return strip.Plot(r)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
