package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gomobius/internal/app"
	"github.com/philipparndt/gomobius/pkg/config"
	"github.com/philipparndt/gomobius/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	radius     float64
	width      float64
	resolution int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "mobius-raylib",
	Short:         "Interactive 3D viewer for the Möbius strip",
	Long:          `mobius-raylib shows the sampled strip in an OpenGL window with its measurements. With --config the view follows changes to the configuration file.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		cfg := config.Default()
		if configPath != "" {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
		}

		p := cfg.Params()
		flags := cmd.Flags()
		if flags.Changed("radius") {
			p.R = radius
		}
		if flags.Changed("width") {
			p.W = width
		}
		if flags.Changed("resolution") {
			p.N = resolution
		}

		return app.Run(app.Options{Params: p, ConfigPath: configPath, Logger: logger})
	},
}

func init() {
	defaults := config.Default().Strip

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "TOML configuration file, reloaded on change")
	flags.Float64VarP(&radius, "radius", "R", defaults.Radius, "Distance from the center to the midline of the strip")
	flags.Float64VarP(&width, "width", "w", defaults.Width, "Width of the strip")
	flags.IntVarP(&resolution, "resolution", "n", defaults.Resolution, "Number of samples along each parameter")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
