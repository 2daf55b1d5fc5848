package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
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

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "mobius",
	Short: "Sample, measure and render a Möbius strip",
	Long: `mobius samples a Möbius strip as a parametric surface on a regular grid.
It estimates the surface area and the edge length by finite differences
and renders the surface to PNG.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		gg.SetLogger(logger)
	},
}

func init() {
	defaults := config.Default()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML configuration file")
	flags.Float64VarP(&radius, "radius", "R", defaults.Strip.Radius, "Distance from the center to the midline of the strip")
	flags.Float64VarP(&width, "width", "w", defaults.Strip.Width, "Width of the strip")
	flags.IntVarP(&resolution, "resolution", "n", defaults.Strip.Resolution, "Number of samples along each parameter")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the configuration file, if any, and applies the
// persistent flags the user set explicitly on top of it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
		logger.Debug("loaded config", "path", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("radius") {
		cfg.Strip.Radius = radius
	}
	if flags.Changed("width") {
		cfg.Strip.Width = width
	}
	if flags.Changed("resolution") {
		cfg.Strip.Resolution = resolution
	}

	return cfg, cfg.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
