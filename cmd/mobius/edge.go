package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/spf13/cobra"
)

var (
	edgeEvery    int
	edgeBoundary bool
)

var edgeCmd = &cobra.Command{
	Use:   "edge",
	Short: "Print samples of the strip edge",
	Long: `Print the edge curve v = +w/2 sampled at every grid column together with its length.
With --boundary the whole boundary is traced over u in [0, 4π] instead.`,
	Args: cobra.NoArgs,
	RunE: runEdge,
}

func init() {
	rootCmd.AddCommand(edgeCmd)

	edgeCmd.Flags().IntVarP(&edgeEvery, "every", "e", 1, "Print every n-th sample")
	edgeCmd.Flags().BoolVarP(&edgeBoundary, "boundary", "b", false, "Trace the full boundary over u in [0, 4π]")
}

func runEdge(cmd *cobra.Command, args []string) error {
	if edgeEvery < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", edgeEvery)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	strip, err := mobius.New(cfg.Params())
	if err != nil {
		return err
	}

	if edgeBoundary {
		writeCurve(cmd.OutOrStdout(), "Boundary", strip.BoundaryCurve(), strip.BoundaryLength(), edgeEvery)
	} else {
		writeCurve(cmd.OutOrStdout(), "Edge", strip.EdgeCurve(), strip.EdgeLength(), edgeEvery)
	}
	return nil
}

// writeCurve prints every n-th sample of a curve, always including the last one
func writeCurve(w io.Writer, title string, points []geometry.Vector3, length float64, every int) {
	fmt.Fprintf(w, "%s Curve (%d samples)\n", title, len(points))
	fmt.Fprintf(w, "%s Length ≈ %.4f\n\n", title, length)

	fmt.Fprintf(w, "%6s  %12s  %12s  %12s\n", "i", "x", "y", "z")
	for i, p := range points {
		if i%every != 0 && i != len(points)-1 {
			continue
		}
		fmt.Fprintf(w, "%6d  %12.6f  %12.6f  %12.6f\n", i, p.X, p.Y, p.Z)
	}
}
