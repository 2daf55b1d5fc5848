package main

import (
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gomobius/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	convergeSteps   []int
	convergeWorkers int
)

var convergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Show how the estimates change with the resolution",
	Long:  "Measure the strip at several resolutions in parallel and print the change between successive steps.",
	Args:  cobra.NoArgs,
	RunE:  runConverge,
}

func init() {
	rootCmd.AddCommand(convergeCmd)

	convergeCmd.Flags().IntSliceVar(&convergeSteps, "steps", []int{50, 100, 200, 500}, "Resolutions to measure")
	convergeCmd.Flags().IntVar(&convergeWorkers, "workers", 0, "Maximum number of strips built at once (0 = all)")
}

func runConverge(cmd *cobra.Command, args []string) error {
	if len(convergeSteps) == 0 {
		return fmt.Errorf("--steps needs at least one resolution")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	steps, err := analysis.Refine(cmd.Context(), cfg.Params(), convergeSteps, convergeWorkers)
	if err != nil {
		return err
	}

	writeConvergence(cmd.OutOrStdout(), steps)
	return nil
}

func writeConvergence(w io.Writer, steps []analysis.Refinement) {
	fmt.Fprintf(w, "%6s  %14s  %14s  %14s  %14s\n", "N", "Surface Area", "Δ Area", "Edge Length", "Δ Edge")
	for _, s := range steps {
		fmt.Fprintf(w, "%6d  %14.8f  %14s  %14.8f  %14s\n",
			s.N, s.SurfaceArea, formatDelta(s.AreaDelta), s.EdgeLength, formatDelta(s.EdgeDelta))
	}

	if len(steps) > 2 {
		if analysis.Converging(steps) {
			fmt.Fprintln(w, "\nEstimates are converging.")
		} else {
			fmt.Fprintln(w, "\nEstimates are not converging monotonically.")
		}
	}
}

func formatDelta(d float64) string {
	if math.IsNaN(d) {
		return "-"
	}
	return fmt.Sprintf("%+.2e", d)
}
