package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gomobius/pkg/analysis"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the measurements of a Möbius strip",
	Long:  "Show the surface area and edge length estimates together with the boundary length, mesh statistics and dimensions.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	strip, err := mobius.New(cfg.Params())
	if err != nil {
		return err
	}

	report, err := analysis.AnalyzeStrip(strip)
	if err != nil {
		return err
	}

	writeInfo(cmd.OutOrStdout(), report)
	return nil
}

// writeInfo prints the headline values rounded to four decimals, followed
// by the full report
func writeInfo(w io.Writer, r *analysis.Report) {
	fmt.Fprintf(w, "Surface Area ≈ %.4f\n", r.SurfaceArea)
	fmt.Fprintf(w, "Edge Length ≈ %.4f\n\n", r.EdgeLength)

	fmt.Fprintln(w, "Strip Parameters:")
	fmt.Fprintf(w, "  Radius: %g\n", r.Params.R)
	fmt.Fprintf(w, "  Width: %g\n", r.Params.W)
	fmt.Fprintf(w, "  Resolution: %d\n\n", r.Params.N)

	fmt.Fprintln(w, "Measurements:")
	fmt.Fprintf(w, "  Surface Area: %s\n", analysis.FormatMeasurement(r.SurfaceArea, "square units"))
	fmt.Fprintf(w, "  Edge Length: %s\n", analysis.FormatMeasurement(r.EdgeLength, ""))
	fmt.Fprintf(w, "  Boundary Length: %s\n", analysis.FormatMeasurement(r.BoundaryLength, ""))
	fmt.Fprintf(w, "  Mesh Area: %s\n", analysis.FormatMeasurement(r.MeshArea, "square units"))
	fmt.Fprintf(w, "  Triangles: %d\n\n", r.TriangleCount)

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(r.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(r.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(r.BoundingBox.Center()))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %.6f units\n", r.Dimensions.X)
	fmt.Fprintf(w, "  Depth (Y): %.6f units\n", r.Dimensions.Y)
	fmt.Fprintf(w, "  Height (Z): %.6f units\n", r.Dimensions.Z)

	if r.Midline != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Midline:")
		fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(r.Midline.Center))
		fmt.Fprintf(w, "  Radius: %.6f units\n", r.Midline.Radius)
	}
}
