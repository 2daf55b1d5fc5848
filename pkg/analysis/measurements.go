package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gomobius/pkg/geometry"
	"github.com/philipparndt/gomobius/pkg/mesh"
	"github.com/philipparndt/gomobius/pkg/mobius"
)

// Report contains the measurements of a sampled strip
type Report struct {
	Params         mobius.Params
	SurfaceArea    float64 // finite-difference estimate
	EdgeLength     float64 // edge v = +w/2 over u in [0, 2π]
	BoundaryLength float64 // the single boundary over u in [0, 4π]
	MeshArea       float64 // sum of the triangle areas of the tessellation
	TriangleCount  int
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	Midline        *geometry.CircleFit // nil if the fit failed
}

// AnalyzeStrip performs all measurements on a strip
func AnalyzeStrip(s *mobius.Strip) (*Report, error) {
	model, err := mesh.FromGrids("mobius", s.X(), s.Y(), s.Z())
	if err != nil {
		return nil, fmt.Errorf("failed to tessellate strip: %w", err)
	}

	report := &Report{
		Params:         s.Params(),
		SurfaceArea:    s.SurfaceArea(),
		EdgeLength:     s.EdgeLength(),
		BoundaryLength: s.BoundaryLength(),
		MeshArea:       model.SurfaceArea(),
		TriangleCount:  model.TriangleCount(),
		BoundingBox:    model.BoundingBox(),
	}
	report.Dimensions = report.BoundingBox.Size()

	// The midline lies in z = 0
	if fit, err := geometry.FitCircleToPoints3D(s.Midline(), 2); err == nil {
		report.Midline = fit
	}

	return report, nil
}

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
