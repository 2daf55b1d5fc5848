package geometry

import (
	"math"
	"testing"
)

func TestFitCircleClosedLoop(t *testing.T) {
	// Closed loop: first and last samples coincide
	n := 64
	radius := 2.5
	points := make([]Vector3, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n-1)
		points[i] = NewVector3(1+radius*math.Cos(a), -1+radius*math.Sin(a), 0.5)
	}

	fit, err := FitCircleToPoints3D(points, 2)
	if err != nil {
		t.Fatalf("FitCircleToPoints3D failed: %v", err)
	}

	if math.Abs(fit.Radius-radius) > 1e-9 {
		t.Errorf("Radius: expected %v, got %v", radius, fit.Radius)
	}
	if fit.Center.Distance(NewVector3(1, -1, 0.5)) > 1e-9 {
		t.Errorf("Center: expected (1, -1, 0.5), got %v", fit.Center)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("StdDev should be ~0 for an exact circle, got %v", fit.StdDev)
	}
	if fit.Normal != NewVector3(0, 0, 1) {
		t.Errorf("Normal: expected +Z, got %v", fit.Normal)
	}
}

func TestFitCircleErrors(t *testing.T) {
	line := []Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(2, 0, 0)}

	if _, err := FitCircleToPoints3D(line[:2], 2); err == nil {
		t.Error("expected error for fewer than 3 points")
	}
	if _, err := FitCircleToPoints3D(line, 3); err == nil {
		t.Error("expected error for invalid axis")
	}
	if _, err := FitCircleToPoints3D(line, 2); err == nil {
		t.Error("expected error for collinear points")
	}
}
