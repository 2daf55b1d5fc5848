package app

import (
	"math"
	"testing"

	"github.com/philipparndt/gomobius/pkg/geometry"
)

func TestStepResolution(t *testing.T) {
	tests := []struct {
		current   int
		direction int
		want      int
	}{
		{100, 1, 125},
		{100, -1, 75},
		{2, -1, 2},
		{3, -1, 2},
		{2, 1, 3},
		{4, 1, 5},
	}

	for _, tt := range tests {
		if got := stepResolution(tt.current, tt.direction); got != tt.want {
			t.Errorf("stepResolution(%d, %d) = %d, want %d", tt.current, tt.direction, got, tt.want)
		}
	}
}

func TestOrbitOffset(t *testing.T) {
	off := orbitOffset(2, 0, 0)
	if math.Abs(float64(off.X)-2) > 1e-6 || math.Abs(float64(off.Y)) > 1e-6 || math.Abs(float64(off.Z)) > 1e-6 {
		t.Errorf("orbitOffset(2, 0, 0) = %+v, want (2, 0, 0)", off)
	}

	off = orbitOffset(3, 1.1, 0.4)
	length := math.Sqrt(float64(off.X*off.X + off.Y*off.Y + off.Z*off.Z))
	if math.Abs(length-3) > 1e-5 {
		t.Errorf("|orbitOffset| = %v, want 3", length)
	}
}

func TestClampElevation(t *testing.T) {
	if got := clampElevation(10); float64(got) >= math.Pi/2 {
		t.Errorf("clampElevation(10) = %v, want below pi/2", got)
	}
	if got := clampElevation(-10); float64(got) <= -math.Pi/2 {
		t.Errorf("clampElevation(-10) = %v, want above -pi/2", got)
	}
	if got := clampElevation(0.5); got != 0.5 {
		t.Errorf("clampElevation(0.5) = %v, want 0.5", got)
	}
}

func TestWireIndices(t *testing.T) {
	got := wireIndices(5, 60)
	if len(got) != 5 || got[0] != 0 || got[4] != 4 {
		t.Errorf("wireIndices(5, 60) = %v", got)
	}

	got = wireIndices(200, 60)
	if len(got) != 60 {
		t.Fatalf("len(wireIndices(200, 60)) = %d, want 60", len(got))
	}
	if got[0] != 0 || got[len(got)-1] != 199 {
		t.Errorf("wireIndices(200, 60) ends = %d, %d, want 0, 199", got[0], got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("wireIndices not increasing at %d: %v", i, got)
		}
	}

	if got := wireIndices(0, 60); got != nil {
		t.Errorf("wireIndices(0, 60) = %v, want nil", got)
	}
}

func TestBakedColorTwoSided(t *testing.T) {
	n := geometry.NewVector3(0.2, 0.4, 0.9).Normalize()
	if bakedColor(n) != bakedColor(n.Mul(-1)) {
		t.Errorf("bakedColor() differs for opposite normals")
	}
}
