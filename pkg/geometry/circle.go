package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal of the fitting plane
	StdDev float64 // Standard deviation of point distances from the circle
}

// FitCircleToPoints3D fits a circle to points lying in a plane where one axis
// is constant (0=X, 1=Y, 2=Z).
//
// The circle passes through three samples spread over the input (first, one
// third, two thirds), which stays well conditioned when the sequence is a
// closed loop whose first and last samples coincide:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func FitCircleToPoints3D(points []Vector3, constraintAxis int) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}
	if constraintAxis < 0 || constraintAxis > 2 {
		return nil, fmt.Errorf("invalid constraint axis: %d (must be 0, 1, or 2)", constraintAxis)
	}

	project := func(p Vector3) (float64, float64) {
		switch constraintAxis {
		case 0:
			return p.Y, p.Z
		case 1:
			return p.X, p.Z
		default:
			return p.X, p.Y
		}
	}

	n := len(points)
	x1, y1 := project(points[0])
	x2, y2 := project(points[n/3])
	x3, y3 := project(points[2*n/3])

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	cx := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / D
	cy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / D
	radius := math.Hypot(x1-cx, y1-cy)

	var center, normal Vector3
	switch constraintAxis {
	case 0:
		center = NewVector3(points[0].X, cx, cy)
		normal = NewVector3(1, 0, 0)
	case 1:
		center = NewVector3(cx, points[0].Y, cy)
		normal = NewVector3(0, 1, 0)
	default:
		center = NewVector3(cx, cy, points[0].Z)
		normal = NewVector3(0, 0, 1)
	}

	var sumSq float64
	for _, p := range points {
		px, py := project(p)
		d := math.Hypot(px-cx, py-cy) - radius
		sumSq += d * d
	}

	return &CircleFit{
		Center: center,
		Radius: radius,
		Normal: normal,
		StdDev: math.Sqrt(sumSq / float64(n)),
	}, nil
}
