package viewer

import (
	"math"

	"github.com/philipparndt/gomobius/pkg/geometry"
)

// Camera is a perspective camera orbiting a target with +Z up
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	Azimuth   float64 // Rotation around the Z axis in radians
	Elevation float64 // Angle above the XY plane in radians
}

// NewCamera creates a camera framing a bounding box from the given angles (degrees)
func NewCamera(bbox geometry.BoundingBox, azimuthDeg, elevationDeg float64) *Camera {
	distance := bbox.MaxExtent() * 2.2
	if distance <= 0 {
		distance = 1
	}

	c := &Camera{
		Target:    bbox.Center(),
		Up:        geometry.NewVector3(0, 0, 1),
		FOV:       math.Pi / 4, // 45 degrees
		Distance:  distance,
		Azimuth:   azimuthDeg * math.Pi / 180,
		Elevation: elevationDeg * math.Pi / 180,
	}
	c.clampElevation()
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on the orbit angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.Elevation) * math.Cos(c.Azimuth)
	y := c.Distance * math.Cos(c.Elevation) * math.Sin(c.Azimuth)
	z := c.Distance * math.Sin(c.Elevation)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits the camera by the given angles in radians
func (c *Camera) Rotate(deltaAzimuth, deltaElevation float64) {
	c.Azimuth += deltaAzimuth
	c.Elevation += deltaElevation
	c.clampElevation()
	c.UpdatePosition()
}

// Keep clear of the poles where the view direction becomes parallel to Up
func (c *Camera) clampElevation() {
	maxAngle := math.Pi/2 - 0.01
	c.Elevation = math.Max(-maxAngle, math.Min(maxAngle, c.Elevation))
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project projects a 3D point to screen coordinates and returns its depth
// along the view direction (larger is farther).
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	fovScale := math.Tan(c.FOV / 2)
	scale := math.Min(width, height) / 2

	screenX := x/(z*fovScale)*scale + width/2
	screenY := -y/(z*fovScale)*scale + height/2

	return screenX, screenY, z
}

// ViewDirection returns the unit vector from the camera towards its target
func (c *Camera) ViewDirection() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}
