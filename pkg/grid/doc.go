// Package grid provides dense two-dimensional float64 fields together with
// the sampling and finite-difference helpers used to evaluate parametric
// surfaces: Linspace, Meshgrid and Gradient.
package grid
