// Package mobius models a Möbius strip as a sampled parametric surface
//
//	x(u,v) = (R + v·cos(u/2))·cos(u)
//	y(u,v) = (R + v·cos(u/2))·sin(u)
//	z(u,v) = v·sin(u/2)
//
// with u ∈ [0, 2π] and v ∈ [-w/2, w/2], and estimates its surface area and
// edge length with finite differences. Drawing is delegated to a Renderer.
package mobius
