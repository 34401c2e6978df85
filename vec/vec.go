// Package vec gives the SMC core a single, shared vocabulary for
// world-space points and vectors, instead of every package rolling its
// own (x, y, z) arithmetic.
//
// General-purpose vector/point arithmetic is treated as an external
// collaborator rather than reinvented here: this package is a thin
// alias over github.com/golang/geo/r3 rather than a hand-rolled type:
// Point and Vector are the same underlying r3.Vector, distinguished only
// by intent at the call site.
package vec

import "github.com/golang/geo/r3"

// Point is a world-space coordinate.
type Point = r3.Vector

// Vector is a displacement or direction in world space.
type Vector = r3.Vector

// New builds a Point/Vector from components.
func New(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Mul(t))
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return Lerp(a, b, 0.5)
}
