package field

import "github.com/katalvlaran/smcoctree/vec"

// Oracle answers inside/outside queries for a single closed solid, plus two
// optional refinements an implicit field can provide that a triangle soup
// cannot: an interpolatable scalar value and a gradient direction.
// voxelgrid's point-state sampling only ever requires Inside; extract's
// single-voxel triangulation path uses Value for edge interpolation and
// Gradient for outward-normal orientation when they are available, falling
// back to the edge midpoint and the cell-center-to-triangle-center
// direction otherwise.
type Oracle interface {
	// Inside reports whether p lies in the solid's interior (strict
	// sub-level-set F(p) < tau for an implicit field, or an odd number of
	// ray crossings for a triangle soup).
	Inside(p vec.Point) bool

	// Value returns the oracle's underlying scalar sample at p and true,
	// or (0, false) if this oracle has no meaningful scalar field (e.g.
	// TriSoupOracle).
	Value(p vec.Point) (float64, bool)

	// Gradient returns the outward-pointing gradient direction at p and
	// true, or a zero vector and false if unavailable.
	Gradient(p vec.Point) (vec.Vector, bool)
}

// Thresholder is implemented by oracles whose Value is a raw field
// sample requiring a separate sub-level-set threshold to locate a zero
// crossing (ImplicitOracle). Callers doing edge interpolation should
// type-assert for it and subtract the threshold before looking for a
// sign change between two samples.
type Thresholder interface {
	Threshold() float64
}
