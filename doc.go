// Package smcoctree is the programmatic surface of the Simplicial Marching
// Cubes extractor: two constructors — New (triangle-soup
// input) and NewImplicit (scalar-field input) — and a single producer,
// (*Extractor).Extract, that drives the field/voxelgrid/octree/extract
// pipeline end to end and returns the output mesh.
//
// Configuration follows the package's functional-options shape:
// WithMaxDepth, WithQuantScale, WithProgress. maxDepth is clamped
// silently into [1,9] (default 6); every other input irregularity
// (an empty triangle soup, a degenerate triangle, a rejected
// non-manifold candidate, a numerically pathological edge solve) is
// handled silently inside the pipeline and surfaced, if at all, through
// the Stats a ProgressFunc receives — never as an error. Only
// programmatic misuse (nil oracle function, nil provider, a degenerate
// bounding box) returns an error.
package smcoctree
