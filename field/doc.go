// Package field implements the Field Oracle abstraction: the single
// question every other SMC component asks of the world — "is this point
// inside the solid?" — plus the auxiliary scalar value and gradient an
// implicit field can supply for free.
//
// Two concrete oracles are provided: ImplicitOracle wraps a user scalar
// function and a sub-level-set threshold tau, and TriSoupOracle turns an
// arbitrary closed triangle mesh into an inside/outside test by ray parity.
// Both satisfy the same Oracle interface, so voxelgrid and octree never
// need to know which kind of input produced the surface.
package field
