// Package voxelgrid implements the Point-State Grid: a dense tri-state
// cache of inside/outside verdicts at every lattice corner of a uniform
// (S+1)^3 grid, where S = 2^depth.
//
// Grid reads are lazy — a corner is sampled from a field.Oracle only the
// first time it is asked for — and a cell's 8-bit configuration is derived
// from its corners by the same bit convention the classical Marching Cubes
// triangulation table expects: bit k is set iff corner k is outside the
// solid.
//
// The grid is a dense array wrapped by a small struct with an options
// type and precomputed offset tables, rather than a pointer-based
// structure.
package voxelgrid
