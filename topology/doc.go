// Package topology provides post-extraction diagnostics for a meshio.Mesh:
// connected-component decomposition and per-component Euler characteristic,
// used by test suites to check that extracted output is closed and
// orientable (χ=2 per topological sphere). It is not part of the
// extraction contract itself — nothing in package extract or smcoctree
// depends on it.
//
// The component search uses a breadth-first frontier queue with a
// visited set, flood-filling over adjacency the same way a grid
// neighbor search does, adapted here from a 2D grid neighbor relation
// to the mesh's 1-skeleton (vertices connected by a shared triangle
// edge).
package topology
