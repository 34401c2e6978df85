// Package meshio defines the minimal external-mesh contract the SMC core
// consumes and produces: an input triangle-soup source (for the mesh-based
// oracle) and an output mesh sink (for the final extracted surface).
//
// The triangle-soup reader/writer itself is treated as an external
// collaborator — this package specifies only the contract, plus a small
// in-memory Mesh that implements both sides of it for tests, examples, and
// the thin CLI driver in cmd/smcoctree.
package meshio
