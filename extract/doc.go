// Package extract implements the Surface Extractor, the Vertex
// Deduplicator, and the Manifold Guard: the pipeline that walks a built
// octree.Store breadth-first, triangulates each leaf, and emits a
// clean, manifold triangle stream into a meshio.MeshSink.
//
// Two triangulation paths exist: a single-voxel leaf is
// triangulated by precise per-edge interpolation of the field (or
// midpoint fallback) with gradient-based orientation, while a merged
// (coarse) leaf is triangulated from its stored planar signature
// (parms.config, parms.d) analytically, falling back to the edge
// midpoint only on numerical pathology. Both paths converge on the same
// Dedup and Guard before a triangle reaches the sink.
package extract
