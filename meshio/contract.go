package meshio

import "github.com/katalvlaran/smcoctree/vec"

// VertexID is an opaque handle to a vertex created through a MeshSink.
type VertexID int

// FaceID is an opaque handle to a face created through a MeshSink.
type FaceID int

// TriangleSource exposes an external triangle soup: a flat list of
// independent triangles with no shared-vertex topology implied. The
// mesh-based field oracle (field.TriSoupOracle) consumes exactly this.
type TriangleSource interface {
	// FaceCount returns the number of triangles in the soup.
	FaceCount() int

	// Triangle returns the three world-space vertex positions of face i,
	// in winding order, 0 <= i < FaceCount().
	Triangle(i int) (a, b, c vec.Point)
}

// MeshSink receives the triangles produced by an extraction, in the
// deterministic order the core emits them. CreateVertex must return a
// fresh handle on every call, even if called twice with the same point
// (callers are responsible for deduplication — see extract.Dedup).
type MeshSink interface {
	// CreateVertex allocates a new output vertex at world position p and
	// returns its handle.
	CreateVertex(p vec.Point) VertexID

	// CreateFace appends a face over the given ordered vertex handles,
	// tagged with faceID (assigned by the caller, monotonically increasing
	// from 1).
	CreateFace(verts []VertexID, faceID int)
}
