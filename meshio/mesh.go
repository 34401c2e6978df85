package meshio

import "github.com/katalvlaran/smcoctree/vec"

// Face is an output triangle: an ordered triple of vertex indices into
// Mesh.Vertices, plus the id it was created with.
type Face struct {
	ID       int
	Vertices [3]VertexID
}

// Mesh is a minimal in-memory triangle mesh implementing both
// TriangleSource (as input) and MeshSink (as output), used by tests, the
// examples, and the cmd/smcoctree driver.
type Mesh struct {
	Points []vec.Point
	Faces  []Face
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// FaceCount implements TriangleSource.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// Triangle implements TriangleSource. Panics if face i is not a triangle;
// all faces created via CreateFace with exactly three vertices satisfy this.
func (m *Mesh) Triangle(i int) (a, b, c vec.Point) {
	f := m.Faces[i]
	return m.Point(f.Vertices[0]), m.Point(f.Vertices[1]), m.Point(f.Vertices[2])
}

// CreateVertex implements MeshSink. Ids are assigned in creation order
// starting from 1, matching the 1-based indexing OBJ output requires.
func (m *Mesh) CreateVertex(p vec.Point) VertexID {
	m.Points = append(m.Points, p)
	return VertexID(len(m.Points))
}

// CreateFace implements MeshSink. Panics if verts does not have length 3,
// since the SMC core only ever emits triangles.
func (m *Mesh) CreateFace(verts []VertexID, faceID int) {
	if len(verts) != 3 {
		panic("meshio: CreateFace requires exactly 3 vertices")
	}
	m.Faces = append(m.Faces, Face{ID: faceID, Vertices: [3]VertexID{verts[0], verts[1], verts[2]}})
}

// VertexCount returns the number of vertices currently in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Points) }

// Point returns the world position of vertex v (1-based, per CreateVertex).
func (m *Mesh) Point(v VertexID) vec.Point { return m.Points[v-1] }
