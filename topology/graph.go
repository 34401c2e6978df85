package topology

import "github.com/katalvlaran/smcoctree/meshio"

// undirectedEdge is a canonicalized (low, high) vertex pair, used as a map
// key so each triangle edge is counted exactly once regardless of winding.
type undirectedEdge struct{ a, b meshio.VertexID }

func canon(a, b meshio.VertexID) undirectedEdge {
	if a > b {
		a, b = b, a
	}
	return undirectedEdge{a, b}
}

// skeleton is the mesh's 1-skeleton: the adjacency graph induced by
// triangle edges, plus the full edge and face sets needed to compute a
// component's Euler characteristic.
type skeleton struct {
	adjacency map[meshio.VertexID][]meshio.VertexID
	edges     map[undirectedEdge]struct{}
}

// buildSkeleton walks every face of m exactly once, recording each of its
// three edges into the adjacency list and the deduplicated edge set.
func buildSkeleton(m *meshio.Mesh) *skeleton {
	sk := &skeleton{
		adjacency: make(map[meshio.VertexID][]meshio.VertexID, m.VertexCount()),
		edges:     make(map[undirectedEdge]struct{}),
	}
	for i := 0; i < m.FaceCount(); i++ {
		f := m.Faces[i]
		for k := 0; k < 3; k++ {
			a, b := f.Vertices[k], f.Vertices[(k+1)%3]
			e := canon(a, b)
			if _, seen := sk.edges[e]; !seen {
				sk.edges[e] = struct{}{}
				sk.adjacency[a] = append(sk.adjacency[a], b)
				sk.adjacency[b] = append(sk.adjacency[b], a)
			}
		}
	}
	return sk
}
