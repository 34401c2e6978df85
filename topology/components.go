package topology

import "github.com/katalvlaran/smcoctree/meshio"

// Component is one connected piece of a mesh's 1-skeleton: its vertex set
// and the edge/face counts needed for EulerCharacteristic.
type Component struct {
	Vertices []meshio.VertexID
	Edges    int
	Faces    int
}

// EulerCharacteristic returns V - E + F for this component. For a closed
// orientable genus-g surface this equals 2 - 2g (a topological sphere has
// χ=2, a torus χ=0).
func (c Component) EulerCharacteristic() int {
	return len(c.Vertices) - c.Edges + c.Faces
}

// ConnectedComponents decomposes m's 1-skeleton into connected components
// via breadth-first flood fill: a queue of unvisited neighbors and a
// visited set walked over the skeleton's adjacency. Faces and edges are
// attributed to the component owning their vertices.
func ConnectedComponents(m *meshio.Mesh) []Component {
	sk := buildSkeleton(m)

	compOf := make(map[meshio.VertexID]int, m.VertexCount())
	var components []Component

	visited := make(map[meshio.VertexID]bool, m.VertexCount())
	for v := meshio.VertexID(1); int(v) <= m.VertexCount(); v++ {
		if visited[v] {
			continue
		}
		compID := len(components)
		queue := []meshio.VertexID{v}
		visited[v] = true
		var verts []meshio.VertexID
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			verts = append(verts, id)
			compOf[id] = compID
			for _, nbr := range sk.adjacency[id] {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		components = append(components, Component{Vertices: verts})
	}

	for e := range sk.edges {
		id := compOf[e.a]
		components[id].Edges++
	}
	for i := 0; i < m.FaceCount(); i++ {
		id := compOf[m.Faces[i].Vertices[0]]
		components[id].Faces++
	}

	return components
}
