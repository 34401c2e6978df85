package extract

import "github.com/katalvlaran/smcoctree/meshio"

// undirectedEdge is an edge key independent of traversal direction.
type undirectedEdge struct{ a, b meshio.VertexID }

// directedEdge is an edge key that distinguishes a->b from b->a.
type directedEdge struct{ a, b meshio.VertexID }

// Guard is the Manifold Guard: it accepts or rejects
// candidate triangles so that the committed output is edge-manifold
// (every undirected edge bounds at most two faces) and
// locally orientation-consistent (no two committed faces share a
// directed edge).
type Guard struct {
	edgeUse    map[undirectedEdge]int
	dirEdgeUse map[directedEdge]int
}

// NewGuard returns an empty Manifold Guard.
func NewGuard() *Guard {
	return &Guard{
		edgeUse:    make(map[undirectedEdge]int),
		dirEdgeUse: make(map[directedEdge]int),
	}
}

// TryAccept runs a four-step admission test against the directed
// vertex loop verts (len(verts) == 3 for every SMC
// triangle), mutating verts in place if a single reversal resolves a
// direction conflict. It returns the (possibly reordered) loop and true
// on acceptance, or nil and false on rejection; on acceptance the guard's
// internal edge counts are updated.
func (g *Guard) TryAccept(verts []meshio.VertexID) ([]meshio.VertexID, bool) {
	n := len(verts)
	if n < 3 {
		return nil, false
	}

	// Degeneracy.
	for i := 0; i < n; i++ {
		if verts[i] == verts[(i+1)%n] {
			return nil, false
		}
	}

	// Manifold: every undirected edge below its cap.
	for i := 0; i < n; i++ {
		if g.edgeUse[undirectedOf(verts[i], verts[(i+1)%n])] >= 2 {
			return nil, false
		}
	}

	// Orientation: flip once if any directed edge already exists.
	needFlip := false
	for i := 0; i < n; i++ {
		if g.dirEdgeUse[directedEdge{verts[i], verts[(i+1)%n]}] > 0 {
			needFlip = true
			break
		}
	}
	if needFlip {
		reverseTail(verts)
	}
	for i := 0; i < n; i++ {
		if g.dirEdgeUse[directedEdge{verts[i], verts[(i+1)%n]}] > 0 {
			return nil, false
		}
	}

	for i := 0; i < n; i++ {
		a, b := verts[i], verts[(i+1)%n]
		g.edgeUse[undirectedOf(a, b)]++
		g.dirEdgeUse[directedEdge{a, b}]++
	}
	return verts, true
}

// reverseTail reverses verts[1:], leaving the leading vertex fixed — the
// single reversal an orientation conflict is allowed to try.
func reverseTail(verts []meshio.VertexID) {
	for i, j := 1, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}

func undirectedOf(a, b meshio.VertexID) undirectedEdge {
	if a < b {
		return undirectedEdge{a, b}
	}
	return undirectedEdge{b, a}
}
