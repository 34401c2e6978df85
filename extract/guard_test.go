package extract_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/extract"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/stretchr/testify/require"
)

func TestGuardRejectsDegenerateTriangle(t *testing.T) {
	g := extract.NewGuard()
	_, ok := g.TryAccept([]meshio.VertexID{1, 1, 2})
	require.False(t, ok)
}

func TestGuardAcceptsFirstTwoFacesOnSharedEdge(t *testing.T) {
	g := extract.NewGuard()
	_, ok := g.TryAccept([]meshio.VertexID{1, 2, 3})
	require.True(t, ok)

	// second face traverses the shared edge as 2->1, opposite to the first
	// face's 1->2, so no directed edge repeats and it is accepted unflipped.
	_, ok = g.TryAccept([]meshio.VertexID{2, 1, 4})
	require.True(t, ok)
}

func TestGuardRejectsThirdFaceOnSameUndirectedEdge(t *testing.T) {
	g := extract.NewGuard()
	_, ok := g.TryAccept([]meshio.VertexID{1, 2, 3})
	require.True(t, ok)
	_, ok = g.TryAccept([]meshio.VertexID{2, 1, 4})
	require.True(t, ok)

	// a third face would push edge{1,2} usage to 3 — must reject.
	_, ok = g.TryAccept([]meshio.VertexID{1, 2, 5})
	require.False(t, ok)
}

func TestGuardRejectsUnresolvableDirectionConflict(t *testing.T) {
	g := extract.NewGuard()
	// Seed two unrelated faces so that candidate [1,2,4]'s first edge
	// (1->2) triggers a flip, but the flipped order's (1->4) edge
	// collides with the directed edge already recorded by the second
	// seed face — a single reversal cannot satisfy both.
	_, ok := g.TryAccept([]meshio.VertexID{1, 2, 9})
	require.True(t, ok)
	_, ok = g.TryAccept([]meshio.VertexID{1, 4, 7})
	require.True(t, ok)

	_, ok = g.TryAccept([]meshio.VertexID{1, 2, 4})
	require.False(t, ok)
}
