package extract_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/extract"
	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/octree"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/katalvlaran/smcoctree/voxelgrid"
	"github.com/stretchr/testify/require"
)

func sphereGrid(t testing.TB, depth int, radius float64) (*octree.Store, *voxelgrid.Grid, field.Oracle) {
	t.Helper()
	s, err := octree.NewStore(depth)
	require.NoError(t, err)
	scale := s.Scale()
	step := 2.0 / float64(scale)
	oracle := field.NewImplicitOracle(func(p vec.Point) float64 { return p.Norm() }, radius)
	g, err := voxelgrid.New(oracle, scale, vec.New(-1, -1, -1), step)
	require.NoError(t, err)
	return s, g, oracle
}

func TestWalkExtractsNonEmptyManifoldSphere(t *testing.T) {
	s, g, oracle := sphereGrid(t, 4, 0.6)
	queue := octree.Construct(s, g, nil)
	octree.Shrink(s, queue, nil)

	mesh := meshio.NewMesh()
	stats, err := extract.Walk(s, g, oracle, mesh, extract.QuantScale, nil)
	require.NoError(t, err)

	require.Greater(t, stats.Faces, 0, "a sphere crossing the grid must produce triangles")
	require.Greater(t, stats.Vertices, 0)
	require.Equal(t, mesh.FaceCount(), stats.Faces)
	require.Equal(t, mesh.VertexCount(), stats.Vertices)

	// every face must resolve to existing vertices (mesh.Triangle panics on
	// an invalid 1-based id) with no NaN coordinates.
	for i := 0; i < mesh.FaceCount(); i++ {
		a, b, c := mesh.Triangle(i)
		for _, p := range []vec.Point{a, b, c} {
			require.False(t, p.X != p.X || p.Y != p.Y || p.Z != p.Z, "no NaN vertex coordinates")
		}
	}

	// edge-manifold spot check: no undirected edge used more than twice.
	edgeUse := map[[2]meshio.VertexID]int{}
	for i := 0; i < mesh.FaceCount(); i++ {
		f := mesh.Faces[i]
		for k := 0; k < 3; k++ {
			a, b := f.Vertices[k], f.Vertices[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			edgeUse[[2]meshio.VertexID{a, b}]++
		}
	}
	for edge, use := range edgeUse {
		require.LessOrEqualf(t, use, 2, "edge %v used %d times, exceeds manifold cap", edge, use)
	}
}

func TestWalkReportsProgressAndVertexCount(t *testing.T) {
	s, g, oracle := sphereGrid(t, 4, 0.6)
	queue := octree.Construct(s, g, nil)
	octree.Shrink(s, queue, nil)

	mesh := meshio.NewMesh()
	var last extract.WalkStats
	stats, err := extract.Walk(s, g, oracle, mesh, extract.QuantScale, func(st extract.WalkStats) {
		last = st
	})
	require.NoError(t, err)
	require.Equal(t, stats, last, "final progress callback must report the same totals as the return value")
}

func TestWalkRejectsNilSink(t *testing.T) {
	s, g, oracle := sphereGrid(t, 2, 0.6)
	_, err := extract.Walk(s, g, oracle, nil, extract.QuantScale, nil)
	require.ErrorIs(t, err, extract.ErrNoSink)
}

func TestWalkOnAllInteriorFieldProducesNoFaces(t *testing.T) {
	// radius larger than the cube diagonal: every cell is fully inside,
	// so the surface never crosses the domain.
	s, g, oracle := sphereGrid(t, 3, 100)
	queue := octree.Construct(s, g, nil)
	octree.Shrink(s, queue, nil)

	mesh := meshio.NewMesh()
	stats, err := extract.Walk(s, g, oracle, mesh, extract.QuantScale, nil)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Faces)
	require.Equal(t, 0, stats.Vertices)
}
