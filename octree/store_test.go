package octree_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/octree"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRejectsInvalidDepth(t *testing.T) {
	_, err := octree.NewStore(0)
	require.ErrorIs(t, err, octree.ErrInvalidDepth)

	_, err = octree.NewStore(10)
	require.ErrorIs(t, err, octree.ErrInvalidDepth)
}

func TestNewStoreRootSpansFullCube(t *testing.T) {
	s, err := octree.NewStore(3)
	require.NoError(t, err)
	require.Equal(t, 8, s.Scale())

	root := s.Node(s.RootIndex())
	require.Equal(t, octree.Range{XMin: 0, XMax: 7, YMin: 0, YMax: 7, ZMin: 0, ZMax: 7}, root.Range)
	require.True(t, root.IsLeaf())
}

func TestCreateToLeafBuildsChainAndIsIdempotent(t *testing.T) {
	s, err := octree.NewStore(2)
	require.NoError(t, err)

	idx1 := s.CreateToLeaf(1, 2, 3)
	idx2 := s.CreateToLeaf(1, 2, 3)
	require.Equal(t, idx1, idx2, "revisiting the same voxel must not allocate a new leaf")

	leaf := s.Node(idx1)
	require.True(t, leaf.Range.IsSingleVoxel())
	require.Equal(t, 1, leaf.Range.XMin)
	require.Equal(t, 2, leaf.Range.YMin)
	require.Equal(t, 3, leaf.Range.ZMin)
}

func TestCreateToLeafDistinctVoxelsGetDistinctLeaves(t *testing.T) {
	s, err := octree.NewStore(2)
	require.NoError(t, err)

	a := s.CreateToLeaf(0, 0, 0)
	b := s.CreateToLeaf(3, 3, 3)
	require.NotEqual(t, a, b)
}
