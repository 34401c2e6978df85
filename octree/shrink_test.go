package octree_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/octree"
	"github.com/stretchr/testify/require"
)

// countReachableLeaves walks the live tree (following only attached
// children) and counts leaves, ignoring any detached arena nodes left
// behind by a merge.
func countReachableLeaves(s *octree.Store, idx int32) int {
	n := s.Node(idx)
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		if c >= 0 {
			total += countReachableLeaves(s, c)
		}
	}
	return total
}

func TestShrinkNeverMergesMoreThanPops(t *testing.T) {
	s, g := sphereAt(4, 0.6)
	queue := octree.Construct(s, g, nil)

	stats := octree.Shrink(s, queue, nil)
	require.GreaterOrEqual(t, stats.Popped, stats.Merged)
}

func TestShrinkDoesNotIncreaseReachableLeafCount(t *testing.T) {
	s, g := sphereAt(4, 0.6)
	queue := octree.Construct(s, g, nil)
	before := countReachableLeaves(s, s.RootIndex())

	octree.Shrink(s, queue, nil)
	after := countReachableLeaves(s, s.RootIndex())

	require.LessOrEqual(t, after, before)
}

func TestShrinkOnEmptyQueueIsNoop(t *testing.T) {
	s, err := octree.NewStore(2)
	require.NoError(t, err)
	stats := octree.Shrink(s, nil, nil)
	require.Equal(t, 0, stats.Popped)
	require.Equal(t, 0, stats.Merged)
}
