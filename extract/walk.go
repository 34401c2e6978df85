package extract

import (
	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/octree"
	"github.com/katalvlaran/smcoctree/voxelgrid"
)

// WalkStats reports what Walk did, for the root package's ProgressFunc
// hook.
type WalkStats struct {
	VisitedNodes  int
	VisitedLeaves int
	Faces         int
	Vertices      int
	Rejected      int
}

// Walk breadth-first traverses the octree rooted at s.RootIndex(),
// triangulating every leaf and committing accepted faces into sink
// through a fresh Dedup and Guard. For a single-voxel leaf it recomputes
// the finest cell configuration directly from grid rather than trusting
// any stale Parms.Config, since a stored config is only guaranteed
// current for leaves that were never subsequently merged away and back.
// progress, if non-nil, is invoked periodically with cumulative stats.
func Walk(s *octree.Store, grid *voxelgrid.Grid, oracle field.Oracle, sink meshio.MeshSink, quantScale float64, progress func(WalkStats)) (WalkStats, error) {
	if sink == nil {
		return WalkStats{}, ErrNoSink
	}

	dedup := NewDedup(sink, quantScale)
	guard := NewGuard()
	faceID := 1
	var stats WalkStats

	queue := []int32{s.RootIndex()}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		node := s.Node(idx)
		stats.VisitedNodes++

		if node.IsLeaf() {
			stats.VisitedLeaves++
			faces, rejected := walkLeafVoxels(node, grid, oracle, dedup, guard, sink, &faceID)
			stats.Faces += faces
			stats.Rejected += rejected
		} else {
			for _, c := range node.Children {
				if c != -1 {
					queue = append(queue, c)
				}
			}
		}

		if progress != nil && stats.VisitedNodes%4096 == 0 {
			stats.Vertices = dedup.Count()
			progress(stats)
		}
	}

	stats.Vertices = dedup.Count()
	if progress != nil {
		progress(stats)
	}
	return stats, nil
}

// walkLeafVoxels triangulates one leaf node: a single-voxel leaf
// contributes at most one cell, a merged leaf is triangulated once as a
// whole via its stored planar signature.
func walkLeafVoxels(node *octree.Node, grid *voxelgrid.Grid, oracle field.Oracle, dedup *Dedup, guard *Guard, sink meshio.MeshSink, faceID *int) (faces, rejected int) {
	if node.Range.IsSingleVoxel() {
		x, y, z := node.Range.XMin, node.Range.YMin, node.Range.ZMin
		cfg := grid.CellConfig(x, y, z)
		if cfg == 0 || cfg == 255 {
			return 0, 0
		}
		return triangulateSingleVoxel(x, y, z, cfg, grid, oracle, dedup, guard, sink, faceID)
	}
	return triangulateMergedLeaf(node, grid, dedup, guard, sink, faceID)
}
