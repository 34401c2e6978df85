package octree

import (
	"github.com/katalvlaran/smcoctree/mctables"
	"github.com/katalvlaran/smcoctree/voxelgrid"
)

// ConstructStats reports what Construct did, for the root package's
// ProgressFunc hook.
type ConstructStats struct {
	TotalCells    int
	BoundaryCells int
}

// Construct walks every finest-level voxel cell of grid in z-major order,
// instantiating a leaf chain for each boundary cell (config not in
// {0,255}) and seeding a merge worklist with each newly-boundary leaf's
// parent. progress, if non-nil, is invoked after each z-slab with
// cumulative stats.
//
// Construct calls grid.Refine() once the full pass completes, resolving
// any point-state samples that were never forced to a concrete verdict
// during the sparse first pass.
func Construct(s *Store, grid *voxelgrid.Grid, progress func(ConstructStats)) []int32 {
	scale := s.Scale()
	var queue []int32
	stats := ConstructStats{TotalCells: scale * scale * scale}

	for z := 0; z < scale; z++ {
		for y := 0; y < scale; y++ {
			for x := 0; x < scale; x++ {
				cfg := grid.CellConfig(x, y, z)
				if cfg == 0 || cfg == 255 {
					continue
				}
				leafIdx := s.CreateToLeaf(x, y, z)
				leaf := s.Node(leafIdx)
				leaf.Parms.Valid = true
				leaf.Parms.Config = cfg
				if d, ok := mctables.D(x, y, z, cfg); ok {
					leaf.Parms.D = d
				}
				leaf.Visited = true
				stats.BoundaryCells++

				parentIdx := leaf.Parent
				if parentIdx != nilIndex {
					parent := s.Node(parentIdx)
					if !parent.Visited {
						parent.Visited = true
						queue = append(queue, parentIdx)
					}
				}
			}
		}
		if progress != nil {
			progress(stats)
		}
	}

	grid.Refine()
	return queue
}
