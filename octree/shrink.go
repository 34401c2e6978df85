package octree

import "github.com/katalvlaran/smcoctree/mctables"

// ShrinkStats reports what Shrink did, for the root package's
// ProgressFunc hook.
type ShrinkStats struct {
	Popped int
	Merged int
}

// Shrink runs the planar-merge pass: a breadth-first worklist of
// candidate parent nodes, each tested against
// canMergeNode, merging it (absorbing its children's shared planar
// signature and detaching them) whenever all of its present children
// agree on a single normal type and d-coefficient. Termination follows directly from
// the worklist shrinking or the tree shrinking on every successful merge.
func Shrink(s *Store, queue []int32, progress func(ShrinkStats)) ShrinkStats {
	var stats ShrinkStats
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		stats.Popped++

		node := s.Node(idx)
		node.Visited = false

		if d, ok := canMergeNode(s, node); ok {
			node.Parms.Valid = true
			node.Parms.Config = calculateConfig(s, node.Children)
			node.Parms.D = d
			s.ClearChildren(idx)
			stats.Merged++

			parentIdx := node.Parent
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
	return stats
}

// canMergeNode reports whether every present child of node shares one
// normal type (and the same d-coefficient), i.e. the eight children's
// boundary surface all lies on one plane of that type. A node with no
// valid, simple children cannot merge. Matches the reference
// can_merge_node.
func canMergeNode(s *Store, node *Node) (d int, ok bool) {
	normalType := mctables.NormalNotSimple
	found := false
	for _, c := range node.Children {
		if c == nilIndex {
			continue
		}
		child := s.Node(c)
		if !child.Parms.Valid {
			return 0, false
		}
		nt := mctables.ConfigToNormalType[child.Parms.Config]
		if nt == mctables.NormalNotSimple {
			return 0, false
		}
		if !found {
			found = true
			normalType = nt
			d = child.Parms.D
		}
	}
	if !found {
		return 0, false
	}
	for _, c := range node.Children {
		if c == nilIndex {
			continue
		}
		child := s.Node(c)
		nt := mctables.ConfigToNormalType[child.Parms.Config]
		if nt != normalType || child.Parms.D != d {
			return 0, false
		}
	}
	return d, true
}

// calculateConfig synthesizes a merged parent's own cell configuration
// from its (about-to-be-detached) children, per the reference
// calculate_config: an absent child contributes either an all-inside or
// all-outside fill value, taken from the first present child's
// configuration at a fixed "mid voxel" bit position.
func calculateConfig(s *Store, children [8]int32) uint8 {
	firstCfg := uint8(0)
	firstIndex := -1
	for i, c := range children {
		if c != nilIndex && s.Node(c).Parms.Valid {
			firstCfg = s.Node(c).Parms.Config
			firstIndex = i
			break
		}
	}
	if firstIndex < 0 {
		return 0
	}

	midFlag := mctables.PointFlag[mctables.MidVoxelIndexCS[firstIndex]]
	var midValue uint8
	if firstCfg&midFlag != 0 {
		midValue = 255
	}

	var ret uint8
	for i, c := range children {
		cfg := midValue
		if c != nilIndex && s.Node(c).Parms.Valid {
			cfg = s.Node(c).Parms.Config
		}
		flag := mctables.PointFlag[mctables.VertexVoxelIndexCS[i]]
		ret |= cfg & flag
	}
	return ret
}
