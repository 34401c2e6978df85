package octree

// Store is the arena owning every node of one octree. Node 0 is always
// the root.
type Store struct {
	nodes    []Node
	maxDepth int
	scale    int
}

// NewStore allocates a Store whose root spans the full [0, scale-1]^3
// voxel cube at the given maxDepth (so scale = 2^maxDepth). Returns
// ErrInvalidDepth if maxDepth is outside [1,9].
func NewStore(maxDepth int) (*Store, error) {
	if maxDepth < 1 || maxDepth > 9 {
		return nil, ErrInvalidDepth
	}
	scale := 1 << uint(maxDepth)
	s := &Store{
		nodes:    make([]Node, 0, scale*scale), // heuristic preallocation
		maxDepth: maxDepth,
		scale:    scale,
	}
	root := Node{
		Parent:        nilIndex,
		IndexInParent: -1,
		LayerIndex:    maxDepth,
		Range:         Range{0, scale - 1, 0, scale - 1, 0, scale - 1},
	}
	for i := range root.Children {
		root.Children[i] = nilIndex
	}
	s.nodes = append(s.nodes, root)
	return s, nil
}

// Scale returns 2^maxDepth, the lattice side the store was built for.
func (s *Store) Scale() int { return s.scale }

// MaxDepth returns the store's configured depth.
func (s *Store) MaxDepth() int { return s.maxDepth }

// RootIndex returns the arena index of the root node (always 0).
func (s *Store) RootIndex() int32 { return 0 }

// Node returns a pointer to the node at idx. The pointer is invalidated
// by any subsequent call that grows the arena (CreateToLeaf); callers
// must re-fetch after such calls rather than holding it across one.
func (s *Store) Node(idx int32) *Node {
	return &s.nodes[idx]
}

// Len returns the number of nodes currently in the arena.
func (s *Store) Len() int { return len(s.nodes) }

// indexOn extracts the 3-bit child index for voxel coordinate (x,y,z) at
// the given bit position, matching the reference get_index_on: bit 0 of
// the result from x, bit 1 from y, bit 2 from z.
func indexOn(x, y, z, bitIndex int) int {
	ret := 0
	if x&(1<<uint(bitIndex)) != 0 {
		ret |= 1
	}
	if y&(1<<uint(bitIndex)) != 0 {
		ret |= 2
	}
	if z&(1<<uint(bitIndex)) != 0 {
		ret |= 4
	}
	return ret
}

// initChildRange computes child's Range from parent's Range and its
// octant index, matching the reference init_child_range.
func initChildRange(parent Range, index int) Range {
	dx := (parent.XMax - parent.XMin + 1) >> 1
	dy := (parent.YMax - parent.YMin + 1) >> 1
	dz := (parent.ZMax - parent.ZMin + 1) >> 1
	var r Range
	if index&1 == 0 {
		r.XMin, r.XMax = parent.XMin, parent.XMin+dx-1
	} else {
		r.XMin, r.XMax = parent.XMin+dx, parent.XMax
	}
	if index&2 == 0 {
		r.YMin, r.YMax = parent.YMin, parent.YMin+dy-1
	} else {
		r.YMin, r.YMax = parent.YMin+dy, parent.YMax
	}
	if index&4 == 0 {
		r.ZMin, r.ZMax = parent.ZMin, parent.ZMin+dz-1
	} else {
		r.ZMin, r.ZMax = parent.ZMin+dz, parent.ZMax
	}
	return r
}

// CreateToLeaf walks from the root down to the finest-level leaf
// containing voxel (x,y,z), allocating any missing ancestor chain along
// the way, and returns that leaf's arena index.
func (s *Store) CreateToLeaf(x, y, z int) int32 {
	cur := s.RootIndex()
	for i := 1; i <= s.maxDepth; i++ {
		bit := s.maxDepth - i
		idx := indexOn(x, y, z, bit)
		child := s.nodes[cur].Children[idx]
		if child == nilIndex {
			childRange := initChildRange(s.nodes[cur].Range, idx)
			newNode := Node{
				Parent:        cur,
				IndexInParent: idx,
				LayerIndex:    s.nodes[cur].LayerIndex - 1,
				Range:         childRange,
			}
			for k := range newNode.Children {
				newNode.Children[k] = nilIndex
			}
			newIdx := int32(len(s.nodes))
			s.nodes = append(s.nodes, newNode)
			s.nodes[cur].Children[idx] = newIdx
			child = newIdx
		}
		cur = child
	}
	return cur
}

// ClearChildren detaches all of node idx's children (the node becomes a
// leaf). The child nodes themselves remain in the arena, unreachable;
// the arena is freed wholesale when the Store is dropped.
func (s *Store) ClearChildren(idx int32) {
	n := &s.nodes[idx]
	for i := range n.Children {
		n.Children[i] = nilIndex
	}
}
