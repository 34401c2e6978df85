// Package octree implements the Octree Store, tree construction, and
// the planar-merge Shrink pass.
//
// Nodes live in a single arena slice rather than behind pointers: parent
// and child links are int32 indices into that slice, with -1 meaning
// "absent". An arena of nodes with integer indices avoids cyclic
// parent/child pointers entirely — the parent link is a back-index and
// never an ownership edge. Ownership of every node belongs to the
// Store; the tree is a data relation over indices, which also means the
// whole structure is trivially relocatable and requires no recursive
// destructor.
//
// The arena follows the same shape as a flat-slice graph store with
// integer handles instead of pointers and constructors that pre-size
// the backing slice where the final size is known.
package octree
