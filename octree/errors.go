package octree

import "errors"

// Sentinel errors for octree operations.
var (
	// ErrInvalidDepth indicates a non-positive or excessive tree depth.
	ErrInvalidDepth = errors.New("octree: depth must be in [1,9]")
)
