package voxelgrid

import "errors"

// Sentinel errors for voxelgrid operations.
var (
	// ErrInvalidScale indicates a non-positive lattice scale S.
	ErrInvalidScale = errors.New("voxelgrid: scale must be positive")
	// ErrOutOfRange indicates a lattice or cell coordinate outside the grid.
	ErrOutOfRange = errors.New("voxelgrid: coordinate out of range")
)
