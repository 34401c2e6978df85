package smcoctree

import "time"

// Stats reports diagnostic counters and a timing breakdown for one
// Extract call, as structured data rather than progress lines printed
// to stdout.
type Stats struct {
	// TotalCells and BoundaryCells come from tree construction.
	TotalCells    int
	BoundaryCells int

	// Popped and Merged come from the shrink / planar-merge pass.
	Popped int
	Merged int

	// VisitedNodes, VisitedLeaves, Faces, Vertices, and Rejected come from
	// the Surface Extractor's BFS walk; Rejected counts triangle candidates
	// the Manifold Guard dropped (a repeated vertex, an edge already used
	// twice, or a direction conflict a single flip cannot resolve).
	VisitedNodes  int
	VisitedLeaves int
	Faces         int
	Vertices      int
	Rejected      int

	// Construct, Shrink, and Extract are the wall-clock duration of each
	// pipeline phase; Total is the wall-clock duration of the whole
	// Extract call, including grid and store setup, so it is at least
	// their sum.
	Construct time.Duration
	Shrink    time.Duration
	Extract   time.Duration
	Total     time.Duration
}
