package extract_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/extract"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/octree"
)

// BenchmarkWalk measures BFS triangulation throughput over a fixed
// constructed-and-shrunk sphere octree, building the fixture outside the
// timer and walking it inside.
func BenchmarkWalk(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s, g, oracle := sphereGrid(b, 5, 0.6)
		queue := octree.Construct(s, g, nil)
		octree.Shrink(s, queue, nil)
		mesh := meshio.NewMesh()
		b.StartTimer()
		extract.Walk(s, g, oracle, mesh, extract.QuantScale, nil)
	}
}
