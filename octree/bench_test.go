// Package octree_test benchmarks Construct and Shrink (ReportAllocs,
// timer stopped during per-iteration setup).
package octree_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/octree"
)

// BenchmarkConstruct measures dense-leaf population + merge-queue seeding
// over a fixed-size sphere field.
//
// Complexity: O(scale^3) per run, scale = 2^depth.
func BenchmarkConstruct(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s, g := sphereAt(5, 0.6)
		b.StartTimer()
		octree.Construct(s, g, nil)
	}
}

// BenchmarkShrink measures the planar-merge worklist pass following a
// fixed Construct.
func BenchmarkShrink(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s, g := sphereAt(5, 0.6)
		queue := octree.Construct(s, g, nil)
		b.StartTimer()
		octree.Shrink(s, queue, nil)
	}
}
