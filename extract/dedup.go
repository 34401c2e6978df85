package extract

import (
	"math"

	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/vec"
)

// QuantScale is the default quantization factor Q used to canonicalize
// emitted vertex positions into integer lattice keys.
const QuantScale = 1e10

// vertKey is the integer quantization key a world point is canonicalized
// to before being looked up in Dedup's vertex map.
type vertKey struct {
	x, y, z int64
}

// Dedup is the vertex deduplicator: it canonicalizes every
// emitted world point by quantization and returns the same VertexID for
// repeated occurrences of (quantized-)equal points, creating a fresh
// vertex in the sink only on first occurrence.
type Dedup struct {
	sink  meshio.MeshSink
	scale float64
	seen  map[vertKey]meshio.VertexID
}

// NewDedup builds a Dedup writing fresh vertices to sink, quantizing at
// scale (use QuantScale unless a caller has a specific reason not to).
func NewDedup(sink meshio.MeshSink, scale float64) *Dedup {
	return &Dedup{sink: sink, scale: scale, seen: make(map[vertKey]meshio.VertexID)}
}

// Vertex returns the VertexID for world point p, creating it in the sink
// on first occurrence of p's quantized key.
func (d *Dedup) Vertex(p vec.Point) meshio.VertexID {
	k := vertKey{
		x: int64(math.Round(p.X * d.scale)),
		y: int64(math.Round(p.Y * d.scale)),
		z: int64(math.Round(p.Z * d.scale)),
	}
	if id, ok := d.seen[k]; ok {
		return id
	}
	id := d.sink.CreateVertex(p)
	d.seen[k] = id
	return id
}

// Count returns the number of distinct vertices created so far.
func (d *Dedup) Count() int { return len(d.seen) }
