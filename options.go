package smcoctree

import "github.com/katalvlaran/smcoctree/extract"

// ProgressFunc receives cumulative Stats as the extraction pipeline
// progresses, called after each z-slab of construction, once when the
// merge pass finishes, and periodically during the BFS walk, plus once
// more with final totals when Extract returns. May be nil.
type ProgressFunc func(Stats)

// config holds an Extractor's tunables, built from functional Options
// applied over defaultConfig.
type config struct {
	maxDepth   int
	quantScale float64
	progress   ProgressFunc
}

func defaultConfig() config {
	return config{
		maxDepth:   6,
		quantScale: extract.QuantScale,
	}
}

// Option configures an Extractor at construction time.
type Option func(*config)

// WithMaxDepth overrides the requested octree depth. It is clamped into
// [1,9] at Extract time regardless of the value given here.
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

// WithQuantScale overrides the vertex-deduplication quantization scale
// (default extract.QuantScale = 1e10).
func WithQuantScale(scale float64) Option {
	return func(c *config) { c.quantScale = scale }
}

// WithProgress installs a ProgressFunc hook.
func WithProgress(f ProgressFunc) Option {
	return func(c *config) { c.progress = f }
}

// clampDepth applies the invalid-depth policy: maxDepth <= 0 silently
// becomes the default of 6; anything above 9 clamps to 9; a value
// already within [1,9] passes through unchanged.
func clampDepth(requested int) int {
	if requested <= 0 {
		return 6
	}
	if requested > 9 {
		return 9
	}
	return requested
}
