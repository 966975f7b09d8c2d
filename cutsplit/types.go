// Package cutsplit implements the CutSplit engine: a binary decision tree
// that cuts on a median endpoint value per level, duplicating rules whose
// range straddles the cut into both children. See §4.3 of the spec for the
// exact build heuristic and §9 for the tie-break rule at the root.
package cutsplit

import "github.com/fivetuple/classify/rule"

// defaultLeafThreshold and defaultMaxDepth match the spec's CutSplit
// parameters (§4.3): a leaf holds at most 10 rules, and the tree never
// exceeds depth 20.
const (
	defaultLeafThreshold = 10
	defaultMaxDepth      = 20
)

// config holds CutSplit's two build-time tunables. Both are overridable
// via functional options so callers can trade tree depth against leaf scan
// cost without touching the builder itself.
type config struct {
	leafThreshold int
	maxDepth      int
}

func defaultConfig() config {
	return config{leafThreshold: defaultLeafThreshold, maxDepth: defaultMaxDepth}
}

// Option configures the CutSplit builder.
type Option func(*config)

// WithLeafThreshold overrides the maximum rule count a leaf may hold
// before the builder stops subdividing.
func WithLeafThreshold(n int) Option {
	return func(c *config) { c.leafThreshold = n }
}

// WithMaxDepth overrides the maximum tree depth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// node is a tagged-variant tree node: leaf==true means rules holds the
// terminal rule list; leaf==false means dim/cutVal/left/right are live.
// A single bool discriminant, checked once per descent step, is the
// contract here — no subtype polymorphism on the classify hot path.
type node struct {
	leaf  bool
	rules []rule.Rule

	dim     rule.Dimension
	cutVal  uint32
	left    *node
	right   *node
}
