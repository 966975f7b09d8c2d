// Package hypersplit implements the HyperSplit engine: a binary decision
// tree that picks, at each level, the pivot minimizing a balanced cost
// function over a bounded sample of candidate endpoints. See §4.5 of the
// spec.
package hypersplit

import "github.com/fivetuple/classify/rule"

const (
	defaultLeafThreshold = 8
	defaultMaxDepth      = 32
)

// config holds HyperSplit's build-time tunables.
type config struct {
	leafThreshold int
	maxDepth      int
}

func defaultConfig() config {
	return config{leafThreshold: defaultLeafThreshold, maxDepth: defaultMaxDepth}
}

// Option configures the HyperSplit builder.
type Option func(*config)

// WithLeafThreshold overrides the maximum rule count a leaf may hold.
func WithLeafThreshold(n int) Option {
	return func(c *config) { c.leafThreshold = n }
}

// WithMaxDepth overrides the maximum tree depth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// node is the tagged-variant HyperSplit tree node.
type node struct {
	leaf  bool
	rules []rule.Rule

	dim   rule.Dimension
	pivot uint32
	left  *node
	right *node
}
