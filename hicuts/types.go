// Package hicuts implements the HiCuts engine: a multiway decision tree
// that divides the current residual range of the chosen dimension into
// equal-width strides at each level. See §4.4 of the spec for the
// dimension/stride-count selection heuristic and the query-side index
// computation.
package hicuts

import "github.com/fivetuple/classify/rule"

const (
	defaultLeafThreshold = 10
	defaultMaxDepth      = 20
)

// config holds HiCuts' build-time tunables.
type config struct {
	leafThreshold int
	maxDepth      int
}

func defaultConfig() config {
	return config{leafThreshold: defaultLeafThreshold, maxDepth: defaultMaxDepth}
}

// Option configures the HiCuts builder.
type Option func(*config)

// WithLeafThreshold overrides the maximum rule count a leaf may hold.
func WithLeafThreshold(n int) Option {
	return func(c *config) { c.leafThreshold = n }
}

// WithMaxDepth overrides the maximum tree depth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// domain tracks the residual [min, max] of one dimension as the build
// descends; root domains are the full native range of that field.
type domain struct {
	min, max uint32
}

// rootDomains returns the five dimensions' full native ranges, indexed by
// rule.Dimension, as the build's starting residual ranges.
func rootDomains() [5]domain {
	return [5]domain{
		rule.DimSrcIP:   {0, ^uint32(0)},
		rule.DimDstIP:   {0, ^uint32(0)},
		rule.DimSrcPort: {0, 65535},
		rule.DimDstPort: {0, 65535},
		rule.DimProto:   {0, 255},
	}
}

// node is the tagged-variant HiCuts tree node: leaf==true means rules is
// the terminal list; otherwise dim/start/step/numCuts/children are live.
// The query path reads exactly one discriminant per descent step.
type node struct {
	leaf  bool
	rules []rule.Rule

	dim      rule.Dimension
	start    uint32
	step     uint32
	numCuts  uint32
	children []*node
}
