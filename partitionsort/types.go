// Package partitionsort implements the PartitionSort engine: a 1-D
// interval tree built over a single, automatically chosen dimension. See
// §4.7 of the spec, including the "single best dimension" simplification
// and its §9 tie-break rule (lower-indexed dimension wins when multiple
// dimensions yield the same worst-case bucket size).
package partitionsort

import "github.com/fivetuple/classify/rule"

// node is one level of the interval tree: center is the stabbing value
// that separated left (max < center) from right (min > center); rules
// holds every rule whose range overlaps center itself.
type node struct {
	center uint32
	rules  []rule.Rule
	left   *node
	right  *node
}
