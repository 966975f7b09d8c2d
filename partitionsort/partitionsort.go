package partitionsort

import (
	"github.com/fivetuple/classify/classifier"
	"github.com/fivetuple/classify/rule"
)

// Classifier is a single-dimension interval tree chosen to minimize the
// worst-case per-node rule count. The spec's §4.7 rationale permits
// extending this to several partitions (one interval tree per extra
// dimension, minimum-priority match taken across all of them); this
// implementation keeps the simplified single-partition V1.
type Classifier struct {
	root *node
	dim  rule.Dimension
}

var _ classifier.Classifier = (*Classifier)(nil)

// Build chooses the dimension minimizing the tree's worst-case per-node
// rule count and constructs the interval tree over it. An empty rule set
// produces a Classifier whose Classify always reports no match.
func Build(rules []rule.Rule) (*Classifier, error) {
	if len(rules) == 0 {
		return &Classifier{}, nil
	}

	cp := make([]rule.Rule, len(rules))
	copy(cp, rules)

	root, dim := chooseBestTree(cp)
	return &Classifier{root: root, dim: dim}, nil
}

// Classify performs a standard interval-tree stabbing query: at each node
// it full-match-verifies every rule stored there (tracking the
// lowest-priority match seen), then descends to the one child whose side
// of center the packet's value falls on — left if less, right if
// greater, no further descent if equal.
func (c *Classifier) Classify(t rule.FiveTuple) (rule.Action, bool) {
	if c.root == nil {
		return 0, false
	}

	val := t.Field(c.dim)
	var best *rule.Rule

	cur := c.root
	for cur != nil {
		for i := range cur.rules {
			r := &cur.rules[i]
			if !r.Matches(t) {
				continue
			}
			if best == nil || r.Priority < best.Priority {
				best = r
			}
		}

		switch {
		case val < cur.center:
			cur = cur.left
		case val > cur.center:
			cur = cur.right
		default:
			cur = nil
		}
	}

	if best == nil {
		return 0, false
	}
	return best.Action, true
}
