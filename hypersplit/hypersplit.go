package hypersplit

import (
	"sort"

	"github.com/fivetuple/classify/classifier"
	"github.com/fivetuple/classify/rule"
)

// Classifier is the HyperSplit binary decision tree.
type Classifier struct {
	root *node
}

var _ classifier.Classifier = (*Classifier)(nil)

// Build constructs a HyperSplit tree from rules using the given Options
// (defaults: leaf threshold 8, max depth 32). Rules are sorted ascending
// by Priority before the tree is built, the same priority-first ordering
// linear.Build uses, so a leaf's stored order already reflects win order
// and Classify's first-match scan returns the lowest-priority match.
func Build(rules []rule.Rule, opts ...Option) (*Classifier, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cp := make([]rule.Rule, len(rules))
	copy(cp, rules)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Priority < cp[j].Priority })

	return &Classifier{root: buildNode(cp, 0, cfg)}, nil
}

// Classify descends on val < pivot (left) vs val >= pivot (right), then
// linear-scans the leaf in stored (priority) order, returning the first
// — i.e. lowest-priority — match.
func (c *Classifier) Classify(t rule.FiveTuple) (rule.Action, bool) {
	cur := c.root
	for !cur.leaf {
		val := t.Field(cur.dim)
		if val < cur.pivot {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	for _, r := range cur.rules {
		if r.Matches(t) {
			return r.Action, true
		}
	}
	return 0, false
}
