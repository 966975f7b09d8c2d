package hicuts

import (
	"sort"

	"github.com/fivetuple/classify/classifier"
	"github.com/fivetuple/classify/rule"
)

// Classifier is the HiCuts multiway decision tree.
type Classifier struct {
	root *node
}

var _ classifier.Classifier = (*Classifier)(nil)

// Build constructs a HiCuts tree from rules using the given Options
// (defaults: leaf threshold 10, max depth 20). Rules are sorted ascending
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

	return &Classifier{root: buildNode(cp, 0, rootDomains(), cfg)}, nil
}

// Classify descends the tree iteratively: at each internal node it reads
// the packet's field for that node's dimension, computes the bin index,
// and descends to that child; at a leaf it linear-scans in stored
// (priority) order, returning the first — i.e. lowest-priority — match.
//
// val < start is unreachable under correct construction — the root domain
// covers the field's full native range, and every residual domain passed
// to a child is exactly the bin the packet was routed through, so a
// packet's field value can never fall outside the domain of the node it
// reaches. Per §9's open question, this is a programmer-error assertion,
// not a classification miss: panicking here surfaces a genuine builder bug
// instead of silently returning a wrong answer.
func (c *Classifier) Classify(t rule.FiveTuple) (rule.Action, bool) {
	cur := c.root
	for !cur.leaf {
		val := t.Field(cur.dim)
		if val < cur.start {
			panic("hicuts: packet value below node domain (invariant violation)")
		}

		idx := (val - cur.start) / cur.step
		if idx >= cur.numCuts {
			idx = cur.numCuts - 1
		}
		cur = cur.children[idx]
	}

	for _, r := range cur.rules {
		if r.Matches(t) {
			return r.Action, true
		}
	}
	return 0, false
}
