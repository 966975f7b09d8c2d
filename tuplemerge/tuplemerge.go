package tuplemerge

import (
	"github.com/fivetuple/classify/classifier"
	"github.com/fivetuple/classify/prefix"
	"github.com/fivetuple/classify/rule"
)

// Classifier is the TupleMerge / TSS engine: a set of prefix-tuple hash
// tables, each probed once per query.
type Classifier struct {
	ts *tableSet
}

var _ classifier.Classifier = (*Classifier)(nil)

// Build expands and inserts every rule, merging compatible tuples per the
// given Options (default MAX_MERGE_BITS = 12).
func Build(rules []rule.Rule, opts ...Option) (*Classifier, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Classifier{ts: build(rules, cfg)}, nil
}

// Classify probes every table by masking the packet's fields to that
// table's tuple lengths. Because a merge can widen a table's key beyond
// any single rule's natural prefix, every hit must be re-verified with a
// full Rule.Matches before it can win — a hit only means "reached the
// right bucket", not "matches".
func (c *Classifier) Classify(t rule.FiveTuple) (rule.Action, bool) {
	var best *rule.Rule

	for _, lens := range c.ts.order {
		table := c.ts.tables[lens]
		key := maskedKey{
			srcIP:   prefix.Mask(t.SrcIP, lens.srcIP, 32),
			dstIP:   prefix.Mask(t.DstIP, lens.dstIP, 32),
			srcPort: uint16(prefix.Mask(uint32(t.SrcPort), lens.srcPort, 16)),
			dstPort: uint16(prefix.Mask(uint32(t.DstPort), lens.dstPort, 16)),
			proto:   uint8(prefix.Mask(uint32(t.Proto), lens.proto, 8)),
		}

		bucket, ok := table[key]
		if !ok {
			continue
		}

		for i := range bucket {
			r := bucket[i]
			if best != nil && r.Priority >= best.Priority {
				// Bucket is sorted ascending by priority: every remaining
				// entry is at least this weak, so no further scan of this
				// bucket can improve on the current best.
				break
			}
			if r.Matches(t) {
				best = &bucket[i]
			}
		}
	}

	if best == nil {
		return 0, false
	}
	return best.Action, true
}
