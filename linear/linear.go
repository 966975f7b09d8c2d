// Package linear implements the reference oracle classifier: rules sorted
// ascending by priority, scanned in order, first match wins. Every other
// engine in this module is tested for agreement against Linear — it is
// intentionally the simplest package here, the same role bfs/dfs play as
// the baseline traversal the teacher's richer algorithms (dijkstra, flow)
// are checked against on small fixtures.
package linear

import (
	"sort"

	"github.com/fivetuple/classify/classifier"
	"github.com/fivetuple/classify/rule"
)

// Classifier stores rules sorted ascending by Priority and scans linearly.
type Classifier struct {
	rules []rule.Rule
}

var _ classifier.Classifier = (*Classifier)(nil)

// Build returns a Classifier over a priority-sorted copy of rules. The
// sort is stable so rules sharing a priority retain the caller's
// insertion order, matching §3's tie-break rule.
func Build(rules []rule.Rule) (*Classifier, error) {
	sorted := make([]rule.Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return &Classifier{rules: sorted}, nil
}

// Classify scans rules in priority order and returns the first match.
func (c *Classifier) Classify(t rule.FiveTuple) (rule.Action, bool) {
	for _, r := range c.rules {
		if r.Matches(t) {
			return r.Action, true
		}
	}
	return 0, false
}
