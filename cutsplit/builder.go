package cutsplit

import (
	"math"
	"sort"

	"github.com/fivetuple/classify/rule"
)

// cutDimensions is the enumeration order the find-best-cut search walks.
// Proto is deliberately excluded — it has very few distinct endpoints, and
// this matches the original source's find_best_cut behavior (§9, "CutSplit
// tie at root"). Ties in score are broken by this order: SrcIP, DstIP,
// SrcPort, DstPort.
var cutDimensions = []rule.Dimension{rule.DimSrcIP, rule.DimDstIP, rule.DimSrcPort, rule.DimDstPort}

func buildNode(rules []rule.Rule, depth int, cfg config) *node {
	if len(rules) <= cfg.leafThreshold || depth >= cfg.maxDepth {
		return &node{leaf: true, rules: rules}
	}

	dim, cutVal, ok := findBestCut(rules)
	if !ok {
		return &node{leaf: true, rules: rules}
	}

	left, right := partition(rules, dim, cutVal)

	return &node{
		leaf:   false,
		dim:    dim,
		cutVal: cutVal,
		left:   buildNode(left, depth+1, cfg),
		right:  buildNode(right, depth+1, cfg),
	}
}

// findBestCut picks the dimension/value pair maximizing
// score = |rules| / (L+R), where L and R are the counts of rules
// overlapping the left and right children respectively. Ties go to the
// first dimension encountered in cutDimensions order, since we only
// replace best on a strict improvement.
func findBestCut(rules []rule.Rule) (rule.Dimension, uint32, bool) {
	bestScore := -1.0
	var bestDim rule.Dimension
	var bestVal uint32
	found := false

	for _, dim := range cutDimensions {
		points := make([]uint32, 0, len(rules)*2)
		for _, r := range rules {
			rg := r.Range32(dim)
			points = append(points, rg.Min, saturatingAdd1(rg.Max))
		}
		sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
		points = dedupSorted(points)

		midIdx := len(points) / 2
		if midIdx == 0 || midIdx >= len(points) {
			continue
		}
		cutVal := points[midIdx]

		l, r := countSplit(rules, dim, cutVal)
		if l == 0 || r == 0 {
			continue
		}
		if l == len(rules) && r == len(rules) {
			continue
		}

		score := float64(len(rules)) / float64(l+r)
		if score > bestScore {
			bestScore = score
			bestDim = dim
			bestVal = cutVal
			found = true
		}
	}

	return bestDim, bestVal, found
}

// countSplit reports how many rules overlap the left child (min < cutVal)
// and the right child (max >= cutVal) of a prospective cut.
func countSplit(rules []rule.Rule, dim rule.Dimension, cutVal uint32) (l, r int) {
	for _, rl := range rules {
		rg := rl.Range32(dim)
		if rg.Min < cutVal {
			l++
		}
		if rg.Max >= cutVal {
			r++
		}
	}
	return l, r
}

// partition splits rules into the two children of a cut, duplicating any
// rule whose range straddles cutVal into both.
func partition(rules []rule.Rule, dim rule.Dimension, cutVal uint32) (left, right []rule.Rule) {
	for _, r := range rules {
		rg := r.Range32(dim)
		if rg.Min < cutVal {
			left = append(left, r)
		}
		if rg.Max >= cutVal {
			right = append(right, r)
		}
	}
	return left, right
}

// saturatingAdd1 returns v+1, clamped to math.MaxUint32 instead of
// wrapping, so the "exclusive end" endpoint of a range touching the top of
// the domain stays representable.
func saturatingAdd1(v uint32) uint32 {
	if v == math.MaxUint32 {
		return v
	}
	return v + 1
}

// dedupSorted removes adjacent duplicates from an already-sorted slice.
func dedupSorted(vals []uint32) []uint32 {
	if len(vals) == 0 {
		return vals
	}
	out := vals[:1]
	for _, v := range vals[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
