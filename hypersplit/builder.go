package hypersplit

import (
	"math"
	"sort"

	"github.com/fivetuple/classify/rule"
)

// candidateSampleCap bounds how many distinct endpoint candidates are
// tried per dimension per node: candidates are sampled at a stride of
// ceil(len(candidates)/candidateSampleCap), matching §4.5.
const candidateSampleCap = 16

var hyperDimensions = []rule.Dimension{rule.DimSrcIP, rule.DimDstIP, rule.DimSrcPort, rule.DimDstPort, rule.DimProto}

func buildNode(rules []rule.Rule, depth int, cfg config) *node {
	if len(rules) <= cfg.leafThreshold || depth >= cfg.maxDepth {
		return &node{leaf: true, rules: rules}
	}

	dim, pivot, ok := findBestSplit(rules)
	if !ok {
		return &node{leaf: true, rules: rules}
	}

	left, right := splitRules(rules, dim, pivot)

	return &node{
		leaf:  false,
		dim:   dim,
		pivot: pivot,
		left:  buildNode(left, depth+1, cfg),
		right: buildNode(right, depth+1, cfg),
	}
}

// findBestSplit scans a bounded sample of candidate pivots per dimension
// and picks the one minimizing cost = max(L,R) + 0.1*(L+R), where L/R are
// the rule counts that would fall left/right of the pivot.
func findBestSplit(rules []rule.Rule) (rule.Dimension, uint32, bool) {
	bestCost := math.MaxFloat64
	var bestDim rule.Dimension
	var bestPivot uint32
	found := false

	for _, dim := range hyperDimensions {
		points := make([]uint32, 0, len(rules)*2)
		for _, r := range rules {
			rg := r.Range32(dim)
			points = append(points, rg.Min, saturatingAdd1(rg.Max))
		}
		sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
		points = dedupSorted(points)

		stride := 1
		if len(points) > candidateSampleCap {
			stride = (len(points) + candidateSampleCap - 1) / candidateSampleCap
		}

		for i := 0; i < len(points); i += stride {
			pivot := points[i]
			if pivot == 0 {
				continue
			}

			l, r := countSplit(rules, dim, pivot)
			if l == 0 || r == 0 {
				continue
			}
			if l == len(rules) && r == len(rules) {
				continue
			}

			cost := float64(max(l, r)) + 0.1*float64(l+r)
			if cost < bestCost {
				bestCost = cost
				bestDim = dim
				bestPivot = pivot
				found = true
			}
		}
	}

	return bestDim, bestPivot, found
}

func countSplit(rules []rule.Rule, dim rule.Dimension, pivot uint32) (l, r int) {
	for _, rl := range rules {
		rg := rl.Range32(dim)
		if rg.Min < pivot {
			l++
		}
		if rg.Max >= pivot {
			r++
		}
	}
	return l, r
}

func splitRules(rules []rule.Rule, dim rule.Dimension, pivot uint32) (left, right []rule.Rule) {
	for _, r := range rules {
		rg := r.Range32(dim)
		if rg.Min < pivot {
			left = append(left, r)
		}
		if rg.Max >= pivot {
			right = append(right, r)
		}
	}
	return left, right
}

func saturatingAdd1(v uint32) uint32 {
	if v == math.MaxUint32 {
		return v
	}
	return v + 1
}

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
