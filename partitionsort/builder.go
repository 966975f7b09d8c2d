package partitionsort

import (
	"sort"

	"github.com/fivetuple/classify/rule"
)

// allDimensions is iterated in ascending index order so that, combined
// with a strict "<" improvement test, a tie in worst-case bucket size
// resolves to the lower-indexed dimension — the §9 tie-break rule.
var allDimensions = []rule.Dimension{rule.DimSrcIP, rule.DimDstIP, rule.DimSrcPort, rule.DimDstPort, rule.DimProto}

// chooseBestTree builds one interval tree per dimension and keeps the one
// minimizing the maximum per-node rule count across the whole tree.
func chooseBestTree(rules []rule.Rule) (*node, rule.Dimension) {
	bestScore := int(^uint(0) >> 1) // math.MaxInt, inlined to avoid importing math for one constant
	var bestTree *node
	var bestDim rule.Dimension

	for _, dim := range allDimensions {
		tree := buildTree(rules, dim)
		score := maxBucketSize(tree)
		if score < bestScore {
			bestScore = score
			bestTree = tree
			bestDim = dim
		}
	}

	return bestTree, bestDim
}

// buildTree recursively partitions rules around the median of all their
// endpoints in dimension dim: ranges entirely below the median go left,
// entirely above go right, and ranges straddling it stay at this node.
// A rule whose range in dim is inverted (Min > Max) matches nothing and is
// dropped, so every level strictly shrinks the rule set.
func buildTree(rules []rule.Rule, dim rule.Dimension) *node {
	if len(rules) == 0 {
		return nil
	}

	endpoints := make([]uint32, 0, len(rules)*2)
	for _, r := range rules {
		rg := r.Range32(dim)
		endpoints = append(endpoints, rg.Min, rg.Max)
	}
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i] < endpoints[j] })
	center := endpoints[len(endpoints)/2]

	var left, right, atCenter []rule.Rule
	for _, r := range rules {
		rg := r.Range32(dim)
		switch {
		case rg.Min > rg.Max:
			// Inverted range: contains no value, so it can never match.
		case rg.Max < center:
			left = append(left, r)
		case rg.Min > center:
			right = append(right, r)
		default:
			atCenter = append(atCenter, r)
		}
	}

	return &node{
		center: center,
		rules:  atCenter,
		left:   buildTree(left, dim),
		right:  buildTree(right, dim),
	}
}

// maxBucketSize returns the largest per-node rule count anywhere in the
// tree rooted at n, the score chooseBestTree minimizes.
func maxBucketSize(n *node) int {
	if n == nil {
		return 0
	}
	m := len(n.rules)
	if l := maxBucketSize(n.left); l > m {
		m = l
	}
	if r := maxBucketSize(n.right); r > m {
		m = r
	}
	return m
}
