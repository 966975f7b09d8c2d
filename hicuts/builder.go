package hicuts

import "github.com/fivetuple/classify/rule"

// candidateCuts is the set of stride counts HiCuts tries at each node
// (§4.4): powers of two from 2 to 16.
var candidateCuts = []uint32{2, 4, 8, 16}

func buildNode(rules []rule.Rule, depth int, ranges [5]domain, cfg config) *node {
	if len(rules) <= cfg.leafThreshold || depth >= cfg.maxDepth {
		return &node{leaf: true, rules: rules}
	}

	dim, numCuts, ok := selectDimensionAndCuts(rules, ranges)
	if !ok {
		return &node{leaf: true, rules: rules}
	}

	d := ranges[dim]
	width := uint64(d.max) - uint64(d.min) + 1
	step := uint32(width / uint64(numCuts))

	children := make([]*node, numCuts)
	for i := uint32(0); i < numCuts; i++ {
		cMin := d.min + i*step
		cMax := d.max
		if i != numCuts-1 {
			cMax = d.min + (i+1)*step - 1
		}

		var childRules []rule.Rule
		for _, r := range rules {
			if ruleOverlaps(r, dim, cMin, cMax) {
				childRules = append(childRules, r)
			}
		}

		childRanges := ranges
		childRanges[dim] = domain{min: cMin, max: cMax}
		children[i] = buildNode(childRules, depth+1, childRanges, cfg)
	}

	return &node{
		leaf:     false,
		dim:      dim,
		start:    d.min,
		step:     step,
		numCuts:  numCuts,
		children: children,
	}
}

// selectDimensionAndCuts tries every dimension whose residual width is
// greater than 1, at every candidate stride count, and picks the
// (dimension, numCuts) pair minimizing the maximum rule occupancy across
// its bins — subject to that maximum being strictly less than len(rules),
// i.e. the cut must actually make progress.
func selectDimensionAndCuts(rules []rule.Rule, ranges [5]domain) (rule.Dimension, uint32, bool) {
	dims := []rule.Dimension{rule.DimSrcIP, rule.DimDstIP, rule.DimSrcPort, rule.DimDstPort, rule.DimProto}

	bestDim := rule.DimSrcIP
	var bestCuts uint32
	minMaxRules := len(rules) + 1
	found := false

	for _, dim := range dims {
		d := ranges[dim]
		if d.min >= d.max {
			continue
		}
		width := uint64(d.max) - uint64(d.min) + 1

		for _, cuts := range candidateCuts {
			if width < uint64(cuts) {
				continue
			}
			step := uint32(width / uint64(cuts))

			maxBin := 0
			for i := uint32(0); i < cuts; i++ {
				cMin := d.min + i*step
				cMax := d.max
				if i != cuts-1 {
					cMax = d.min + (i+1)*step - 1
				}
				count := 0
				for _, r := range rules {
					if ruleOverlaps(r, dim, cMin, cMax) {
						count++
					}
				}
				if count > maxBin {
					maxBin = count
				}
			}

			if maxBin < minMaxRules && maxBin < len(rules) {
				minMaxRules = maxBin
				bestDim = dim
				bestCuts = cuts
				found = true
			}
		}
	}

	return bestDim, bestCuts, found
}

// ruleOverlaps reports whether rule r's range on dim overlaps the closed
// bin [binMin, binMax].
func ruleOverlaps(r rule.Rule, dim rule.Dimension, binMin, binMax uint32) bool {
	rg := r.Range32(dim)
	return rg.Min <= binMax && rg.Max >= binMin
}
