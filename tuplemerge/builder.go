package tuplemerge

import (
	"sort"

	"github.com/fivetuple/classify/prefix"
	"github.com/fivetuple/classify/rule"
)

// combo is one element of a rule's Cartesian-product expansion: the
// per-dimension prefix lengths (tupleLen) together with the prefix values
// aligned to those lengths (maskedKey), i.e. the rule's "natural" tuple
// and key before any subsumption merge is applied.
type combo struct {
	lens tupleLen
	key  maskedKey
}

// expandRule decomposes every dimension of r into its minimal prefix list
// and returns the Cartesian product across all five dimensions. A rule
// with an empty range in any dimension (min > max) decomposes to zero
// prefixes there, so expandRule returns no combos — the rule is never
// inserted into any table and therefore matches nothing, the benign
// behavior §7 requires.
func expandRule(r rule.Rule) []combo {
	srcIPs := prefix.Decompose(r.SrcIP.Min, r.SrcIP.Max, 32)
	dstIPs := prefix.Decompose(r.DstIP.Min, r.DstIP.Max, 32)
	srcPorts := prefix.Decompose(uint32(r.SrcPort.Min), uint32(r.SrcPort.Max), 16)
	dstPorts := prefix.Decompose(uint32(r.DstPort.Min), uint32(r.DstPort.Max), 16)
	protos := prefix.Decompose(uint32(r.Proto.Min), uint32(r.Proto.Max), 8)

	var combos []combo
	for _, s := range srcIPs {
		for _, d := range dstIPs {
			for _, sp := range srcPorts {
				for _, dp := range dstPorts {
					for _, pr := range protos {
						combos = append(combos, combo{
							lens: tupleLen{srcIP: s.Len, dstIP: d.Len, srcPort: sp.Len, dstPort: dp.Len, proto: pr.Len},
							key:  maskedKey{srcIP: s.Value, dstIP: d.Value, srcPort: uint16(sp.Value), dstPort: uint16(dp.Value), proto: uint8(pr.Value)},
						})
					}
				}
			}
		}
	}
	return combos
}

// tableSet is the ordered collection of tuple tables a Classifier builds.
// order records creation order so merge-target ties and query iteration
// are deterministic across runs of the same input.
type tableSet struct {
	order  []tupleLen
	tables map[tupleLen]map[maskedKey][]rule.Rule
}

func newTableSet() *tableSet {
	return &tableSet{tables: make(map[tupleLen]map[maskedKey][]rule.Rule)}
}

// findMergeTarget returns the existing table tuple that subsumes ruleLen
// with the minimum total bit difference not exceeding maxMergeBits, if
// any. Ties favor the earliest-created table (iteration follows ts.order).
func (ts *tableSet) findMergeTarget(ruleLen tupleLen, maxMergeBits int) (tupleLen, bool) {
	bestDiff := maxMergeBits + 1
	var best tupleLen
	found := false

	for _, tblLen := range ts.order {
		if !tblLen.subsumes(ruleLen) {
			continue
		}
		diff := tblLen.bitDiff(ruleLen)
		if diff <= maxMergeBits && diff < bestDiff {
			bestDiff = diff
			best = tblLen
			found = true
		}
	}

	return best, found
}

// insert places r into the table for target, keyed by the rule's combo
// key re-masked to target's (possibly shorter) lengths. Buckets are kept
// sorted ascending by priority and collisions are always appended, never
// overwritten — a merge can legitimately route distinct rules to the same
// (tuple, key) pair and every one of them must remain queryable.
func (ts *tableSet) insert(target tupleLen, c combo, r rule.Rule) {
	table, ok := ts.tables[target]
	if !ok {
		table = make(map[maskedKey][]rule.Rule)
		ts.tables[target] = table
		ts.order = append(ts.order, target)
	}

	key := maskedKey{
		srcIP:   prefix.Mask(c.key.srcIP, target.srcIP, 32),
		dstIP:   prefix.Mask(c.key.dstIP, target.dstIP, 32),
		srcPort: uint16(prefix.Mask(uint32(c.key.srcPort), target.srcPort, 16)),
		dstPort: uint16(prefix.Mask(uint32(c.key.dstPort), target.dstPort, 16)),
		proto:   uint8(prefix.Mask(uint32(c.key.proto), target.proto, 8)),
	}

	bucket := table[key]
	idx := sort.Search(len(bucket), func(i int) bool { return bucket[i].Priority >= r.Priority })
	bucket = append(bucket, rule.Rule{})
	copy(bucket[idx+1:], bucket[idx:])
	bucket[idx] = r
	table[key] = bucket
}

// build inserts every rule's full expansion, applying the subsumption
// merge described in §4.6 to each expanded combo independently.
func build(rules []rule.Rule, cfg config) *tableSet {
	ts := newTableSet()

	for _, r := range rules {
		for _, c := range expandRule(r) {
			target, ok := ts.findMergeTarget(c.lens, cfg.maxMergeBits)
			if !ok {
				target = c.lens
			}
			ts.insert(target, c, r)
		}
	}

	return ts
}
