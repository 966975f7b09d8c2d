// Package tuplemerge implements the TupleMerge / TSS engine: rules are
// decomposed into Cartesian products of per-dimension CIDR-like prefixes,
// each combination identifying a "tuple" (a vector of prefix lengths) that
// keys one hash table. Compatible tuples — ones that differ by few enough
// bits — are merged into a single table via subsumption, bounding the
// number of tables a query must probe. See §4.6 of the spec.
package tuplemerge

// defaultMaxMergeBits is MAX_MERGE_BITS from §4.6: the most total prefix
// bits a rule's natural tuple may give up to join an existing, shorter
// table.
const defaultMaxMergeBits = 12

// config holds TupleMerge's one build-time tunable.
type config struct {
	maxMergeBits int
}

func defaultConfig() config {
	return config{maxMergeBits: defaultMaxMergeBits}
}

// Option configures the TupleMerge builder.
type Option func(*config)

// WithMaxMergeBits overrides the maximum total bit difference a rule's
// natural tuple may give up to be merged into an existing table.
func WithMaxMergeBits(n int) Option {
	return func(c *config) { c.maxMergeBits = n }
}

// tupleLen is a vector of prefix lengths, one per dimension — the "Tuple"
// of §4.6. It both identifies a hash table and is compared field-by-field
// for the subsumption test.
type tupleLen struct {
	srcIP    uint32
	dstIP    uint32
	srcPort  uint32
	dstPort  uint32
	proto    uint32
}

// subsumes reports whether t (an existing table's tuple) is a per-field
// subset of other (a rule's natural tuple): t.len_i <= other.len_i in
// every dimension.
func (t tupleLen) subsumes(other tupleLen) bool {
	return t.srcIP <= other.srcIP &&
		t.dstIP <= other.dstIP &&
		t.srcPort <= other.srcPort &&
		t.dstPort <= other.dstPort &&
		t.proto <= other.proto
}

// bitDiff returns the total bit difference Σ(other.len_i - t.len_i),
// assuming t.subsumes(other) so every term is non-negative.
func (t tupleLen) bitDiff(other tupleLen) int {
	return int(other.srcIP-t.srcIP) +
		int(other.dstIP-t.dstIP) +
		int(other.srcPort-t.srcPort) +
		int(other.dstPort-t.dstPort) +
		int(other.proto-t.proto)
}

// maskedKey is the masked value of the five fields for one tuple's hash
// table — the "TupleKey" of §4.6.
type maskedKey struct {
	srcIP    uint32
	dstIP    uint32
	srcPort  uint16
	dstPort  uint16
	proto    uint8
}
