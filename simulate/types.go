// Package simulate is the deterministic, seeded workload generator used
// to exercise and cross-validate the classifier engines (§6 of the spec).
// It is the one external-collaborator surface the spec names explicitly;
// everything else in this module only ever consumes []rule.Rule and
// rule.FiveTuple values, never a Simulator.
//
// Determinism follows the same contract the teacher's builder package
// gives its fixture generators: a Simulator owns a private *rand.Rand
// seeded once at construction, so two Simulators built from the same seed
// produce byte-identical rule and packet sequences, and nothing here
// touches global RNG state.
package simulate

import "math/rand"

// Protocol numbers used by the generator and by rule construction.
const (
	ProtoTCP  uint8 = 6
	ProtoUDP  uint8 = 17
	ProtoIGMP uint8 = 2
	ProtoICMP uint8 = 1
)

// Address constants the generator's scenarios are built around.
const (
	// lanBase is 192.168.0.0, the base of the simulated LAN range.
	lanBase uint32 = 0xC0A80000
	// multicastMin/multicastMax bound 224.0.0.0/4, the IPv4 multicast block.
	multicastMin uint32 = 0xE0000000
	multicastMax uint32 = 0xEFFFFFFF
)

// Simulator generates rule sets and packet sequences deterministically
// from a seed.
type Simulator struct {
	rng *rand.Rand
}

// New returns a Simulator seeded from seed. Two Simulators built from the
// same seed produce identical output for the same sequence of calls.
func New(seed uint64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(int64(seed)))}
}
