// Package classifier defines the capability every engine in this module
// implements: build a structure from a rule set, then classify packets
// against it. It intentionally carries no algorithm of its own — the same
// "thin, documented facade, no hidden state" stance the teacher applies to
// core/api.go.
package classifier

import (
	"errors"

	"github.com/fivetuple/classify/rule"
)

// ErrInvalidDimension names the programmer error of using a Dimension value
// outside the five declared constants. Invalid Dimension tags are never
// produced by this module's own builders, and no Build or Classify in this
// module returns this error: rule.FiveTuple.Field reports 0 and
// rule.Rule.Range32 an empty range for an undeclared Dimension.
var ErrInvalidDimension = errors.New("classifier: invalid dimension")

// Classifier is satisfied by every engine (Linear, CutSplit, HiCuts,
// HyperSplit, TupleMerge, PartitionSort). Classify is pure, reentrant and
// must perform zero dynamic allocation: all of a classifier's memory is
// acquired once, during the call that produced it, and never mutated
// afterward. Because of that immutability, a single Classifier value may
// be called from many goroutines concurrently with no external
// synchronization — this is a documented property of the capability, not
// an internal lock any implementation needs to take.
type Classifier interface {
	// Classify returns the Action of the matching rule with the lowest
	// Priority value, or (_, false) if no rule matches t.
	Classify(t rule.FiveTuple) (rule.Action, bool)
}

// Oracle pairs a Classifier with a display name, so that cross-engine
// equivalence tests can report which engine produced a mismatch. Not
// required by any engine — purely a test-support convenience living at
// this shared layer next to the interface it wraps.
type Oracle struct {
	Name       string
	Classifier Classifier
}
