// Package classify provides six packet-classification engines that share
// one contract: build a Classifier from a slice of Rules, then classify a
// FiveTuple against it.
//
//	rule/          — Range, Rule, Action, Dimension, FiveTuple: the shared data model
//	prefix/        — CIDR-like range-to-prefix decomposition and masking arithmetic
//	classifier/    — the Classifier interface every engine implements
//	linear/        — the reference oracle: priority-sorted linear scan
//	cutsplit/      — binary tree, median-endpoint cuts, straddling rules duplicated
//	hicuts/        — multiway tree, equal-width stride cuts per level
//	hypersplit/    — binary tree, cost-minimizing pivot search over a bounded sample
//	tuplemerge/    — prefix-tuple hash tables with subsumption merging
//	partitionsort/ — single-dimension interval tree, dimension chosen automatically
//	simulate/      — deterministic, seeded rule and packet generation for testing
//
// Every engine's Classifier must agree with linear's on every FiveTuple:
// whichever rule has the lowest Priority value among those matching wins,
// or no match at all if none do. That agreement, not any one engine's
// internal data structure, is what the package is actually for — pick
// linear when you want a readable baseline, and one of the tree or
// hash-table engines when you want query-time performance at scale.
//
// A Classifier is immutable once Build returns and safe to call from many
// goroutines at once; nothing under Classify allocates or mutates shared
// state.
package classify
