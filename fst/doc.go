// Package fst provides a compact weighted finite-state acceptor and a
// max-weight-preserving determinization transform.
//
// The Automaton is an arena of states indexed by integer handles; each
// state holds an ordered slice of arcs. An arc carries an explicit kind:
//
//   - Match  — consumes one token whose id equals the arc label;
//   - Escape — consumes any token, modeling abandonment of a partial
//     match at a bounded cost.
//
// The tagged kind keeps escape transitions distinct from a legitimate
// vocabulary symbol at id 0, so the blank id never does double duty.
//
// Construction is single-threaded; once built (and in particular once
// returned from Determinize) an Automaton is immutable by convention and
// safe for unsynchronized concurrent reads by any number of hypotheses.
//
// Determinize applies a subset construction over the max-plus semiring:
// the result accepts exactly the same token sequences, preserves the best
// (maximum) accepting-path weight of every accepted sequence, and has at
// most one outgoing arc per (state, symbol) pair, which bounds per-step
// matching cost during decoding.
//
// Errors (sentinel):
//
//	ErrNilAutomaton        - nil *Automaton passed to a transform.
//	ErrNoStart             - the automaton has no start state.
//	ErrStateOutOfRange     - a state handle does not exist.
//	ErrArcTargetOutOfRange - an arc points at a non-existent state.
//	ErrTooManyStates       - determinization exceeded its state budget.
package fst
