package ctxfst

import (
	"sort"

	"github.com/katalvlaran/ctxfst/fst"
)

// ActiveStates maps a state handle to the best accumulated score known to
// reach it at the current decoding step. It is per-hypothesis private
// state: created for one hypothesis, threaded through its Step calls, and
// discarded when the hypothesis is pruned. One hypothesis must not be
// stepped concurrently from two goroutines; cross-thread fan-out requires
// cloning the map or serializing access externally.
type ActiveStates map[int]float64

// Clone returns an independent copy, for callers forking a hypothesis.
func (as ActiveStates) Clone() ActiveStates {
	out := make(ActiveStates, len(as))
	for s, score := range as {
		out[s] = score
	}

	return out
}

// NewActiveStates returns the initial map of a fresh hypothesis: the
// start state at score 0. On a nil or empty graph it returns an empty
// map, which keeps every subsequent Step on the (0, 0) fast path.
func (g *Graph) NewActiveStates() ActiveStates {
	if g == nil || g.automaton == nil {
		return ActiveStates{}
	}

	return ActiveStates{g.automaton.Start(): 0}
}

// Step advances active by one token and returns the score bonuses of this
// frame plus the next active-state map. It runs once per frame per
// hypothesis and is the hot path of context biasing.
//
// For every (state, score) entry, every outgoing arc that either matches
// tokenID or is an escape arc produces candidate = score + arc weight:
//
//   - partial is the maximum candidate seen, rewarding progress down any
//     matching or escaping path before a phrase completes;
//   - a candidate reaching the final state raises full instead of being
//     retained — a completed match resolves within this call;
//   - any other target keeps the maximum of its candidates, and on an
//     exact tie the first writer wins.
//
// Active states are visited in ascending handle order, so identical
// inputs yield bit-identical outputs regardless of map iteration order.
// Step never mutates active or the graph. On a nil graph or empty active
// map it returns (0, 0) and an empty map.
//
// All handles in active must originate from this graph; foreign handles
// are a caller contract violation with undefined scoring.
func (g *Graph) Step(active ActiveStates, tokenID int) (partial, full float64, next ActiveStates) {
	if g == nil || g.automaton == nil || len(active) == 0 {
		return 0, 0, ActiveStates{}
	}

	a := g.automaton
	next = make(ActiveStates, len(active))

	states := make([]int, 0, len(active))
	for s := range active {
		states = append(states, s)
	}
	sort.Ints(states)

	for _, s := range states {
		score := active[s]
		for _, arc := range a.Arcs(s) {
			if arc.Kind != fst.Escape && arc.Label != tokenID {
				continue
			}
			candidate := score + arc.Weight
			if candidate > partial {
				partial = candidate
			}
			if a.IsFinal(arc.Next) {
				if candidate > full {
					full = candidate
				}

				continue
			}
			if old, ok := next[arc.Next]; !ok || candidate > old {
				next[arc.Next] = candidate
			}
		}
	}

	return partial, full, next
}
