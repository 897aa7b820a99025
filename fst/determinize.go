package fst

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultMaxDeterminizedStates bounds the subset construction. Context
// graphs stay far below this; the cap exists because determinization of
// a weighted automaton with unbalanced cycles need not terminate.
const DefaultMaxDeterminizedStates = 1 << 16

// DeterminizeOptions configures the Determinize transform.
//
// MaxStates – upper bound on the number of result states; exceeding it
// aborts with ErrTooManyStates. Non-positive values select
// DefaultMaxDeterminizedStates.
type DeterminizeOptions struct {
	MaxStates int
}

// DefaultDeterminizeOptions returns the deterministic defaults.
func DefaultDeterminizeOptions() DeterminizeOptions {
	return DeterminizeOptions{MaxStates: DefaultMaxDeterminizedStates}
}

// element is one member of a weighted subset: a source state plus its
// residual weight, the deficit of this member's best path against the
// best path of the whole subset.
type element struct {
	state    int
	residual float64
}

// symKey identifies one input symbol of the (Kind, Label) alphabet. All
// Escape arcs share a single symbol regardless of their Label field.
type symKey struct {
	kind  ArcKind
	label int
}

// Determinize runs a subset construction over the max-plus semiring.
//
// The result accepts exactly the language of a, preserves for every
// accepted token sequence the maximum total weight over accepting paths,
// and has at most one outgoing arc per (state, symbol) pair. The output
// is canonical: subsets are kept in ascending state order and symbols are
// expanded in sorted order, so identical inputs produce identical
// automata.
//
// opts may be nil, selecting DefaultDeterminizeOptions. Passing a nil
// automaton yields ErrNilAutomaton; a missing start state yields
// ErrNoStart; blowing the state budget yields ErrTooManyStates.
//
// Complexity: O(|subsets| · Σ arcs per subset); for phrase-chain graphs
// the subset count is linear in the total number of phrase tokens.
func Determinize(a *Automaton, opts *DeterminizeOptions) (*Automaton, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	if a.start == NoState {
		return nil, ErrNoStart
	}

	maxStates := DefaultMaxDeterminizedStates
	if opts != nil && opts.MaxStates > 0 {
		maxStates = opts.MaxStates
	}

	det := New()

	startSubset := []element{{state: a.start, residual: 0}}
	ids := map[string]int{subsetKey(startSubset): det.AddState()}
	if err := det.SetStart(0); err != nil {
		return nil, err
	}

	queue := [][]element{startSubset}
	order := []int{0} // det handle of queue[i], kept in lockstep

	for head := 0; head < len(queue); head++ {
		subset := queue[head]
		detState := order[head]

		// A subset accepts when any member accepts; the best residual wins.
		finalSeen := false
		finalWeight := 0.0
		for _, el := range subset {
			if !a.states[el.state].final {
				continue
			}
			w := el.residual + a.states[el.state].finalWeight
			if !finalSeen || w > finalWeight {
				finalWeight = w
			}
			finalSeen = true
		}
		if finalSeen {
			if err := det.SetFinal(detState, finalWeight); err != nil {
				return nil, err
			}
		}

		// Gather, per input symbol, the best candidate weight per target.
		best := make(map[symKey]map[int]float64)
		for _, el := range subset {
			for _, arc := range a.states[el.state].arcs {
				sym := symKey{kind: arc.Kind, label: arc.Label}
				if arc.Kind == Escape {
					sym.label = 0
				}
				targets := best[sym]
				if targets == nil {
					targets = make(map[int]float64)
					best[sym] = targets
				}
				w := el.residual + arc.Weight
				if old, ok := targets[arc.Next]; !ok || w > old {
					targets[arc.Next] = w
				}
			}
		}

		for _, sym := range sortedSymbols(best) {
			targets := best[sym]

			// The emitted arc carries the subset's best weight; members
			// keep their deficit as residual so later arcs can recover
			// their own best-path totals.
			arcWeight := 0.0
			first := true
			for _, w := range targets {
				if first || w > arcWeight {
					arcWeight = w
				}
				first = false
			}

			next := make([]element, 0, len(targets))
			for s, w := range targets {
				next = append(next, element{state: s, residual: w - arcWeight})
			}
			sort.Slice(next, func(i, j int) bool { return next[i].state < next[j].state })

			key := subsetKey(next)
			id, ok := ids[key]
			if !ok {
				if det.NumStates() >= maxStates {
					return nil, ErrTooManyStates
				}
				id = det.AddState()
				ids[key] = id
				queue = append(queue, next)
				order = append(order, id)
			}

			if err := det.AddArc(detState, Arc{Kind: sym.kind, Label: sym.label, Weight: arcWeight, Next: id}); err != nil {
				return nil, err
			}
		}
	}

	return det, nil
}

// sortedSymbols returns the symbol keys of best in canonical order:
// Match arcs ascending by label, then the Escape symbol.
func sortedSymbols(best map[symKey]map[int]float64) []symKey {
	syms := make([]symKey, 0, len(best))
	for sym := range best {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].kind != syms[j].kind {
			return syms[i].kind < syms[j].kind
		}

		return syms[i].label < syms[j].label
	})

	return syms
}

// subsetKey encodes a sorted subset into a map key. Residuals are
// rendered with full float64 round-trip precision so distinct weight
// profiles never collide.
func subsetKey(subset []element) string {
	var b strings.Builder
	for _, el := range subset {
		b.WriteString(strconv.Itoa(el.state))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(el.residual, 'g', -1, 64))
		b.WriteByte(';')
	}

	return b.String()
}
