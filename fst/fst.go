package fst

import "errors"

// Sentinel errors for automaton construction and transforms.
var (
	// ErrNilAutomaton indicates a nil *Automaton was passed to a transform.
	ErrNilAutomaton = errors.New("fst: automaton is nil")

	// ErrNoStart indicates the automaton has no start state set.
	ErrNoStart = errors.New("fst: start state is not set")

	// ErrStateOutOfRange indicates a state handle outside the arena.
	ErrStateOutOfRange = errors.New("fst: state index out of range")

	// ErrArcTargetOutOfRange indicates an arc pointing at a non-existent state.
	ErrArcTargetOutOfRange = errors.New("fst: arc target out of range")

	// ErrTooManyStates indicates determinization exceeded its state budget.
	ErrTooManyStates = errors.New("fst: determinized state budget exceeded")
)

// NoState is the handle value meaning "no state", used before SetStart.
const NoState = -1

// ArcKind tags the two transition flavors of a context automaton.
type ArcKind uint8

const (
	// Match consumes one token whose id equals the arc's Label.
	Match ArcKind = iota

	// Escape consumes any token; Label is ignored for Escape arcs.
	Escape
)

// Arc is a weighted transition. The automaton is an acceptor, so a Match
// arc's input and output symbol are both Label. Next is the handle of the
// target state.
type Arc struct {
	Kind   ArcKind
	Label  int
	Weight float64
	Next   int
}

// state is one arena slot: its outgoing arcs in insertion order plus
// acceptance bookkeeping.
type state struct {
	arcs        []Arc
	final       bool
	finalWeight float64
}

// Automaton is an arena-indexed weighted acceptor with a single start
// state and zero or more final states.
type Automaton struct {
	states []state
	start  int
}

// New returns an empty automaton with no states and no start.
func New() *Automaton {
	return &Automaton{start: NoState}
}

// AddState appends a fresh state to the arena and returns its handle.
func (a *Automaton) AddState() int {
	a.states = append(a.states, state{})

	return len(a.states) - 1
}

// SetStart designates s as the start state.
func (a *Automaton) SetStart(s int) error {
	if s < 0 || s >= len(a.states) {
		return ErrStateOutOfRange
	}
	a.start = s

	return nil
}

// SetFinal marks s as accepting with acceptance weight w. The context
// graph always uses the identity weight 0: finality marks acceptance and
// carries no extra score.
func (a *Automaton) SetFinal(s int, w float64) error {
	if s < 0 || s >= len(a.states) {
		return ErrStateOutOfRange
	}
	a.states[s].final = true
	a.states[s].finalWeight = w

	return nil
}

// AddArc appends arc to the outgoing arcs of from. Arc order is insertion
// order and is never reordered, keeping iteration deterministic.
func (a *Automaton) AddArc(from int, arc Arc) error {
	if from < 0 || from >= len(a.states) {
		return ErrStateOutOfRange
	}
	if arc.Next < 0 || arc.Next >= len(a.states) {
		return ErrArcTargetOutOfRange
	}
	a.states[from].arcs = append(a.states[from].arcs, arc)

	return nil
}

// Start returns the start state handle, or NoState if unset.
func (a *Automaton) Start() int {
	return a.start
}

// NumStates reports the number of states in the arena.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// NumArcs reports the total number of arcs across all states.
func (a *Automaton) NumArcs() int {
	n := 0
	for i := range a.states {
		n += len(a.states[i].arcs)
	}

	return n
}

// Arcs returns the outgoing arcs of s. The slice is borrowed from the
// arena and must be treated as read-only; an out-of-range handle yields
// nil.
func (a *Automaton) Arcs(s int) []Arc {
	if s < 0 || s >= len(a.states) {
		return nil
	}

	return a.states[s].arcs
}

// IsFinal reports whether s is an accepting state.
func (a *Automaton) IsFinal(s int) bool {
	if s < 0 || s >= len(a.states) {
		return false
	}

	return a.states[s].final
}

// FinalWeight returns the acceptance weight of s, or 0 when s is not
// final (the identity of the max-plus semiring used here).
func (a *Automaton) FinalWeight(s int) float64 {
	if s < 0 || s >= len(a.states) || !a.states[s].final {
		return 0
	}

	return a.states[s].finalWeight
}
