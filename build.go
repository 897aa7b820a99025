package ctxfst

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/ctxfst/fst"
	"github.com/katalvlaran/ctxfst/symbol"
)

// Graph is a compiled, determinized context automaton plus the vocabulary
// it was compiled against. A Graph is immutable and safe for
// unsynchronized concurrent reads by any number of hypotheses.
type Graph struct {
	automaton *fst.Automaton
	symbols   *symbol.Table
	opts      Options
}

// Automaton exposes the determinized acceptor, read-only.
func (g *Graph) Automaton() *fst.Automaton {
	if g == nil {
		return nil
	}

	return g.automaton
}

// Symbols returns the vocabulary the graph was compiled against.
func (g *Graph) Symbols() *symbol.Table {
	if g == nil {
		return nil
	}

	return g.symbols
}

// Options returns the effective options the graph was compiled with.
func (g *Graph) Options() Options {
	if g == nil {
		return DefaultOptions()
	}

	return g.opts
}

// Build compiles contexts against symbols into a determinized context
// graph. It is called once per decoding session; the result is then read
// by every hypothesis of that session.
//
// Phrases are processed in input order. A phrase is trimmed of
// surrounding whitespace and split into character tokens. Phrases longer
// than MaxContextLength are skipped whole without consuming the
// MaxContexts budget; once MaxContexts phrases were admitted the rest of
// the list is ignored. A token missing from the vocabulary truncates only
// its phrase: arcs already laid down for the resolved prefix stay as-is
// and compilation continues with the next phrase. Both conditions are
// logged, never returned as errors.
//
// Each admitted phrase of length L becomes a chain of L match arcs from
// the shared start state through L-1 fresh states into the shared final
// state, every arc weighing ContextScore. Each intermediate state at
// 1-indexed position i additionally gets one escape arc back to the start
// state weighing -ContextScore*i, bounding the score a dead-end
// speculation can keep.
//
// Build returns (nil, nil) when nothing was compiled: an empty phrase
// list, or a list in which every phrase was filtered out. A nil symbols
// table yields ErrNilSymbolTable; invalid opts yield the matching
// sentinel. opts may be nil, selecting DefaultOptions.
func Build(contexts []string, symbols *symbol.Table, opts *Options) (*Graph, error) {
	if symbols == nil {
		return nil, ErrNilSymbolTable
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	log := o.logger()

	if len(contexts) == 0 {
		return nil, nil
	}

	a := fst.New()
	start := a.AddState()
	final := a.AddState()
	if err := a.SetStart(start); err != nil {
		return nil, err
	}
	// Finality only marks acceptance; the weight is the identity.
	if err := a.SetFinal(final, 0); err != nil {
		return nil, err
	}

	log.Info("compiling context graph", "contexts", len(contexts))

	count := 0
	for _, context := range contexts {
		tokens := []rune(strings.TrimSpace(context))
		if len(tokens) > o.MaxContextLength {
			log.Info("skipping long context", "context", context, "tokens", len(tokens))

			continue
		}
		if count++; count > o.MaxContexts {
			break
		}
		if err := addChain(a, start, final, tokens, symbols, &o, log); err != nil {
			return nil, err
		}
	}

	if a.NumArcs() == 0 {
		// No usable phrase was compiled; the session runs unbiased.
		return nil, nil
	}

	det, err := fst.Determinize(a, nil)
	if err != nil {
		return nil, fmt.Errorf("ctxfst: determinize context graph: %w", err)
	}

	return &Graph{automaton: det, symbols: symbols, opts: o}, nil
}

// addChain lays down the arc chain of one phrase. An unknown token stops
// the chain at the resolved prefix; arcs already added are kept.
func addChain(a *fst.Automaton, start, final int, tokens []rune, symbols *symbol.Table, o *Options, log *slog.Logger) error {
	prev := start
	for i, tok := range tokens {
		id := symbols.Find(string(tok))
		if id == symbol.NotFound {
			log.Warn("ignoring unknown token found during compilation", "token", string(tok), "context", string(tokens))

			break
		}
		next := final
		if i < len(tokens)-1 {
			next = a.AddState()
		}
		if i > 0 {
			escape := fst.Arc{Kind: fst.Escape, Weight: -o.ContextScore * float64(i), Next: start}
			if err := a.AddArc(prev, escape); err != nil {
				return err
			}
		}
		match := fst.Arc{Kind: fst.Match, Label: id, Weight: o.ContextScore, Next: next}
		if err := a.AddArc(prev, match); err != nil {
			return err
		}
		prev = next
	}

	return nil
}
