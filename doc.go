// Package ctxfst biases a speech-recognition decoder toward a caller
// supplied list of phrases ("contexts", hotwords) at decode time, without
// retraining the acoustic or language model.
//
// 🚀 What is ctxfst?
//
//	A small, deterministic library that brings together:
//		• Build: compile a phrase list + token vocabulary into a compact
//		  weighted automaton (shared-final trie with escape arcs)
//		• Determinize: max-weight-preserving subset construction, so each
//		  state has at most one transition per symbol
//		• Step: per-frame matcher advancing a per-hypothesis active-state
//		  map and emitting (partial, full) match bonuses
//
// ✨ Why choose ctxfst?
//
//   - Decoder-friendly – one Step call per frame per hypothesis, no
//     allocation surprises on the hot path
//   - Rock-solid guarantees – immutable graphs, unsynchronized concurrent
//     reads, bit-identical results for identical inputs
//   - Pure Go – no cgo, no FST toolkit to ship
//
// Under the hood, everything is organized under two subpackages plus the
// root:
//
//	fst/    — weighted acceptor arena + Determinize transform
//	symbol/ — read-only token vocabulary (blank id 0, NotFound sentinel)
//	.       — Build (GraphBuilder), Graph, ActiveStates, Step (Matcher)
//
// Quick ASCII example, phrase "cat" with per-token score s:
//
//	        c/s      a/s      t/s
//	  Start ───▶ S1 ───▶ S2 ───▶ Final
//	              │ esc/-s  │ esc/-2s
//	              ▼         ▼
//	            Start     Start
//
// A hypothesis that walks c·a·t collects s per arc (partial score) and a
// full-match signal on the final arc; abandoning after i tokens costs the
// escape weight -s·i, so a dead-end speculation keeps no net bonus.
package ctxfst
