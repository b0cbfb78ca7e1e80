// Package burrow is an exact, in-memory solver for the token-rearrangement
// puzzle: four classes of tokens scattered across a hallway and four
// dead-end tunnels, each class with its own per-step energy cost, to be
// routed into class-specific tunnels at minimum total energy.
//
// 🚀 What is burrow?
//
//	A small, deterministic library that brings together:
//		• Topology: the fixed hallway/tunnel cell graph with a precomputed
//		  all-pairs distance table
//		• Board states: immutable, order-independent token placements usable
//		  as map keys
//		• Move generation: the puzzle's full legality rules (multi-hop slides,
//		  blocking, deepest-free-slot descent, settled tokens)
//		• An admissible cost-to-goal estimator
//		• A best-first weighted search returning the provably minimal cost and,
//		  optionally, the full state path
//
// ✨ Why choose burrow?
//
//   - Exact – admissible estimator + non-negative move costs guarantee the
//     global minimum
//   - Deterministic – identical inputs always yield identical costs
//   - Pure Go – no cgo, no I/O, no hidden state between calls
//   - Bounded – optional node budget and context cancellation for hostile inputs
//
// Under the hood, everything is organized under three subpackages:
//
//	topo/   – cells, adjacency & the precomputed distance table
//	board/  – classes, states, legality predicates & the move generator
//	solver/ – the admissible estimator & the best-first search engine
//
// Quick ASCII example (tunnel depth 2):
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
//	solving this arrangement costs exactly 12521 energy.
//
// Dive into README.md for full examples and the per-package documentation
// for the precise movement and costing rules.
//
//	go get github.com/katalvlaran/burrow
package burrow
