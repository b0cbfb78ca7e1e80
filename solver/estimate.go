package solver

import (
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/topo"
)

// Estimate returns an admissible lower bound on the cost still required
// to bring s to the goal state: the sum, over all tokens, of each token's
// cheapest conceivable remaining cost, ignoring interactions between
// tokens except for one committed obstruction (see below). The bound is
// zero exactly on goal states and never exceeds the true optimal
// remaining cost, which is what lets Solve terminate on the first goal
// expansion with the global minimum.
//
// Per-token charge, with w = class weight, lane = destination column:
//
//   - settled (own tunnel, only own class below): 0 – it never moves again.
//   - in own tunnel over a wrong-class token: the foreigner below can only
//     leave through this token's cell, so a detour is committed – climb
//     out (depth), stop at the nearest hallway cell (1), re-enter (2):
//     w × (depth + 3).
//   - in own tunnel over an empty gap (hand-built states only): 0 – the
//     loosest admissible charge; such states never arise during search.
//   - in the hallway: it must cross to the lane and descend at least one
//     cell: w × (|Δx| + 1).
//   - in a foreign tunnel: climb out, cross, descend at least one cell:
//     w × (depth + |Δx| + 1).
//
// Every charge targets the tunnel's shallowest slot. Deeper entries only
// cost more, and whether the slot is free right now is irrelevant – any
// current occupant is charged for its own departure separately.
//
// Returns ErrNilTopology for a nil topology and board.ErrTokenCount when
// the state population does not match the topology.
// Complexity: O(n × depth) per call, n ≤ 16.
func Estimate(s board.State, tp *topo.Topology) (int, error) {
	if tp == nil {
		return 0, ErrNilTopology
	}
	if s.Len() != board.NumClasses*tp.Depth() {
		return 0, fmt.Errorf("%w: state has %d tokens, topology wants %d",
			board.ErrTokenCount, s.Len(), board.NumClasses*tp.Depth())
	}

	return estimate(s, tp), nil
}

// estimate is the validation-free core shared with the search loop, which
// evaluates it once per generated successor.
func estimate(s board.State, tp *topo.Topology) int {
	total := 0
	for _, p := range s.Placements() {
		total += tokenBound(s, p, tp)
	}

	return total
}

// tokenBound computes one token's admissible remaining-cost charge.
func tokenBound(s board.State, p board.Placement, tp *topo.Topology) int {
	lane := p.Class.DestinationLane()

	// Hallway token: cross, then enter at least one cell deep.
	if p.Cell.InHallway() {
		return p.Class.Weight() * (absInt8(p.Cell.X-lane) + 1)
	}

	// Token already inside its own tunnel.
	if p.Cell.Lane() == lane {
		if !foreignBelow(s, p, tp) {
			// Settled, or over an empty gap: nothing chargeable.
			return 0
		}
		// Trapped over a foreigner: the committed leave-and-reenter detour.
		return p.Class.Weight() * (int(p.Cell.Y) + 3)
	}

	// Foreign tunnel: climb out, cross, enter at least one cell deep.
	return p.Class.Weight() * (int(p.Cell.Y) + absInt8(p.Cell.X-lane) + 1)
}

// foreignBelow reports whether any cell strictly deeper than p in its
// tunnel holds a wrong-class token.
func foreignBelow(s board.State, p board.Placement, tp *topo.Topology) bool {
	for y := p.Cell.Y + 1; y <= int8(tp.Depth()); y++ {
		if cls, ok := s.ClassAt(topo.Cell{X: p.Cell.X, Y: y}); ok && cls != p.Class {
			return true
		}
	}

	return false
}

// absInt8 returns |v| widened to int.
func absInt8(v int8) int {
	if v < 0 {
		return int(-v)
	}

	return int(v)
}
