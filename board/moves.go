package board

import (
	"fmt"

	"github.com/katalvlaran/burrow/topo"
)

// Moves enumerates every legal transition out of s under the rules in
// doc.go: one Move per (token, destination) pair across all non-settled
// tokens. The input state is never modified; each Move carries the fully
// formed successor state and its incremental cost.
//
// Returns ErrNilTopology for a nil topology and ErrTokenCount when the
// state's population does not match the topology's depth (states built
// with New against the same topology always match).
//
// Enumeration order is deterministic: tokens in canonical cell order,
// hallway destinations in increasing X. The search engine relies on this
// for reproducible tie-breaking.
// Complexity: O(n × V) per call – one bounded breadth-first walk per
// movable token over V = 7 + 4·depth cells.
func Moves(s State, tp *topo.Topology) ([]Move, error) {
	if tp == nil {
		return nil, ErrNilTopology
	}
	if s.Len() != NumClasses*tp.Depth() {
		return nil, fmt.Errorf("%w: state has %d tokens, topology wants %d",
			ErrTokenCount, s.Len(), NumClasses*tp.Depth())
	}

	// Worst case: every token in a tunnel with all 7 hallway stops open.
	out := make([]Move, 0, int(s.n)*topo.NumHallwayCells)
	hallway := tp.Hallway()

	var i uint8
	for i = 0; i < s.n; i++ {
		p := s.tokens[i]

		// Rule 4 (doc.go): settled tokens generate nothing.
		if s.Settled(p.Cell) {
			continue
		}

		// Rule 1: reachability through unoccupied cells only.
		reach := s.reachable(p.Cell, tp)

		if p.Cell.InHallway() {
			// Rule 2: hallway token – only the deepest free slot of its own
			// tunnel, and only while no foreign class remains inside.
			dest, ok := s.tunnelEntry(p.Class, tp)
			if ok && reach[dest] {
				out = append(out, s.move(i, dest, tp))
			}
			continue
		}

		// Rule 3: tunnel token – every reachable hallway stop.
		for _, h := range hallway {
			if reach[h] {
				out = append(out, s.move(i, h, tp))
			}
		}
	}

	return out, nil
}

// move assembles the Move for relocating token i to cell `to`, costing the
// slide from the precomputed distance table.
func (s State) move(i uint8, to topo.Cell, tp *topo.Topology) Move {
	p := s.tokens[i]
	d, _ := tp.Distance(p.Cell, to) // both cells originate from tp

	return Move{
		Class: p.Class,
		From:  p.Cell,
		To:    to,
		Cost:  p.Class.Weight() * d,
		Next:  s.withMoved(i, to),
	}
}

// tunnelEntry locates the destination slot for a hallway token of class c:
// the deepest currently-unoccupied cell of its tunnel, scanning bottom-up.
// It reports ok=false when any wrong-class token occupies the tunnel – in
// that case no move into the tunnel is legal at all – or when the tunnel
// is already full.
// Complexity: O(depth × n).
func (s State) tunnelEntry(c Class, tp *topo.Topology) (topo.Cell, bool) {
	lane := c.DestinationLane()
	var dest topo.Cell
	found := false
	for y := int8(tp.Depth()); y >= 1; y-- {
		cell := topo.Cell{X: lane, Y: y}
		occupant, occupied := s.ClassAt(cell)
		if occupied {
			if occupant != c {
				return topo.Cell{}, false
			}
			continue
		}
		if !found {
			dest, found = cell, true
		}
	}

	return dest, found
}

// reachable walks the static adjacency breadth-first from `from`, crossing
// only unoccupied cells, and returns the set of unoccupied cells the token
// could slide to. The origin itself (occupied by the moving token) is the
// walk's seed but never part of the result.
// Complexity: O(V) time and memory, V = 7 + 4·depth.
func (s State) reachable(from topo.Cell, tp *topo.Topology) map[topo.Cell]bool {
	reach := make(map[topo.Cell]bool, tp.NumCells())
	seen := make(map[topo.Cell]bool, tp.NumCells())
	seen[from] = true

	queue := make([]topo.Cell, 0, tp.NumCells())
	queue = append(queue, from)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, _ := tp.Neighbors(cur) // cur originates from tp
		for _, nb := range nbrs {
			if seen[nb] || s.Occupied(nb) {
				continue
			}
			seen[nb] = true
			reach[nb] = true
			queue = append(queue, nb)
		}
	}

	return reach
}
