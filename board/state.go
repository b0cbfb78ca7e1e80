package board

import (
	"fmt"

	"github.com/katalvlaran/burrow/topo"
)

// State is an immutable, order-independent assignment of every token to a
// cell. The zero State is empty and only useful as a map key placeholder;
// build real states with New or Goal. States are small value types –
// copy them freely, compare them with ==, and use them as map keys.
type State struct {
	n      uint8                // number of tokens (4 × tunnel depth)
	tokens [MaxTokens]Placement // placements in canonical cell order; tail zeroed
}

// New validates and builds a State from an arbitrary placement list.
// Structural validation happens here, before any search begins:
//
//   - ErrNilTopology  – tp is nil
//   - ErrTokenCount   – len(placements) ≠ 4 × tp.Depth() or > MaxTokens
//   - ErrBadClass     – a class value outside ClassA..ClassD
//   - ErrBadCell      – a cell outside the topology
//   - ErrDuplicateCell – two tokens sharing one cell
//   - ErrClassCount   – a class with ≠ tp.Depth() tokens
//
// The input slice is copied; the caller may reuse it.
// Complexity: O(n²) with n ≤ 16 tokens.
func New(tp *topo.Topology, placements []Placement) (State, error) {
	if tp == nil {
		return State{}, ErrNilTopology
	}

	// 1) Exact token population: one full tunnel per class.
	want := NumClasses * tp.Depth()
	if len(placements) != want || len(placements) > MaxTokens {
		return State{}, fmt.Errorf("%w: got %d, want %d", ErrTokenCount, len(placements), want)
	}

	// 2) Per-placement structure: known class, valid cell, no sharing.
	var perClass [NumClasses]int
	var s State
	for _, p := range placements {
		if !p.Class.Valid() {
			return State{}, fmt.Errorf("%w: %d", ErrBadClass, p.Class)
		}
		if !tp.Contains(p.Cell) {
			return State{}, fmt.Errorf("%w: %s", ErrBadCell, p.Cell)
		}
		if s.Occupied(p.Cell) {
			return State{}, fmt.Errorf("%w: %s", ErrDuplicateCell, p.Cell)
		}
		perClass[p.Class]++
		s.insert(p)
	}

	// 3) Token conservation baseline: exactly depth tokens per class.
	for c := ClassA; c < NumClasses; c++ {
		if perClass[c] != tp.Depth() {
			return State{}, fmt.Errorf("%w: class %s has %d tokens, want %d",
				ErrClassCount, c, perClass[c], tp.Depth())
		}
	}

	return s, nil
}

// Goal returns the terminal state for tp: every tunnel filled top to
// bottom with its own class.
func Goal(tp *topo.Topology) State {
	var s State
	for c := ClassA; c < NumClasses; c++ {
		for y := int8(1); y <= int8(tp.Depth()); y++ {
			s.insert(Placement{Class: c, Cell: topo.Cell{X: c.DestinationLane(), Y: y}})
		}
	}

	return s
}

// Len returns the number of tokens on the board.
func (s State) Len() int { return int(s.n) }

// depth returns the tunnel depth implied by the token population.
// Valid for states built via New/Goal, where n == 4 × depth.
func (s State) depth() int8 { return int8(s.n / NumClasses) }

// Placements returns all placements in canonical cell order.
// The returned slice is a copy and safe to mutate.
func (s State) Placements() []Placement {
	out := make([]Placement, s.n)
	copy(out, s.tokens[:s.n])

	return out
}

// Occupied reports whether any token sits on cell c.
// Complexity: O(n), n ≤ 16 – a linear scan beats a map at this size and
// allocates nothing.
func (s State) Occupied(c topo.Cell) bool {
	_, ok := s.ClassAt(c)

	return ok
}

// ClassAt returns the class of the token at cell c, if any.
// Complexity: O(n), n ≤ 16.
func (s State) ClassAt(c topo.Cell) (Class, bool) {
	for i := uint8(0); i < s.n; i++ {
		if s.tokens[i].Cell == c {
			return s.tokens[i].Class, true
		}
	}

	return 0, false
}

// Settled reports whether the token at cell c is at final rest: inside its
// own destination tunnel with every strictly deeper cell of that tunnel
// held by the same class. Settled tokens never move again and are excluded
// from move generation. Returns false if c is unoccupied.
// Complexity: O(depth × n).
func (s State) Settled(c topo.Cell) bool {
	cls, ok := s.ClassAt(c)
	if !ok || c.InHallway() || c.Lane() != cls.DestinationLane() {
		return false
	}
	for y := c.Y + 1; y <= s.depth(); y++ {
		below, ok := s.ClassAt(topo.Cell{X: c.X, Y: y})
		if !ok || below != cls {
			return false
		}
	}

	return true
}

// IsGoal reports whether every token occupies a cell of its own
// destination tunnel. Because class populations are validated at
// construction, this is equivalent to equality with Goal.
// Complexity: O(n).
func (s State) IsGoal() bool {
	for i := uint8(0); i < s.n; i++ {
		p := s.tokens[i]
		if p.Cell.InHallway() || p.Cell.Lane() != p.Class.DestinationLane() {
			return false
		}
	}

	return true
}

// insert places p into the canonical-order array, shifting larger cells
// right. Caller guarantees capacity and cell uniqueness.
func (s *State) insert(p Placement) {
	i := int(s.n)
	for i > 0 && p.Cell.Less(s.tokens[i-1].Cell) {
		s.tokens[i] = s.tokens[i-1]
		i--
	}
	s.tokens[i] = p
	s.n++
}

// withMoved returns a copy of s with token index i relocated to cell `to`,
// restoring canonical order. The receiver is not modified.
// Complexity: O(n).
func (s State) withMoved(i uint8, to topo.Cell) State {
	next := s
	p := next.tokens[i]
	p.Cell = to

	// Remove slot i by shifting, then re-insert in order.
	copy(next.tokens[i:next.n-1], next.tokens[i+1:next.n])
	next.tokens[next.n-1] = Placement{}
	next.n--
	next.insert(p)

	return next
}
