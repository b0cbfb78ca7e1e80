// Package topo builds the fixed hallway/tunnel cell graph and its
// precomputed all-pairs distance table. See doc.go for the shape and the
// guarantees of the table.
package topo

import (
	"fmt"
	"math"
)

// Topology is the immutable cell graph for one puzzle variant.
// It holds every valid cell, each cell's direct neighbors with their
// per-edge step cost, and the complete shortest-distance table between
// all cell pairs ignoring occupancy. Construct it once with New and
// share it freely: all methods are read-only and safe for concurrent use.
type Topology struct {
	depth int8            // tunnel depth (cells per tunnel)
	cells []Cell          // all valid cells in canonical order
	index map[Cell]int    // cell → dense index into cells/adj/dist
	adj   [][]Cell        // adj[i] = direct neighbors of cells[i]
	dist  [][]int         // dist[i][j] = shortest hop count cells[i]→cells[j]
}

// New derives the topology for the given tunnel depth (2 or 4 in the two
// puzzle variants; any depth ≥ 1 is accepted). It enumerates the
// 7 + 4·depth cells, wires adjacency, and relaxes the distance table to
// a fixed point. Returns ErrBadDepth for depth < 1.
// Complexity: O(V³) time and O(V²) memory for V = 7 + 4·depth.
func New(depth int) (*Topology, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}

	t := &Topology{depth: int8(depth)}

	// 1) Enumerate every valid cell in canonical (X, then Y) order:
	//    hallway stops interleaved with full tunnel columns.
	t.cells = make([]Cell, 0, NumHallwayCells+NumLanes*depth)
	for x := int8(0); x <= hallwayXs[NumHallwayCells-1]; x++ {
		if IsTunnelLane(x) {
			for y := int8(1); y <= t.depth; y++ {
				t.cells = append(t.cells, Cell{X: x, Y: y})
			}
			continue
		}
		t.cells = append(t.cells, Cell{X: x, Y: HallwayDepth})
	}

	// 2) Build the dense index for O(1) cell lookups.
	t.index = make(map[Cell]int, len(t.cells))
	for i, c := range t.cells {
		t.index[c] = i
	}

	// 3) Wire adjacency. All edges are bidirectional; addEdge records
	//    both directions.
	t.adj = make([][]Cell, len(t.cells))
	t.wireHallway()
	t.wireTunnels()

	// 4) Relax the distance table to a fixed point.
	t.relaxDistances()

	return t, nil
}

// Depth returns the tunnel depth the topology was built for.
func (t *Topology) Depth() int { return int(t.depth) }

// NumCells returns the total number of cells (7 + 4·depth).
func (t *Topology) NumCells() int { return len(t.cells) }

// Cells returns every valid cell in canonical order.
// The returned slice is a copy and safe to mutate.
func (t *Topology) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)

	return out
}

// Contains reports whether c is a valid cell of this topology.
// Complexity: O(1).
func (t *Topology) Contains(c Cell) bool {
	_, ok := t.index[c]

	return ok
}

// Hallway returns the seven hallway stopping cells in increasing X order.
// The returned slice is a copy and safe to mutate.
func (t *Topology) Hallway() []Cell {
	out := make([]Cell, NumHallwayCells)
	for i, x := range hallwayXs {
		out[i] = Cell{X: x, Y: HallwayDepth}
	}

	return out
}

// Tunnel returns the cells of the tunnel at the given lane, ordered from
// the shallowest (Y=1) to the deepest (Y=depth). Returns ErrBadLane if
// lane is not one of the four tunnel columns.
func (t *Topology) Tunnel(lane int8) ([]Cell, error) {
	if !IsTunnelLane(lane) {
		return nil, fmt.Errorf("%w: lane %d", ErrBadLane, lane)
	}
	out := make([]Cell, t.depth)
	for y := int8(1); y <= t.depth; y++ {
		out[y-1] = Cell{X: lane, Y: y}
	}

	return out, nil
}

// Neighbors returns the direct neighbors of c from the static adjacency
// table. Returns ErrCellNotFound if c is not a cell of this topology.
// The returned slice is a copy and safe to mutate.
// Complexity: O(1) lookup plus O(deg) copy; deg ≤ 4.
func (t *Topology) Neighbors(c Cell) ([]Cell, error) {
	i, ok := t.index[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCellNotFound, c)
	}
	out := make([]Cell, len(t.adj[i]))
	copy(out, t.adj[i])

	return out, nil
}

// Distance returns the precomputed shortest hop count between a and b,
// ignoring occupancy. Returns ErrCellNotFound if either cell is invalid.
// Complexity: O(1) – a table lookup; the table was relaxed once in New.
func (t *Topology) Distance(a, b Cell) (int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCellNotFound, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCellNotFound, b)
	}

	return t.dist[i][j], nil
}

// StepCost returns the per-edge cost between two directly adjacent cells:
// the axis distance |Δx| + |Δy|, which is 2 across a tunnel mouth or down
// a diagonal hallway↔tunnel-top link and 1 everywhere else.
// Complexity: O(1). The caller is responsible for adjacency.
func StepCost(a, b Cell) int {
	return absInt(int(a.X)-int(b.X)) + absInt(int(a.Y)-int(b.Y))
}

// addEdge records the bidirectional adjacency a↔b.
func (t *Topology) addEdge(a, b Cell) {
	i, j := t.index[a], t.index[b]
	t.adj[i] = append(t.adj[i], b)
	t.adj[j] = append(t.adj[j], a)
}

// wireHallway links consecutive hallway stops. The outermost pairs
// (0,0)↔(1,0) and (9,0)↔(10,0) are one step apart; every other pair
// straddles a tunnel mouth and is two steps apart (StepCost captures
// that from the coordinates).
func (t *Topology) wireHallway() {
	for i := 1; i < NumHallwayCells; i++ {
		t.addEdge(
			Cell{X: hallwayXs[i-1], Y: HallwayDepth},
			Cell{X: hallwayXs[i], Y: HallwayDepth},
		)
	}
}

// wireTunnels links each tunnel's cells top to bottom and attaches the
// tunnel top (lane, 1) to the two hallway stops flanking its mouth.
// The flanking links cost 2 steps each: one across to the mouth, one down.
func (t *Topology) wireTunnels() {
	for _, lane := range tunnelLanes {
		top := Cell{X: lane, Y: 1}
		t.addEdge(Cell{X: lane - 1, Y: HallwayDepth}, top)
		t.addEdge(Cell{X: lane + 1, Y: HallwayDepth}, top)
		for y := int8(1); y < t.depth; y++ {
			t.addEdge(Cell{X: lane, Y: y}, Cell{X: lane, Y: y + 1})
		}
	}
}

// relaxDistances seeds dist with direct-edge step costs (0 on the
// diagonal, +∞ elsewhere) and repeatedly propagates
//
//	dist[i][j] = min(dist[i][j], dist[i][k] + dist[k][j])
//
// until a full pass makes no improvement. Equivalent to all-pairs
// shortest path on a graph of ≤ 7 + 4·depth nodes.
// Complexity: O(V³) per pass, O(1) extra memory.
func (t *Topology) relaxDistances() {
	n := len(t.cells)

	// 1) Seed: zero diagonal, direct step costs for edges, +∞ elsewhere.
	//    math.MaxInt32 avoids overflow when two "infinities" are summed.
	t.dist = make([][]int, n)
	for i := range t.dist {
		t.dist[i] = make([]int, n)
		for j := range t.dist[i] {
			if i != j {
				t.dist[i][j] = math.MaxInt32
			}
		}
	}
	for i, nbrs := range t.adj {
		for _, b := range nbrs {
			j := t.index[b]
			if sc := StepCost(t.cells[i], b); sc < t.dist[i][j] {
				t.dist[i][j] = sc
			}
		}
	}

	// 2) Relax every (i, k, j) triple in a fixed order until stable.
	//    The fixed iteration order keeps construction deterministic.
	for changed := true; changed; {
		changed = false
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				if t.dist[i][k] == math.MaxInt32 {
					continue
				}
				for j := 0; j < n; j++ {
					if via := t.dist[i][k] + t.dist[k][j]; via < t.dist[i][j] {
						t.dist[i][j] = via
						changed = true
					}
				}
			}
		}
	}
}

// absInt returns |v| without branching on the caller side.
func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
