// Package topo defines core types and sentinel errors for the fixed
// hallway-and-tunnels cell topology of github.com/katalvlaran/burrow.
package topo

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology operations.
var (
	// ErrBadDepth indicates a tunnel depth below the minimum of 1.
	ErrBadDepth = errors.New("topo: tunnel depth must be at least 1")

	// ErrCellNotFound indicates a cell that is not part of the topology.
	ErrCellNotFound = errors.New("topo: cell is not part of the topology")

	// ErrBadLane indicates a lane index that is not a tunnel lane.
	ErrBadLane = errors.New("topo: not a tunnel lane")
)

// HallwayDepth is the depth coordinate shared by every hallway cell.
const HallwayDepth = 0

// NumLanes is the number of class-specific tunnels.
const NumLanes = 4

// NumHallwayCells is the number of legal hallway stopping cells.
// The four positions directly above tunnel mouths are deliberately NOT
// cells: a token may slide across them but never stop there, so the
// topology simply does not expose them.
const NumHallwayCells = 7

// hallwayXs lists the axis positions of the legal hallway stops,
// in increasing order.
var hallwayXs = [NumHallwayCells]int8{0, 1, 3, 5, 7, 9, 10}

// tunnelLanes lists the axis positions of the four tunnel columns,
// in increasing order.
var tunnelLanes = [NumLanes]int8{2, 4, 6, 8}

// Cell identifies one location in the topology by its axis pair:
// X is the horizontal position, Y the depth (HallwayDepth for hallway
// cells, 1..depth inside a tunnel). Cells are immutable values with
// structural equality; they may be freely copied, shared, and used as
// map keys.
type Cell struct {
	X int8 // horizontal axis position
	Y int8 // depth: 0 = hallway, >0 = inside the tunnel at lane X
}

// InHallway reports whether the cell is a hallway stop.
// Complexity: O(1).
func (c Cell) InHallway() bool { return c.Y == HallwayDepth }

// Lane returns the tunnel lane the cell belongs to, valid only for
// tunnel cells (InHallway() == false).
// Complexity: O(1).
func (c Cell) Lane() int8 { return c.X }

// String renders the cell as "(x,y)" for diagnostics and test output.
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Less imposes the canonical cell order: by X, then by Y.
// Board states sort their placements with this order so that structural
// equality is independent of insertion order.
// Complexity: O(1).
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}

	return c.Y < o.Y
}

// IsTunnelLane reports whether x is one of the four tunnel columns.
// Complexity: O(1).
func IsTunnelLane(x int8) bool {
	return x >= tunnelLanes[0] && x <= tunnelLanes[NumLanes-1] && x%2 == 0
}

// Lanes returns the axis positions of the four tunnel columns in
// increasing order. The returned slice is a copy and safe to mutate.
func Lanes() []int8 {
	out := make([]int8, NumLanes)
	copy(out, tunnelLanes[:])

	return out
}
