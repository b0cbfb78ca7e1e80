// Package board defines core types, sentinel errors, and the token-class
// model for board states of github.com/katalvlaran/burrow.
package board

import (
	"errors"

	"github.com/katalvlaran/burrow/topo"
)

// Sentinel errors for state construction and move generation.
var (
	// ErrNilTopology is returned if a nil *topo.Topology is supplied.
	ErrNilTopology = errors.New("board: topology is nil")

	// ErrTokenCount indicates a placement count other than 4 × tunnel depth.
	ErrTokenCount = errors.New("board: wrong token count")

	// ErrClassCount indicates a class with more or fewer tokens than the
	// tunnel depth.
	ErrClassCount = errors.New("board: wrong per-class token count")

	// ErrBadClass indicates a class value outside the four known classes.
	ErrBadClass = errors.New("board: unknown token class")

	// ErrBadCell indicates a placement on a cell outside the topology.
	ErrBadCell = errors.New("board: placement on invalid cell")

	// ErrDuplicateCell indicates two placements sharing one cell.
	ErrDuplicateCell = errors.New("board: duplicate cell assignment")
)

// NumClasses is the number of token classes; one tunnel belongs to each.
const NumClasses = 4

// MaxTokens is the largest supported token population (4 classes × depth 4).
// State embeds a fixed array of this size so that it stays comparable and
// usable as a map key without any heap indirection.
const MaxTokens = 16

// Class identifies one of the four token classes. Tokens of one class are
// interchangeable: legality and cost depend only on the class, never on
// token identity.
type Class uint8

// The four token classes in ascending weight order.
const (
	ClassA Class = iota // weight 1,    destination lane 2
	ClassB              // weight 10,   destination lane 4
	ClassC              // weight 100,  destination lane 6
	ClassD              // weight 1000, destination lane 8
)

// classWeights maps each class to its per-step move-cost multiplier.
var classWeights = [NumClasses]int{1, 10, 100, 1000}

// Valid reports whether c is one of the four known classes.
func (c Class) Valid() bool { return c < NumClasses }

// Weight returns the class's strictly positive per-step cost multiplier.
// Complexity: O(1).
func (c Class) Weight() int { return classWeights[c] }

// DestinationLane returns the tunnel column the class must end in:
// lanes 2, 4, 6, 8 for classes A through D.
// Complexity: O(1).
func (c Class) DestinationLane() int8 { return int8(2 + 2*c) }

// String renders the class as its single-letter name.
func (c Class) String() string {
	if !c.Valid() {
		return "?"
	}

	return string(rune('A' + c))
}

// Placement assigns one token of a class to a cell.
type Placement struct {
	Class Class
	Cell  topo.Cell
}

// Move is one legal transition produced by the move generator: the moving
// token's class, its origin and destination cells, the incremental cost
// (class weight × precomputed cell distance), and the resulting state.
type Move struct {
	Class Class
	From  topo.Cell
	To    topo.Cell
	Cost  int
	Next  State
}
