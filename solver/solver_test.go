// Package solver_test exercises the best-first search engine: canonical
// optimality answers, path reconstruction, determinism, deadlocks, the
// node budget, and cancellation.
package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/solver"
	"github.com/katalvlaran/burrow/topo"
)

// mustTopo builds a topology or fails the test.
func mustTopo(t *testing.T, depth int) *topo.Topology {
	t.Helper()
	tp, err := topo.New(depth)
	require.NoError(t, err)

	return tp
}

// tunnelRows builds placements from per-depth rows of classes, row y=1
// first, columns in lane order (2, 4, 6, 8), mirroring puzzle diagrams.
func tunnelRows(rows ...[4]board.Class) []board.Placement {
	var out []board.Placement
	for r, row := range rows {
		for lane, cls := range row {
			out = append(out, board.Placement{
				Class: cls,
				Cell:  topo.Cell{X: int8(2 + 2*lane), Y: int8(r + 1)},
			})
		}
	}

	return out
}

// exampleDepth2 is the canonical scrambled arrangement:
//
//	###B#C#B#D###
//	  #A#D#C#A#
func exampleDepth2() []board.Placement {
	return tunnelRows(
		[4]board.Class{board.ClassB, board.ClassC, board.ClassB, board.ClassD},
		[4]board.Class{board.ClassA, board.ClassD, board.ClassC, board.ClassA},
	)
}

// exampleDepth4 is the same arrangement with the two extra fixed rows
// (D C B A / D B A C) spliced in between.
func exampleDepth4() []board.Placement {
	return tunnelRows(
		[4]board.Class{board.ClassB, board.ClassC, board.ClassB, board.ClassD},
		[4]board.Class{board.ClassD, board.ClassC, board.ClassB, board.ClassA},
		[4]board.Class{board.ClassD, board.ClassB, board.ClassA, board.ClassC},
		[4]board.Class{board.ClassA, board.ClassD, board.ClassC, board.ClassA},
	)
}

// SolveSuite exercises Solve across the canonical and adversarial boards.
type SolveSuite struct {
	suite.Suite
}

// TestCanonicalDepth2 checks the well-known depth-2 optimum.
func (s *SolveSuite) TestCanonicalDepth2() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, exampleDepth2())
	require.NoError(s.T(), err)

	cost, path, err := solver.Solve(initial, tp)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12521, cost)
	require.Nil(s.T(), path, "no path without WithReturnPath")
}

// TestCanonicalDepth4 checks the depth-4 optimum on the expanded board.
func (s *SolveSuite) TestCanonicalDepth4() {
	tp := mustTopo(s.T(), 4)
	initial, err := board.New(tp, exampleDepth4())
	require.NoError(s.T(), err)

	cost, _, err := solver.Solve(initial, tp)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 44169, cost)
}

// TestAlreadySolved returns zero cost and a single-state path for a goal
// input.
func (s *SolveSuite) TestAlreadySolved() {
	tp := mustTopo(s.T(), 2)
	goal := board.Goal(tp)

	cost, path, err := solver.Solve(goal, tp, solver.WithReturnPath())
	require.NoError(s.T(), err)
	require.Zero(s.T(), cost)
	require.Equal(s.T(), []board.State{goal}, path)
}

// TestReturnPath validates the reconstructed path end to end: it starts
// at the initial state, ends at the goal, every hop is a legal move, the
// hop costs sum to the optimum, and the estimator stays admissible at
// every state along the optimal path (remaining = total − spent).
func (s *SolveSuite) TestReturnPath() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, exampleDepth2())
	require.NoError(s.T(), err)

	total, path, err := solver.Solve(initial, tp, solver.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12521, total)
	require.NotEmpty(s.T(), path)
	require.Equal(s.T(), initial, path[0])
	require.True(s.T(), path[len(path)-1].IsGoal())

	spent := 0
	for i := 0; i+1 < len(path); i++ {
		est, err := solver.Estimate(path[i], tp)
		require.NoError(s.T(), err)
		require.LessOrEqual(s.T(), est, total-spent,
			"estimate must lower-bound the remaining cost at hop %d", i)

		moves, err := board.Moves(path[i], tp)
		require.NoError(s.T(), err)
		hop := -1
		for _, m := range moves {
			if m.Next == path[i+1] {
				hop = m.Cost
				break
			}
		}
		require.GreaterOrEqual(s.T(), hop, 0, "path hop %d is not a legal move", i)
		spent += hop
	}
	require.Equal(s.T(), total, spent)
}

// TestIdempotence solves the same input twice and expects identical
// results, including the path.
func (s *SolveSuite) TestIdempotence() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, exampleDepth2())
	require.NoError(s.T(), err)

	c1, p1, err := solver.Solve(initial, tp, solver.WithReturnPath())
	require.NoError(s.T(), err)
	c2, p2, err := solver.Solve(initial, tp, solver.WithReturnPath())
	require.NoError(s.T(), err)

	require.Equal(s.T(), c1, c2)
	require.Equal(s.T(), p1, p2)
}

// TestDeadlocked verifies the no-solution contract on a mutually blocked
// arrangement: an A and a D parked in the hallway each cut the other's
// only corridor home, and everything else is already settled.
func (s *SolveSuite) TestDeadlocked() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, []board.Placement{
		{Class: board.ClassA, Cell: topo.Cell{X: 5, Y: 0}},
		{Class: board.ClassA, Cell: topo.Cell{X: 2, Y: 2}},
		{Class: board.ClassD, Cell: topo.Cell{X: 3, Y: 0}},
		{Class: board.ClassD, Cell: topo.Cell{X: 8, Y: 2}},
		{Class: board.ClassB, Cell: topo.Cell{X: 4, Y: 1}},
		{Class: board.ClassB, Cell: topo.Cell{X: 4, Y: 2}},
		{Class: board.ClassC, Cell: topo.Cell{X: 6, Y: 1}},
		{Class: board.ClassC, Cell: topo.Cell{X: 6, Y: 2}},
	})
	require.NoError(s.T(), err)

	_, _, err = solver.Solve(initial, tp)
	require.ErrorIs(s.T(), err, solver.ErrNoSolution)
}

// TestNodeBudget expects ErrBudgetExceeded once the expansion budget runs
// out on an unsolved board.
func (s *SolveSuite) TestNodeBudget() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, exampleDepth2())
	require.NoError(s.T(), err)

	_, _, err = solver.Solve(initial, tp, solver.WithMaxNodes(1))
	require.ErrorIs(s.T(), err, solver.ErrBudgetExceeded)

	// A generous budget must not interfere with the optimum.
	cost, _, err := solver.Solve(initial, tp, solver.WithMaxNodes(1<<20))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12521, cost)
}

// TestCancelled expects the context's error when cancelled up front.
func (s *SolveSuite) TestCancelled() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, exampleDepth2())
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = solver.Solve(initial, tp, solver.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestValidation covers the up-front rejections.
func (s *SolveSuite) TestValidation() {
	tp := mustTopo(s.T(), 2)
	initial, err := board.New(tp, exampleDepth2())
	require.NoError(s.T(), err)

	_, _, err = solver.Solve(initial, nil)
	require.ErrorIs(s.T(), err, solver.ErrNilTopology)

	// A depth-2 population against a depth-4 topology.
	_, _, err = solver.Solve(initial, mustTopo(s.T(), 4))
	require.ErrorIs(s.T(), err, board.ErrTokenCount)

	// The zero State carries no tokens at all.
	_, _, err = solver.Solve(board.State{}, tp)
	require.ErrorIs(s.T(), err, board.ErrTokenCount)
}

// TestBadMaxNodes documents the panic on a negative budget.
func (s *SolveSuite) TestBadMaxNodes() {
	require.PanicsWithValue(s.T(), solver.ErrBadMaxNodes.Error(), func() {
		o := solver.DefaultOptions()
		solver.WithMaxNodes(-1)(&o)
	})
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
