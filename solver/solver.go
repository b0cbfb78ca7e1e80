// Package solver implements the best-first weighted shortest-path search
// over the implicit graph of board states. See doc.go for the contract.
package solver

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/topo"
)

// Solve computes the minimum total cost of rearranging `initial` into the
// goal state of tp, and optionally the ordered sequence of states along
// one optimal solution. It accepts functional options to customize
// behavior (WithReturnPath, WithMaxNodes, WithContext).
//
// Returns:
//
//   - cost: the provably minimal total cost (0 if initial is the goal).
//   - path: initial→goal state sequence if WithReturnPath() was given,
//     nil otherwise.
//   - err:  ErrNilTopology or board validation errors before the search
//     starts; ErrNoSolution if the frontier empties; ErrBudgetExceeded
//     if WithMaxNodes ran out; the context's error on cancellation.
//
// Solve is deterministic and stateless across calls: identical inputs
// yield identical costs and paths. Each call owns its frontier and
// best-cost map exclusively; concurrent calls never share state.
//
// Complexity: O(S log S) pops for S explored states, each expansion
// costing one move enumeration – the state space, not the machinery,
// dominates.
func Solve(initial board.State, tp *topo.Topology, opts ...Option) (int, []board.State, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs up front – malformed input never reaches the loop.
	if tp == nil {
		return 0, nil, ErrNilTopology
	}
	if initial.Len() != board.NumClasses*tp.Depth() {
		return 0, nil, fmt.Errorf("%w: state has %d tokens, topology wants %d",
			board.ErrTokenCount, initial.Len(), board.NumClasses*tp.Depth())
	}

	// 3) Initialize the runner: one search's exclusively-owned state.
	r := &runner{
		tp:   tp,
		opts: cfg,
		best: map[board.State]int{initial: 0},
	}
	if cfg.ReturnPath {
		r.prev = make(map[board.State]board.State)
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{state: initial, g: 0, f: estimate(initial, tp)})

	// 4) Run the main loop.
	goal, err := r.process()
	if err != nil {
		return 0, nil, err
	}

	// 5) Reconstruct the path if requested.
	if !cfg.ReturnPath {
		return r.best[goal], nil, nil
	}

	return r.best[goal], r.unwind(initial, goal), nil
}

// runner holds the mutable state for a single Solve execution: the
// frontier, the best verified cost-so-far per distinct state, optional
// predecessor links, and the expansion counter for the node budget.
type runner struct {
	tp       *topo.Topology
	opts     Options
	best     map[board.State]int         // state → cheapest verified cost-so-far
	prev     map[board.State]board.State // state → predecessor (ReturnPath only)
	pq       nodePQ                      // min-heap ordered by f = g + estimate
	expanded int                         // states expanded so far
}

// process pops frontier states in increasing f order until it expands a
// goal state, the budget or context runs out, or the frontier empties.
// Returns the goal state that terminated the search.
func (r *runner) process() (board.State, error) {
	for r.pq.Len() > 0 {
		// 1) Honor cancellation between expansions.
		select {
		case <-r.opts.Ctx.Done():
			return board.State{}, r.opts.Ctx.Err()
		default:
		}

		// 2) Pop the lowest-f item; drop stale lazy-decrease-key entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.g > r.best[item.state] {
			continue
		}

		// 3) Goal reached: with an admissible estimate, the first goal
		//    expansion carries the global minimum.
		if item.state.IsGoal() {
			return item.state, nil
		}

		// 4) Enforce the optional node budget.
		if r.opts.MaxNodes > 0 && r.expanded >= r.opts.MaxNodes {
			return board.State{}, fmt.Errorf("%w: budget %d", ErrBudgetExceeded, r.opts.MaxNodes)
		}
		r.expanded++

		// 5) Relax every legal successor.
		if err := r.relax(item.state, item.g); err != nil {
			return board.State{}, err
		}
	}

	return board.State{}, ErrNoSolution
}

// relax enumerates the legal moves out of state and records every
// successor reached through a strictly cheaper path, pushing a fresh
// frontier entry per improvement (lazy decrease-key: stale duplicates
// are skipped later against the best map).
func (r *runner) relax(state board.State, g int) error {
	moves, err := board.Moves(state, r.tp)
	if err != nil {
		// Unreachable for states descending from validated input.
		return fmt.Errorf("solver: move generation failed: %w", err)
	}

	for _, m := range moves {
		ng := g + m.Cost
		if old, seen := r.best[m.Next]; seen && ng >= old {
			continue
		}
		r.best[m.Next] = ng
		if r.prev != nil {
			r.prev[m.Next] = state
		}
		heap.Push(&r.pq, &nodeItem{state: m.Next, g: ng, f: ng + estimate(m.Next, r.tp)})
	}

	return nil
}

// unwind rebuilds the initial→goal state sequence from predecessor links.
func (r *runner) unwind(initial, goal board.State) []board.State {
	path := []board.State{goal}
	for cur := goal; cur != initial; {
		cur = r.prev[cur]
		path = append(path, cur)
	}

	// Reverse in place: predecessors were collected goal-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry: a board state, its verified cost-so-far
// g, and its priority f = g + admissible estimate.
type nodeItem struct {
	state board.State
	g     int
	f     int
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, using the
// lazy-decrease-key strategy: cheaper rediscoveries push duplicates, and
// outdated entries are discarded on pop.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
