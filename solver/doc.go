// Package solver finds the provably minimum total cost of rearranging a
// board into its goal state, using best-first weighted shortest-path
// search over the implicit graph of board states.
//
// Overview:
//
//   - Solve explores board states in increasing (cost-so-far + estimate)
//     order, always expanding the most promising frontier state first.
//   - The frontier is a min-heap with the "lazy decrease-key" strategy:
//     a cheaper route to a known state pushes a duplicate entry, and stale
//     entries are skipped on pop against the best-cost map.
//   - Estimate is the guiding lower bound, exposed separately so callers
//     can inspect or test it.
//
// Correctness:
//
//   - Move costs are strictly positive (class weight × nonzero distance).
//   - Estimate never exceeds the true remaining cost (admissibility, see
//     estimate.go), so the first goal expansion carries the global
//     minimum. An inadmissible estimate would silently cost optimality –
//     that invariant is enforced by tests, not runtime checks.
//   - A state is re-expanded only via a strictly cheaper path (standard
//     relaxation), so the search terminates on the finite state space and
//     returns ErrNoSolution once the frontier empties without a goal.
//
// Resource model:
//
//   - Single-threaded, synchronous, no I/O. The frontier and best-cost
//     map live in a runner owned by one Solve call; nothing is shared or
//     retained across calls, so concurrent solves are independent.
//   - Identical inputs produce identical costs, and identical paths too:
//     move enumeration order is deterministic, and heap tie-breaks depend
//     only on insertion order.
//   - WithMaxNodes bounds worst-case runtime for hostile inputs, and
//     WithContext allows cancellation between expansions.
//
// API:
//
//	cost, path, err := solver.Solve(initial, tp, solver.WithReturnPath())
//	bound, err     := solver.Estimate(state, tp)
//
// Errors: ErrNilTopology and board validation errors before the search
// begins; ErrNoSolution or ErrBudgetExceeded from the search itself;
// the context's error on cancellation.
package solver
