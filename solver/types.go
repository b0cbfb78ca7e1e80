// Package solver defines configuration options and sentinel errors for
// the best-first rearrangement search of github.com/katalvlaran/burrow.
package solver

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solve and Estimate.
var (
	// ErrNilTopology indicates a nil *topo.Topology was supplied.
	ErrNilTopology = errors.New("solver: topology is nil")

	// ErrNoSolution indicates the frontier emptied before the goal was
	// reached: the goal is unreachable from the initial state. This is a
	// normal, non-fatal outcome for deadlocked arrangements, never a hang.
	ErrNoSolution = errors.New("solver: goal unreachable from initial state")

	// ErrBudgetExceeded indicates the optional node budget ran out before
	// the goal was reached.
	ErrBudgetExceeded = errors.New("solver: node budget exhausted before reaching goal")

	// ErrBadMaxNodes indicates a negative node budget.
	ErrBadMaxNodes = errors.New("solver: MaxNodes must be non-negative")
)

// Options configures the behavior of Solve.
//
// Ctx        – cancellation/deadline checked once per expansion.
// ReturnPath – if true, retain predecessors and return the state path.
// MaxNodes   – optional budget on expanded states; 0 means unlimited.
//
// The state space grows combinatorially with tunnel depth, so MaxNodes is
// the recommended guard against malformed or adversarial inputs.
type Options struct {
	Ctx        context.Context // cancellation between expansions
	ReturnPath bool            // whether to reconstruct the state path
	MaxNodes   int             // maximum expanded states; 0 = unlimited
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithContext sets a custom context for cancellation and deadlines.
// A nil context is ignored and the default (context.Background) kept.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables path reconstruction: Solve will retain a
// predecessor link per state and return the ordered sequence of states
// from the initial arrangement to the goal.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxNodes bounds the number of expanded states. Must be ≥ 0; zero
// disables the budget. Negative values panic with ErrBadMaxNodes – an
// invalid configuration is a programming error, detected early.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxNodes.Error())
		}
		o.MaxNodes = n
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: background context, no path reconstruction, unlimited budget.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		ReturnPath: false,
		MaxNodes:   0,
	}
}
