package solver

import "github.com/scottrsm/sudogo/internal/grid"

// Status is the terminal outcome of a solve run.
type Status int

const (
	// StatusSolved means the grid was completed; Result.Grid holds the
	// solution.
	StatusSolved Status = iota

	// StatusUnsolvable means every branch was exhausted; the puzzle has
	// no solution. This is a routine outcome, not an error.
	StatusUnsolvable

	// StatusAborted means the node budget was exceeded before a verdict
	// was reached.
	StatusAborted
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a solve run.
type Result struct {
	// Status is the terminal verdict.
	Status Status

	// Grid holds the solution when Status is StatusSolved. On
	// StatusUnsolvable it equals the input grid: every trial and every
	// forced assignment has been reverted.
	Grid grid.Grid

	// MaxDepth is the deepest recursion reached, counting engine
	// invocations from 1. A puzzle resolved by propagation alone
	// reports 1.
	MaxDepth int

	// Nodes is the number of trial assignments made during search. A
	// puzzle resolved by propagation alone reports 0.
	Nodes int
}

// Option configures a solve run.
type Option func(*engine)

// WithMaxNodes bounds the number of search trial assignments. When the
// budget is exhausted the run stops with StatusAborted. n <= 0 means
// unbounded (the default).
func WithMaxNodes(n int) Option {
	return func(e *engine) {
		e.maxNodes = n
	}
}
