package solver

import "github.com/scottrsm/sudogo/internal/grid"

// engine carries the per-run search state. A fresh engine is built for
// every Solve call, so runs never share state.
type engine struct {
	nodes    int
	maxNodes int // <= 0 means unbounded
}

// Solve runs propagation and, if needed, MRV backtracking search on g.
//
// The grid parameter is taken by value: the engine owns its copy and
// the caller's grid is never touched. The input must be a legal
// position (validated upstream); Solve only ever makes candidate-
// consistent assignments, so a solved result satisfies all row, column,
// and block constraints and preserves every given.
func Solve(g grid.Grid, opts ...Option) Result {
	e := &engine{}
	for _, opt := range opts {
		opt(e)
	}
	status, maxDepth := e.run(&g, 1)
	return Result{
		Status:   status,
		Grid:     g,
		MaxDepth: maxDepth,
		Nodes:    e.nodes,
	}
}

// run is one recursion frame: propagate to a fixed point, then branch
// on the MRV cell if cells remain. depth is this frame's recursion
// depth; the returned depth is the deepest frame reached beneath it.
//
// On any non-solved return the frame has reverted its own assignments,
// so the caller sees the grid exactly as it passed it in.
func (e *engine) run(g *grid.Grid, depth int) (Status, int) {
	assigned, ok := propagate(g)
	if !ok {
		revert(g, assigned)
		return StatusUnsolvable, depth
	}
	if g.Solved() {
		return StatusSolved, depth
	}

	row, col, cands := branchCell(g)
	maxDepth := depth
	for _, d := range cands.Digits() {
		if e.maxNodes > 0 && e.nodes >= e.maxNodes {
			revert(g, assigned)
			return StatusAborted, maxDepth
		}
		e.nodes++
		g.Set(row, col, d)
		status, reached := e.run(g, depth+1)
		if reached > maxDepth {
			maxDepth = reached
		}
		if status == StatusSolved {
			return StatusSolved, maxDepth
		}
		g.Clear(row, col)
		if status == StatusAborted {
			revert(g, assigned)
			return StatusAborted, maxDepth
		}
	}

	revert(g, assigned)
	return StatusUnsolvable, maxDepth
}

// branchCell selects the branch point: the empty cell with the fewest
// candidates. Cells are scanned column-major (outer loop over columns,
// inner over rows) and the first minimal cell in that order wins ties.
// This order is part of the engine's contract - it fixes which of
// several valid solutions an ambiguous puzzle resolves to.
//
// Only called at a propagation fixed point with unresolved cells, where
// every empty cell has at least two candidates.
func branchCell(g *grid.Grid) (row, col int, cands grid.CandidateSet) {
	best := 10
	for c := 0; c < grid.Size; c++ {
		for r := 0; r < grid.Size; r++ {
			if !g.Empty(r, c) {
				continue
			}
			s := g.Candidates(r, c)
			if s.Size() < best {
				best = s.Size()
				row, col, cands = r, c, s
			}
		}
	}
	return row, col, cands
}
