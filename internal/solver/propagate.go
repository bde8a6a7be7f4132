package solver

import "github.com/scottrsm/sudogo/internal/grid"

// cellRef identifies one cell assigned during propagation, kept so the
// owning frame can revert it on backtrack.
type cellRef struct {
	row, col int
}

// propagate applies forced-single elimination to g until a fixed point
// or a contradiction.
//
// Each scan visits every empty cell and recomputes its candidate set:
// an empty set stops the scan immediately (ok=false); a singleton set
// is assigned. Scans repeat while assignments occur, since each
// assignment can shrink other cells' candidate sets.
//
// The cells assigned so far are returned in assignment order even on
// contradiction, so the caller can revert them.
func propagate(g *grid.Grid) (assigned []cellRef, ok bool) {
	for {
		changed := false
		for c := 0; c < grid.Size; c++ {
			for r := 0; r < grid.Size; r++ {
				if !g.Empty(r, c) {
					continue
				}
				s := g.Candidates(r, c)
				if s.Empty() {
					return assigned, false
				}
				if d, one := s.Sole(); one {
					g.Set(r, c, d)
					assigned = append(assigned, cellRef{row: r, col: c})
					changed = true
				}
			}
		}
		if !changed {
			return assigned, true
		}
	}
}

// revert clears every cell in refs, restoring the grid to its state
// before the owning frame's assignments.
func revert(g *grid.Grid, refs []cellRef) {
	for _, ref := range refs {
		g.Clear(ref.row, ref.col)
	}
}
