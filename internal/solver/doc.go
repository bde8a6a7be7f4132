// Package solver implements the Sudoku solving engine.
//
// Solving is two cooperating phases:
//
// Propagation:
// Every empty cell's candidate set is recomputed; a cell with exactly
// one candidate (a naked single) is assigned, and the scan repeats
// until a full pass assigns nothing (the fixed point). A cell with
// zero candidates is a contradiction and fails the current grid
// immediately. Each pass strictly reduces the empty-cell count, so the
// fixed point is reached within 81 passes.
//
// Search:
// At a fixed point with unresolved cells, the engine branches on the
// empty cell with the fewest candidates (minimum remaining values).
// Empty cells are enumerated column-major - outer loop over columns,
// inner loop over rows - and the first cell in that order wins MRV
// ties. Candidates are tried in ascending numeric order. Each trial
// assignment is followed by a recursive propagate-then-search on the
// same grid; the first success propagates up immediately.
//
// CRITICAL PATTERNS:
//
// Single grid, strict undo:
// The engine mutates one owned grid. Every frame reverts exactly the
// cells it assigned (its propagation singles plus its branch cell)
// before reporting failure, so no trial value is ever visible in a
// failed result and the grid returned on Unsolvable equals the input.
//
// Failure as value:
// Contradictions and exhausted branches are ordinary return values
// threaded through every frame - no panics, no sentinel errors, no
// global state. Depth is an explicit parameter, so the engine is
// reentrant and deterministic: the same input always yields the same
// output.
package solver
